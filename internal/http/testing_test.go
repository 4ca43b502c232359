package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/broccoli/backend/internal/config"
	"github.com/broccoli/backend/internal/database"
	"github.com/broccoli/backend/internal/database/categories"
	"github.com/broccoli/backend/internal/database/dbtest"
	"github.com/broccoli/backend/internal/database/exercises"
	"github.com/broccoli/backend/internal/database/records"
)

var testToday = time.Date(2025, 2, 18, 9, 0, 0, 0, time.UTC)

type testServer struct {
	db     *database.Database
	router *gin.Engine
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t)
	router := NewRouter(RouterConfig{
		Categories:      categories.NewRepository(db.DB),
		Exercises:       exercises.NewRepository(db.DB),
		ExerciseRecords: records.NewRepository(db.DB).WithClock(func() time.Time { return testToday }),
		Database:        db,
		CORS:            config.CORS{Origins: []string{"http://localhost:3000"}, AllowCredentials: true},
		Version:         "test",
	})
	return &testServer{db: db, router: router}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *testServer) createCategory(t *testing.T, name string) CategoryResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/categories", gin.H{"name": name})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeJSON[CategoryResponse](t, w)
}

func (s *testServer) createExercise(t *testing.T, name string, categoryID uint) ExerciseResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/exercises", gin.H{"name": name, "category_id": categoryID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeJSON[ExerciseResponse](t, w)
}

func (s *testServer) createRecord(t *testing.T, body gin.H) ExerciseRecordResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/exercise_records", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeJSON[ExerciseRecordResponse](t, w)
}
