package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/broccoli/backend/internal/database/records"
	"github.com/broccoli/backend/internal/entities"
)

const exerciseRecordResource = "Exercise record"

type ExerciseRecordsController struct {
	store ExerciseRecordStore
}

func NewExerciseRecordsController(store ExerciseRecordStore) *ExerciseRecordsController {
	return &ExerciseRecordsController{store: store}
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, err := time.Parse(entities.DateLayout, raw)
	if err != nil {
		respondValidationError(c, "invalid "+name+": expected YYYY-MM-DD")
		return nil, false
	}
	return &d, true
}

// List returns records, optionally restricted to a date or a date range
// GET /exercise_records?date=YYYY-MM-DD
// GET /exercise_records?from=YYYY-MM-DD&to=YYYY-MM-DD
func (rc *ExerciseRecordsController) List(c *gin.Context) {
	var filter records.Filter
	var ok bool
	if filter.Date, ok = parseDateQuery(c, "date"); !ok {
		return
	}
	if filter.From, ok = parseDateQuery(c, "from"); !ok {
		return
	}
	if filter.To, ok = parseDateQuery(c, "to"); !ok {
		return
	}

	list, err := rc.store.List(c.Request.Context(), filter)
	if err != nil {
		respondAppError(c, err, exerciseRecordResource, "list exercise records")
		return
	}
	c.JSON(http.StatusOK, newExerciseRecordResponses(list))
}

// Get returns a single record
// GET /exercise_records/:id
func (rc *ExerciseRecordsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := rc.store.Get(c.Request.Context(), id)
	if err != nil {
		respondAppError(c, err, exerciseRecordResource, "get exercise record")
		return
	}
	c.JSON(http.StatusOK, newExerciseRecordResponse(*record))
}

// Create logs a set; exercise_date defaults to today
// POST /exercise_records
func (rc *ExerciseRecordsController) Create(c *gin.Context) {
	in, ok := bindRecordInput(c)
	if !ok {
		return
	}

	record, err := rc.store.Create(c.Request.Context(), in)
	if err != nil {
		respondAppError(c, err, exerciseRecordResource, "create exercise record")
		return
	}
	c.JSON(http.StatusOK, newExerciseRecordResponse(*record))
}

// Update replaces a record's exercise, weight and rep
// PUT /exercise_records/:id
func (rc *ExerciseRecordsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	in, ok := bindRecordInput(c)
	if !ok {
		return
	}

	record, err := rc.store.Update(c.Request.Context(), id, in)
	if err != nil {
		respondAppError(c, err, exerciseRecordResource, "update exercise record")
		return
	}
	c.JSON(http.StatusOK, newExerciseRecordResponse(*record))
}

// Delete removes a record
// DELETE /exercise_records/:id
func (rc *ExerciseRecordsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := rc.store.Delete(c.Request.Context(), id)
	if err != nil {
		respondAppError(c, err, exerciseRecordResource, "delete exercise record")
		return
	}
	if !deleted {
		respondNotFound(c, exerciseRecordResource)
		return
	}
	respondSuccess(c, "Exercise record deleted successfully")
}

func bindRecordInput(c *gin.Context) (records.Input, bool) {
	var req ExerciseRecordRequest
	if !bindJSON(c, &req) {
		return records.Input{}, false
	}
	in, err := req.toInput()
	if err != nil {
		respondValidationError(c, err.Error())
		return records.Input{}, false
	}
	return in, true
}
