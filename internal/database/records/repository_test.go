package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/broccoli/backend/internal/apperrors"
	"github.com/broccoli/backend/internal/database/dbtest"
	"github.com/broccoli/backend/internal/entities"
)

var today = time.Date(2025, 2, 15, 10, 30, 0, 0, time.UTC)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	db := dbtest.Open(t)
	repo := NewRepository(db.DB).WithClock(func() time.Time { return today })
	return repo, db.DB
}

func addExercise(t *testing.T, db *gorm.DB, name, categoryName string) entities.Exercise {
	t.Helper()
	category := entities.Category{Name: categoryName}
	require.NoError(t, db.Create(&category).Error)
	exercise := entities.Exercise{Name: name, CategoryID: category.ID}
	require.NoError(t, db.Omit("Category").Create(&exercise).Error)
	return exercise
}

func day(s string) *time.Time {
	t, err := time.Parse(entities.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestRepository_Create(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()
	bench := addExercise(t, db, "ベンチプレス", "胸")

	t.Run("defaults the date to today", func(t *testing.T) {
		record, err := repo.Create(ctx, Input{ExerciseID: bench.ID, Weight: 60, Rep: 10})

		require.NoError(t, err)
		assert.NotZero(t, record.ID)
		assert.Equal(t, 60, record.Weight)
		assert.Equal(t, 10, record.Rep)
		assert.Equal(t, "2025-02-15", entities.FormatDate(record.ExerciseDate))
		assert.Equal(t, "ベンチプレス", record.Exercise.Name)
		assert.Equal(t, "胸", record.Exercise.Category.Name)
	})

	t.Run("keeps an explicit date", func(t *testing.T) {
		record, err := repo.Create(ctx, Input{ExerciseID: bench.ID, Weight: 65, Rep: 8, ExerciseDate: day("2025-01-03")})

		require.NoError(t, err)
		assert.Equal(t, "2025-01-03", entities.FormatDate(record.ExerciseDate))
	})

	t.Run("rejects an unknown exercise", func(t *testing.T) {
		before, err := repo.List(ctx, Filter{})
		require.NoError(t, err)

		_, err = repo.Create(ctx, Input{ExerciseID: 999, Weight: 60, Rep: 10})
		assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)

		after, err := repo.List(ctx, Filter{})
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := repo.Create(ctx, Input{ExerciseID: bench.ID, Weight: -1, Rep: 10})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestRepository_List(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()
	squat := addExercise(t, db, "スクワット", "脚")

	records, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Empty(t, records)

	for _, d := range []string{"2025-02-14", "2025-02-10", "2025-02-14", "2025-02-12"} {
		_, err := repo.Create(ctx, Input{ExerciseID: squat.ID, Weight: 80, Rep: 5, ExerciseDate: day(d)})
		require.NoError(t, err)
	}

	t.Run("without a filter returns everything by date", func(t *testing.T) {
		records, err := repo.List(ctx, Filter{})
		require.NoError(t, err)
		require.Len(t, records, 4)

		dates := make([]string, len(records))
		for i, r := range records {
			dates[i] = entities.FormatDate(r.ExerciseDate)
		}
		assert.Equal(t, []string{"2025-02-10", "2025-02-12", "2025-02-14", "2025-02-14"}, dates)
		assert.Less(t, records[2].ID, records[3].ID)
		assert.Equal(t, "脚", records[0].Exercise.Category.Name)
	})

	t.Run("date filter matches exactly", func(t *testing.T) {
		records, err := repo.List(ctx, Filter{Date: day("2025-02-14")})
		require.NoError(t, err)
		assert.Len(t, records, 2)

		records, err = repo.List(ctx, Filter{Date: day("2025-02-11")})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("date filter ignores the time of day", func(t *testing.T) {
		evening := time.Date(2025, 2, 12, 21, 0, 0, 0, time.UTC)
		records, err := repo.List(ctx, Filter{Date: &evening})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("range is inclusive", func(t *testing.T) {
		records, err := repo.List(ctx, Filter{From: day("2025-02-10"), To: day("2025-02-12")})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestRepository_CreateBatch(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()
	deadlift := addExercise(t, db, "デッドリフト", "背中")

	batch := []entities.ExerciseRecord{
		{ExerciseID: deadlift.ID, Weight: 100, Rep: 5, ExerciseDate: entities.DateOf(*day("2025-02-01"))},
		{ExerciseID: deadlift.ID, Weight: 105, Rep: 5},
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))
	assert.NotZero(t, batch[0].ID)

	records, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-02-15", entities.FormatDate(records[1].ExerciseDate))

	assert.NoError(t, repo.CreateBatch(ctx, nil))
}

func TestRepository_Get(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()
	press := addExercise(t, db, "ショルダープレス", "肩")

	created, err := repo.Create(ctx, Input{ExerciseID: press.ID, Weight: 30, Rep: 12})
	require.NoError(t, err)

	found, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "肩", found.Exercise.Category.Name)

	_, err = repo.Get(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.EqualError(t, err, "Exercise record not found")
}

func TestRepository_Update(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()
	curl := addExercise(t, db, "バーベルカール", "腕")
	hammer := addExercise(t, db, "ハンマーカール", "前腕")

	created, err := repo.Create(ctx, Input{ExerciseID: curl.ID, Weight: 25, Rep: 10, ExerciseDate: day("2025-02-01")})
	require.NoError(t, err)

	t.Run("keeps the date when none is given", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, Input{ExerciseID: hammer.ID, Weight: 0, Rep: 12})

		require.NoError(t, err)
		assert.Equal(t, hammer.ID, updated.ExerciseID)
		assert.Equal(t, 0, updated.Weight)
		assert.Equal(t, 12, updated.Rep)
		assert.Equal(t, "2025-02-01", entities.FormatDate(updated.ExerciseDate))
		assert.Equal(t, "前腕", updated.Exercise.Category.Name)
	})

	t.Run("moves the record to a new date", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, Input{ExerciseID: curl.ID, Weight: 25, Rep: 10, ExerciseDate: day("2025-02-03")})

		require.NoError(t, err)
		assert.Equal(t, "2025-02-03", entities.FormatDate(updated.ExerciseDate))
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := repo.Update(ctx, 999, Input{ExerciseID: curl.ID, Weight: 25, Rep: 10})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("unknown exercise", func(t *testing.T) {
		_, err := repo.Update(ctx, created.ID, Input{ExerciseID: 999, Weight: 25, Rep: 10})
		assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)

		found, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, curl.ID, found.ExerciseID)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()
	row := addExercise(t, db, "ベントオーバーロウ", "背中")

	created, err := repo.Create(ctx, Input{ExerciseID: row.ID, Weight: 50, Rep: 10})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
