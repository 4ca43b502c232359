// Package records provides database operations for exercise records, the
// individual weight and repetition entries logged against an exercise.
package records

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/broccoli/backend/internal/apperrors"
	"github.com/broccoli/backend/internal/entities"
)

const resource = "Exercise record"

// Filter narrows List results by exercise date. Nil fields are ignored.
// From and To are inclusive.
type Filter struct {
	Date *time.Time
	From *time.Time
	To   *time.Time
}

// Input carries the writable fields of a record. A nil ExerciseDate means
// today on create and "keep the stored date" on update.
type Input struct {
	ExerciseID   uint
	Weight       int
	Rep          int
	ExerciseDate *time.Time
}

func (in Input) validate() error {
	if err := entities.ValidateSet(in.Weight, in.Rep); err != nil {
		return apperrors.Validation(err)
	}
	return nil
}

// Repository handles all exercise record database operations.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a new records repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// WithClock returns a copy of the repository that takes "today" from now.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	return &Repository{db: r.db, now: now}
}

func withExercise(db *gorm.DB) *gorm.DB {
	return db.Preload("Exercise.Category")
}

func requireExercise(tx *gorm.DB, exerciseID uint) error {
	var count int64
	if err := tx.Model(&entities.Exercise{}).Where("id = ?", exerciseID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: exercise %d does not exist", apperrors.ErrConstraintViolation, exerciseID)
	}
	return nil
}

// Create inserts a record and returns it with its exercise and category.
func (r *Repository) Create(ctx context.Context, in Input) (*entities.ExerciseRecord, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	date := entities.DateOf(r.now())
	if in.ExerciseDate != nil {
		date = entities.DateOf(*in.ExerciseDate)
	}

	var record entities.ExerciseRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExercise(tx, in.ExerciseID); err != nil {
			return err
		}

		created := entities.ExerciseRecord{
			ExerciseID:   in.ExerciseID,
			Weight:       in.Weight,
			Rep:          in.Rep,
			ExerciseDate: date,
		}
		if err := tx.Omit(clause.Associations).Create(&created).Error; err != nil {
			return err
		}
		return withExercise(tx).First(&record, created.ID).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err, resource)
	}
	return &record, nil
}

// CreateBatch inserts many records in one transaction without refetching them.
// Records without a date are stamped with today.
func (r *Repository) CreateBatch(ctx context.Context, batch []entities.ExerciseRecord) error {
	if len(batch) == 0 {
		return nil
	}
	today := entities.DateOf(r.now())
	for i := range batch {
		if err := entities.ValidateSet(batch[i].Weight, batch[i].Rep); err != nil {
			return apperrors.Validation(err)
		}
		if time.Time(batch[i].ExerciseDate).IsZero() {
			batch[i].ExerciseDate = today
		}
	}

	err := r.db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(batch, 200).Error
	return apperrors.FromDB(err, resource)
}

// List returns records ordered by exercise date, then ID.
func (r *Repository) List(ctx context.Context, filter Filter) ([]entities.ExerciseRecord, error) {
	query := withExercise(r.db.WithContext(ctx))
	if filter.Date != nil {
		query = query.Where("exercise_date = ?", entities.DateOf(*filter.Date))
	}
	if filter.From != nil {
		query = query.Where("exercise_date >= ?", entities.DateOf(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("exercise_date <= ?", entities.DateOf(*filter.To))
	}

	records := []entities.ExerciseRecord{}
	err := query.Order("exercise_date ASC").Order("id ASC").Find(&records).Error
	return records, apperrors.FromDB(err, resource)
}

// Get retrieves a record by ID.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.ExerciseRecord, error) {
	var record entities.ExerciseRecord
	if err := withExercise(r.db.WithContext(ctx)).First(&record, id).Error; err != nil {
		return nil, apperrors.FromDB(err, resource)
	}
	return &record, nil
}

// Update replaces the exercise, weight and rep of a record, and its date when
// one is given.
func (r *Repository) Update(ctx context.Context, id uint, in Input) (*entities.ExerciseRecord, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var record entities.ExerciseRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.ExerciseRecord
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		if err := requireExercise(tx, in.ExerciseID); err != nil {
			return err
		}

		changes := map[string]any{
			"exercise_id": in.ExerciseID,
			"weight":      in.Weight,
			"rep":         in.Rep,
		}
		if in.ExerciseDate != nil {
			changes["exercise_date"] = entities.DateOf(*in.ExerciseDate)
		}
		if err := tx.Model(&existing).Omit(clause.Associations).Updates(changes).Error; err != nil {
			return err
		}
		return withExercise(tx).First(&record, id).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err, resource)
	}
	return &record, nil
}

// Delete removes a record and reports whether it existed.
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entities.ExerciseRecord{}, id)
	if result.Error != nil {
		return false, apperrors.FromDB(result.Error, resource)
	}
	return result.RowsAffected > 0, nil
}
