// Package exercises provides database operations for exercises.
//
// Every exercise returned by this package carries its category.
package exercises

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/broccoli/backend/internal/apperrors"
	"github.com/broccoli/backend/internal/entities"
)

const resource = "Exercise"

// Repository handles all exercise database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new exercises repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func withCategory(db *gorm.DB) *gorm.DB {
	return db.Preload("Category")
}

func requireCategory(tx *gorm.DB, categoryID uint) error {
	var count int64
	if err := tx.Model(&entities.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: category %d does not exist", apperrors.ErrConstraintViolation, categoryID)
	}
	return nil
}

// Create inserts an exercise under an existing category.
func (r *Repository) Create(ctx context.Context, name string, categoryID uint) (*entities.Exercise, error) {
	if err := entities.ValidateName(name); err != nil {
		return nil, apperrors.Validation(err)
	}

	var exercise entities.Exercise
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCategory(tx, categoryID); err != nil {
			return err
		}

		created := entities.Exercise{Name: name, CategoryID: categoryID}
		if err := tx.Omit(clause.Associations).Create(&created).Error; err != nil {
			return err
		}
		return withCategory(tx).First(&exercise, created.ID).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err, resource)
	}
	return &exercise, nil
}

// List returns all exercises ordered by ID.
func (r *Repository) List(ctx context.Context) ([]entities.Exercise, error) {
	exercises := []entities.Exercise{}
	err := withCategory(r.db.WithContext(ctx)).Order("id ASC").Find(&exercises).Error
	return exercises, apperrors.FromDB(err, resource)
}

// ListByCategory returns the exercises of one category. An unknown category
// yields an empty list.
func (r *Repository) ListByCategory(ctx context.Context, categoryID uint) ([]entities.Exercise, error) {
	exercises := []entities.Exercise{}
	err := withCategory(r.db.WithContext(ctx)).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&exercises).Error
	return exercises, apperrors.FromDB(err, resource)
}

// Get retrieves an exercise by ID.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.Exercise, error) {
	var exercise entities.Exercise
	if err := withCategory(r.db.WithContext(ctx)).First(&exercise, id).Error; err != nil {
		return nil, apperrors.FromDB(err, resource)
	}
	return &exercise, nil
}

// Update renames an exercise. The category assignment is left as is.
func (r *Repository) Update(ctx context.Context, id uint, name string) (*entities.Exercise, error) {
	if err := entities.ValidateName(name); err != nil {
		return nil, apperrors.Validation(err)
	}

	var exercise entities.Exercise
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := withCategory(tx).First(&exercise, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&exercise).Omit(clause.Associations).Update("name", name).Error; err != nil {
			return err
		}
		exercise.Name = name
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDB(err, resource)
	}
	return &exercise, nil
}

// Delete removes an exercise. It fails with a constraint violation while any
// record still references it.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exercise entities.Exercise
		if err := tx.First(&exercise, id).Error; err != nil {
			return err
		}

		var recordCount int64
		if err := tx.Model(&entities.ExerciseRecord{}).Where("exercise_id = ?", id).Count(&recordCount).Error; err != nil {
			return err
		}
		if recordCount > 0 {
			return fmt.Errorf("%w: exercise %d has %d records", apperrors.ErrConstraintViolation, id, recordCount)
		}

		return tx.Delete(&exercise).Error
	})
	return apperrors.FromDB(err, resource)
}
