// Package categories provides database operations for exercise categories.
//
// This package implements the CategoryStore interface defined in internal/http/categories.go.
//
//	repo := categories.NewRepository(db.DB)
//	category, err := repo.Create(ctx, "胸")
package categories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/broccoli/backend/internal/apperrors"
	"github.com/broccoli/backend/internal/entities"
)

const resource = "Category"

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a category and returns it with its assigned ID.
func (r *Repository) Create(ctx context.Context, name string) (*entities.Category, error) {
	if err := entities.ValidateName(name); err != nil {
		return nil, apperrors.Validation(err)
	}

	category := &entities.Category{Name: name}
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, apperrors.FromDB(err, resource)
	}
	return category, nil
}

// List returns all categories ordered by ID.
func (r *Repository) List(ctx context.Context) ([]entities.Category, error) {
	categories := []entities.Category{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, apperrors.FromDB(err, resource)
}

// ListAssigned returns the categories referenced by at least one exercise,
// each exactly once.
func (r *Repository) ListAssigned(ctx context.Context) ([]entities.Category, error) {
	categories := []entities.Category{}
	err := r.db.WithContext(ctx).
		Where("EXISTS (SELECT 1 FROM exercises WHERE exercises.category_id = categories.id)").
		Order("id ASC").
		Find(&categories).Error
	return categories, apperrors.FromDB(err, resource)
}

// Get retrieves a category by ID.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, apperrors.FromDB(err, resource)
	}
	return &category, nil
}

// Update replaces the category's name.
func (r *Repository) Update(ctx context.Context, id uint, name string) (*entities.Category, error) {
	if err := entities.ValidateName(name); err != nil {
		return nil, apperrors.Validation(err)
	}

	var category entities.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&category).Update("name", name).Error; err != nil {
			return err
		}
		category.Name = name
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDB(err, resource)
	}
	return &category, nil
}

// Delete removes a category. It fails with a constraint violation while any
// exercise still references it.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category entities.Category
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}

		var exerciseCount int64
		if err := tx.Model(&entities.Exercise{}).Where("category_id = ?", id).Count(&exerciseCount).Error; err != nil {
			return err
		}
		if exerciseCount > 0 {
			return fmt.Errorf("%w: category %d is used by %d exercises", apperrors.ErrConstraintViolation, id, exerciseCount)
		}

		return tx.Delete(&category).Error
	})
	return apperrors.FromDB(err, resource)
}
