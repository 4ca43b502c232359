package http

import (
	"context"

	"github.com/broccoli/backend/internal/database/records"
	"github.com/broccoli/backend/internal/entities"
)

// This file consolidates all store interface definitions used by HTTP controllers.
// The repositories under internal/database implement them.

// CategoryStore defines database operations for categories.
type CategoryStore interface {
	Create(ctx context.Context, name string) (*entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
	ListAssigned(ctx context.Context) ([]entities.Category, error)
	Get(ctx context.Context, id uint) (*entities.Category, error)
	Update(ctx context.Context, id uint, name string) (*entities.Category, error)
	Delete(ctx context.Context, id uint) error
}

// ExerciseStore defines database operations for exercises.
type ExerciseStore interface {
	Create(ctx context.Context, name string, categoryID uint) (*entities.Exercise, error)
	List(ctx context.Context) ([]entities.Exercise, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]entities.Exercise, error)
	Get(ctx context.Context, id uint) (*entities.Exercise, error)
	Update(ctx context.Context, id uint, name string) (*entities.Exercise, error)
	Delete(ctx context.Context, id uint) error
}

// ExerciseRecordStore defines database operations for exercise records.
type ExerciseRecordStore interface {
	Create(ctx context.Context, in records.Input) (*entities.ExerciseRecord, error)
	List(ctx context.Context, filter records.Filter) ([]entities.ExerciseRecord, error)
	Get(ctx context.Context, id uint) (*entities.ExerciseRecord, error)
	Update(ctx context.Context, id uint, in records.Input) (*entities.ExerciseRecord, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
