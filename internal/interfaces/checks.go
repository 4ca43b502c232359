package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/broccoli/backend/internal/database"
	"github.com/broccoli/backend/internal/database/categories"
	"github.com/broccoli/backend/internal/database/exercises"
	"github.com/broccoli/backend/internal/database/records"
	"github.com/broccoli/backend/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.CategoryStore = (*categories.Repository)(nil)

var _ http.ExerciseStore = (*exercises.Repository)(nil)

var _ http.ExerciseRecordStore = (*records.Repository)(nil)

// =============================================================================
// Health
// =============================================================================

var _ http.Pinger = (*database.Database)(nil)
