// Package interfaces documents the core abstractions used throughout the application.
//
// # Data Access Interfaces
//
// Controllers in internal/http depend on narrow store interfaces (internal/http/stores.go):
//
//   - CategoryStore: categories.Repository
//   - ExerciseStore: exercises.Repository
//   - ExerciseRecordStore: records.Repository
//   - Pinger: database.Database, used by the health check
//
// All repository errors wrap one of the apperrors sentinels (ErrNotFound,
// ErrConstraintViolation, ErrValidation); respondAppError turns them into
// status codes.
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., routines):
//
//  1. Create sub-package: internal/database/routines/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add the model to entities.All so Migrate creates its table
//
//  4. Declare the store interface in internal/http/stores.go and add a
//     compile-time check:
//
//     var _ http.RoutineStore = (*routines.Repository)(nil)
//
// # Compile-Time Interface Checks
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
