// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, dialect selection, migrations
//	├── init.go          # Schema initialization with retry and backoff
//	├── categories/      # Category CRUD operations
//	├── exercises/       # Exercise CRUD operations
//	├── records/         # Exercise record CRUD and date filtering
//	└── dbtest/          # Throwaway SQLite databases for tests
//
// # Using Sub-packages
//
//	db, err := database.NewInitializer(cfg.Database).Run(ctx)
//
//	categoriesRepo := categories.NewRepository(db.DB)
//	recordsRepo := records.NewRepository(db.DB)
//
//	category, err := categoriesRepo.Create(ctx, "胸")
//	history, err := recordsRepo.List(ctx, records.Filter{Date: &day})
//
// # Interface Implementations
//
//   - categories.Repository: implements http.CategoryStore
//   - exercises.Repository: implements http.ExerciseStore
//   - records.Repository: implements http.ExerciseRecordStore
//   - Database: implements http.Pinger
//
// Repositories return errors wrapping the apperrors sentinels, so callers
// classify them with errors.Is instead of inspecting driver errors.
package database
