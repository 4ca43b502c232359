package http

import "github.com/broccoli/backend/internal/config"

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	Categories      CategoryStore
	Exercises       ExerciseStore
	ExerciseRecords ExerciseRecordStore

	// Health checks; nil reports the database as not configured
	Database Pinger

	CORS config.CORS

	// Application info
	Version string
}
