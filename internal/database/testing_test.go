package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/broccoli/backend/internal/config"
)

// setupTestDB creates a fresh, migrated SQLite database in a temp directory.
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test_"+strings.ReplaceAll(t.Name(), "/", "_")+".db")
	db, err := Open(config.Database{URL: "sqlite://" + dbPath, LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))

	cleanup := func() {
		db.Close()
	}
	return db, cleanup
}
