// Package dbtest opens throwaway SQLite databases for repository and handler tests.
package dbtest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/broccoli/backend/internal/config"
	"github.com/broccoli/backend/internal/database"
)

// Open returns a migrated database in t's temp directory, closed on cleanup.
func Open(t *testing.T) *database.Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dbPath := filepath.Join(t.TempDir(), "test_"+name+".db")

	db, err := database.Open(config.Database{URL: "sqlite://" + dbPath, LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))

	t.Cleanup(func() {
		db.Close()
	})
	return db
}
