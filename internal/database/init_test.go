package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broccoli/backend/internal/apperrors"
	"github.com/broccoli/backend/internal/config"
)

type fakeSleeper struct {
	delays []time.Duration
	err    error
}

func (f *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	f.delays = append(f.delays, d)
	return f.err
}

func TestInitializer_RetriesUntilStoreIsReady(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "init.db")
	sleeper := &fakeSleeper{}

	calls := 0
	initializer := &Initializer{
		Connect: func() (*Database, error) {
			calls++
			if calls < 4 {
				return nil, errors.New("connection refused")
			}
			return Open(config.Database{URL: "sqlite://" + dbPath, LogLevel: "silent"})
		},
		MaxRetries: 10,
		BaseDelay:  time.Second,
		Sleep:      sleeper.Sleep,
	}

	db, err := initializer.Run(context.Background())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 4, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, sleeper.delays)
	assert.True(t, db.DB.Migrator().HasTable("exercise_records"))
}

func TestInitializer_ExhaustsRetries(t *testing.T) {
	sleeper := &fakeSleeper{}

	calls := 0
	initializer := &Initializer{
		Connect: func() (*Database, error) {
			calls++
			return nil, errors.New("connection refused")
		},
		MaxRetries: 3,
		BaseDelay:  time.Second,
		Sleep:      sleeper.Sleep,
	}

	db, err := initializer.Run(context.Background())
	assert.Nil(t, db)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeper.delays)
}

func TestInitializer_StopsWhenContextIsCancelled(t *testing.T) {
	sleeper := &fakeSleeper{err: context.Canceled}

	calls := 0
	initializer := &Initializer{
		Connect: func() (*Database, error) {
			calls++
			return nil, errors.New("connection refused")
		},
		MaxRetries: 10,
		BaseDelay:  time.Second,
		Sleep:      sleeper.Sleep,
	}

	_, err := initializer.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestInitializer_Backoff(t *testing.T) {
	initializer := &Initializer{BaseDelay: time.Second}
	assert.Equal(t, time.Second, initializer.backoff(1))
	assert.Equal(t, 512*time.Second, initializer.backoff(10))

	initializer = &Initializer{}
	assert.Equal(t, config.DefaultInitBaseDelay, initializer.backoff(1))
}

func TestSleepContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))
}
