package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/broccoli/backend/internal/apperrors"
	"github.com/broccoli/backend/internal/config"
)

// Initializer brings the store up at process start: it connects and creates
// the schema, retrying with exponential backoff while the store is not ready.
type Initializer struct {
	Connect    func() (*Database, error)
	MaxRetries int
	BaseDelay  time.Duration
	Sleep      func(ctx context.Context, d time.Duration) error
}

// NewInitializer builds an Initializer for the configured store using the real clock.
func NewInitializer(cfg config.Database) *Initializer {
	return &Initializer{
		Connect:    func() (*Database, error) { return Open(cfg) },
		MaxRetries: cfg.InitMaxRetries,
		BaseDelay:  cfg.InitBaseDelay,
		Sleep:      sleepContext,
	}
}

// Run returns a connected database with a verified schema, or an error
// wrapping apperrors.ErrStoreUnavailable once every attempt has failed.
func (i *Initializer) Run(ctx context.Context) (*Database, error) {
	maxRetries := i.MaxRetries
	if maxRetries <= 0 {
		maxRetries = config.DefaultInitMaxRetries
	}
	sleep := i.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var db *Database
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if db == nil {
			db, lastErr = i.Connect()
		}
		if db != nil {
			lastErr = db.Migrate(ctx)
			if lastErr == nil {
				log.Printf("Database initialized (attempt %d/%d)", attempt, maxRetries)
				return db, nil
			}
		}

		if attempt == maxRetries {
			break
		}
		delay := i.backoff(attempt)
		log.Printf("Database not ready, attempt %d/%d: %v. Retrying in %s", attempt, maxRetries, lastErr, delay)
		if err := sleep(ctx, delay); err != nil {
			lastErr = err
			break
		}
	}

	if db != nil {
		_ = db.Close()
	}
	log.Printf("Failed to initialize database after %d attempts", maxRetries)
	return nil, fmt.Errorf("%w: could not initialize database: %w", apperrors.ErrStoreUnavailable, lastErr)
}

// backoff returns BaseDelay * 2^(attempt-1).
func (i *Initializer) backoff(attempt int) time.Duration {
	base := i.BaseDelay
	if base <= 0 {
		base = config.DefaultInitBaseDelay
	}
	return base << (attempt - 1)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
