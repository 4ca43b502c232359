package seed

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/broccoli/backend/internal/database"
	"github.com/broccoli/backend/internal/database/records"
	"github.com/broccoli/backend/internal/entities"
)

const (
	DefaultHistoryCount  = 200
	DefaultHistoryPerDay = 4

	// maxDaysBack bounds how far into the past history is generated.
	maxDaysBack = 365

	minWeight  = 20
	maxWeight  = 100
	weightStep = 5
	minRep     = 5
	maxRep     = 15
)

// ErrNoExercises is returned when history is requested before the catalogue exists.
var ErrNoExercises = errors.New("no exercises found, seed the catalogue first")

var trainingDays = map[time.Weekday]bool{
	time.Monday:    true,
	time.Wednesday: true,
	time.Friday:    true,
	time.Saturday:  true,
}

type HistoryOptions struct {
	Count  int
	PerDay int
	Today  time.Time
	Rand   *rand.Rand
}

func (o HistoryOptions) withDefaults() HistoryOptions {
	if o.Count <= 0 {
		o.Count = DefaultHistoryCount
	}
	if o.PerDay <= 0 {
		o.PerDay = DefaultHistoryPerDay
	}
	if o.Today.IsZero() {
		o.Today = time.Now()
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return o
}

// HistoryResult describes the generated span.
type HistoryResult struct {
	Created int
	From    time.Time
	To      time.Time
}

// TrainingHistory writes synthetic records walking back from Today, training
// on Mondays, Wednesdays, Fridays and Saturdays with PerDay distinct
// exercises per session. It stops after Count records or a year, whichever
// comes first.
func TrainingHistory(ctx context.Context, db *database.Database, opts HistoryOptions) (HistoryResult, error) {
	opts = opts.withDefaults()

	var exercises []entities.Exercise
	if err := db.DB.WithContext(ctx).Order("id ASC").Find(&exercises).Error; err != nil {
		return HistoryResult{}, err
	}
	if len(exercises) == 0 {
		return HistoryResult{}, ErrNoExercises
	}

	batch := GenerateHistory(exercises, opts)
	if err := records.NewRepository(db.DB).CreateBatch(ctx, batch); err != nil {
		return HistoryResult{}, err
	}

	result := HistoryResult{Created: len(batch), To: time.Time(entities.DateOf(opts.Today))}
	if len(batch) > 0 {
		result.From = time.Time(batch[len(batch)-1].ExerciseDate)
	}
	return result, nil
}

// GenerateHistory builds records without touching the database. Records are
// ordered from the most recent day backwards.
func GenerateHistory(exercises []entities.Exercise, opts HistoryOptions) []entities.ExerciseRecord {
	opts = opts.withDefaults()
	perDay := min(opts.PerDay, len(exercises))

	batch := make([]entities.ExerciseRecord, 0, opts.Count)
	for daysBack := 0; daysBack <= maxDaysBack && len(batch) < opts.Count; daysBack++ {
		day := opts.Today.AddDate(0, 0, -daysBack)
		if !trainingDays[day.Weekday()] {
			continue
		}

		for _, i := range opts.Rand.Perm(len(exercises))[:perDay] {
			batch = append(batch, entities.ExerciseRecord{
				ExerciseID:   exercises[i].ID,
				Weight:       minWeight + weightStep*opts.Rand.IntN((maxWeight-minWeight)/weightStep+1),
				Rep:          minRep + opts.Rand.IntN(maxRep-minRep+1),
				ExerciseDate: entities.DateOf(day),
			})
			if len(batch) >= opts.Count {
				break
			}
		}
	}
	return batch
}
