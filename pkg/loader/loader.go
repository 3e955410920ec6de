package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/censussample/pkg/broker"
	"github.com/dmitrymomot/censussample/pkg/logger"
	"github.com/dmitrymomot/censussample/pkg/runid"
	"github.com/dmitrymomot/censussample/pkg/validation"
)

// DefaultProgressEvery is the number of units between progress signals.
const DefaultProgressEvery = 5000

// KeyPrefix prefixes the cache key of every sample unit.
const KeyPrefix = "sample_unit:"

// Publisher sends a sample unit to the case processing queue.
type Publisher interface {
	Publish(ctx context.Context, payload broker.SampleUnitPayload) error
}

// Cache stores the JSON document of a sample unit.
type Cache interface {
	Set(ctx context.Context, key string, value []byte) error
}

// Target identifies the collection the sample is loaded into.
type Target struct {
	CollectionExerciseID   string
	ActionPlanID           string
	CollectionInstrumentID string
}

func (t Target) validate() error {
	if t.CollectionExerciseID == "" || t.ActionPlanID == "" || t.CollectionInstrumentID == "" {
		return ErrIncompleteTarget
	}
	return nil
}

// SampleUnit is the cached form of one loaded row.
type SampleUnit struct {
	ID         string            `json:"id"`
	Attributes map[string]string `json:"attributes"`
}

// Option configures a Loader.
type Option func(*Loader)

func WithProgressEvery(n int) Option {
	return func(l *Loader) { l.every = n }
}

// WithProgress is called with the number of units loaded so far.
func WithProgress(fn func(loaded int)) Option {
	return func(l *Loader) { l.progress = fn }
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithIDGenerator replaces uuid.New for sample unit ids.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(l *Loader) {
		if fn != nil {
			l.newID = fn
		}
	}
}

// Loader moves the rows of a validated sample into the queue and the
// cache.
type Loader struct {
	publisher Publisher
	cache     Cache
	every     int
	progress  func(int)
	newID     func() uuid.UUID
	log       *slog.Logger
}

func New(publisher Publisher, cache Cache, opts ...Option) *Loader {
	l := &Loader{
		publisher: publisher,
		cache:     cache,
		every:     DefaultProgressEvery,
		newID:     uuid.New,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With(logger.Component("loader"))
	return l
}

// Load gives every row of src a new sample unit id, publishes it and
// caches it under KeyPrefix+id. It stops at the first publish or cache
// error and returns the number of units loaded before it. The caller is
// responsible for flushing a buffered cache afterwards.
func (l *Loader) Load(ctx context.Context, src validation.Source, target Target) (int, error) {
	if err := target.validate(); err != nil {
		return 0, err
	}

	ctx, _ = runid.Ensure(ctx)
	start := time.Now()
	l.log.InfoContext(ctx, "loading sample units", slog.String("collection_exercise_id", target.CollectionExerciseID))

	loaded := 0
	for {
		if err := ctx.Err(); err != nil {
			return loaded, err
		}
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return loaded, fmt.Errorf("%w: %v", ErrRead, err)
		}

		unit := SampleUnit{ID: l.newID().String(), Attributes: row.Map()}
		if err := l.publisher.Publish(ctx, broker.SampleUnitPayload{
			SampleUnitID:           unit.ID,
			CollectionExerciseID:   target.CollectionExerciseID,
			ActionPlanID:           target.ActionPlanID,
			CollectionInstrumentID: target.CollectionInstrumentID,
			Attributes:             unit.Attributes,
		}); err != nil {
			return loaded, err
		}

		doc, err := json.Marshal(unit)
		if err != nil {
			return loaded, errors.Join(ErrEncode, err)
		}
		if err := l.cache.Set(ctx, KeyPrefix+unit.ID, doc); err != nil {
			return loaded, errors.Join(ErrCache, err)
		}

		loaded++
		if l.every > 0 && loaded%l.every == 0 {
			l.log.InfoContext(ctx, "sample units loaded", logger.Rows(loaded))
			if l.progress != nil {
				l.progress(loaded)
			}
		}
	}

	l.log.InfoContext(ctx, "sample load finished", logger.Rows(loaded), logger.Duration(time.Since(start)))
	return loaded, nil
}
