package content

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/solution-quest/internal/errors"
)

// Store is the caching Repository. Each dataset is decoded at most once per
// process; concurrent first loads of the same dataset share one source read.
// Failed loads are not cached and may be retried.
type Store struct {
	source Source
	cache  RowCache

	group singleflight.Group
	mu    sync.RWMutex
	memo  map[string]any
}

// Config contains configuration for the content store
type Config struct {
	Source Source
	// Cache is an optional second tier consulted before the source
	Cache RowCache
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Source == nil {
		return errors.InvalidArgument("source is required")
	}
	return nil
}

// New creates a caching content repository
func New(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Store{
		source: cfg.Source,
		cache:  cfg.Cache,
		memo:   make(map[string]any),
	}, nil
}

var _ Repository = (*Store)(nil)

// LoadEvents returns every event of a bucket
func (s *Store) LoadEvents(ctx context.Context, input *LoadEventsInput) (*LoadEventsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	dataset, err := DatasetForBucket(input.Bucket)
	if err != nil {
		return nil, err
	}

	events, err := load(ctx, s, dataset, decodeEvents)
	if err != nil {
		return nil, err
	}

	return &LoadEventsOutput{Events: events}, nil
}

// LoadEndings returns every ending
func (s *Store) LoadEndings(ctx context.Context, _ *LoadEndingsInput) (*LoadEndingsOutput, error) {
	endings, err := load(ctx, s, DatasetEndings, decodeEndings)
	if err != nil {
		return nil, err
	}

	return &LoadEndingsOutput{Endings: endings}, nil
}

// LoadCharacterOptions returns the character option table
func (s *Store) LoadCharacterOptions(
	ctx context.Context,
	_ *LoadCharacterOptionsInput,
) (*LoadCharacterOptionsOutput, error) {
	options, err := load(ctx, s, DatasetCharacterOptions, decodeOptions)
	if err != nil {
		return nil, err
	}

	return &LoadCharacterOptionsOutput{Options: options}, nil
}

// load serves a dataset from memory, or reads and decodes it once.
// Callers get their own copy of the slice.
func load[T any](ctx context.Context, s *Store, dataset string, decode func([][]string) ([]T, int)) ([]T, error) {
	if records, ok := cached[T](s, dataset); ok {
		slog.Debug("Content cache hit", "dataset", dataset)
		return slices.Clone(records), nil
	}

	v, err, _ := s.group.Do(dataset, func() (any, error) {
		if records, ok := cached[T](s, dataset); ok {
			return records, nil
		}

		slog.Debug("Content cache miss", "dataset", dataset)

		rows, err := s.fetchRows(ctx, dataset)
		if err != nil {
			return nil, err
		}

		records, dropped := decode(rows)
		if dropped > 0 {
			slog.Debug("Dropped short content rows", "dataset", dataset, "dropped", dropped)
		}

		s.mu.Lock()
		s.memo[dataset] = records
		s.mu.Unlock()

		return records, nil
	})
	if err != nil {
		return nil, err
	}

	return slices.Clone(v.([]T)), nil
}

func cached[T any](s *Store, dataset string) ([]T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.memo[dataset]
	if !ok {
		return nil, false
	}
	records, ok := v.([]T)
	return records, ok
}

// fetchRows reads the second tier first when configured. Second tier
// failures are logged and the source is used instead.
func (s *Store) fetchRows(ctx context.Context, dataset string) ([][]string, error) {
	if s.cache != nil {
		rows, ok, err := s.cache.Get(ctx, dataset)
		switch {
		case err != nil:
			slog.Warn("Content cache read failed", "dataset", dataset, "error", err)
		case ok:
			return rows, nil
		}
	}

	rows, err := s.source.Rows(ctx, dataset)
	if err != nil {
		return nil, loadFailure(err, dataset)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, dataset, rows); err != nil {
			slog.Warn("Content cache write failed", "dataset", dataset, "error", err)
		}
	}

	return rows, nil
}

// loadFailure reports a failed source read as Unavailable unless the caller
// gave up first.
func loadFailure(err error, dataset string) error {
	if errors.IsCanceled(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, "content load canceled").WithMeta("dataset", dataset)
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load content").
		WithMeta("dataset", dataset)
}
