// Package race runs several sort generators over the same input at once
// and tallies the work each one did, the way a side-by-side comparison view
// would.
//
// Every entry owns its generator and therefore its own copy of the input,
// so entries share nothing while they run. Results come back in the order
// the algorithms were requested; Ranked orders them by effort.
package race

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepviz/internal/logging"
	"github.com/katalvlaran/stepviz/sorting"
)

// ErrNoAlgorithms is returned when Run is given an empty algorithm list.
var ErrNoAlgorithms = errors.New("race: no algorithms given")

// Entry is the outcome of one racer.
type Entry struct {
	ID          uuid.UUID         `json:"id"`
	Algorithm   sorting.Algorithm `json:"algorithm"`
	Final       sorting.Snapshot  `json:"final"`
	Frames      int               `json:"frames"`
	Comparisons int               `json:"comparisons"`
	Swaps       int               `json:"swaps"`
	Elapsed     time.Duration     `json:"elapsed"`
	Completed   bool              `json:"completed"`
}

// Observer receives every frame of every racer. lane is the racer's index
// in the requested list. It is called from several goroutines at once and
// must be safe for concurrent use. A non-nil error aborts the race.
type Observer func(lane int, s sorting.Snapshot) error

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds race parameters.
type Options struct {
	Logger   *slog.Logger
	Observer Observer
	// Limit caps concurrently running racers. Zero or less means no cap.
	Limit int
}

// DefaultOptions returns Options with a no-op logger, no observer and no limit.
func DefaultOptions() Options {
	return Options{Logger: logging.NewNop()}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver streams frames to fn while the race runs.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithLimit caps the number of racers running at the same time.
func WithLimit(n int) Option {
	return func(o *Options) { o.Limit = n }
}

// Run drains one generator per algorithm concurrently over values.
// Unknown names fail before anything starts. If ctx is cancelled or an
// observer fails, Run returns the error together with the partial entries.
func Run(ctx context.Context, values []int, algos []sorting.Algorithm, opts ...Option) ([]Entry, error) {
	if len(algos) == 0 {
		return nil, ErrNoAlgorithms
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) resolve every generator up front
	entries := make([]Entry, len(algos))
	for i, name := range algos {
		if _, err := sorting.Generate(name, nil); err != nil {
			return nil, fmt.Errorf("race: lane %d: %w", i, err)
		}
		entries[i] = Entry{ID: uuid.New(), Algorithm: name}
	}

	// 2) one goroutine per lane, each writing only its own slot
	g, gCtx := errgroup.WithContext(ctx)
	if cfg.Limit > 0 {
		g.SetLimit(cfg.Limit)
	}
	for i := range entries {
		g.Go(func() error {
			return runLane(gCtx, i, values, &entries[i], cfg)
		})
	}
	err := g.Wait()
	if err != nil {
		cfg.Logger.Warn("race aborted", "lanes", len(entries), "error", err)
	}

	return entries, err
}

func runLane(ctx context.Context, lane int, values []int, e *Entry, cfg Options) error {
	seq, err := sorting.Generate(e.Algorithm, values)
	if err != nil {
		return err
	}
	log := cfg.Logger.With("lane", lane, "algorithm", e.Algorithm, "id", e.ID)

	start := time.Now()
	defer func() { e.Elapsed = time.Since(start) }()
	for s := range seq {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.Frames++
		if s.IsComparison() {
			e.Comparisons++
		}
		if s.IsSwap() {
			e.Swaps++
		}
		e.Final = s
		if cfg.Observer != nil {
			if err := cfg.Observer(lane, s); err != nil {
				return fmt.Errorf("race: observer on lane %d: %w", lane, err)
			}
		}
	}
	e.Completed = true
	log.Debug("lane finished", "frames", e.Frames, "comparisons", e.Comparisons, "swaps", e.Swaps)

	return nil
}

// Ranked returns a copy of entries ordered by comparisons, then swaps,
// then frames. Unfinished entries sort last. Ties keep request order.
func Ranked(entries []Entry) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return -1
			}
			return 1
		}

		return cmp.Or(
			cmp.Compare(a.Comparisons, b.Comparisons),
			cmp.Compare(a.Swaps, b.Swaps),
			cmp.Compare(a.Frames, b.Frames),
		)
	})

	return out
}
