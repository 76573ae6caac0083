// Package player drives a step generator at a fixed frame rate.
//
// Play pulls one snapshot at a time, hands it to a render callback and then
// waits base/speed before pulling the next, so a generator only computes a
// frame when the viewer is ready for it. Cancelling the context stops the
// playback between frames and abandons the generator.
//
// The interval is enforced with a token-bucket limiter holding one token:
// the first frame renders immediately and slow renders are not followed by
// catch-up bursts.
package player

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/stepviz/internal/logging"
	"github.com/katalvlaran/stepviz/step"
)

// ErrBadSpeed is returned when the speed multiplier is not a positive finite
// number.
var ErrBadSpeed = errors.New("player: speed must be positive")

// ValidSpeed reports whether v can be used as a speed multiplier. NaN and
// infinities are rejected.
func ValidSpeed(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Base frame intervals per generator family at speed 1.
const (
	SortDelay     = 500 * time.Millisecond
	SearchDelay   = 500 * time.Millisecond
	PathfindDelay = 100 * time.Millisecond
	GraphDelay    = 1000 * time.Millisecond
)

// Option configures Play via functional arguments.
type Option func(*Options)

// Options holds the playback parameters.
type Options struct {
	// Speed divides Base; 2 plays twice as fast. Must be > 0.
	Speed float64
	// Base is the frame interval at speed 1. Zero disables pacing.
	Base time.Duration
	// MaxFrames stops playback after this many frames. Zero means no limit.
	MaxFrames int
	// Family and Algorithm label logs and metrics.
	Family, Algorithm string
	Logger            *slog.Logger
	Metrics           *Metrics
}

// DefaultOptions returns Options with Speed=1, Base=SortDelay, no frame
// limit, a no-op logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Speed:  1,
		Base:   SortDelay,
		Logger: logging.NewNop(),
	}
}

// WithSpeed sets the speed multiplier.
func WithSpeed(speed float64) Option {
	return func(o *Options) { o.Speed = speed }
}

// WithBase sets the frame interval at speed 1.
func WithBase(d time.Duration) Option {
	return func(o *Options) { o.Base = d }
}

// WithMaxFrames caps the number of rendered frames.
func WithMaxFrames(n int) Option {
	return func(o *Options) { o.MaxFrames = n }
}

// WithLabels names the generator for logs and metrics.
func WithLabels(family, algorithm string) Option {
	return func(o *Options) {
		o.Family, o.Algorithm = family, algorithm
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records frames and runs into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// Interval returns the pause between frames for o.
func (o Options) Interval() time.Duration {
	return time.Duration(float64(o.Base) / o.Speed)
}

// Result summarises a playback.
type Result struct {
	Frames    int
	Elapsed   time.Duration
	Completed bool // the generator was drained
}

// Play renders every snapshot of seq in order, pacing frames by
// Options.Interval. It returns ctx.Err() if the context is cancelled and
// the wrapped render error if render fails; Result is valid in both cases.
func Play[S any](ctx context.Context, seq iter.Seq[S], render func(S) error, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !ValidSpeed(cfg.Speed) {
		return Result{}, fmt.Errorf("%w: got %v", ErrBadSpeed, cfg.Speed)
	}

	var limiter *rate.Limiter
	if interval := cfg.Interval(); interval > 0 {
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	log := cfg.Logger.With("family", cfg.Family, "algorithm", cfg.Algorithm)
	log.Debug("playback started", "interval", cfg.Interval())

	cur := step.NewCursor(seq)
	defer cur.Stop()

	start := time.Now()
	var res Result
	finish := func(outcome string, err error) (Result, error) {
		res.Elapsed = time.Since(start)
		cfg.Metrics.run(cfg.Family, cfg.Algorithm, outcome, res.Elapsed)
		if err != nil {
			log.Info("playback stopped", "frames", res.Frames, "outcome", outcome, "error", err)
		} else {
			log.Debug("playback finished", "frames", res.Frames, "elapsed", res.Elapsed)
		}

		return res, err
	}

	for cfg.MaxFrames == 0 || res.Frames < cfg.MaxFrames {
		if err := ctx.Err(); err != nil {
			return finish(OutcomeCanceled, err)
		}
		s, ok := cur.Next()
		if !ok {
			res.Completed = true
			return finish(OutcomeCompleted, nil)
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					err = ctxErr
				}
				return finish(OutcomeCanceled, err)
			}
		}
		if err := render(s); err != nil {
			return finish(OutcomeFailed, fmt.Errorf("player: render frame %d: %w", res.Frames, err))
		}
		res.Frames++
		cfg.Metrics.frame(cfg.Family, cfg.Algorithm)
	}

	return finish(OutcomeTruncated, nil)
}
