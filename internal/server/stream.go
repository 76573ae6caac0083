package server

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"strconv"
	"time"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/internal/render"
	"github.com/katalvlaran/stepviz/player"
)

// stream plays seq into w as NDJSON. Parameter errors are reported before
// the first byte; once streaming has started failures are only logged.
func stream[S any](s *Server, w http.ResponseWriter, r *http.Request, family catalog.Family, algo string, seq iter.Seq[S], base time.Duration) {
	speed, err := s.speed(r)
	if err != nil {
		fail(w, http.StatusBadRequest, err)
		return
	}
	if !s.paced {
		base = 0
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	write := render.NDJSON[S](w)
	flusher, _ := w.(http.Flusher)
	frame := func(v S) error {
		if err := write(v); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	}

	res, err := player.Play(r.Context(), seq, frame,
		player.WithSpeed(speed),
		player.WithBase(base),
		player.WithLabels(string(family), algo),
		player.WithLogger(s.logger),
		player.WithMetrics(s.metrics),
	)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		s.logger.Debug("client went away", "algorithm", algo, "frames", res.Frames)
	default:
		s.logger.Warn("stream aborted", "algorithm", algo, "frames", res.Frames, "error", err)
	}
}

// speed reads the "speed" query parameter, falling back to the configured
// speed.
func (s *Server) speed(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get("speed")
	if raw == "" {
		return s.cfg.Speed, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: speed %q", ErrBadRequest, raw)
	}
	if !player.ValidSpeed(v) {
		return 0, fmt.Errorf("%w: %v", player.ErrBadSpeed, v)
	}

	return v, nil
}
