package player_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/player"
	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/step"
)

var input = []int{5, 1, 4, 2, 3}

func TestPlay_DrainsGenerator(t *testing.T) {
	var got []sorting.Snapshot
	res, err := player.Play(context.Background(), sorting.Insertion(input), func(s sorting.Snapshot) error {
		got = append(got, s)
		return nil
	}, player.WithBase(0))
	require.NoError(t, err)

	assert.True(t, res.Completed)
	assert.Equal(t, step.Count(sorting.Insertion(input)), res.Frames)
	assert.Len(t, got, res.Frames)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got[len(got)-1].Array)
}

func TestPlay_BadSpeed(t *testing.T) {
	for _, speed := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := player.Play(context.Background(), sorting.Bubble(input), func(sorting.Snapshot) error { return nil },
			player.WithSpeed(speed))
		assert.ErrorIs(t, err, player.ErrBadSpeed)
	}
}

func TestPlay_CancelStopsBetweenFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := 0
	res, err := player.Play(ctx, sorting.Bubble(input), func(sorting.Snapshot) error {
		n++
		if n == 3 {
			cancel()
		}
		return nil
	}, player.WithBase(0))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, res.Frames)
	assert.False(t, res.Completed)
}

func TestPlay_RenderErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	res, err := player.Play(context.Background(), sorting.Bubble(input), func(sorting.Snapshot) error {
		return boom
	}, player.WithBase(0))
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, res.Frames)
}

func TestPlay_MaxFrames(t *testing.T) {
	res, err := player.Play(context.Background(), sorting.Bubble(input), func(sorting.Snapshot) error { return nil },
		player.WithBase(0), player.WithMaxFrames(4))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Frames)
	assert.False(t, res.Completed)
}

func TestPlay_PacesFrames(t *testing.T) {
	res, err := player.Play(context.Background(), step.Take(sorting.Bubble(input), 4), func(sorting.Snapshot) error { return nil },
		player.WithBase(20*time.Millisecond), player.WithSpeed(2))
	require.NoError(t, err)
	require.Equal(t, 4, res.Frames)
	// first frame is immediate, the next three wait 10ms each
	assert.GreaterOrEqual(t, res.Elapsed, 25*time.Millisecond)
}

func TestPlay_DeadlineInterruptsWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	res, err := player.Play(ctx, sorting.Bubble(input), func(sorting.Snapshot) error { return nil },
		player.WithBase(time.Second))
	assert.Error(t, err)
	assert.Equal(t, 1, res.Frames)
}

func TestOptions_Interval(t *testing.T) {
	o := player.DefaultOptions()
	assert.Equal(t, player.SortDelay, o.Interval())
	o.Speed = 4
	assert.Equal(t, 125*time.Millisecond, o.Interval())
}

func TestMetrics_RecordFramesAndRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := player.NewMetrics(reg)

	res, err := player.Play(context.Background(), sorting.Bubble([]int{3, 1, 2}), func(sorting.Snapshot) error { return nil },
		player.WithBase(0), player.WithMetrics(m), player.WithLabels("sort", "bubble-sort"))
	require.NoError(t, err)

	assert.Equal(t, float64(res.Frames), testutil.ToFloat64(m.Frames.WithLabelValues("sort", "bubble-sort")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("sort", "bubble-sort", player.OutcomeCompleted)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
}

func TestMetrics_MaxFramesIsTruncated(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := player.NewMetrics(reg)

	res, err := player.Play(context.Background(), sorting.Bubble(input), func(sorting.Snapshot) error { return nil },
		player.WithBase(0), player.WithMaxFrames(2), player.WithMetrics(m), player.WithLabels("sort", "bubble-sort"))
	require.NoError(t, err)
	require.False(t, res.Completed)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("sort", "bubble-sort", player.OutcomeTruncated)))
	assert.Zero(t, testutil.ToFloat64(m.Runs.WithLabelValues("sort", "bubble-sort", player.OutcomeCompleted)))
}
