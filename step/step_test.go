package step_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/step"
)

// counter yields 1..n and records how far it actually ran.
func counter(n int, ran *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i <= n; i++ {
			*ran = i
			if !yield(i) {
				return
			}
		}
	}
}

func TestCursor_PullsInOrder(t *testing.T) {
	var ran int
	c := step.NewCursor(counter(3, &ran))

	for want := 1; want <= 3; want++ {
		got, ok := c.Next()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := c.Next()
	assert.False(t, ok, "generator must be exhausted")
	assert.True(t, c.Done())
	assert.Equal(t, 3, c.Steps())

	last, ok := c.Last()
	assert.True(t, ok)
	assert.Equal(t, 3, last)
}

func TestCursor_StopAbandonsGenerator(t *testing.T) {
	var ran int
	c := step.NewCursor(counter(100, &ran))
	_, _ = c.Next()
	_, _ = c.Next()
	c.Stop()
	c.Stop() // idempotent

	_, ok := c.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, ran, "no work past the second snapshot")
}

func TestCursor_EmptyGenerator(t *testing.T) {
	c := step.NewCursor(func(func(int) bool) {})
	_, ok := c.Next()
	assert.False(t, ok)
	_, ok = c.Last()
	assert.False(t, ok)
}

func TestLastCountTake(t *testing.T) {
	var ran int
	last, ok := step.Last(counter(4, &ran))
	assert.True(t, ok)
	assert.Equal(t, 4, last)

	assert.Equal(t, 5, step.Count(counter(5, &ran)))

	ran = 0
	assert.Equal(t, 2, step.Count(step.Take(counter(10, &ran), 2)))
	assert.Equal(t, 2, ran, "Take must stop the underlying generator")
	assert.Equal(t, 0, step.Count(step.Take(counter(10, &ran), 0)))
}
