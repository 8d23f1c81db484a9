package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertfPassthrough(t *testing.T) {
	assert.NotPanics(t, func() {
		Assertf(true, "never shown")
	})
}

func TestAssertfPanics(t *testing.T) {
	assert.PanicsWithValue(t, "precondition violated: level 31 out of range", func() {
		Assertf(false, "level %d out of range", 31)
	})
}

func TestAbortf(t *testing.T) {
	assert.Panics(t, func() {
		Abortf("unreachable")
	})
}

func TestLog2Floor(t *testing.T) {
	cases := []struct {
		v    uint32
		want int
	}{
		{0, -1},
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{1 << 20, 20},
		{(1 << 21) - 1, 20},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Log2Floor(c.v), "v=%d", c.v)
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 2, Min(2, 5))
	assert.Equal(t, 5, Max(2, 5))
	assert.Equal(t, -1, Min(-1, 0))
}
