package line

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	var l Elem
	Root(&l)
	assert.Equal(t, Coord(0), l.X)
	assert.Equal(t, int8(0), l.Level)
	assert.True(t, InsideRoot(&l))
}

func TestParentChildRoundTrip(t *testing.T) {
	var l Elem
	for lvl := 0; lvl <= 6; lvl++ {
		n := uint64(1) << lvl
		for id := uint64(0); id < n; id++ {
			InitLinearID(&l, id, lvl)
			for childid := 0; childid < Children; childid++ {
				var c, p Elem
				Child(&l, childid, &c)
				require.Equal(t, childid, ChildID(&c))
				Parent(&c, &p)
				require.Equal(t, l, p)
				require.Equal(t, 2*id+uint64(childid), LinearID(&c, lvl+1))
			}
		}
	}
}

func TestLinearIDRoundTrip(t *testing.T) {
	var l, back Elem
	for lvl := 0; lvl <= 8; lvl++ {
		for id := uint64(0); id < uint64(1)<<lvl; id++ {
			InitLinearID(&l, id, lvl)
			require.Equal(t, id, LinearID(&l, lvl))
			InitLinearID(&back, LinearID(&l, lvl), lvl)
			require.Equal(t, l, back)
		}
	}
}

func TestSuccessor(t *testing.T) {
	var l, s Elem
	for lvl := 1; lvl <= 6; lvl++ {
		n := uint64(1) << lvl
		for id := uint64(0); id < n-1; id++ {
			InitLinearID(&l, id, lvl)
			Successor(&l, &s, lvl)
			require.Equal(t, id+1, LinearID(&s, lvl))
		}
	}
}

func TestDescendants(t *testing.T) {
	var l, fd, ld Elem
	InitLinearID(&l, 3, 3)
	FirstDescendant(&l, &fd, MaxLevel)
	LastDescendant(&l, &ld, MaxLevel)
	assert.Equal(t, l.X, fd.X)
	assert.Equal(t, l.X+Len(3)-1, ld.X)
	assert.Equal(t, LinearID(&l, MaxLevel), LinearID(&fd, MaxLevel))
	assert.Equal(t, LinearID(&l, MaxLevel)+uint64(Len(3))-1, LinearID(&ld, MaxLevel))
}

func TestVertexCoords(t *testing.T) {
	var l Elem
	InitLinearID(&l, 5, 4)
	assert.Equal(t, l.X, VertexCoord(&l, 0))
	assert.Equal(t, l.X+Len(4), VertexCoord(&l, 1))
}

func TestCompare(t *testing.T) {
	var a, b Elem
	InitLinearID(&a, 2, 3)
	InitLinearID(&b, 3, 3)
	assert.Negative(t, Compare(&a, &b))
	assert.Positive(t, Compare(&b, &a))

	// An element equals its own first descendant's position.
	var fd Elem
	FirstDescendant(&a, &fd, 10)
	assert.Zero(t, Compare(&a, &fd))
}

func TestPreconditions(t *testing.T) {
	var l Elem
	Root(&l)
	assert.Panics(t, func() { Parent(&l, &l) })
	assert.Panics(t, func() { Child(&l, 2, &l) })
}
