package prism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/spacetree/line"
	"github.com/notargets/spacetree/simplex"
)

func enumerate(level int) []Elem {
	n := uint64(1) << (3 * level)
	out := make([]Elem, n)
	for id := uint64(0); id < n; id++ {
		InitLinearID(&out[id], id, level)
	}
	return out
}

func TestRoot(t *testing.T) {
	var p Elem
	Root(&p)
	assert.Equal(t, 0, Level(&p))
	assert.Equal(t, int8(0), Type(&p))
	assert.True(t, InsideRoot(&p))
}

func TestParentChildRoundTrip(t *testing.T) {
	for lvl := 0; lvl <= 2; lvl++ {
		for _, p := range enumerate(lvl) {
			for ci := 0; ci < Children; ci++ {
				var c, back Elem
				Child(&p, ci, &c)
				require.Equal(t, ci, ChildID(&c))
				require.Equal(t, lvl+1, Level(&c))
				require.True(t, InsideRoot(&c))
				Parent(&c, &back)
				require.Equal(t, p, back)
				require.Equal(t, 8*LinearID(&p, lvl)+uint64(ci), LinearID(&c, lvl+1))
			}
		}
	}
}

func TestChildFactorSplit(t *testing.T) {
	var p, c Elem
	Root(&p)
	for ci := 0; ci < Children; ci++ {
		Child(&p, ci, &c)
		var wantTri simplex.Elem
		var wantLine line.Elem
		simplex.Tri.Child(&p.Tri, ci%4, &wantTri)
		line.Child(&p.Line, ci/4, &wantLine)
		require.Equal(t, wantTri, c.Tri, "child %d", ci)
		require.Equal(t, wantLine, c.Line, "child %d", ci)
	}
}

func TestLinearIDRoundTrip(t *testing.T) {
	for lvl := 0; lvl <= 3; lvl++ {
		var p Elem
		for id := uint64(0); id < uint64(1)<<(3*lvl); id++ {
			InitLinearID(&p, id, lvl)
			require.Equal(t, id, LinearID(&p, lvl))
			require.Equal(t, int(id&7), ChildID(&p))
			require.True(t, InsideRoot(&p))
		}
	}
}

func TestSuccessorIsSFCStep(t *testing.T) {
	for lvl := 1; lvl <= 3; lvl++ {
		elems := enumerate(lvl)
		for i := 0; i+1 < len(elems); i++ {
			var s Elem
			Successor(&elems[i], &s, lvl)
			require.Equal(t, elems[i+1], s, "successor of id %d at level %d", i, lvl)
		}
	}
}

func TestSuccessorAliasing(t *testing.T) {
	var p, want Elem
	InitLinearID(&p, 0o153, 2)
	Successor(&p, &want, 2)
	Successor(&p, &p, 2)
	assert.Equal(t, want, p)
}

// Scenario: the prism with triangle (level 2, type 1, x=h) over line 3h,
// h = RootLen/4. Its factor child ids are (tri 2, line 1); the successor
// advances the triangle within the upper line slab.
func TestSuccessorScenario(t *testing.T) {
	const h = RootLen / 4
	p := Elem{
		Tri:  simplex.Elem{X: h, Y: 0, Level: 2, Type: 1},
		Line: line.Elem{X: 3 * h, Level: 2},
	}
	require.Equal(t, 2, simplex.Tri.ChildID(&p.Tri))
	require.Equal(t, 1, line.ChildID(&p.Line))
	require.Equal(t, uint64(38), LinearID(&p, 2))

	var s Elem
	Successor(&p, &s, 2)
	assert.Equal(t, simplex.Elem{X: h, Y: h, Level: 2, Type: 0}, s.Tri)
	assert.Equal(t, line.Elem{X: 3 * h, Level: 2}, s.Line)
	assert.Equal(t, uint64(39), LinearID(&s, 2))
}

func TestInitLinearIDScenario(t *testing.T) {
	var p Elem
	InitLinearID(&p, 0o347, 3)
	assert.Equal(t, simplex.Elem{X: 1310720, Y: 1310720, Level: 3, Type: 0}, p.Tri)
	assert.Equal(t, line.Elem{X: 786432, Level: 3}, p.Line)
}

func TestDescendants(t *testing.T) {
	for lvl := 0; lvl <= 2; lvl++ {
		for _, p := range enumerate(lvl) {
			var fd, ld Elem
			FirstDescendant(&p, &fd, MaxLevel)
			LastDescendant(&p, &ld, MaxLevel)
			lo := LinearID(&fd, MaxLevel)
			hi := LinearID(&ld, MaxLevel)
			span := uint64(1) << (3 * (MaxLevel - lvl))
			require.Equal(t, LinearID(&p, MaxLevel), lo)
			require.Equal(t, lo+span-1, hi)
		}
	}
}

func TestIsFamily(t *testing.T) {
	var p Elem
	InitLinearID(&p, 5, 1)
	children := make([]Elem, Children)
	pv := make([]*Elem, Children)
	for i := range children {
		Child(&p, i, &children[i])
		pv[i] = &children[i]
	}
	require.True(t, IsFamily(pv))

	pv[3], pv[4] = pv[4], pv[3]
	require.False(t, IsFamily(pv))
	pv[3], pv[4] = pv[4], pv[3]

	saved := children[6]
	children[6].Line.X ^= 1 << 10
	require.False(t, IsFamily(pv))
	children[6] = saved
	require.True(t, IsFamily(pv))
}

func TestVertexCoords(t *testing.T) {
	var p Elem
	Root(&p)
	h := Coord(RootLen)
	want := [][3]Coord{
		{0, 0, 0}, {h, 0, 0}, {h, h, 0},
		{0, 0, h}, {h, 0, h}, {h, h, h},
	}
	for v, w := range want {
		assert.Equal(t, w, VertexCoords(&p, v), "vertex %d", v)
	}
}

func TestCompare(t *testing.T) {
	var a, b Elem
	InitLinearID(&a, 11, 2)
	InitLinearID(&b, 12, 2)
	assert.Negative(t, Compare(&a, &b))
	assert.Positive(t, Compare(&b, &a))

	var c Elem
	Child(&a, 0, &c)
	assert.Zero(t, Compare(&a, &c))
}

func TestPreconditions(t *testing.T) {
	var p Elem
	Root(&p)
	assert.Panics(t, func() { Parent(&p, &p) })
	assert.Panics(t, func() { Child(&p, Children, &p) })
	assert.Panics(t, func() { VertexCoords(&p, Corners) })
}
