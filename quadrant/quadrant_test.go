package quadrant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kernels() []*Kernel {
	return []*Kernel{Quad, Hex}
}

func TestRoot(t *testing.T) {
	for _, k := range kernels() {
		var r Elem
		k.Root(&r)
		assert.Equal(t, int8(0), r.Level)
		assert.True(t, k.InsideRoot(&r))
		assert.Equal(t, int8(k.Dim), r.Surround.TDim)
	}
}

func TestParentChildRoundTrip(t *testing.T) {
	for _, k := range kernels() {
		t.Run(map[int]string{2: "quad", 3: "hex"}[k.Dim], func(t *testing.T) {
			var e Elem
			for lvl := 0; lvl < 4; lvl++ {
				n := uint64(1) << (k.Dim * lvl)
				for id := uint64(0); id < n; id++ {
					k.InitLinearID(&e, id, lvl)
					for ci := 0; ci < k.Children(); ci++ {
						var c, p Elem
						k.Child(&e, ci, &c)
						require.Equal(t, ci, k.ChildID(&c))
						k.Parent(&c, &p)
						require.Equal(t, e, p)
						require.Equal(t, uint64(k.Children())*id+uint64(ci),
							k.LinearID(&c, lvl+1))
					}
				}
			}
		})
	}
}

func TestLinearIDRoundTrip(t *testing.T) {
	for _, k := range kernels() {
		var e, back Elem
		for lvl := 0; lvl <= 3; lvl++ {
			for id := uint64(0); id < uint64(1)<<(k.Dim*lvl); id++ {
				k.InitLinearID(&e, id, lvl)
				require.Equal(t, id, k.LinearID(&e, lvl))
				k.InitLinearID(&back, id, lvl)
				require.Equal(t, e, back)
			}
		}
	}
}

// The Morton digit carries x in its low bit: an anchor with x bits 10100
// and y bits 01000 at level 5 interleaves to 0b0110010000.
func TestMortonInterleaving(t *testing.T) {
	var e Elem
	e.X = 0b10100 << (MaxLevel - 5)
	e.Y = 0b01000 << (MaxLevel - 5)
	e.Level = 5
	assert.Equal(t, uint64(0b0110010000), Quad.LinearID(&e, 5))
}

func TestSuccessor(t *testing.T) {
	for _, k := range kernels() {
		var e, s Elem
		lvl := 3
		n := uint64(1) << (k.Dim * lvl)
		for id := uint64(0); id < n-1; id++ {
			k.InitLinearID(&e, id, lvl)
			k.Successor(&e, &s, lvl)
			require.Equal(t, id+1, k.LinearID(&s, lvl))
		}
	}
}

func TestDescendantInterval(t *testing.T) {
	for _, k := range kernels() {
		var e, fd, ld Elem
		k.InitLinearID(&e, 5, 2)
		k.FirstDescendant(&e, &fd)
		k.LastDescendant(&e, &ld)
		require.Equal(t, int8(MaxLevel), fd.Level)
		// 64-bit ids bound the deepest addressable uniform level.
		idLvl := 63 / k.Dim
		if idLvl > MaxLevel {
			idLvl = MaxLevel
		}
		lo := k.LinearID(&fd, idLvl)
		hi := k.LinearID(&ld, idLvl)
		span := uint64(1) << (k.Dim * (idLvl - 2))
		require.Equal(t, k.LinearID(&e, idLvl), lo)
		require.Equal(t, lo+span-1, hi)
		require.True(t, k.IsAncestor(&e, &fd))
		require.True(t, k.IsAncestor(&e, &ld))
	}
}

func TestIsFamily(t *testing.T) {
	for _, k := range kernels() {
		var e Elem
		k.InitLinearID(&e, 3, 2)
		children := make([]Elem, k.Children())
		pv := make([]*Elem, k.Children())
		for i := range children {
			k.Child(&e, i, &children[i])
			pv[i] = &children[i]
		}
		assert.True(t, k.IsFamily(pv))

		// Swapping two members breaks the Morton order.
		pv[0], pv[1] = pv[1], pv[0]
		assert.False(t, k.IsFamily(pv))
		pv[0], pv[1] = pv[1], pv[0]

		// A corrupted level breaks the family.
		children[2].Level++
		assert.False(t, k.IsFamily(pv))
	}
}

func TestNCA(t *testing.T) {
	for _, k := range kernels() {
		var t1, t2, r, c Elem
		k.InitLinearID(&t1, 0x10, 4)
		k.InitLinearID(&t2, 0x17, 4)
		k.NearestCommonAncestor(&t1, &t2, &r)
		require.True(t, k.IsAncestor(&r, &t1))
		require.True(t, k.IsAncestor(&r, &t2))
		// No child of the NCA contains both.
		for ci := 0; ci < k.Children(); ci++ {
			k.Child(&r, ci, &c)
			require.False(t, k.IsAncestor(&c, &t1) && k.IsAncestor(&c, &t2))
		}
		// For the quad, ids 0x10..0x17 meet at their level-2 ancestor.
		if k.Dim == 2 {
			require.Equal(t, int8(2), r.Level)
			require.Equal(t, uint64(1), k.LinearID(&r, 2))
		}
	}
}

func TestFaceNeighborInvolution(t *testing.T) {
	for _, k := range kernels() {
		var e, n, back Elem
		k.InitLinearID(&e, uint64(1)<<(k.Dim*3-1), 3)
		for f := 0; f < 2*k.Dim; f++ {
			nf := k.FaceNeighbor(&e, f, &n)
			if !k.InsideRoot(&n) {
				continue
			}
			bf := k.FaceNeighbor(&n, nf, &back)
			require.Equal(t, f, bf)
			require.Equal(t, e.X, back.X)
			require.Equal(t, e.Y, back.Y)
			require.Equal(t, e.Z, back.Z)
		}
	}
}

func TestCompareAcrossLevels(t *testing.T) {
	for _, k := range kernels() {
		var e, c0, cLast Elem
		k.InitLinearID(&e, 2, 2)
		k.Child(&e, 0, &c0)
		k.Child(&e, k.Children()-1, &cLast)
		// The first child shares the parent's SFC position.
		assert.Zero(t, k.Compare(&e, &c0))
		assert.Negative(t, k.Compare(&e, &cLast))
		assert.Positive(t, k.Compare(&cLast, &e))
	}
}

func TestSurroundPropagation(t *testing.T) {
	var e, c Elem
	Quad.Root(&e)
	e.Surround = Surround{TDim: 3, TNormal: 1, TCoord: 42}
	Quad.Child(&e, 2, &c)
	assert.Equal(t, e.Surround, c.Surround)
	Quad.Parent(&c, &c)
	assert.Equal(t, e.Surround, c.Surround)
}

func TestVertexCoords(t *testing.T) {
	var e Elem
	Hex.InitLinearID(&e, 0, 1)
	h := Len(1)
	assert.Equal(t, [3]Coord{0, 0, 0}, Hex.VertexCoords(&e, 0))
	assert.Equal(t, [3]Coord{h, 0, 0}, Hex.VertexCoords(&e, 1))
	assert.Equal(t, [3]Coord{h, h, h}, Hex.VertexCoords(&e, 7))
}
