// Package simplex implements the Bey-refined simplex kernel: triangles in
// 2D and tetrahedra in 3D share one code path selected by the kernel's
// dimension. An element is a constant-size bit record (anchor, level,
// type); every operation is a pure function into caller storage and runs
// in O(level) with no allocation.
package simplex

import "github.com/notargets/spacetree/utils"

// MaxLevel is the deepest refinement level of a simplex.
const MaxLevel = 21

// RootLen is the side length of the root cube.
const RootLen = 1 << MaxLevel

// Coord is an integer lattice coordinate.
type Coord = int32

// Elem is one simplex of the refinement tree: the anchor of the minimal
// corner of its enclosing cube, its level, and the Kuhn type. The low
// MaxLevel-Level bits of each coordinate are zero. Z is unused in 2D.
type Elem struct {
	X, Y, Z Coord
	Level   int8
	Type    int8
}

// Kernel is the simplex element algebra for one dimensionality. Tri and
// Tet are its two instances; the connectivity tables are read-only.
type Kernel struct {
	Dim      int
	NumTypes int

	cidTypeToParentType  [][]int8
	typeOfChild          [][]int8
	indexToBey           [][]int8
	beyIDToVertex        []int8
	typeCidToIloc        [][]int8
	parentTypeIlocToType [][]int8
	parentTypeIlocToCid  [][]int8
}

// Tri is the 2D kernel, Tet the 3D kernel.
var (
	Tri = &Kernel{
		Dim:                  2,
		NumTypes:             2,
		cidTypeToParentType:  triCidTypeToParentType,
		typeOfChild:          triTypeOfChild,
		indexToBey:           triIndexToBey,
		beyIDToVertex:        triBeyIDToVertex,
		typeCidToIloc:        triTypeCidToIloc,
		parentTypeIlocToType: triParentTypeIlocToType,
		parentTypeIlocToCid:  triParentTypeIlocToCid,
	}
	Tet = &Kernel{
		Dim:                  3,
		NumTypes:             6,
		cidTypeToParentType:  tetCidTypeToParentType,
		typeOfChild:          tetTypeOfChild,
		indexToBey:           tetIndexToBey,
		beyIDToVertex:        tetBeyIDToVertex,
		typeCidToIloc:        tetTypeCidToIloc,
		parentTypeIlocToType: tetParentTypeIlocToType,
		parentTypeIlocToCid:  tetParentTypeIlocToCid,
	}
)

// Children returns the number of children of an element.
func (k *Kernel) Children() int {
	return 1 << k.Dim
}

// Corners returns the number of vertices of an element.
func (k *Kernel) Corners() int {
	return k.Dim + 1
}

// Faces returns the number of faces of an element.
func (k *Kernel) Faces() int {
	return k.Dim + 1
}

// Len returns the cube side length at a level.
func Len(level int8) Coord {
	return 1 << (MaxLevel - level)
}

// Root initializes t as the level-0 type-0 simplex.
func (k *Kernel) Root(t *Elem) {
	*t = Elem{}
}

// Copy copies src into dst.
func (k *Kernel) Copy(src, dst *Elem) {
	*dst = *src
}

// Level returns the refinement level of t.
func (k *Kernel) Level(t *Elem) int {
	return int(t.Level)
}

// cubeID returns the 2- or 3-bit index of the subcube t's ancestor of the
// given level occupies inside its parent cube, 0 at level 0.
func (k *Kernel) cubeID(t *Elem, level int8) int8 {
	if level == 0 {
		return 0
	}
	h := Len(level)
	var cid int8
	if t.X&h != 0 {
		cid |= 1
	}
	if t.Y&h != 0 {
		cid |= 2
	}
	if k.Dim == 3 && t.Z&h != 0 {
		cid |= 4
	}
	return cid
}

// typeAt returns the type t's ancestor of the given level would carry,
// walking the parent-type table upward in O(t.Level-level).
func (k *Kernel) typeAt(t *Elem, level int8) int8 {
	utils.Assertf(0 <= level && level <= t.Level, "simplex: typeAt level %d of %d", level, t.Level)
	typ := t.Type
	for i := t.Level; i > level; i-- {
		typ = k.cidTypeToParentType[k.cubeID(t, i)][typ]
	}
	return typ
}

// Parent stores the parent of t in p. t and p may alias.
func (k *Kernel) Parent(t, p *Elem) {
	utils.Assertf(t.Level > 0, "simplex: parent of root")
	h := Len(t.Level)
	cid := k.cubeID(t, t.Level)
	p.Type = k.cidTypeToParentType[cid][t.Type]
	p.X = t.X & ^h
	p.Y = t.Y & ^h
	p.Z = t.Z & ^h
	p.Level = t.Level - 1
}

// VertexCoords returns the lattice coordinates of one vertex of t. Vertex
// 0 is the anchor; the others follow the Kuhn ordering of the type.
func (k *Kernel) VertexCoords(t *Elem, vertex int) [3]Coord {
	utils.Assertf(0 <= vertex && vertex < k.Corners(), "simplex: vertex %d", vertex)
	h := Len(t.Level)
	c := [3]Coord{t.X, t.Y, t.Z}
	if vertex == 0 {
		return c
	}
	if k.Dim == 2 {
		ei := t.Type
		c[ei] += h
		if vertex == 2 {
			c[1-ei] += h
		}
		return c
	}
	ei := t.Type / 2
	ej := (ei + pick(t.Type%2 == 0, 2, 1)) % 3
	switch vertex {
	case 1:
		c[ei] += h
	case 2:
		c[ei] += h
		c[ej] += h
	case 3:
		c[0] += h
		c[1] += h
		c[2] += h
	}
	return c
}

// Child stores the childid-th child of t in c, in SFC order. t and c may
// alias.
func (k *Kernel) Child(t *Elem, childid int, c *Elem) {
	utils.Assertf(t.Level < MaxLevel, "simplex: child below max level")
	utils.Assertf(0 <= childid && childid < k.Children(), "simplex: child id %d", childid)
	bey := k.indexToBey[t.Type][childid]
	x, y, z := t.X, t.Y, t.Z
	if bey != 0 {
		// The child anchor is the midpoint of the parent anchor and the
		// bey vertex.
		v := k.VertexCoords(t, int(k.beyIDToVertex[bey]))
		x = (t.X + v[0]) >> 1
		y = (t.Y + v[1]) >> 1
		z = (t.Z + v[2]) >> 1
	}
	c.X, c.Y, c.Z = x, y, z
	c.Type = k.typeOfChild[t.Type][bey]
	c.Level = t.Level + 1
}

// ChildrenOf stores all children of t in SFC order. The output elements
// must not alias t except c[0].
func (k *Kernel) ChildrenOf(t *Elem, c []*Elem) {
	utils.Assertf(len(c) == k.Children(), "simplex: want %d children, got %d", k.Children(), len(c))
	for i := k.Children() - 1; i >= 0; i-- {
		k.Child(t, i, c[i])
	}
}

// ChildID returns the SFC position of t among its siblings.
func (k *Kernel) ChildID(t *Elem) int {
	return int(k.typeCidToIloc[t.Type][k.cubeID(t, t.Level)])
}

// AncestorID returns the position of t's level-`level` ancestor among that
// ancestor's siblings.
func (k *Kernel) AncestorID(t *Elem, level int8) int {
	utils.Assertf(0 <= level && level <= t.Level, "simplex: ancestor level %d", level)
	return int(k.typeCidToIloc[k.typeAt(t, level)][k.cubeID(t, level)])
}

// Sibling stores the sibid-th sibling of t in s. t and s may alias.
func (k *Kernel) Sibling(t *Elem, sibid int, s *Elem) {
	utils.Assertf(t.Level > 0, "simplex: sibling of root")
	k.Parent(t, s)
	k.Child(s, sibid, s)
}

// Ancestor stores in a the ancestor of t at the given level. The type is
// recovered by sign tests on the in-cube offsets; ties fall back on t's
// type. t and a may alias.
func (k *Kernel) Ancestor(t *Elem, level int8, a *Elem) {
	utils.Assertf(0 <= level && level <= t.Level, "simplex: ancestor level %d", level)
	mask := Len(level) - 1
	dx := t.X & mask
	dy := t.Y & mask
	dz := t.Z & mask
	a.X = t.X & ^mask
	a.Y = t.Y & ^mask
	a.Z = t.Z & ^mask
	a.Level = level

	if k.Dim == 2 {
		switch diff := dx - dy; {
		case diff > 0:
			a.Type = 0
		case diff < 0:
			a.Type = 1
		default:
			a.Type = t.Type
		}
		return
	}

	// Each pairwise difference rules out three of the six candidate types;
	// exactly one candidate survives.
	possible := [6]int8{1, 1, 1, 1, 1, 1}
	clear3 := func(i, j, l int) {
		possible[i], possible[j], possible[l] = 0, 0, 0
	}
	switch diff := dx - dy; {
	case diff > 0:
		clear3(2, 3, 4)
	case diff < 0:
		clear3(0, 1, 5)
	default:
		if t.Type == 0 || t.Type == 1 || t.Type == 5 {
			clear3(2, 3, 4)
		} else {
			clear3(0, 1, 5)
		}
	}
	switch diff := dx - dz; {
	case diff > 0:
		clear3(3, 4, 5)
	case diff < 0:
		clear3(0, 1, 2)
	default:
		if t.Type <= 2 {
			clear3(3, 4, 5)
		} else {
			clear3(0, 1, 2)
		}
	}
	switch diff := dy - dz; {
	case diff > 0:
		clear3(0, 4, 5)
	case diff < 0:
		clear3(1, 2, 3)
	default:
		if t.Type == 1 || t.Type == 2 || t.Type == 3 {
			clear3(0, 4, 5)
		} else {
			clear3(1, 2, 3)
		}
	}
	for i := int8(0); i < 6; i++ {
		if possible[i] != 0 {
			a.Type = i
			return
		}
	}
	utils.Abortf("simplex: no ancestor type survived the sign tests")
}

// IsEqual reports whether two elements are the same record.
func (k *Kernel) IsEqual(t1, t2 *Elem) bool {
	eq := t1.Level == t2.Level && t1.Type == t2.Type &&
		t1.X == t2.X && t1.Y == t2.Y
	if k.Dim == 3 {
		eq = eq && t1.Z == t2.Z
	}
	return eq
}

// IsSibling reports whether t1 and t2 share a parent. Every element,
// the root included, counts as its own sibling.
func (k *Kernel) IsSibling(t1, t2 *Elem) bool {
	if t1.Level == 0 {
		return t2.Level == 0 && t1.X == t2.X && t1.Y == t2.Y &&
			(k.Dim == 2 || t1.Z == t2.Z)
	}
	if t1.Level != t2.Level {
		return false
	}
	h := Len(t1.Level)
	if (t1.X^t2.X) & ^h != 0 || (t1.Y^t2.Y) & ^h != 0 ||
		(k.Dim == 3 && (t1.Z^t2.Z) & ^h != 0) {
		return false
	}
	cid1 := k.cubeID(t1, t1.Level)
	cid2 := k.cubeID(t2, t2.Level)
	return k.cidTypeToParentType[cid1][t1.Type] == k.cidTypeToParentType[cid2][t2.Type]
}

// IsParent reports whether t is the parent of c.
func (k *Kernel) IsParent(t, c *Elem) bool {
	if t.Level+1 != c.Level {
		return false
	}
	h := Len(c.Level)
	if t.X != c.X & ^h || t.Y != c.Y & ^h || (k.Dim == 3 && t.Z != c.Z & ^h) {
		return false
	}
	cid := k.cubeID(c, c.Level)
	return t.Type == k.cidTypeToParentType[cid][c.Type]
}

// IsAncestor reports whether t is an ancestor of c (or equal to it). The
// cube test is followed by a chain-position test; when c's anchor touches
// a face of t, the three types whose body falls outside are rejected.
func (k *Kernel) IsAncestor(t, c *Elem) bool {
	if t.Level > c.Level {
		return false
	}
	if t.Level == c.Level {
		return k.IsEqual(t, c)
	}
	shift := MaxLevel - t.Level
	if (t.X^c.X)>>shift != 0 || (t.Y^c.Y)>>shift != 0 ||
		(k.Dim == 3 && (t.Z^c.Z)>>shift != 0) {
		return false
	}

	if k.Dim == 2 {
		var n1, n2 Coord
		if t.Type == 0 {
			n1, n2 = c.X-t.X, c.Y-t.Y
		} else {
			n1, n2 = c.Y-t.Y, c.X-t.X
		}
		return !(n1 >= Len(t.Level) || n2 < 0 || n2 > n1 ||
			(n2 == n1 && c.Type == 1-t.Type))
	}

	// The type's chain orders the axes small <= mid <= big.
	delta := [3]Coord{c.X - t.X, c.Y - t.Y, c.Z - t.Z}
	big := int(t.Type) / 2
	small := int((t.Type + 3) % 6) / 2
	n1 := delta[big]
	n2 := delta[small]
	mid := delta[3-big-small]
	sign := int8(pick(t.Type%2 == 0, 1, -1))
	tt := t.Type + 6
	if n1 >= Len(t.Level) || n2 < 0 || mid > n1 || n2 > mid {
		return false
	}
	if mid == n1 {
		if c.Type == (tt-sign*1)%6 || c.Type == (tt-sign*2)%6 || c.Type == (tt-sign*3)%6 {
			return false
		}
	}
	if mid == n2 {
		if c.Type == (tt+sign*1)%6 || c.Type == (tt+sign*2)%6 || c.Type == (tt+sign*3)%6 {
			return false
		}
	}
	return true
}

// InsideRoot reports whether t lies inside the root simplex.
func (k *Kernel) InsideRoot(t *Elem) bool {
	if t.X < 0 || t.X >= RootLen || t.Y < 0 {
		return false
	}
	if k.Dim == 2 {
		if t.Y > t.X {
			return false
		}
		if t.Y == t.X && t.Type != 0 {
			return false
		}
		return true
	}
	if t.Z < 0 || t.Z > t.X || t.Y > t.Z {
		return false
	}
	// On the y==z wall only types 0, 4, 5 fit; on x==z only 0, 1, 2.
	if t.Y == t.Z && t.Type != 0 && t.Type < 4 {
		return false
	}
	if t.X == t.Z && t.Type > 2 {
		return false
	}
	return true
}

// Compare orders two elements by linear id, lifting both to the greater
// level. Returns a negative, zero or positive value.
func (k *Kernel) Compare(a, b *Elem) int {
	maxlvl := utils.Max(int(a.Level), int(b.Level))
	ida, idb := k.LinearID(a, maxlvl), k.LinearID(b, maxlvl)
	switch {
	case ida < idb:
		return -1
	case ida > idb:
		return 1
	}
	return 0
}

func pick(cond bool, a, b int8) int8 {
	if cond {
		return a
	}
	return b
}
