// Package quadrant implements the axis-aligned Morton kernel for 2D quads
// and 3D hexes. One dim-parameterized kernel covers both classes; Quad and
// Hex are its two instances.
package quadrant

import "github.com/notargets/spacetree/utils"

// MaxLevel is the deepest refinement level of a quad or hex.
const MaxLevel = 30

// RootLen is the side length of the root cube.
const RootLen = 1 << MaxLevel

// Coord is an integer lattice coordinate.
type Coord = int32

// Surround carries the embedding metadata of a quad that represents the
// face of a hex tree: the tree dimension, the face-normal axis and the
// coordinate along it. It is inert for standalone quads and for hexes and
// is copied verbatim on every assignment.
type Surround struct {
	TDim    int8
	TNormal int8
	TCoord  Coord
}

// Elem is one quadrant: the anchor of its minimal corner, its level, and
// the surround metadata. The low MaxLevel-Level bits of each coordinate
// are zero. Z is unused in 2D.
type Elem struct {
	X, Y, Z  Coord
	Level    int8
	Surround Surround
}

// Kernel is the Morton element algebra for one dimensionality.
type Kernel struct {
	Dim int
}

// Quad is the 2D kernel, Hex the 3D kernel.
var (
	Quad = &Kernel{Dim: 2}
	Hex  = &Kernel{Dim: 3}
)

// Children returns the number of children of an element.
func (k *Kernel) Children() int {
	return 1 << k.Dim
}

// Len returns the side length of an element at a level.
func Len(level int8) Coord {
	return 1 << (MaxLevel - level)
}

// Root initializes t as the level-0 cube.
func (k *Kernel) Root(t *Elem) {
	*t = Elem{Surround: Surround{TDim: int8(k.Dim)}}
}

// Copy copies src into dst including the surround metadata.
func (k *Kernel) Copy(src, dst *Elem) {
	*dst = *src
}

// Level returns the refinement level of t.
func (k *Kernel) Level(t *Elem) int {
	return int(t.Level)
}

// ChildID returns the Morton position of t among its siblings. The x bit
// is the low bit of the id.
func (k *Kernel) ChildID(t *Elem) int {
	if t.Level == 0 {
		return 0
	}
	h := Len(t.Level)
	id := 0
	if t.X&h != 0 {
		id |= 1
	}
	if t.Y&h != 0 {
		id |= 2
	}
	if k.Dim == 3 && t.Z&h != 0 {
		id |= 4
	}
	return id
}

// Parent stores the parent of t in p. t and p may alias.
func (k *Kernel) Parent(t, p *Elem) {
	utils.Assertf(t.Level > 0, "quadrant: parent of root")
	h := Len(t.Level)
	p.X = t.X & ^h
	p.Y = t.Y & ^h
	p.Z = t.Z & ^h
	p.Level = t.Level - 1
	p.Surround = t.Surround
}

// Child stores the childid-th child of t in c. t and c may alias.
func (k *Kernel) Child(t *Elem, childid int, c *Elem) {
	utils.Assertf(t.Level < MaxLevel, "quadrant: child below max level")
	utils.Assertf(0 <= childid && childid < k.Children(), "quadrant: child id %d", childid)
	h := Len(t.Level + 1)
	x, y, z := t.X, t.Y, t.Z
	if childid&1 != 0 {
		x |= h
	}
	if childid&2 != 0 {
		y |= h
	}
	if childid&4 != 0 {
		z |= h
	}
	c.X, c.Y, c.Z = x, y, z
	c.Level = t.Level + 1
	c.Surround = t.Surround
}

// ChildrenOf stores all children of t in Morton order. Only c[0] may alias t.
func (k *Kernel) ChildrenOf(t *Elem, c []*Elem) {
	utils.Assertf(len(c) == k.Children(), "quadrant: want %d children, got %d", k.Children(), len(c))
	for i := k.Children() - 1; i >= 0; i-- {
		k.Child(t, i, c[i])
	}
}

// Sibling stores the sibid-th sibling of t in s. t and s may alias.
func (k *Kernel) Sibling(t *Elem, sibid int, s *Elem) {
	utils.Assertf(t.Level > 0, "quadrant: sibling of root")
	k.Parent(t, s)
	k.Child(s, sibid, s)
}

// IsFamily reports whether f are the children of one parent in Morton order.
func (k *Kernel) IsFamily(f []*Elem) bool {
	if len(f) != k.Children() {
		return false
	}
	level := f[0].Level
	if level == 0 {
		return false
	}
	h := Len(level)
	for i, q := range f {
		if q.Level != level || k.ChildID(q) != i {
			return false
		}
		if q.X & ^(2*h-1) != f[0].X & ^(2*h-1) ||
			q.Y & ^(2*h-1) != f[0].Y & ^(2*h-1) ||
			q.Z & ^(2*h-1) != f[0].Z & ^(2*h-1) {
			return false
		}
	}
	return true
}

// mortonDigit returns the Dim-bit child digit of t's ancestor at a level.
func (k *Kernel) mortonDigit(t *Elem, level int8) uint64 {
	h := Len(level)
	var digit uint64
	if t.X&h != 0 {
		digit |= 1
	}
	if t.Y&h != 0 {
		digit |= 2
	}
	if k.Dim == 3 && t.Z&h != 0 {
		digit |= 4
	}
	return digit
}

// LinearID returns the Morton position of t in the uniform refinement of
// the given level. Levels deeper than t's pad with zero digits; levels
// above truncate to the ancestor's position. Dim*level must fit a 64-bit
// id, which bounds hex ids to level 21.
func (k *Kernel) LinearID(t *Elem, level int) uint64 {
	utils.Assertf(0 <= level && level <= MaxLevel, "quadrant: level %d", level)
	utils.Assertf(k.Dim*level < 64, "quadrant: level %d id exceeds 64 bits", level)
	var id uint64
	exponent := 0
	if level > int(t.Level) {
		exponent = (level - int(t.Level)) * k.Dim
	}
	for i := int8(utils.Min(level, int(t.Level))); i > 0; i-- {
		id |= k.mortonDigit(t, i) << exponent
		exponent += k.Dim
	}
	return id
}

// InitLinearID initializes t as the element with the given Morton position
// at the given level. The surround metadata is reset.
func (k *Kernel) InitLinearID(t *Elem, id uint64, level int) {
	utils.Assertf(0 <= level && level <= MaxLevel, "quadrant: level %d", level)
	utils.Assertf(k.Dim*level < 64, "quadrant: level %d id exceeds 64 bits", level)
	utils.Assertf(id < uint64(1)<<(k.Dim*level), "quadrant: id %d out of range at level %d", id, level)
	k.Root(t)
	t.Level = int8(level)
	for i := 1; i <= level; i++ {
		digit := (id >> (k.Dim * (level - i))) & uint64(k.Children()-1)
		h := Len(int8(i))
		if digit&1 != 0 {
			t.X |= h
		}
		if digit&2 != 0 {
			t.Y |= h
		}
		if digit&4 != 0 {
			t.Z |= h
		}
	}
}

// Successor stores in s the next element after t in the uniform refinement
// of the given level. t must not be the last element.
func (k *Kernel) Successor(t *Elem, s *Elem, level int) {
	id := k.LinearID(t, level)
	utils.Assertf(id+1 < uint64(1)<<(k.Dim*level), "quadrant: successor of last element")
	surround := t.Surround
	k.InitLinearID(s, id+1, level)
	s.Surround = surround
}

// FirstDescendant stores in s the first descendant of t at MaxLevel.
func (k *Kernel) FirstDescendant(t *Elem, s *Elem) {
	*s = *t
	s.Level = MaxLevel
}

// LastDescendant stores in s the last descendant of t at MaxLevel.
func (k *Kernel) LastDescendant(t *Elem, s *Elem) {
	off := Len(t.Level) - 1
	s.X = t.X + off
	s.Y = t.Y + off
	s.Z = t.Z
	if k.Dim == 3 {
		s.Z = t.Z + off
	}
	s.Level = MaxLevel
	s.Surround = t.Surround
}

// Ancestor stores in a the ancestor of t at the given level. t and a may alias.
func (k *Kernel) Ancestor(t *Elem, level int, a *Elem) {
	utils.Assertf(0 <= level && level <= int(t.Level), "quadrant: ancestor level %d", level)
	mask := Len(int8(level)) - 1
	a.X = t.X & ^mask
	a.Y = t.Y & ^mask
	a.Z = t.Z & ^mask
	a.Level = int8(level)
	a.Surround = t.Surround
}

// IsAncestor reports whether t is an ancestor of c (or equal to it).
func (k *Kernel) IsAncestor(t, c *Elem) bool {
	if t.Level > c.Level {
		return false
	}
	shift := MaxLevel - t.Level
	if (t.X^c.X)>>shift != 0 || (t.Y^c.Y)>>shift != 0 {
		return false
	}
	if k.Dim == 3 && (t.Z^c.Z)>>shift != 0 {
		return false
	}
	return true
}

// NearestCommonAncestor stores in r the deepest common ancestor of t1 and t2.
func (k *Kernel) NearestCommonAncestor(t1, t2 *Elem, r *Elem) {
	exclor := uint32(t1.X^t2.X) | uint32(t1.Y^t2.Y)
	if k.Dim == 3 {
		exclor |= uint32(t1.Z ^ t2.Z)
	}
	maxlevel := utils.Log2Floor(exclor) + 1
	level := utils.Min(MaxLevel-maxlevel, utils.Min(int(t1.Level), int(t2.Level)))
	k.Ancestor(t1, level, r)
}

// FaceNeighbor stores in n the equal-level neighbor of t across the given
// face and returns the face of n shared with t. Faces pair -x,+x,-y,+y,-z,+z.
// The result may lie outside the root cube.
func (k *Kernel) FaceNeighbor(t *Elem, face int, n *Elem) int {
	utils.Assertf(0 <= face && face < 2*k.Dim, "quadrant: face %d", face)
	h := Len(t.Level)
	*n = *t
	switch face {
	case 0:
		n.X = t.X - h
	case 1:
		n.X = t.X + h
	case 2:
		n.Y = t.Y - h
	case 3:
		n.Y = t.Y + h
	case 4:
		n.Z = t.Z - h
	case 5:
		n.Z = t.Z + h
	}
	return face ^ 1
}

// VertexCoords returns the coordinates of the given corner of t in Morton
// vertex numbering.
func (k *Kernel) VertexCoords(t *Elem, vertex int) [3]Coord {
	utils.Assertf(0 <= vertex && vertex < k.Children(), "quadrant: vertex %d", vertex)
	h := Len(t.Level)
	c := [3]Coord{t.X, t.Y, t.Z}
	if vertex&1 != 0 {
		c[0] += h
	}
	if vertex&2 != 0 {
		c[1] += h
	}
	if vertex&4 != 0 {
		c[2] += h
	}
	return c
}

// InsideRoot reports whether t lies inside the root cube.
func (k *Kernel) InsideRoot(t *Elem) bool {
	ok := t.X >= 0 && t.X < RootLen && t.Y >= 0 && t.Y < RootLen
	if k.Dim == 3 {
		ok = ok && t.Z >= 0 && t.Z < RootLen
	}
	return ok
}

// Compare orders two elements along the Morton curve, lifting both to the
// greater level. The digits are walked directly so deep hexes compare
// exactly even where the 64-bit id would overflow. Returns a negative,
// zero or positive value.
func (k *Kernel) Compare(a, b *Elem) int {
	maxlvl := int8(utils.Max(int(a.Level), int(b.Level)))
	for i := int8(1); i <= maxlvl; i++ {
		da, db := k.mortonDigit(a, i), k.mortonDigit(b, i)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
	}
	return 0
}
