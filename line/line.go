// Package line implements the 1D interval kernel: the refinement tree of a
// unit interval on the integer lattice. It is the vertical factor of the
// prism kernel and the boundary element of the 2D classes.
package line

import "github.com/notargets/spacetree/utils"

// MaxLevel is the deepest refinement level of a line. It matches the
// simplex grid so a prism's two factors share one lattice.
const MaxLevel = 21

// RootLen is the side length of the root interval.
const RootLen = 1 << MaxLevel

// Children is the number of children of a line element.
const Children = 2

// Coord is an integer lattice coordinate.
type Coord = int32

// Elem is one interval of the refinement tree, identified by the anchor
// coordinate of its left endpoint and its level. The low MaxLevel-Level
// bits of X are zero.
type Elem struct {
	X     Coord
	Level int8
}

// Len returns the interval length at a level.
func Len(level int8) Coord {
	return 1 << (MaxLevel - level)
}

// Root initializes t as the level-0 interval.
func Root(t *Elem) {
	t.X = 0
	t.Level = 0
}

// Copy copies src into dst.
func Copy(src, dst *Elem) {
	*dst = *src
}

// Level returns the refinement level of t.
func Level(t *Elem) int {
	return int(t.Level)
}

// ChildID returns the position of t among its siblings (0 or 1).
func ChildID(t *Elem) int {
	if t.X&Len(t.Level) != 0 {
		return 1
	}
	return 0
}

// Parent stores the parent of t in p. t and p may alias.
func Parent(t, p *Elem) {
	utils.Assertf(t.Level > 0, "line: parent of root")
	p.X = t.X & ^Len(t.Level)
	p.Level = t.Level - 1
}

// Child stores the childid-th child of t in c. t and c may alias.
func Child(t *Elem, childid int, c *Elem) {
	utils.Assertf(t.Level < MaxLevel, "line: child below max level")
	utils.Assertf(childid == 0 || childid == 1, "line: child id %d", childid)
	x := t.X
	if childid == 1 {
		x |= Len(t.Level + 1)
	}
	c.X = x
	c.Level = t.Level + 1
}

// LinearID returns the SFC position of t in the uniform refinement of the
// given level.
func LinearID(t *Elem, level int) uint64 {
	utils.Assertf(0 <= level && level <= MaxLevel, "line: level %d", level)
	id := uint64(t.X) >> (MaxLevel - t.Level)
	if level > int(t.Level) {
		return id << (level - int(t.Level))
	}
	return id >> (int(t.Level) - level)
}

// InitLinearID initializes t as the element with the given SFC position at
// the given level.
func InitLinearID(t *Elem, id uint64, level int) {
	utils.Assertf(0 <= level && level <= MaxLevel, "line: level %d", level)
	utils.Assertf(id < uint64(1)<<level, "line: id %d out of range at level %d", id, level)
	t.X = Coord(id << (MaxLevel - level))
	t.Level = int8(level)
}

// Successor stores in s the next element after t in the uniform refinement
// of the given level. t must not be the last element.
func Successor(t *Elem, s *Elem, level int) {
	utils.Assertf(1 <= level && level <= int(t.Level), "line: successor level %d", level)
	InitLinearID(s, LinearID(t, level)+1, level)
}

// FirstDescendant stores in s the first level-`level` descendant of t.
func FirstDescendant(t *Elem, s *Elem, level int) {
	utils.Assertf(int(t.Level) <= level && level <= MaxLevel, "line: descendant level %d", level)
	s.X = t.X
	s.Level = int8(level)
}

// LastDescendant stores in s the last level-`level` descendant of t.
func LastDescendant(t *Elem, s *Elem, level int) {
	utils.Assertf(int(t.Level) <= level && level <= MaxLevel, "line: descendant level %d", level)
	s.X = t.X + Len(t.Level) - Len(int8(level))
	s.Level = int8(level)
}

// VertexCoord returns the coordinate of vertex 0 or 1 of t.
func VertexCoord(t *Elem, vertex int) Coord {
	utils.Assertf(vertex == 0 || vertex == 1, "line: vertex %d", vertex)
	if vertex == 0 {
		return t.X
	}
	return t.X + Len(t.Level)
}

// InsideRoot reports whether t lies inside the root interval.
func InsideRoot(t *Elem) bool {
	return t.X >= 0 && t.X < RootLen
}

// Compare orders two elements by linear id, lifting both to the greater
// level. Returns a negative, zero or positive value.
func Compare(a, b *Elem) int {
	maxlvl := utils.Max(int(a.Level), int(b.Level))
	ida, idb := LinearID(a, maxlvl), LinearID(b, maxlvl)
	switch {
	case ida < idb:
		return -1
	case ida > idb:
		return 1
	}
	return 0
}
