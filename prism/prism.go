// Package prism implements the triangular-prism kernel as the tensor
// product of a triangle and a line. Every structural operation composes
// the two factor kernels; the SFC couples them with the triangle running
// faster than the vertical direction.
package prism

import (
	"github.com/notargets/spacetree/line"
	"github.com/notargets/spacetree/simplex"
	"github.com/notargets/spacetree/utils"
)

// MaxLevel is the deepest refinement level of a prism.
const MaxLevel = 21

// RootLen is the side length of the root lattice.
const RootLen = 1 << MaxLevel

// Children is the number of children of a prism.
const Children = 8

// Faces is the number of faces of a prism: three quad walls and two
// triangle caps.
const Faces = 5

// Corners is the number of vertices of a prism.
const Corners = 6

// Coord is an integer lattice coordinate.
type Coord = simplex.Coord

// Elem is one prism: a triangle factor and a line factor sharing one
// level. The prism's type is the triangle's type.
type Elem struct {
	Tri  simplex.Elem
	Line line.Elem
}

// Root initializes p as the level-0 prism.
func Root(p *Elem) {
	simplex.Tri.Root(&p.Tri)
	line.Root(&p.Line)
}

// Copy copies src into dst.
func Copy(src, dst *Elem) {
	*dst = *src
}

// Level returns the refinement level of p.
func Level(p *Elem) int {
	return int(p.Line.Level)
}

// Type returns the triangle type of p.
func Type(p *Elem) int8 {
	return p.Tri.Type
}

// ChildID returns the SFC position of p among its siblings: the triangle
// id in the low two bits, the line id above.
func ChildID(p *Elem) int {
	return simplex.Tri.ChildID(&p.Tri) + 4*line.ChildID(&p.Line)
}

// Parent stores the parent of p in out. p and out may alias.
func Parent(p, out *Elem) {
	utils.Assertf(p.Line.Level > 0, "prism: parent of root")
	simplex.Tri.Parent(&p.Tri, &out.Tri)
	line.Parent(&p.Line, &out.Line)
}

// Child stores the childid-th child of p in c. The triangle child cycles
// fastest: childid = triChild + 4*lineChild. p and c may alias.
func Child(p *Elem, childid int, c *Elem) {
	utils.Assertf(0 <= childid && childid < Children, "prism: child id %d", childid)
	simplex.Tri.Child(&p.Tri, childid%4, &c.Tri)
	line.Child(&p.Line, childid/4, &c.Line)
}

// ChildrenOf stores all children of p in SFC order. Only c[0] may alias p.
func ChildrenOf(p *Elem, c []*Elem) {
	utils.Assertf(len(c) == Children, "prism: want %d children, got %d", Children, len(c))
	for i := Children - 1; i >= 0; i-- {
		Child(p, i, c[i])
	}
}

// Sibling stores the sibid-th sibling of p in s. p and s may alias.
func Sibling(p *Elem, sibid int, s *Elem) {
	utils.Assertf(p.Line.Level > 0, "prism: sibling of root")
	Parent(p, s)
	Child(s, sibid, s)
}

// IsEqual reports whether two prisms are the same record.
func IsEqual(p1, p2 *Elem) bool {
	return simplex.Tri.IsEqual(&p1.Tri, &p2.Tri) && p1.Line == p2.Line
}

// IsFamily reports whether f are the children of one parent in SFC order.
func IsFamily(f []*Elem) bool {
	if len(f) != Children {
		return false
	}
	if f[0].Line.Level == 0 {
		return false
	}
	var parent, child Elem
	Parent(f[0], &parent)
	for i, p := range f {
		if p.Line.Level != f[0].Line.Level || p.Tri.Level != p.Line.Level {
			return false
		}
		Child(&parent, i, &child)
		if !IsEqual(p, &child) {
			return false
		}
	}
	return true
}

// LinearID returns the SFC position of p in the uniform refinement of the
// given level: one 3-bit digit per level, the triangle digit in the low
// two bits and the line bit above.
func LinearID(p *Elem, level int) uint64 {
	utils.Assertf(0 <= level && level <= MaxLevel, "prism: level %d", level)
	tid := simplex.Tri.LinearID(&p.Tri, level)
	lid := line.LinearID(&p.Line, level)
	var id uint64
	for i := 0; i < level; i++ {
		digit := (tid>>(2*i))&3 | ((lid>>i)&1)<<2
		id |= digit << (3 * i)
	}
	return id
}

// InitLinearID initializes p as the element with the given SFC position at
// the given level, splitting each 3-bit digit into its factors.
func InitLinearID(p *Elem, id uint64, level int) {
	utils.Assertf(0 <= level && level <= MaxLevel, "prism: level %d", level)
	utils.Assertf(id < uint64(1)<<(3*level), "prism: id %d out of range at level %d", id, level)
	var tid, lid uint64
	for i := 0; i < level; i++ {
		digit := (id >> (3 * i)) & 7
		tid |= (digit & 3) << (2 * i)
		lid |= (digit >> 2) << i
	}
	simplex.Tri.InitLinearID(&p.Tri, tid, level)
	line.InitLinearID(&p.Line, lid, level)
}

// Successor stores in s the next element after p in the uniform refinement
// of the given level, by the product carry discipline: step the triangle;
// when it wraps under an upper line child, carry into the parent; when it
// wraps under the lower line child, step the line instead. p must not be
// the last element. p and s may alias.
func Successor(p *Elem, s *Elem, level int) {
	utils.Assertf(1 <= level && level <= int(p.Line.Level), "prism: successor level %d", level)
	if level < Level(p) {
		// Step the ancestor at the given level.
		var a Elem
		Parent(p, &a)
		Successor(&a, s, level)
		return
	}
	triID := simplex.Tri.ChildID(&p.Tri)
	lineID := line.ChildID(&p.Line)

	switch {
	case triID == 3 && lineID == 1:
		// Compound carry: ascend, take the parent's successor, descend to
		// its first child.
		var parent Elem
		Parent(p, &parent)
		Successor(&parent, s, level-1)
		Child(s, 0, s)
	case triID == 3:
		// The triangle wraps to its first sibling; the line advances.
		cp := *p
		line.Successor(&cp.Line, &s.Line, level)
		simplex.Tri.Sibling(&cp.Tri, 0, &s.Tri)
	default:
		cp := *p
		simplex.Tri.Successor(&cp.Tri, &s.Tri, level)
		line.Copy(&cp.Line, &s.Line)
	}
}

// FirstDescendant stores in s the first descendant of p at the given level.
func FirstDescendant(p *Elem, s *Elem, level int) {
	utils.Assertf(int(p.Line.Level) <= level && level <= MaxLevel, "prism: descendant level %d", level)
	simplex.Tri.FirstDescendant(&p.Tri, &s.Tri)
	s.Tri.Level = int8(level)
	// The triangle's first descendant keeps anchor and type at any level.
	line.FirstDescendant(&p.Line, &s.Line, level)
}

// LastDescendant stores in s the last descendant of p at the given level.
func LastDescendant(p *Elem, s *Elem, level int) {
	utils.Assertf(int(p.Line.Level) <= level && level <= MaxLevel, "prism: descendant level %d", level)
	var tmp simplex.Elem
	simplex.Tri.LastDescendant(&p.Tri, &tmp)
	if level < MaxLevel {
		simplex.Tri.Ancestor(&tmp, int8(level), &s.Tri)
	} else {
		s.Tri = tmp
	}
	line.LastDescendant(&p.Line, &s.Line, level)
}

// VertexCoords returns the lattice coordinates of one of the six corners:
// the base triangle at the lower cap is 0..2, the upper cap 3..5.
func VertexCoords(p *Elem, vertex int) [3]Coord {
	utils.Assertf(0 <= vertex && vertex < Corners, "prism: vertex %d", vertex)
	c := simplex.Tri.VertexCoords(&p.Tri, vertex%3)
	c[2] = line.VertexCoord(&p.Line, vertex/3)
	return c
}

// InsideRoot reports whether p lies inside the root prism.
func InsideRoot(p *Elem) bool {
	return simplex.Tri.InsideRoot(&p.Tri) && line.InsideRoot(&p.Line)
}

// Compare orders two prisms by linear id, lifting both to the greater
// level. Returns a negative, zero or positive value.
func Compare(a, b *Elem) int {
	maxlvl := utils.Max(Level(a), Level(b))
	ida, idb := LinearID(a, maxlvl), LinearID(b, maxlvl)
	switch {
	case ida < idb:
		return -1
	case ida > idb:
		return 1
	}
	return 0
}
