package element

import (
	"unsafe"

	"github.com/notargets/spacetree/line"
	"github.com/notargets/spacetree/simplex"
	"github.com/notargets/spacetree/utils"
)

// simplexScheme serves the tri and tet classes through the shared Bey
// kernel.
type simplexScheme struct {
	class  Class
	kernel *simplex.Kernel
	ctx    pool[simplex.Elem]
}

func newTriScheme() Scheme {
	return &simplexScheme{class: Tri, kernel: simplex.Tri}
}

func newTetScheme() Scheme {
	return &simplexScheme{class: Tet, kernel: simplex.Tet}
}

func asSimplex(e Element) *simplex.Elem {
	t, ok := e.(*simplex.Elem)
	utils.Assertf(ok, "element: %T is not a simplex element", e)
	return t
}

func (s *simplexScheme) Class() Class  { return s.class }
func (s *simplexScheme) Size() int     { return int(unsafe.Sizeof(simplex.Elem{})) }
func (s *simplexScheme) MaxLevel() int { return simplex.MaxLevel }

func (s *simplexScheme) NumChildren() int { return s.kernel.Children() }
func (s *simplexScheme) NumFaces() int    { return s.kernel.Faces() }

func (s *simplexScheme) ChildClass(childid int) Class {
	utils.Assertf(0 <= childid && childid < s.NumChildren(), "element: child id %d", childid)
	return s.class
}

func (s *simplexScheme) BoundaryClass(face int) Class {
	utils.Assertf(0 <= face && face < s.NumFaces(), "element: face %d", face)
	if s.class == Tet {
		return Tri
	}
	return Line
}

func (s *simplexScheme) Level(e Element) int { return s.kernel.Level(asSimplex(e)) }
func (s *simplexScheme) Root(e Element)      { s.kernel.Root(asSimplex(e)) }

func (s *simplexScheme) Copy(src, dst Element) {
	s.kernel.Copy(asSimplex(src), asSimplex(dst))
}

func (s *simplexScheme) Compare(a, b Element) int {
	return s.kernel.Compare(asSimplex(a), asSimplex(b))
}

func (s *simplexScheme) Parent(e, parent Element) {
	s.kernel.Parent(asSimplex(e), asSimplex(parent))
}

func (s *simplexScheme) Sibling(e Element, sibid int, sibling Element) {
	s.kernel.Sibling(asSimplex(e), sibid, asSimplex(sibling))
}

func (s *simplexScheme) Child(e Element, childid int, child Element) {
	s.kernel.Child(asSimplex(e), childid, asSimplex(child))
}

func (s *simplexScheme) Children(e Element, c []Element) {
	pv := make([]*simplex.Elem, len(c))
	for i := range c {
		pv[i] = asSimplex(c[i])
	}
	s.kernel.ChildrenOf(asSimplex(e), pv)
}

func (s *simplexScheme) ChildID(e Element) int { return s.kernel.ChildID(asSimplex(e)) }

func (s *simplexScheme) IsFamily(f []Element) bool {
	pv := make([]*simplex.Elem, len(f))
	for i := range f {
		pv[i] = asSimplex(f[i])
	}
	return s.kernel.IsFamily(pv)
}

func (s *simplexScheme) FaceNeighbor(e Element, face int, neighbor Element) int {
	return s.kernel.FaceNeighbor(asSimplex(e), face, asSimplex(neighbor))
}

func (s *simplexScheme) NCA(a, b, nca Element) {
	s.kernel.NearestCommonAncestor(asSimplex(a), asSimplex(b), asSimplex(nca))
}

// Boundary extracts the line element spanning a triangle face. The face of
// a tet is not extracted.
func (s *simplexScheme) Boundary(e Element, face int, boundary Element) {
	if s.class != Tri {
		utils.Abortf("element: %s boundary extraction is not implemented", s.class)
	}
	t := asSimplex(e)
	b, ok := boundary.(*line.Elem)
	utils.Assertf(ok, "element: %T is not a line element", boundary)
	utils.Assertf(0 <= face && face < s.NumFaces(), "element: face %d", face)

	// The face runs between the two vertices opposite the face index; its
	// line coordinate is the smaller varying coordinate.
	v0, v1 := 1, 2
	switch face {
	case 1:
		v0, v1 = 0, 2
	case 2:
		v0, v1 = 0, 1
	}
	a := s.kernel.VertexCoords(t, v0)
	c := s.kernel.VertexCoords(t, v1)
	for d := 0; d < 2; d++ {
		if a[d] != c[d] {
			b.X = a[d]
			if c[d] < b.X {
				b.X = c[d]
			}
			break
		}
	}
	b.Level = t.Level
}

func (s *simplexScheme) SetLinearID(e Element, level int, id uint64) {
	s.kernel.InitLinearID(asSimplex(e), id, level)
}

func (s *simplexScheme) LinearID(e Element, level int) uint64 {
	return s.kernel.LinearID(asSimplex(e), level)
}

func (s *simplexScheme) FirstDescendant(e, desc Element) {
	s.kernel.FirstDescendant(asSimplex(e), asSimplex(desc))
}

func (s *simplexScheme) LastDescendant(e, desc Element) {
	s.kernel.LastDescendant(asSimplex(e), asSimplex(desc))
}

func (s *simplexScheme) Successor(e Element, succ Element, level int) {
	s.kernel.Successor(asSimplex(e), asSimplex(succ), level)
}

func (s *simplexScheme) Anchor(e Element) [3]int32 {
	t := asSimplex(e)
	return [3]int32{t.X, t.Y, t.Z}
}

func (s *simplexScheme) RootLen() int32 { return simplex.RootLen }

func (s *simplexScheme) InsideRoot(e Element) bool {
	return s.kernel.InsideRoot(asSimplex(e))
}

func (s *simplexScheme) New() Element { return s.ctx.get() }

func (s *simplexScheme) Destroy(e Element) { s.ctx.put(asSimplex(e)) }
