package element

import (
	"unsafe"

	"github.com/notargets/spacetree/quadrant"
	"github.com/notargets/spacetree/utils"
)

// quadScheme serves the quad and hex classes through the shared Morton
// kernel.
type quadScheme struct {
	class  Class
	kernel *quadrant.Kernel
	ctx    pool[quadrant.Elem]
}

func newQuadScheme() Scheme {
	return &quadScheme{class: Quad, kernel: quadrant.Quad}
}

func newHexScheme() Scheme {
	return &quadScheme{class: Hex, kernel: quadrant.Hex}
}

func asQuadrant(e Element) *quadrant.Elem {
	q, ok := e.(*quadrant.Elem)
	utils.Assertf(ok, "element: %T is not a quadrant element", e)
	return q
}

func (s *quadScheme) Class() Class  { return s.class }
func (s *quadScheme) Size() int     { return int(unsafe.Sizeof(quadrant.Elem{})) }
func (s *quadScheme) MaxLevel() int { return quadrant.MaxLevel }

func (s *quadScheme) NumChildren() int { return s.kernel.Children() }
func (s *quadScheme) NumFaces() int    { return 2 * s.kernel.Dim }

func (s *quadScheme) ChildClass(childid int) Class {
	utils.Assertf(0 <= childid && childid < s.NumChildren(), "element: child id %d", childid)
	return s.class
}

func (s *quadScheme) BoundaryClass(face int) Class {
	utils.Assertf(0 <= face && face < s.NumFaces(), "element: face %d", face)
	if s.class == Hex {
		return Quad
	}
	return Line
}

func (s *quadScheme) Level(e Element) int { return s.kernel.Level(asQuadrant(e)) }
func (s *quadScheme) Root(e Element)      { s.kernel.Root(asQuadrant(e)) }

func (s *quadScheme) Copy(src, dst Element) {
	s.kernel.Copy(asQuadrant(src), asQuadrant(dst))
}

func (s *quadScheme) Compare(a, b Element) int {
	return s.kernel.Compare(asQuadrant(a), asQuadrant(b))
}

func (s *quadScheme) Parent(e, parent Element) {
	s.kernel.Parent(asQuadrant(e), asQuadrant(parent))
}

func (s *quadScheme) Sibling(e Element, sibid int, sibling Element) {
	s.kernel.Sibling(asQuadrant(e), sibid, asQuadrant(sibling))
}

func (s *quadScheme) Child(e Element, childid int, child Element) {
	s.kernel.Child(asQuadrant(e), childid, asQuadrant(child))
}

func (s *quadScheme) Children(e Element, c []Element) {
	pv := make([]*quadrant.Elem, len(c))
	for i := range c {
		pv[i] = asQuadrant(c[i])
	}
	s.kernel.ChildrenOf(asQuadrant(e), pv)
}

func (s *quadScheme) ChildID(e Element) int { return s.kernel.ChildID(asQuadrant(e)) }

func (s *quadScheme) IsFamily(f []Element) bool {
	pv := make([]*quadrant.Elem, len(f))
	for i := range f {
		pv[i] = asQuadrant(f[i])
	}
	return s.kernel.IsFamily(pv)
}

func (s *quadScheme) FaceNeighbor(e Element, face int, neighbor Element) int {
	return s.kernel.FaceNeighbor(asQuadrant(e), face, asQuadrant(neighbor))
}

func (s *quadScheme) NCA(a, b, nca Element) {
	s.kernel.NearestCommonAncestor(asQuadrant(a), asQuadrant(b), asQuadrant(nca))
}

func (s *quadScheme) Boundary(e Element, face int, boundary Element) {
	utils.Abortf("element: %s boundary extraction is not implemented", s.class)
}

func (s *quadScheme) SetLinearID(e Element, level int, id uint64) {
	s.kernel.InitLinearID(asQuadrant(e), id, level)
}

func (s *quadScheme) LinearID(e Element, level int) uint64 {
	return s.kernel.LinearID(asQuadrant(e), level)
}

func (s *quadScheme) FirstDescendant(e, desc Element) {
	s.kernel.FirstDescendant(asQuadrant(e), asQuadrant(desc))
}

func (s *quadScheme) LastDescendant(e, desc Element) {
	s.kernel.LastDescendant(asQuadrant(e), asQuadrant(desc))
}

func (s *quadScheme) Successor(e Element, succ Element, level int) {
	s.kernel.Successor(asQuadrant(e), asQuadrant(succ), level)
}

func (s *quadScheme) Anchor(e Element) [3]int32 {
	q := asQuadrant(e)
	return [3]int32{q.X, q.Y, q.Z}
}

func (s *quadScheme) RootLen() int32 { return quadrant.RootLen }

func (s *quadScheme) InsideRoot(e Element) bool {
	return s.kernel.InsideRoot(asQuadrant(e))
}

func (s *quadScheme) New() Element { return s.ctx.get() }

func (s *quadScheme) Destroy(e Element) { s.ctx.put(asQuadrant(e)) }
