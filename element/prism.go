package element

import (
	"unsafe"

	"github.com/notargets/spacetree/prism"
	"github.com/notargets/spacetree/utils"
)

type prismScheme struct {
	ctx pool[prism.Elem]
}

func newPrismScheme() Scheme {
	return &prismScheme{}
}

func asPrism(e Element) *prism.Elem {
	p, ok := e.(*prism.Elem)
	utils.Assertf(ok, "element: %T is not a prism element", e)
	return p
}

func (s *prismScheme) Class() Class  { return Prism }
func (s *prismScheme) Size() int     { return int(unsafe.Sizeof(prism.Elem{})) }
func (s *prismScheme) MaxLevel() int { return prism.MaxLevel }

func (s *prismScheme) NumChildren() int { return prism.Children }
func (s *prismScheme) NumFaces() int    { return prism.Faces }

func (s *prismScheme) ChildClass(childid int) Class {
	utils.Assertf(0 <= childid && childid < prism.Children, "element: child id %d", childid)
	return Prism
}

func (s *prismScheme) BoundaryClass(face int) Class {
	utils.Assertf(0 <= face && face < prism.Faces, "element: face %d", face)
	if face >= 3 {
		return Tri
	}
	return Quad
}

func (s *prismScheme) Level(e Element) int { return prism.Level(asPrism(e)) }
func (s *prismScheme) Root(e Element)      { prism.Root(asPrism(e)) }

func (s *prismScheme) Copy(src, dst Element) {
	prism.Copy(asPrism(src), asPrism(dst))
}

func (s *prismScheme) Compare(a, b Element) int {
	return prism.Compare(asPrism(a), asPrism(b))
}

func (s *prismScheme) Parent(e, parent Element) {
	prism.Parent(asPrism(e), asPrism(parent))
}

func (s *prismScheme) Sibling(e Element, sibid int, sibling Element) {
	prism.Sibling(asPrism(e), sibid, asPrism(sibling))
}

func (s *prismScheme) Child(e Element, childid int, child Element) {
	prism.Child(asPrism(e), childid, asPrism(child))
}

func (s *prismScheme) Children(e Element, c []Element) {
	pv := make([]*prism.Elem, len(c))
	for i := range c {
		pv[i] = asPrism(c[i])
	}
	prism.ChildrenOf(asPrism(e), pv)
}

func (s *prismScheme) ChildID(e Element) int { return prism.ChildID(asPrism(e)) }

func (s *prismScheme) IsFamily(f []Element) bool {
	pv := make([]*prism.Elem, len(f))
	for i := range f {
		pv[i] = asPrism(f[i])
	}
	return prism.IsFamily(pv)
}

func (s *prismScheme) FaceNeighbor(e Element, face int, neighbor Element) int {
	return prism.FaceNeighbor(asPrism(e), face, asPrism(neighbor))
}

// NCA composes the factor ancestors at the deepest level where both agree.
func (s *prismScheme) NCA(a, b, nca Element) {
	pa, pb, r := asPrism(a), asPrism(b), asPrism(nca)
	level := utils.Min(prism.Level(pa), prism.Level(pb))
	var ca, cb prism.Elem
	for {
		ancestorAt(pa, level, &ca)
		ancestorAt(pb, level, &cb)
		if prism.IsEqual(&ca, &cb) {
			*r = ca
			return
		}
		level--
	}
}

func ancestorAt(p *prism.Elem, level int, out *prism.Elem) {
	*out = *p
	for prism.Level(out) > level {
		prism.Parent(out, out)
	}
}

func (s *prismScheme) Boundary(e Element, face int, boundary Element) {
	p := asPrism(e)
	if face >= 3 {
		prism.BoundaryTri(p, face, asSimplex(boundary))
		return
	}
	prism.BoundaryQuad(p, face, asQuadrant(boundary))
}

func (s *prismScheme) SetLinearID(e Element, level int, id uint64) {
	prism.InitLinearID(asPrism(e), id, level)
}

func (s *prismScheme) LinearID(e Element, level int) uint64 {
	return prism.LinearID(asPrism(e), level)
}

func (s *prismScheme) FirstDescendant(e, desc Element) {
	prism.FirstDescendant(asPrism(e), asPrism(desc), prism.MaxLevel)
}

func (s *prismScheme) LastDescendant(e, desc Element) {
	prism.LastDescendant(asPrism(e), asPrism(desc), prism.MaxLevel)
}

func (s *prismScheme) Successor(e Element, succ Element, level int) {
	prism.Successor(asPrism(e), asPrism(succ), level)
}

func (s *prismScheme) Anchor(e Element) [3]int32 {
	p := asPrism(e)
	return [3]int32{p.Tri.X, p.Tri.Y, p.Line.X}
}

func (s *prismScheme) RootLen() int32 { return prism.RootLen }

func (s *prismScheme) InsideRoot(e Element) bool {
	return prism.InsideRoot(asPrism(e))
}

func (s *prismScheme) New() Element { return s.ctx.get() }

func (s *prismScheme) Destroy(e Element) { s.ctx.put(asPrism(e)) }
