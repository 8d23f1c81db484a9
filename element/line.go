package element

import (
	"unsafe"

	"github.com/notargets/spacetree/line"
	"github.com/notargets/spacetree/utils"
)

type lineScheme struct {
	ctx pool[line.Elem]
}

func newLineScheme() Scheme {
	return &lineScheme{}
}

func asLine(e Element) *line.Elem {
	l, ok := e.(*line.Elem)
	utils.Assertf(ok, "element: %T is not a line element", e)
	return l
}

func (s *lineScheme) Class() Class  { return Line }
func (s *lineScheme) Size() int     { return int(unsafe.Sizeof(line.Elem{})) }
func (s *lineScheme) MaxLevel() int { return line.MaxLevel }

func (s *lineScheme) NumChildren() int { return line.Children }
func (s *lineScheme) NumFaces() int    { return 2 }

func (s *lineScheme) ChildClass(childid int) Class {
	utils.Assertf(childid == 0 || childid == 1, "element: child id %d", childid)
	return Line
}

func (s *lineScheme) BoundaryClass(face int) Class {
	utils.Abortf("element: line faces are vertices")
	return Line
}

func (s *lineScheme) Level(e Element) int { return line.Level(asLine(e)) }
func (s *lineScheme) Root(e Element)      { line.Root(asLine(e)) }

func (s *lineScheme) Copy(src, dst Element) {
	line.Copy(asLine(src), asLine(dst))
}

func (s *lineScheme) Compare(a, b Element) int {
	return line.Compare(asLine(a), asLine(b))
}

func (s *lineScheme) Parent(e, parent Element) {
	line.Parent(asLine(e), asLine(parent))
}

func (s *lineScheme) Sibling(e Element, sibid int, sibling Element) {
	line.Parent(asLine(e), asLine(sibling))
	line.Child(asLine(sibling), sibid, asLine(sibling))
}

func (s *lineScheme) Child(e Element, childid int, child Element) {
	line.Child(asLine(e), childid, asLine(child))
}

func (s *lineScheme) Children(e Element, c []Element) {
	utils.Assertf(len(c) == line.Children, "element: want %d children, got %d", line.Children, len(c))
	for i := len(c) - 1; i >= 0; i-- {
		line.Child(asLine(e), i, asLine(c[i]))
	}
}

func (s *lineScheme) ChildID(e Element) int { return line.ChildID(asLine(e)) }

func (s *lineScheme) IsFamily(f []Element) bool {
	if len(f) != line.Children {
		return false
	}
	l0, l1 := asLine(f[0]), asLine(f[1])
	if l0.Level == 0 || l0.Level != l1.Level {
		return false
	}
	return line.ChildID(l0) == 0 && line.ChildID(l1) == 1 &&
		l1.X == l0.X+line.Len(l0.Level)
}

func (s *lineScheme) FaceNeighbor(e Element, face int, neighbor Element) int {
	utils.Assertf(face == 0 || face == 1, "element: face %d", face)
	l, n := asLine(e), asLine(neighbor)
	h := line.Len(l.Level)
	if face == 0 {
		n.X = l.X - h
	} else {
		n.X = l.X + h
	}
	n.Level = l.Level
	return 1 - face
}

func (s *lineScheme) NCA(a, b, nca Element) {
	la, lb, r := asLine(a), asLine(b), asLine(nca)
	level := int8(utils.Min(int(la.Level), int(lb.Level)))
	for {
		mask := line.Len(level) - 1
		if la.X & ^mask == lb.X & ^mask {
			break
		}
		level--
	}
	r.X = la.X & ^(line.Len(level) - 1)
	r.Level = level
}

func (s *lineScheme) Boundary(e Element, face int, boundary Element) {
	utils.Abortf("element: line faces are vertices")
}

func (s *lineScheme) SetLinearID(e Element, level int, id uint64) {
	line.InitLinearID(asLine(e), id, level)
}

func (s *lineScheme) LinearID(e Element, level int) uint64 {
	return line.LinearID(asLine(e), level)
}

func (s *lineScheme) FirstDescendant(e, desc Element) {
	line.FirstDescendant(asLine(e), asLine(desc), line.MaxLevel)
}

func (s *lineScheme) LastDescendant(e, desc Element) {
	line.LastDescendant(asLine(e), asLine(desc), line.MaxLevel)
}

func (s *lineScheme) Successor(e Element, succ Element, level int) {
	line.Successor(asLine(e), asLine(succ), level)
}

func (s *lineScheme) Anchor(e Element) [3]int32 {
	return [3]int32{asLine(e).X, 0, 0}
}

func (s *lineScheme) RootLen() int32 { return line.RootLen }

func (s *lineScheme) InsideRoot(e Element) bool {
	return line.InsideRoot(asLine(e))
}

func (s *lineScheme) New() Element { return s.ctx.get() }

func (s *lineScheme) Destroy(e Element) { s.ctx.put(asLine(e)) }
