package prism

import (
	"github.com/notargets/spacetree/line"
	"github.com/notargets/spacetree/quadrant"
	"github.com/notargets/spacetree/simplex"
	"github.com/notargets/spacetree/utils"
)

// Prism faces: 0..2 are the quad walls over the triangle's edges, 3 is the
// bottom cap, 4 the top cap.

// NumFaceChildren returns the number of children touching a face. Every
// prism face is quartered.
func NumFaceChildren(p *Elem, face int) int {
	utils.Assertf(0 <= face && face < Faces, "prism: face %d", face)
	return 4
}

// FaceNeighbor stores in n the equal-level neighbor of p across the given
// face and returns the face of n shared with p. The result may lie outside
// the root prism. p and n may alias.
func FaceNeighbor(p *Elem, face int, n *Elem) int {
	utils.Assertf(0 <= face && face < Faces, "prism: face %d", face)
	switch face {
	case 3:
		n.Tri = p.Tri
		n.Line.X = p.Line.X - line.Len(p.Line.Level)
		n.Line.Level = p.Line.Level
		return 4
	case 4:
		n.Tri = p.Tri
		n.Line.X = p.Line.X + line.Len(p.Line.Level)
		n.Line.Level = p.Line.Level
		return 3
	default:
		ret := simplex.Tri.FaceNeighbor(&p.Tri, face, &n.Tri)
		n.Line = p.Line
		return ret
	}
}

// ChildrenAtFace stores in c the children of p that share the given face,
// in child-id order, and returns how many were stored.
func ChildrenAtFace(p *Elem, face int, c []*Elem) int {
	utils.Assertf(len(c) >= NumFaceChildren(p, face), "prism: need %d children at face", NumFaceChildren(p, face))
	switch face {
	case 3:
		for i := 0; i < 4; i++ {
			Child(p, i, c[i])
		}
	case 4:
		for i := 0; i < 4; i++ {
			Child(p, 4+i, c[i])
		}
	default:
		pair := simplex.Tri.ChildrenAtFace(&p.Tri, face)
		Child(p, pair[0], c[0])
		Child(p, pair[1], c[1])
		Child(p, pair[0]+4, c[2])
		Child(p, pair[1]+4, c[3])
	}
	return 4
}

// FaceChildFace returns the face number of the child of p matching the
// given child of the face. Prism children inherit their parent's face
// numbers.
func FaceChildFace(p *Elem, face, faceChild int) int {
	utils.Assertf(0 <= face && face < Faces, "prism: face %d", face)
	utils.Assertf(0 <= faceChild && faceChild < NumFaceChildren(p, face), "prism: face child %d", faceChild)
	return face
}

// IsRootBoundary reports whether the given face of p lies on the same-
// numbered face of the root prism.
func IsRootBoundary(p *Elem, face int) bool {
	utils.Assertf(0 <= face && face < Faces, "prism: face %d", face)
	switch face {
	case 3:
		return p.Line.X == 0
	case 4:
		return p.Line.X+line.Len(p.Line.Level) == line.RootLen
	default:
		return simplex.Tri.IsRootBoundary(&p.Tri, face)
	}
}

// TreeFace returns the root face the given face is a subface of. The
// return value is arbitrary when the face is interior.
func TreeFace(p *Elem, face int) int {
	utils.Assertf(0 <= face && face < Faces, "prism: face %d", face)
	return face
}

// BoundaryTri stores in b the triangle at a cap face (3 or 4) of p.
func BoundaryTri(p *Elem, face int, b *simplex.Elem) {
	utils.Assertf(face == 3 || face == 4, "prism: cap face %d", face)
	*b = p.Tri
}

// BoundaryQuad stores in b the rectangle at a wall face (0..2) of p: x
// runs along the triangle edge, y along the vertical, both rescaled to
// the quad lattice.
func BoundaryQuad(p *Elem, face int, b *quadrant.Elem) {
	utils.Assertf(0 <= face && face < 3, "prism: wall face %d", face)
	const shift = quadrant.MaxLevel - MaxLevel
	v0, v1 := edgeEndpoints(face)
	a := simplex.Tri.VertexCoords(&p.Tri, v0)
	e := simplex.Tri.VertexCoords(&p.Tri, v1)
	var along Coord
	for d := 0; d < 2; d++ {
		if a[d] != e[d] {
			along = a[d]
			if e[d] < along {
				along = e[d]
			}
			break
		}
	}
	b.X = along << shift
	b.Y = p.Line.X << shift
	b.Z = 0
	b.Level = p.Line.Level
	b.Surround = quadrant.Surround{TDim: 2}
}

// edgeEndpoints returns the two triangle vertices bounding a face, which
// is opposite the remaining vertex.
func edgeEndpoints(face int) (int, int) {
	switch face {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}
