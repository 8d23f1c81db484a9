package simplex

import "github.com/notargets/spacetree/utils"

// FaceNeighbor stores in n the equal-level neighbor of t across the given
// face and returns the face of n shared with t. The result may lie outside
// the root simplex; callers check InsideRoot. t and n may alias.
func (k *Kernel) FaceNeighbor(t *Elem, face int, n *Elem) int {
	utils.Assertf(0 <= face && face < k.Faces(), "simplex: face %d", face)
	h := Len(t.Level)
	level := t.Level
	typeOld := t.Type
	coords := [3]Coord{t.X, t.Y, t.Z}

	if k.Dim == 2 {
		if face == 0 {
			coords[typeOld] += h
		} else if face == 2 {
			coords[1-typeOld] -= h
		}
		n.X, n.Y = coords[0], coords[1]
		n.Level = level
		n.Type = 1 - typeOld
		return 2 - face
	}

	typeNew := typeOld + 6
	var ret int
	switch face {
	case 1, 2:
		sign := pick(typeNew%2 == 0, 1, -1)
		sign *= pick(face%2 == 0, 1, -1)
		typeNew += sign
		ret = face
	case 0:
		// types 0,1 step +x; 2,3 step +y; 4,5 step +z
		coords[typeOld/2] += h
		typeNew += pick(typeNew%2 == 0, 4, 2)
		ret = 3
	case 3:
		// types 1,2 step -z; 3,4 step -x; 5,0 step -y
		coords[((typeNew+3)%6)/2] -= h
		typeNew += pick(typeNew%2 == 0, 2, 4)
		ret = 0
	}
	n.X, n.Y, n.Z = coords[0], coords[1], coords[2]
	n.Level = level
	n.Type = typeNew % 6
	return ret
}

// NearestCommonAncestor stores in r the deepest common ancestor of t1 and
// t2. The XOR of the coordinates bounds the cube level; the result may lie
// higher when the two occupy different simplices of that cube, so the
// ancestor types are walked up until they agree.
func (k *Kernel) NearestCommonAncestor(t1, t2 *Elem, r *Elem) {
	exclor := uint32(t1.X^t2.X) | uint32(t1.Y^t2.Y)
	if k.Dim == 3 {
		exclor |= uint32(t1.Z ^ t2.Z)
	}
	maxlevel := utils.Log2Floor(exclor) + 1
	utils.Assertf(maxlevel <= MaxLevel, "simplex: nca operands outside root")
	level := int8(utils.Min(MaxLevel-maxlevel, utils.Min(int(t1.Level), int(t2.Level))))

	type1 := k.typeAt(t1, level)
	type2 := k.typeAt(t2, level)
	for type1 != type2 {
		level--
		type1 = k.cidTypeToParentType[k.cubeID(t1, level+1)][type1]
		type2 = k.cidTypeToParentType[k.cubeID(t2, level+1)][type2]
	}
	k.Ancestor(t1, level, r)
}

// IsFamily reports whether f are the children of one parent in SFC order.
func (k *Kernel) IsFamily(f []*Elem) bool {
	if len(f) != k.Children() {
		return false
	}
	level := f[0].Level
	if level == 0 {
		return false
	}
	var parent, child Elem
	k.Parent(f[0], &parent)
	for i, t := range f {
		if t.Level != level {
			return false
		}
		k.Child(&parent, i, &child)
		if !k.IsEqual(t, &child) {
			return false
		}
	}
	return true
}

// triChildrenAtFace lists the two Morton child indices touching each face
// of a triangle, by parent type.
var triChildrenAtFace = [2][3][2]int8{
	{{1, 3}, {0, 3}, {0, 1}},
	{{2, 3}, {0, 3}, {0, 2}},
}

// ChildrenAtFace returns the Morton indices of the children sharing the
// given face of t, in child-id order. 2D only.
func (k *Kernel) ChildrenAtFace(t *Elem, face int) [2]int {
	utils.Assertf(k.Dim == 2, "simplex: children-at-face is 2D only")
	utils.Assertf(0 <= face && face < k.Faces(), "simplex: face %d", face)
	pair := triChildrenAtFace[t.Type][face]
	return [2]int{int(pair[0]), int(pair[1])}
}

// IsRootBoundary reports whether the given face of t lies on the same-
// numbered face of the root simplex. 2D only: a type-1 triangle inside the
// root never has a face on the root boundary.
func (k *Kernel) IsRootBoundary(t *Elem, face int) bool {
	utils.Assertf(k.Dim == 2, "simplex: root-boundary is 2D only")
	utils.Assertf(0 <= face && face < k.Faces(), "simplex: face %d", face)
	if t.Type != 0 {
		return false
	}
	switch face {
	case 0:
		return t.X+Len(t.Level) == RootLen
	case 1:
		return t.X == t.Y
	default:
		return t.Y == 0
	}
}
