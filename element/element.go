// Package element exposes the per-class element kernels behind one
// polymorphic capability set, the Scheme. The surrounding forest holds one
// scheme per element class, dispatches operations on opaque element
// values, and never inspects element bits.
package element

// Class identifies the shape of an element.
type Class uint8

const (
	Line Class = iota // Line segment
	Quad              // Quadrilateral
	Hex               // Hexahedron
	Tri               // Triangle
	Tet               // Tetrahedron
	Prism             // Triangular prism
)

func (c Class) String() string {
	switch c {
	case Line:
		return "line"
	case Quad:
		return "quad"
	case Hex:
		return "hex"
	case Tri:
		return "tri"
	case Tet:
		return "tet"
	case Prism:
		return "prism"
	}
	return "unknown"
}

// Element is an opaque element record. Schemes downcast to their concrete
// record; handing a scheme an element of another class is a precondition
// violation.
type Element interface{}

// Scheme is the capability set of one element class. All operations write
// into caller-provided elements obtained from New of the matching scheme;
// input and output may alias unless noted. Precondition violations are
// fatal.
type Scheme interface {
	// Class returns the element class served by this scheme.
	Class() Class
	// Size returns the byte size of the concrete element record.
	Size() int
	// MaxLevel returns the deepest refinement level of the class.
	MaxLevel() int
	// NumChildren returns the number of children of an element.
	NumChildren() int
	// NumFaces returns the number of faces of an element.
	NumFaces() int
	// ChildClass returns the class of the childid-th child.
	ChildClass(childid int) Class
	// BoundaryClass returns the class of the boundary element at a face.
	BoundaryClass(face int) Class

	// Level returns the refinement level of e.
	Level(e Element) int
	// Root initializes e as the level-0 element.
	Root(e Element)
	// Copy copies src into dst.
	Copy(src, dst Element)
	// Compare orders two elements along the space-filling curve, lifting
	// both to the greater level.
	Compare(a, b Element) int

	// Parent overwrites parent with e's parent. e must not be the root.
	Parent(e, parent Element)
	// Sibling overwrites sibling with e's sibid-th sibling.
	Sibling(e Element, sibid int, sibling Element)
	// Child overwrites child with e's childid-th child in SFC order.
	Child(e Element, childid int, child Element)
	// Children fills c with all children of e in SFC order. Only c[0] may
	// alias e.
	Children(e Element, c []Element)
	// ChildID returns e's position among its siblings.
	ChildID(e Element) int
	// IsFamily reports whether f are the children of one parent in order.
	IsFamily(f []Element) bool

	// FaceNeighbor overwrites neighbor with the equal-level neighbor of e
	// across face and returns the neighbor's matching face. The result may
	// lie outside the root; callers check InsideRoot.
	FaceNeighbor(e Element, face int, neighbor Element) int
	// NCA overwrites nca with the deepest common ancestor of a and b.
	NCA(a, b, nca Element)
	// Boundary overwrites boundary (an element of BoundaryClass(face))
	// with the face element of e at face.
	Boundary(e Element, face int, boundary Element)

	// SetLinearID initializes e from its SFC position at a level.
	SetLinearID(e Element, level int, id uint64)
	// LinearID returns e's SFC position at a level.
	LinearID(e Element, level int) uint64
	// FirstDescendant overwrites desc with e's first deepest descendant.
	FirstDescendant(e, desc Element)
	// LastDescendant overwrites desc with e's last deepest descendant.
	LastDescendant(e, desc Element)
	// Successor overwrites succ with the next element at a level. e must
	// not be the last element of the level.
	Successor(e Element, succ Element, level int)

	// Anchor returns the integer anchor coordinates of e.
	Anchor(e Element) [3]int32
	// RootLen returns the root lattice length of the class.
	RootLen() int32
	// InsideRoot reports whether e lies inside the root element.
	InsideRoot(e Element) bool

	// New returns a fresh element from the scheme's pool.
	New() Element
	// Destroy returns an element to the pool.
	Destroy(e Element)
}

// NewScheme constructs the scheme for a class, each holding its own pool.
func NewScheme(c Class) Scheme {
	switch c {
	case Line:
		return newLineScheme()
	case Quad:
		return newQuadScheme()
	case Hex:
		return newHexScheme()
	case Tri:
		return newTriScheme()
	case Tet:
		return newTetScheme()
	case Prism:
		return newPrismScheme()
	}
	return nil
}
