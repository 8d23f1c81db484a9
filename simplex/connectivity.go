package simplex

// Connectivity tables for the Bey refinement of the Kuhn simplices.
//
// A triangle type ∈ {0,1} and a tet type ∈ {0..5} select one simplex of the
// Kuhn subdivision of the unit cube (Bey, "Tetrahedral grid refinement",
// Computing 55, 1995). Child b of the Bey subdivision has its anchor at the
// midpoint of vertex 0 and vertex beyIDToVertex[b]; its type and the cube-id
// of its anchor follow from the geometry. The local (SFC) index of a child
// is a function of its own type and cube-id, with the bey-0 child first and
// the opposite-corner child last. All seven tables of each dimension are frozen from an
// exhaustive enumeration of the subdivision; connectivity_test.go replays
// the consistency checks.

// Triangle tables (2 types, 4 children, 4 cube-ids).
var (
	triCidTypeToParentType = [][]int8{
		{0, 1},
		{0, 0},
		{1, 1},
		{0, 1},
	}

	// typeOfChild is indexed by the Bey child number.
	triTypeOfChild = [][]int8{
		{0, 0, 0, 1},
		{1, 1, 1, 0},
	}

	triIndexToBey = [][]int8{
		{0, 1, 3, 2},
		{0, 3, 1, 2},
	}

	triBeyIDToVertex = []int8{0, 1, 2, 1}

	triTypeCidToIloc = [][]int8{
		{0, 1, 1, 3},
		{0, 2, 2, 3},
	}

	triParentTypeIlocToType = [][]int8{
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	triParentTypeIlocToCid = [][]int8{
		{0, 1, 1, 3},
		{0, 2, 2, 3},
	}
)

// Tetrahedron tables (6 types, 8 children, 8 cube-ids).
var (
	tetCidTypeToParentType = [][]int8{
		{0, 1, 2, 3, 4, 5},
		{0, 1, 1, 1, 0, 0},
		{2, 2, 2, 3, 3, 3},
		{1, 1, 2, 2, 2, 1},
		{5, 5, 4, 4, 4, 5},
		{0, 0, 0, 5, 5, 5},
		{4, 3, 3, 3, 4, 4},
		{0, 1, 2, 3, 4, 5},
	}

	tetTypeOfChild = [][]int8{
		{0, 0, 0, 0, 4, 5, 2, 1},
		{1, 1, 1, 1, 3, 2, 5, 0},
		{2, 2, 2, 2, 0, 1, 4, 3},
		{3, 3, 3, 3, 5, 4, 1, 2},
		{4, 4, 4, 4, 2, 3, 0, 5},
		{5, 5, 5, 5, 1, 0, 3, 4},
	}

	tetIndexToBey = [][]int8{
		{0, 1, 4, 5, 2, 7, 6, 3},
		{0, 1, 5, 4, 7, 2, 6, 3},
		{0, 4, 5, 1, 2, 7, 6, 3},
		{0, 1, 5, 4, 6, 7, 2, 3},
		{0, 4, 5, 1, 6, 2, 7, 3},
		{0, 5, 4, 1, 6, 7, 2, 3},
	}

	tetBeyIDToVertex = []int8{0, 1, 2, 3, 1, 1, 2, 2}

	tetTypeCidToIloc = [][]int8{
		{0, 1, 1, 4, 1, 4, 4, 7},
		{0, 1, 2, 5, 2, 5, 4, 7},
		{0, 2, 3, 4, 1, 6, 5, 7},
		{0, 3, 1, 5, 2, 4, 6, 7},
		{0, 2, 2, 6, 3, 5, 5, 7},
		{0, 3, 3, 6, 3, 6, 6, 7},
	}

	tetParentTypeIlocToType = [][]int8{
		{0, 0, 4, 5, 0, 1, 2, 0},
		{1, 1, 2, 3, 0, 1, 5, 1},
		{2, 0, 1, 2, 2, 3, 4, 2},
		{3, 3, 4, 5, 1, 2, 3, 3},
		{4, 2, 3, 4, 0, 4, 5, 4},
		{5, 0, 1, 5, 3, 4, 5, 5},
	}

	tetParentTypeIlocToCid = [][]int8{
		{0, 1, 1, 1, 5, 5, 5, 7},
		{0, 1, 1, 1, 3, 3, 3, 7},
		{0, 2, 2, 2, 3, 3, 3, 7},
		{0, 2, 2, 2, 6, 6, 6, 7},
		{0, 4, 4, 4, 6, 6, 6, 7},
		{0, 4, 4, 4, 5, 5, 5, 7},
	}
)
