package polyhedron

// Reference solids used throughout the tests and examples. Edge cycles
// are counter-clockwise as seen from outside.

// Tetrahedron returns the regular tetrahedron. Faces: 0=ABC, 1=ADB,
// 2=ACD, 3=BDC over vertices A..D; edges AB=0, AC=1, AD=2, BC=3, BD=4,
// CD=5.
func Tetrahedron() *Polyhedron {
	return &Polyhedron{
		Class:    "regular",
		Name:     "r01",
		NumFaces: 4,
		Gons:     []int{3, 3, 3, 3},
		Edges: [][]int{
			{0, 3, 1}, // ABC: AB, BC, CA
			{2, 4, 0}, // ADB: AD, DB, BA
			{1, 5, 2}, // ACD: AC, CD, DA
			{4, 5, 3}, // BDC: BD, DC, CB
		},
		Neighbors: [][]int{
			{1, 3, 2},
			{2, 3, 0},
			{0, 3, 1},
			{1, 2, 0},
		},
	}
}

// SquarePyramid returns the Johnson solid J1: a square base (face 0) and
// four triangles around the apex. Base edges 0..3, slant edges 4..7.
func SquarePyramid() *Polyhedron {
	return &Polyhedron{
		Class:    "johnson",
		Name:     "n01",
		NumFaces: 5,
		Gons:     []int{4, 3, 3, 3, 3},
		Edges: [][]int{
			{3, 2, 1, 0}, // base, seen from below
			{0, 5, 4},
			{1, 6, 5},
			{2, 7, 6},
			{3, 4, 7},
		},
		Neighbors: [][]int{
			{4, 3, 2, 1},
			{0, 2, 4},
			{0, 3, 1},
			{0, 4, 2},
			{0, 1, 3},
		},
	}
}
