package unfold_test

import (
	"fmt"

	"github.com/unfoldlab/rotunfold/polyhedron"
	"github.com/unfoldlab/rotunfold/record"
	"github.com/unfoldlab/rotunfold/unfold"
)

// ExampleSearch enumerates the candidate partial unfoldings of a
// regular tetrahedron rooted at face 0, edge 0. The two- and three-face
// prefixes pass the circumcircle gate while the four-face paths end too
// far from the base face, so three records come out, in deterministic
// counter-clockwise order.
func ExampleSearch() {
	p := polyhedron.Tetrahedron()

	n, err := unfold.Search(p, polyhedron.RootPair{BaseFace: 0, BaseEdge: 0},
		unfold.WithEmit(func(rec *record.Record) error {
			for i, f := range rec.Faces {
				if i > 0 {
					fmt.Print("-")
				}
				fmt.Print(f.FaceID)
			}
			fmt.Println()
			return nil
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("records:", n)

	// Output:
	// 0-1
	// 0-1-2
	// 0-1-3
	// records: 3
}
