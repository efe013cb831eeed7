package cyclo_test

import (
	"fmt"
	"math/big"

	"github.com/unfoldlab/rotunfold/cyclo"
)

// ExampleElem_IsZero shows an identity that plain term rewriting cannot
// see: cos(π/5) - cos(2π/5) = 1/2. In Q(ζ_20) the difference reduces to
// the zero vector, so the engine decides it exactly.
func ExampleElem_IsZero() {
	f := cyclo.NewField(20)

	a, _ := f.CosPi(1, 5)
	b, _ := f.CosPi(2, 5)
	half := f.FromRat(big.NewRat(1, 2))

	diff := a.Sub(b).Sub(half)
	fmt.Println("cos(π/5) - cos(2π/5) - 1/2 == 0:", diff.IsZero())
	fmt.Println("sign of cos(π/5) - cos(2π/5):", a.Sub(b).Sign())

	// Output:
	// cos(π/5) - cos(2π/5) - 1/2 == 0: true
	// sign of cos(π/5) - cos(2π/5): 1
}
