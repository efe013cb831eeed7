// Package exact defines the verifier's sentinel errors and shared constants.
package exact

import (
	"errors"
	"math/big"
)

var (
	// ErrBrokenPath is returned when consecutive record faces are not
	// joined by the claimed edges on the polyhedron.
	ErrBrokenPath = errors.New("exact: path edges do not chain")

	// ErrEngine wraps a failure of the exact engine to decide a
	// comparison. It must not occur; when it does, the stage aborts with
	// the offending record identified.
	ErrEngine = errors.New("exact: engine failure")
)

// two is the rational 2, used by the radius formulas.
var two = big.NewRat(2, 1)

// numDigits is the decimal precision of the stage-1 numeric filter.
const numDigits = 80

// numPrec is the matching big.Float mantissa precision (80 digits ≈ 266
// bits, padded).
const numPrec = 320

// stageEps returns ε = 10⁻³⁰, the stage-1 ambiguity threshold.
func stageEps() *big.Float {
	eps, _, err := big.ParseFloat("1e-30", 10, numPrec, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return eps
}
