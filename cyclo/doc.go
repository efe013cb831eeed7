// Package cyclo implements exact arithmetic in cyclotomic fields Q(ζ_N),
// the algebraic-number substrate of the exact overlap verifier.
//
// What:
//
//   - Field: the field Q(ζ_N) for ζ_N = e^{2πi/N}, represented as
//     Q[x]/Φ_N(x) with the cyclotomic polynomial Φ_N computed on demand
//   - Elem: an immutable field element — a dense vector of big.Rat
//     coefficients of 1, ζ, ζ², …, ζ^{φ(N)-1}
//   - ring and field operations (Add, Sub, Neg, Mul, Inv, Div), exact
//     IsZero/Equal, and the trigonometric constructors CosPi and SinPi
//   - Sign and Float: numeric evaluation of real-valued elements at
//     arbitrary precision, with interval refinement for sign decisions
//
// Why:
//
//	Every coordinate of an unfolded face is a rational combination of
//	sin(kπ/m) and cos(kπ/m) for the gons m on the path. All such values
//	lie in one cyclotomic field, where equality with zero is decidable by
//	canonical reduction: Φ_N is irreducible over Q, so an element is zero
//	iff every coefficient is zero. Sign decisions first test exact zero,
//	then evaluate at doubling precision until the value provably clears
//	its error bound — termination is guaranteed because the value is
//	known to be nonzero.
//
// Identities such as cos(π/5) - cos(2π/5) = 1/2, invisible to term
// rewriting, reduce to the zero vector here.
//
// Elements of distinct fields must not be mixed; doing so is a
// programming error and panics. Division by zero panics likewise. The
// verifier constructs one field per record, so neither occurs there.
//
// Complexity: Mul is O(φ(N)²) big.Rat multiplications; Inv runs the
// extended Euclidean algorithm over Q[x], O(φ(N)²) arithmetic steps.
// Fields cache their trigonometric tables per evaluation precision.
package cyclo
