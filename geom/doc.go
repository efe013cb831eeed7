// Package geom provides the floating-point geometry primitives for regular
// polygons with unit edge length, used by the unfolding search and the
// record codec.
//
// What:
//
//   - Inradius(n), Circumradius(n): radii of the inscribed and circumscribed
//     circles of a regular n-gon with edge length 1
//   - NormalizeAngle(deg): folds an angle into [-180, 180] degrees
//   - DistanceFromOrigin(x, y): Euclidean distance from (0, 0)
//   - Round6(v): rounds to six decimal places, half away from zero
//   - SnapZero(v): clamps values below 1e-10 in magnitude to exactly 0
//   - Buffer: the positive slack used by the approximate overlap gate
//
// Why:
//
//	The enumerator works in float64 and only decides which partial
//	unfoldings MIGHT overlap; exact decisions happen downstream in the
//	verifier. These helpers keep the numeric conventions (rounding mode,
//	snap threshold, slack) in one place so every stage agrees on them.
//
// All functions are pure; none allocate.
package geom
