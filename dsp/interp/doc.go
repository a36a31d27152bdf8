// Package interp reconstructs a function from samples on an equally spaced
// grid and evaluates it at arbitrary points.
//
// Every method implements [Method]: Init(a, b, y) places y[i] at
// a + i·(b-a)/(len(y)-1); Evaluate(z) returns the reconstructed value.
// Available methods, from cheapest to smoothest:
//
//   - [NearestNeighbor]:  value of the closest grid point (ties go right)
//   - [PiecewiseLinear]:  straight segments, clamped outside [a, b]
//   - [NewtonPolynomial]: single interpolating polynomial, extrapolates
//   - [CubicSpline]:      C¹ cubic Hermite spline with zero end slopes,
//     clamped outside [a, b]
//
// The [Kind] enum and [New] select a method at run time. [Separable] extends
// any method to cartesian 2D grids by interpolating rows, then columns.
//
// Method values keep state between Init and Evaluate and are not safe for
// concurrent use; use one instance per goroutine.
package interp
