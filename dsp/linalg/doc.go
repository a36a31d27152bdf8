// Package linalg provides the banded linear-algebra primitives used by the
// interpolation package.
//
// [Tridiagonal] stores the three bands of an n×n tridiagonal matrix and solves
// A·x = b with the Thomas algorithm: one forward elimination pass followed by
// back substitution, O(n) time and memory.
//
// The solver does not pivot. It is exact (up to rounding) for diagonally
// dominant matrices such as the spline systems built by package interp. For
// matrices that hit a zero or tiny pivot the result contains NaN or Inf; this
// is not reported as an error.
package linalg
