// Package resample rescales two-dimensional sample planes with the separable
// interpolators of package interp.
//
// A plane is indexed plane[x][y] with width = len(plane) and
// height = len(plane[0]). Samples are treated as cell centres on the unit
// square: sample i of n sits at (i + 0.5)/n, see [PixelCenters]. Rescaling
// evaluates the source interpolant at the target centres.
//
// Common workflows:
//   - Scale(plane, w, h, opts...)
//   - ScaleFactor(plane, f, opts...)
//
// The package carries no pixel-format knowledge; split colour images into
// one plane per channel.
package resample
