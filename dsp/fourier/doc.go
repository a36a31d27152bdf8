// Package fourier provides a small complex value type and discrete Fourier
// transforms over it.
//
// Transforms:
//   - [DFT]:  brute-force O(n²) transform of a real sequence
//   - [FFT]:  recursive radix-2 Cooley-Tukey, power-of-two lengths only
//   - [IFFT]: inverse of [FFT] via the conjugate trick
//   - [Plan]: the same contract backed by a precomputed algo-fft plan
//
// Normalization is selected with [WithNormalization]. The default
// [NormForward] applies 1/n on the forward transforms ([DFT], [FFT]) and
// leaves the inverse unscaled, so IFFT(FFT(v)) reproduces v and DFT(v)
// matches FFT(v) for real v.
//
// [Magnitude], [Power] and [Phase] extract per-bin spectra from transform
// output.
package fourier
