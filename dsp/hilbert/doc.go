// Package hilbert computes the discrete analytic signal of a finite real
// block using the FFT method: the spectrum is transformed, negative
// frequencies are zeroed, positive frequencies doubled, and the result is
// transformed back. The imaginary part of the analytic signal is the
// Hilbert transform of the input.
//
// The block is treated as one period of a periodic signal, so a sinusoid
// with an integer number of cycles in the block transforms exactly
// (sin -> -cos, cos -> sin).
//
// Any block length is transformed exactly. Power-of-two lengths use one
// FFT plan, other lengths Bluestein's chirp-z algorithm on power-of-two
// plans.
//
// Plans are created per call; the functions are safe for concurrent use.
package hilbert
