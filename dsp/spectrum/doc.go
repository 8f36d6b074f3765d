// Package spectrum computes one-sided amplitude spectra of real signals.
//
// Magnitude extraction from complex bins uses the SIMD kernels of
// algo-vecmath; the FFT itself comes from algo-fft. Input blocks are
// windowed and zero-padded to the next power of two.
package spectrum
