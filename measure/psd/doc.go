// Package psd estimates power spectral densities of multichannel
// recordings with a median-Welch method.
//
// The recording is segmented into overlapping windows, each window is Hann
// tapered, zero-padded to a power of two and transformed; per-bin power is
// then collapsed across windows with a median (robust against windows
// contaminated by transient artifacts) and converted into a density by the
// taper's equivalent noise bandwidth. Results are reported as log10 values
// on a frequency grid spaced at the reciprocal of the window duration.
package psd
