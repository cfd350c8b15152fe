// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package intentionally does not implement FFT itself. It operates on
// complex spectrum bins produced by external FFT backends and provides helpers
// for power and magnitude extraction and for mapping between frequencies and
// bin indices.
package spectrum
