// Package segment slices fixed-length recordings into overlapping windows.
//
// The package only computes framing geometry and hands out slice views; it
// never copies sample data. Windows are produced in chronological order and
// trailing samples that do not fill a complete window are discarded.
package segment
