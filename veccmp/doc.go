// Package veccmp compares dense vectors approximately, for use in
// numerical test assertions.
//
// VectorEq checks a gonum vector against an expected []float64 within a
// fixed Euclidean tolerance. A length mismatch is reported to Output
// (stdout by default) and yields false without computing a norm; it is
// the only diagnostic this package emits, and the only recoverable
// failure in the module — everything else here is a plain boolean.
package veccmp
