// Package guard provides fail-fast invariant guards: validation functions
// that return their argument unchanged when the invariant holds, and
// terminate the process with a diagnostic when it does not.
//
// What
//
//   - PositiveOrDie(x)           — x must be strictly greater than zero
//   - NotNullOrDie(p)            — p must be a non-nil pointer
//   - NonEmptyOrDie(s)           — s must hold at least one element
//   - NonEmptyPtrOrDie(p)        — pointer shape of NonEmptyOrDie
//   - SizeLessThanOrDie(s, n)    — len(s) must be strictly less than n
//   - SizePtrLessThanOrDie(p, n) — pointer shape of SizeLessThanOrDie
//
// Every guard is a total function: it either returns its input exactly as
// given (same value, same slice header, same pointer) or it never returns.
// There is no partial-success state and no recoverable error value.
//
// Why
//
//	Guards turn "this should never happen" states into immediate, loud
//	termination instead of silent data corruption. Callers sprinkle them
//	on preconditions the way they would use assertions, and rely on the
//	success path being a free identity.
//
// Reporter
//
//	All guards (and the safecast package) share one fatal Reporter. The
//	default logs the diagnostic through zap at Fatal level and exits.
//	Tests install a panicking Reporter via SetReporter so the failure
//	path can be observed without killing the test binary:
//
//	    prev := guard.SetReporter(func(msg string) { panic(msg) })
//	    defer guard.SetReporter(prev)
//
// Diagnostics
//
//	Each failure kind carries a fixed marker substring so callers and
//	tests can match on it: "Found non-positive.", "Found null.",
//	"Found empty.", "Too large.". Messages are prefixed "guard: ".
//
// Complexity
//
//   - Time:   O(1) per guard call
//   - Memory: zero allocations on the success path
package guard
