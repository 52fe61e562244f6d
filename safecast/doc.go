// Package safecast provides checked conversion between integer types of
// any width and signedness, plus a small power-of-two helper.
//
// What
//
//   - To[Dst](v)  — convert v to Dst, terminating the process unless the
//     mathematical value of v is exactly representable in Dst
//   - Pow2(exp)   — 2^exp in the exponent's own integer type
//
// Why
//
//	Plain Go conversions silently wrap: int64→uint64 turns -10 into a
//	huge positive, int64→int8 keeps only the low byte. Anywhere a value
//	crosses a width or signedness boundary, To guarantees the crossing
//	loses nothing — sign loss, magnitude overflow, and truncation all
//	terminate with a diagnostic instead of continuing with a wrong value.
//
// How
//
//	To models the conversion as a checked addition of v onto the zero of
//	the destination domain: the result must round-trip back to the source
//	type and agree with it in sign. Those two comparisons reject exactly
//	the value set a wide intermediate would reject, for every pairing of
//	signed/unsigned and every width pairing, with no arithmetic wider
//	than the operands themselves.
//
// Diagnostics
//
//	Failures share the guard package's fatal Reporter and carry the
//	"checked add" marker, e.g.
//
//	    safecast: checked add failed: -10 not representable in destination
//
// Usage
//
//	idx := safecast.To[uint32](rowCount)     // Src inferred, Dst explicit
//	cap := safecast.Pow2(uint(16))           // 65536
//
// Complexity: O(1), zero allocations, success path is two comparisons.
package safecast
