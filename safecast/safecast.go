package safecast

import (
	"fmt"

	"github.com/katalvlaran/evoguard/guard"
)

// MsgCheckedAdd is the diagnostic marker carried by every lossy
// conversion, matching the checked-addition framing of the contract.
const MsgCheckedAdd = "safecast: checked add failed"

// Integer enumerates the fixed-width integer types To converts between.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// To converts v to Dst, succeeding only when the mathematical value of v
// is exactly representable in Dst. Any information-losing conversion —
// a negative value into an unsigned destination, magnitude overflow, or
// narrowing truncation — dies through the shared fatal Reporter.
//
// Dst is given explicitly, Src is inferred from the argument:
//
//	u := safecast.To[uint64](int64(42))
func To[Dst, Src Integer](v Src) Dst {
	d := Dst(v)
	// Lossless iff the value round-trips and keeps its sign. The sign
	// comparison catches the wrap-arounds that round-trip cleanly, such
	// as int64(-10) → uint64 → int64(-10).
	if Src(d) != v || (v < 0) != (d < 0) {
		guard.Die(fmt.Sprintf("%s: %v not representable in destination", MsgCheckedAdd, v))
	}

	return d
}
