package guard

import "fmt"

// Diagnostic markers carried by each failure kind. Exported so callers
// and tests can match on them without duplicating string literals.
const (
	MsgNonPositive = "guard: Found non-positive."
	MsgNull        = "guard: Found null."
	MsgEmpty       = "guard: Found empty."
	MsgTooLarge    = "guard: Too large."
)

// Real enumerates the ordered numeric types PositiveOrDie accepts:
// the signed integers and the floating-point widths.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// PositiveOrDie returns x unchanged if x > 0, and dies otherwise.
// The same strict comparison applies to integer and float arguments.
func PositiveOrDie[T Real](x T) T {
	if x <= 0 {
		Die(fmt.Sprintf("%s got %v", MsgNonPositive, x))
	}

	return x
}

// NotNullOrDie returns p unchanged if p is non-nil, and dies otherwise.
// Ownership is untouched: the caller keeps whatever p points at.
func NotNullOrDie[T any](p *T) *T {
	if p == nil {
		Die(MsgNull)
	}

	return p
}

// NonEmptyOrDie returns s unchanged if it holds at least one element,
// and dies otherwise. The slice header is returned as-is; the backing
// array is never copied.
func NonEmptyOrDie[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		Die(MsgEmpty)
	}

	return s
}

// NonEmptyPtrOrDie is the pointer shape of NonEmptyOrDie: it returns p
// unchanged if *p holds at least one element. A nil p dies as null
// before emptiness is ever examined.
func NonEmptyPtrOrDie[S ~[]E, E any](p *S) *S {
	if len(*NotNullOrDie(p)) == 0 {
		Die(MsgEmpty)
	}

	return p
}

// SizeLessThanOrDie returns s unchanged if len(s) < bound, and dies
// otherwise. Equality counts as a violation: the guard succeeds only
// strictly below the bound.
func SizeLessThanOrDie[S ~[]E, E any](s S, bound int) S {
	if len(s) >= bound {
		Die(fmt.Sprintf("%s len=%d bound=%d", MsgTooLarge, len(s), bound))
	}

	return s
}

// SizePtrLessThanOrDie is the pointer shape of SizeLessThanOrDie.
// A nil p dies as null before the size is examined.
func SizePtrLessThanOrDie[S ~[]E, E any](p *S, bound int) *S {
	if n := len(*NotNullOrDie(p)); n >= bound {
		Die(fmt.Sprintf("%s len=%d bound=%d", MsgTooLarge, n, bound))
	}

	return p
}
