package safecast

// Pow2 returns 2 raised to exp in exp's own integer type, so callers get
// the default-width or size-width result by choosing the argument type.
// exp must be non-negative and small enough for the result to fit the
// type's width; a negative exp panics via Go's shift semantics.
func Pow2[T Integer](exp T) T {
	return 1 << exp
}
