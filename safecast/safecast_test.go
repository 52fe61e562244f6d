package safecast_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evoguard/guard"
	"github.com/katalvlaran/evoguard/safecast"
)

// withPanicReporter makes the shared fatal path observable, exactly as
// in the guard package's own tests.
func withPanicReporter(t *testing.T) {
	t.Helper()
	prev := guard.SetReporter(func(msg string) { panic(msg) })
	t.Cleanup(func() { guard.SetReporter(prev) })
}

func mustDie(t *testing.T, marker string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "lossy conversion must not return")
		assert.Contains(t, fmt.Sprint(r), marker, "diagnostic must carry the checked-add marker")
	}()
	fn()
}

// TestTo_SignedToUnsigned covers the sign-crossing direction.
func TestTo_SignedToUnsigned(t *testing.T) {
	withPanicReporter(t)

	assert.Equal(t, uint64(42), safecast.To[uint64](int64(42)), "in-range value must convert exactly")
	assert.Equal(t, uint8(0), safecast.To[uint8](int64(0)), "zero is representable everywhere")

	mustDie(t, "checked add", func() { safecast.To[uint64](int64(-10)) })
	mustDie(t, "checked add", func() { safecast.To[uint8](int64(-1)) })
}

// TestTo_UnsignedToSigned covers overflow of the signed destination.
func TestTo_UnsignedToSigned(t *testing.T) {
	withPanicReporter(t)

	assert.Equal(t, int64(42), safecast.To[int64](uint64(42)), "in-range value must convert exactly")

	mustDie(t, "checked add", func() { safecast.To[int64](uint64(math.MaxUint64)) })
	mustDie(t, "checked add", func() { safecast.To[int8](uint8(200)) })
	mustDie(t, "checked add", func() { safecast.To[int16](uint16(40000)) })
}

// TestTo_Narrowing covers high-to-low precision in both directions,
// including the minimum negative value of the wide type.
func TestTo_Narrowing(t *testing.T) {
	withPanicReporter(t)

	assert.Equal(t, int8(42), safecast.To[int8](int64(42)), "narrowing an in-range value must be exact")
	assert.Equal(t, int8(-42), safecast.To[int8](int64(-42)), "negative in-range values fit the narrow signed type")
	assert.Equal(t, int8(math.MinInt8), safecast.To[int8](int64(-128)), "the narrow minimum itself is representable")

	mustDie(t, "checked add", func() { safecast.To[int8](int64(math.MaxInt64)) })
	mustDie(t, "checked add", func() { safecast.To[int8](int64(math.MinInt64)) })
	mustDie(t, "checked add", func() { safecast.To[int8](int64(128)) })
	mustDie(t, "checked add", func() { safecast.To[int8](int64(-129)) })
	mustDie(t, "checked add", func() { safecast.To[uint8](uint64(256)) })
}

// TestTo_Widening verifies widening never dies, including the sign-
// preserving signed widening of negatives.
func TestTo_Widening(t *testing.T) {
	withPanicReporter(t)

	assert.Equal(t, int64(-1), safecast.To[int64](int8(-1)), "signed widening must preserve the value")
	assert.Equal(t, uint64(255), safecast.To[uint64](uint8(255)), "unsigned widening must preserve the value")
	assert.Equal(t, int64(255), safecast.To[int64](uint8(255)), "unsigned to wider signed always fits")

	// Negative into a wider unsigned is still sign loss, not widening.
	mustDie(t, "checked add", func() { safecast.To[uint64](int8(-1)) })
}

// TestTo_SameWidth pins the boundary values of same-width crossings.
func TestTo_SameWidth(t *testing.T) {
	withPanicReporter(t)

	assert.Equal(t, uint64(math.MaxInt64), safecast.To[uint64](int64(math.MaxInt64)),
		"the signed maximum fits the unsigned type of equal width")
	assert.Equal(t, int64(math.MaxInt64), safecast.To[int64](uint64(math.MaxInt64)),
		"and converts back")

	mustDie(t, "checked add", func() { safecast.To[int64](uint64(math.MaxInt64) + 1) })
	mustDie(t, "checked add", func() { safecast.To[uint](int(-1)) })
}

// TestPow2 checks both a default-width and a size-width exponent type.
func TestPow2(t *testing.T) {
	assert.Equal(t, int64(1), safecast.Pow2(int64(0)), "2^0")
	assert.Equal(t, int64(1024), safecast.Pow2(int64(10)), "2^10")
	assert.Equal(t, int64(1)<<62, safecast.Pow2(int64(62)), "2^62 still fits int64")
	assert.Equal(t, uint(65536), safecast.Pow2(uint(16)), "size-width result")
	assert.Equal(t, uint8(64), safecast.Pow2(uint8(6)), "narrow types work too")
}

// BenchmarkTo measures the success-path cost of a sign-crossing cast.
func BenchmarkTo(b *testing.B) {
	var sink uint32
	for i := 0; i < b.N; i++ {
		sink = safecast.To[uint32](int64(i & math.MaxInt32))
	}
	_ = sink
}
