package seedmix

// golden64 is 2^64 / phi, the usual odd additive constant for
// decorrelating sequential inputs.
const golden64 = 0x9e3779b97f4a7c15

// Mix returns the next state for a generator seeded with seed and
// currently at current. Deterministic: equal inputs always produce
// equal outputs. The shifted-seed terms keep distinct seeds on
// distinct trajectories even from equal starting states.
func Mix(current, seed uint64) uint64 {
	x := current + golden64 + seed<<6 + seed>>2

	// SplitMix64 finalizer: bijective, so Mix(·, seed) permutes uint64.
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
