// Package seedmix provides a deterministic state mixer for seeded
// pseudo-random sequences.
//
// Mix folds a seed into a running state value and scrambles the result,
// so a caller-owned generator can thread state through successive calls:
//
//	state := seed
//	for i := 0; i < n; i++ {
//		state = seedmix.Mix(state, seed)
//		// derive the i-th value from state
//	}
//
// For a fixed seed the transform is a bijection on uint64 (an additive
// shift followed by the SplitMix64 finalizer), so iterating it cannot
// collide before completing a full cycle — short runs are guaranteed
// pairwise distinct. No statistical quality beyond that is promised.
package seedmix
