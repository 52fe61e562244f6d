// Package evoguard is a small toolbox of fail-fast invariant guards and
// checked numeric conversions, built to be called pervasively from
// numerical and evolutionary-search code.
//
// 🚀 What is evoguard?
//
//	A tiny, focused library that brings together:
//		• Guards: positivity, non-nil, non-empty, size-bounded — each returns
//		  its input unchanged or terminates the process with a diagnostic
//		• Safe casts: generic integer conversion that refuses to lose a bit
//		  across any signed/unsigned or width pairing
//		• Seed mixing: a deterministic state mixer for decorrelating
//		  pseudo-random sequences
//		• Vector comparison: tolerance-based equality for dense vectors,
//		  made for numerical test assertions
//
// ✨ Why choose evoguard?
//
//   - Fail loud, fail fast – violations terminate instead of corrupting data
//   - Zero allocation on the success path – guards are identity functions
//   - Substitutable reporter – swap the fatal path for a panic in tests
//   - Generic – one implementation per invariant, reused across shapes
//
// Everything is organized under four subpackages:
//
//	guard/    — invariant guards and the shared fatal Reporter
//	safecast/ — checked integer conversion + power-of-two helper
//	seedmix/  — deterministic state mixing for seeded random sequences
//	veccmp/   — approximate comparison of dense vectors (gonum)
//
// Quick example:
//
//	n := guard.PositiveOrDie(cfg.PopulationSize)
//	idx := safecast.To[uint32](n)
//
// Dive into each subpackage's doc.go for contracts, diagnostics, and
// worked examples.
package evoguard
