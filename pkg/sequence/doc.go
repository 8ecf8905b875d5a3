// Package sequence provides pull-based value iterators for fixture generation.
//
// Two iterator flavors are available:
//   - Cycle yields the elements of a fixed domain in order, wrapping around
//     indefinitely. Useful for pairing per-instance overrides with batch
//     indices.
//   - Sample yields a uniformly random element on each draw, never repeating
//     the immediately preceding value (for domains with more than one
//     element).
//
// Both fail construction on an empty domain and are consumed via explicit
// Next calls; neither is rewindable.
//
// The package also provides Store, a thread-safe registry of named
// auto-incrementing counters for monotonically increasing fixture IDs.
package sequence
