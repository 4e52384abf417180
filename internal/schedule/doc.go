// Package schedule defines the performance data model shared across the
// pipeline: performance records with identity-based deduplication, per-owner
// schedules, and free-time gap computation within the festival-day window.
//
// Identity for deduplication is the triple (lowercased artist, lowercased
// stage, start truncated to the minute). Two records that agree on the triple
// are the same real-world set regardless of casing or whitespace.
//
// All functions are pure transforms; malformed records are filtered rather
// than reported so partial results stay available.
package schedule
