// Package store persists schedules in SQLite.
//
// The core pipeline is pure; this package is the persistence collaborator the
// CLI wires around it. One row per contributor schedule, one row per
// performance, with a uniqueness constraint on the performance identity
// within a schedule mirroring the in-memory deduplication rule.
package store
