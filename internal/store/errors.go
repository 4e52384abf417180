package store

import "errors"

// ErrNotFound indicates no stored schedule matches the requested owner.
var ErrNotFound = errors.New("schedule not found")

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")
