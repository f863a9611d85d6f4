// Package storage defines the persistence interfaces for the cat battle
// backend.
//
// It abstracts the account, statistic, and cat lucky ledger records so the
// game engine and HTTP handlers never touch SQL directly. The SQLite
// implementation lives in the sqlite subpackage.
//
// ErrNotFound is the common miss signal across implementations; callers that
// can synthesize a default record (the cat lucky ledger) treat it as the
// default rather than a failure.
package storage
