// Package common defines shared sentinel errors used across the store and
// service layers of MoodKeeper. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrUnexpected marks a generic read/fetch failure in the record store.
	ErrUnexpected = errors.New("unexpected store error")

	// ErrContextSave marks a write/commit failure in the record store.
	ErrContextSave = errors.New("context save error")

	// ErrEntityNotFound is reserved for call sites that require an entity to
	// exist. The store boundary itself never raises it: absent records are
	// reported as nil results, absent deletes are no-ops.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrStoreClosed is returned for operations issued after Close.
	ErrStoreClosed = errors.New("record store is closed")
)
