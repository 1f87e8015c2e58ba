package store

import "errors"

// Sentinel errors shared by the local and remote stores.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
)
