package domain

import "errors"

var (
	// ErrInvalidFormat means the roster text has no resolvable columns or
	// no usable data rows. Fatal to that load; never retried.
	ErrInvalidFormat = errors.New("invalid roster format")

	// ErrNoDocument means the extractor could not obtain a notification
	// document at all. Per-row parse failures are never errors.
	ErrNoDocument = errors.New("no document available")
)
