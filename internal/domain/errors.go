package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound    = errors.New("not found")
	ErrFetchFailed = errors.New("fetch failed")
)
