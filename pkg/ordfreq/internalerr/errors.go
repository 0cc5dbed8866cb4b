package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrInputUnavailable     = errors.New("input unavailable")
	ErrBlacklistUnavailable = errors.New("blacklist unavailable")
	ErrCacheCorrupt         = errors.New("cache snapshot corrupt")
	ErrUsage                = errors.New("usage")
)
