package util

import "errors"

var (
	ErrTestNotFound       = errors.New("test not found")
	ErrAttemptNotFound    = errors.New("no active attempt")
	ErrAttemptExists      = errors.New("active attempt already exists")
	ErrAttemptFinalized   = errors.New("attempt already finalized")
	ErrInvalidWeekNumber  = errors.New("invalid week number")
	ErrInvalidGameMetrics = errors.New("rejected game metrics")
)
