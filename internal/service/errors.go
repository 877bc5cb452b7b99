package service

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable marks backing-store failures (registry or pending set
	// unreachable) so callers can tell an outage apart from a reject.
	ErrUnavailable = errors.New("unavailable")
)
