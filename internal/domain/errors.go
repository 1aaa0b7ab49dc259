package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates the server or a boundary check rejected the payload.
	ErrValidation = errors.New("invalid input")
	// ErrNetwork indicates a request never reached the server.
	ErrNetwork = errors.New("network error")
)
