package domain

import "errors"

// Backend error types

var (
	// ErrBackendUnavailable indicates the shop backend could not be reached
	ErrBackendUnavailable = errors.New("shop backend unavailable")

	// ErrInvalidRequest indicates the backend rejected a request (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound indicates a requested resource does not exist on the backend
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthenticated indicates an operation that needs a signed-in session was
	// attempted as a guest
	ErrUnauthenticated = errors.New("authentication required")
)
