package service

import "errors"

var (
	// ErrNotFound covers both a missing resource and a resource owned by
	// someone else. Collapsing the two keeps other owners' records invisible.
	ErrNotFound = errors.New("resource not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)
