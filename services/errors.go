package services

import "errors"

var (
	// ErrNotFound covers both genuinely missing records and records owned
	// by someone else, so existence never leaks across owners.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken signals a registration attempt with an already
	// registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials signals a failed email/password check.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
