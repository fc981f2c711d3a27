package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when a row does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when a user touches a row they do not own.
	ErrForbidden = errors.New("resource belongs to another user")
)
