package store

import "errors"

// ErrInvalidInput is returned when a request body does not have the required shape.
var ErrInvalidInput = errors.New("invalid input")

// ErrMissingName is returned when an operation needs an item name and none was given.
var ErrMissingName = errors.New("name is required")

// ErrNotFound is returned when a targeted item does not exist.
var ErrNotFound = errors.New("not found")
