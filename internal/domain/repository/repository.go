package repository

import "errors"

// ErrNotFound is returned (wrapped) by every repository when the requested
// document does not exist in the caller's namespace.
var ErrNotFound = errors.New("record not found")
