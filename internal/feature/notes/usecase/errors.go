package usecase

import "errors"

// ErrNotFound is returned when no note with the given id exists under
// the requesting owner, including ids owned by someone else.
var ErrNotFound = errors.New("note not found")
