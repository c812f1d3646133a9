package usecase

import "errors"

// ErrNotFound is returned when no reminder with the given id exists
// under the requesting owner, including ids owned by someone else.
var ErrNotFound = errors.New("reminder not found")
