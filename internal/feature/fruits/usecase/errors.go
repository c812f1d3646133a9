package usecase

import "errors"

// ErrNotFound is returned when no fruit with the given id exists under
// the requesting owner. A record owned by someone else produces the
// same error, so ids never leak across users.
var ErrNotFound = errors.New("fruit not found")
