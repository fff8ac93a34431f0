package repositories

import "errors"

// ErrNotFound is wrapped by every repository when a referenced row does not
// exist, so callers can test with errors.Is regardless of entity.
var ErrNotFound = errors.New("not found")
