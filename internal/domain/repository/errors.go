package repository

import "errors"

// ErrDuplicateKey is returned by implementations when a write violates a
// unique constraint (product name, username, recent-sale product id).
var ErrDuplicateKey = errors.New("duplicate key")
