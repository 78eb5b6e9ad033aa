// Package apperr defines sentinel errors shared across service surfaces.
package apperr

import "errors"

var ErrNotFound = errors.New("not found")
