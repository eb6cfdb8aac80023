package document

import "errors"

var (
	// ErrNotFound covers both a missing document and one owned by another
	// account; the two are indistinguishable on purpose.
	ErrNotFound     = errors.New("document not found")
	ErrValidation   = errors.New("invalid document input")
	ErrInvalidType  = errors.New("invalid document type")
	ErrFileRequired = errors.New("file is required")
)
