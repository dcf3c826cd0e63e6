package domain

import "errors"

var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotFound       = errors.New("not found")
	ErrNoRowsAffected = errors.New("no rows affected")

	ErrMissingParams   = errors.New("missing params")
	ErrMalformedLookup = errors.New("malformed lookup")
	ErrInvalidIdentity = errors.New("invalid identity")
)
