package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrTooManyRecords  = errors.New("too many records")
	ErrMissingSubject  = errors.New("missing subject")
	ErrSubjectNotFound = errors.New("subject not found")
)
