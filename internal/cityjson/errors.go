package cityjson

import "errors"

var (
	// ErrNotFound reports a path that does not resolve to a readable file.
	ErrNotFound = errors.New("cityjson: file not found")
	// ErrMalformedInput reports file content that is not valid JSON.
	ErrMalformedInput = errors.New("cityjson: malformed JSON")
	// ErrInvalidFormat reports valid JSON whose top-level "type" is absent
	// or not the literal "CityJSON".
	ErrInvalidFormat = errors.New("cityjson: not a CityJSON document")
)
