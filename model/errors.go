package model

import "errors"

var (
	// ErrInvalidSelection is returned when a requested selection does not fit
	// the text it refers to.
	ErrInvalidSelection = errors.New("model: invalid selection")

	// ErrInvalidUTF8 is returned when input text is not well-formed UTF-8 and
	// the session decodes with DecodeStrict.
	ErrInvalidUTF8 = errors.New("model: invalid utf-8")
)
