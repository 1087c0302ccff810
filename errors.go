package cutter

import "errors"

// Errors returned by classification and by exception lists.
var (
	ErrTooShort         = errors.New("cutter: word must have at least 2 letters")
	ErrInvalidCharacter = errors.New("cutter: word must contain letters only")
	ErrMalformedCode    = errors.New("cutter: malformed Cutter number")
)

// Messages shown to users in place of a Cutter number.
const (
	TooShortMessage         = "Use at least 2 letters."
	InvalidCharacterMessage = "Please only use letters."
)

// Message returns the text to display for a classification error.
// Errors other than ErrTooShort and ErrInvalidCharacter are returned as
// err.Error(); a nil error yields an empty string.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTooShort):
		return TooShortMessage
	case errors.Is(err, ErrInvalidCharacter):
		return InvalidCharacterMessage
	}
	return err.Error()
}
