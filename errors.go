package browserdetails

import "errors"

var (
	// ErrFormTooLarge is returned when a form body exceeds the peek limit.
	ErrFormTooLarge = errors.New("form body exceeds inspection limit")

	// ErrUnsupportedForm is returned for bodies that are not url-encoded or multipart forms.
	ErrUnsupportedForm = errors.New("unsupported form content type")
)
