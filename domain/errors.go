package domain

import "errors"

var (
	// ErrBlankText indicates the submitted text was empty or whitespace-only.
	ErrBlankText = errors.New("text is blank")

	// ErrInvalidText indicates the upstream model rejected the text outright.
	ErrInvalidText = errors.New("text could not be analyzed")
)
