// Package apperr carries a failure kind from the data layer to the HTTP
// boundary, where it is mapped to a status code.
package apperr

import "errors"

type Kind int

const (
	Internal Kind = iota
	NotFound
	Forbidden
	Validation
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func NewNotFound(msg string) error   { return &Error{Kind: NotFound, Msg: msg} }
func NewForbidden(msg string) error  { return &Error{Kind: Forbidden, Msg: msg} }
func NewValidation(msg string) error { return &Error{Kind: Validation, Msg: msg} }

// Wrap attaches an internal kind to an unexpected error.
func Wrap(msg string, err error) error {
	return &Error{Kind: Internal, Msg: msg, Err: err}
}

// KindOf extracts the kind; unknown errors count as Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
