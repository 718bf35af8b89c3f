package shared

import "errors"

// error kinds surfaced by the review surface. Every approval state transition failure
// is one of them; they are never swallowed.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
)

// ErrStaleProposedFix is returned by a conditional update when the row no longer matches
// the expected status and version.
var ErrStaleProposedFix = errors.New("proposed fix was modified concurrently")

// TypedError carries a user facing message together with its kind.
type TypedError struct {
	Kind    error
	Message string
}

func (e *TypedError) Error() string {
	return e.Message
}

func (e *TypedError) Unwrap() error {
	return e.Kind
}

func NewNotFoundError(message string) error {
	return &TypedError{Kind: ErrNotFound, Message: message}
}

func NewForbiddenError(message string) error {
	return &TypedError{Kind: ErrForbidden, Message: message}
}

func NewConflictError(message string) error {
	return &TypedError{Kind: ErrConflict, Message: message}
}

func NewBadRequestError(message string) error {
	return &TypedError{Kind: ErrBadRequest, Message: message}
}
