// Package errs carries the error taxonomy the API boundary maps onto HTTP
// status codes: validation failures, malformed identifiers, missing documents,
// and unexpected store failures.
package errs

import "errors"

type Kind int

const (
	KindStore Kind = iota // unexpected database failure
	KindValidation
	KindInvalidID
	KindNotFound
)

// Error pairs a kind with the exact message sent to the client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func InvalidID(msg string) *Error  { return &Error{Kind: KindInvalidID, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }

// Store wraps a database error, surfacing its message like the upstream API did.
func Store(err error) *Error { return &Error{Kind: KindStore, Message: err.Error(), Err: err} }

// KindOf classifies any error; plain errors count as store failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}
