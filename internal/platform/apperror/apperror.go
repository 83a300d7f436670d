// Package apperror defines the error taxonomy shared by all repositories and
// services. Storage-layer errors are converted at the repository boundary so
// handlers only ever see one of the kinds below.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	// KindNotFound means a referenced entity does not exist.
	KindNotFound Kind = iota + 1
	// KindValidation means the input was malformed and rejected before any write.
	KindValidation
	// KindIntegrity means the operation would orphan a reference.
	KindIntegrity
	// KindExternalResource means a required external asset (e.g. the claim
	// form template) is unavailable.
	KindExternalResource
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindIntegrity:
		return "integrity_violation"
	case KindExternalResource:
		return "external_resource"
	default:
		return "unknown"
	}
}

// Error is a classified application error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports a missing entity.
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Validation reports malformed input.
func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Integrity reports an operation that would orphan a reference.
func Integrity(format string, args ...interface{}) error {
	return &Error{Kind: KindIntegrity, Msg: fmt.Sprintf(format, args...)}
}

// ExternalResource reports an unavailable external asset.
func ExternalResource(msg string, err error) error {
	return &Error{Kind: KindExternalResource, Msg: msg, Err: err}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, err error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

// IsNotFound reports whether err is classified as a missing entity.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsValidation reports whether err is classified as malformed input.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsIntegrity reports whether err is classified as an integrity violation.
func IsIntegrity(err error) bool { return KindOf(err) == KindIntegrity }

// IsExternalResource reports whether err is classified as a missing external asset.
func IsExternalResource(err error) bool { return KindOf(err) == KindExternalResource }
