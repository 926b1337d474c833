package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error so handlers can map it to an HTTP status
// without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindPermissionDenied
	KindValidation
)

type Error struct {
	Kind    Kind
	Message string
	// Subject names the offending resource or field, when known.
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Subject)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two apperrors by kind, so errors.Is(err, apperrors.NotFound(...))
// style sentinels work.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func NotFound(msg, subject string) error {
	return &Error{Kind: KindNotFound, Message: msg, Subject: subject}
}

func PermissionDenied(msg, subject string) error {
	return &Error{Kind: KindPermissionDenied, Message: msg, Subject: subject}
}

func Validation(msg, subject string) error {
	return &Error{Kind: KindValidation, Message: msg, Subject: subject}
}

func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf reports the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool         { return KindOf(err) == KindNotFound }
func IsPermissionDenied(err error) bool { return KindOf(err) == KindPermissionDenied }
func IsValidation(err error) bool       { return KindOf(err) == KindValidation }
