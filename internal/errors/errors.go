package errors

import (
	stderrors "errors"
	"sort"
	"strings"
)

var (
	ErrNotFound       = stderrors.New("not found")
	ErrUnauthorized   = stderrors.New("unauthorized")
	ErrSessionExpired = stderrors.New("session expired")
	ErrSuperseded     = stderrors.New("superseded by a newer request")
)

type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors maps form fields to user-facing messages.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

// Is reports whether err wraps target. It mirrors the standard library so
// callers need only one errors import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As mirrors the standard library errors.As.
func As(err error, target any) bool { return stderrors.As(err, target) }
