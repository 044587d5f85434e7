package usecase

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrReferenceNotFound     = crerr.New("referenced resource not found")
	ErrConflict              = crerr.New("conflict")
	ErrUnauthorized          = crerr.New("unauthorized")
	ErrForbidden             = crerr.New("forbidden")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)

// ValidationError lists every violated rule of one request.
type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string {
	return e.Message + ": " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// UserError wraps kind and attaches message as the single user-facing hint.
func UserError(kind error, message string) error {
	return crerr.WithHint(crerr.Wrap(kind, message), message)
}

// UserMessage returns the user-facing hint attached to err, if any.
func UserMessage(err error) string {
	if hints := crerr.GetAllHints(err); len(hints) > 0 {
		return hints[0]
	}
	return ""
}
