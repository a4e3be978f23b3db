package assets

import (
	"fmt"
	"io/fs"

	"github.com/pkg/errors"
)

// ErrorType classifies a load failure.
type ErrorType string

const (
	ErrNotFound ErrorType = "not_found"
	ErrIO       ErrorType = "io"
	ErrParse    ErrorType = "parse"
	ErrEmpty    ErrorType = "empty"
)

// LoadError describes why a model could not be loaded.
type LoadError struct {
	Message string
	Type    ErrorType
	Stack   string // trace captured where the failure was first seen

	err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load model (%s): %s", e.Type, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.err
}

// kindError tags err with a failure class.
type kindError struct {
	kind ErrorType
	err  error
}

func withKind(kind ErrorType, err error) error {
	return &kindError{kind: kind, err: err}
}

func (e *kindError) Error() string { return e.err.Error() }
func (e *kindError) Unwrap() error { return e.err }

// Format passes %+v through so the wrapped stack trace is printed.
func (e *kindError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", e.err)
		return
	}
	fmt.Fprint(s, e.err.Error())
}

func newLoadError(err error) *LoadError {
	return &LoadError{
		Message: err.Error(),
		Type:    classify(err),
		Stack:   fmt.Sprintf("%+v", err),
		err:     err,
	}
}

func classify(err error) ErrorType {
	var ke *kindError
	switch {
	case errors.As(err, &ke):
		return ke.kind
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	default:
		return ErrIO
	}
}
