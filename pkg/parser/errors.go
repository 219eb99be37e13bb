package parser

import (
	"errors"
	"strings"

	"github.com/samber/lo"

	"github.com/ib-77/ropparse/pkg/value"
)

var (
	ErrFailed         = errors.New("parse failed")
	ErrWrongKind      = errors.New("wrong kind")
	ErrNotObject      = errors.New("not an object")
	ErrMissingField   = errors.New("missing field")
	ErrNotArray       = errors.New("not an array")
	ErrMissingIndex   = errors.New("missing index")
	ErrInvalidDate    = errors.New("invalid date")
	ErrEmptyPath      = errors.New("empty path")
	ErrNoAlternatives = errors.New("no alternatives")
)

// Error is the failure produced by the parsers of this package. Cause is one
// of the Err* sentinels, or the error of an inner parser when Error only adds
// location.
type Error struct {
	// Path locates the failing value from the input root, e.g. "items[2].id".
	Path  []string
	Cause error
	Got   value.Value
	Msg   string
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Msg
	}
	return "at " + e.Location() + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Location() string {
	var b strings.Builder
	for i, seg := range e.Path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func newError(cause error, got value.Value, msg string) *Error {
	return &Error{Cause: cause, Got: got, Msg: msg}
}

// within prefixes seg to the location of err.
func within(err error, seg string) error {
	if e, ok := err.(*Error); ok {
		c := *e
		c.Path = append([]string{seg}, e.Path...)
		return &c
	}
	return &Error{Path: []string{seg}, Cause: err, Msg: err.Error()}
}

// AlternativesError is returned by OneOf when every alternative failed.
type AlternativesError struct {
	Errs []error
}

func (e *AlternativesError) Error() string {
	return strings.Join(lo.Map(e.Errs, func(err error, _ int) string {
		return err.Error()
	}), " ")
}

func (e *AlternativesError) Unwrap() []error {
	return e.Errs
}
