package content

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Post and Author when the filtered upstream
// result is empty.
var ErrNotFound = errors.New("content: not found")

// Kind classifies why an upstream fetch failed.
type Kind string

const (
	KindNetwork      Kind = "network"
	KindStatus       Kind = "status"
	KindMalformed    Kind = "malformed"
	KindMissingField Kind = "missing_field"
	KindNotFound     Kind = "not_found"
)

// FetchError is a failed upstream request or projection.
type FetchError struct {
	Kind   Kind
	Op     string
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("content: %s %s", e.Op, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (%d)", e.Status)
	}
	if e.URL != "" {
		msg += " " + e.URL
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf reports the failure kind of err, or "" for errors this package
// did not produce.
func KindOf(err error) Kind {
	var fe *FetchError
	switch {
	case errors.As(err, &fe):
		return fe.Kind
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	}
	return ""
}

type missingFieldError struct{ field string }

func (e missingFieldError) Error() string { return "missing field " + e.field }
