// Package upstream classifies failures of third-party API calls.
package upstream

import (
	"errors"
	"fmt"
)

// Kind tags why an upstream call produced no usable result
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound means the upstream answered but had no match.
	KindNotFound
	// KindUnavailable covers transport failures: timeouts, refused connections, non-2xx.
	KindUnavailable
	// KindMalformedPayload means the response was readable but lacked an expected field or shape.
	KindMalformedPayload
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindUnavailable:
		return "upstream unavailable"
	case KindMalformedPayload:
		return "malformed payload"
	default:
		return fmt.Sprintf("unknown (%d)", int(k))
	}
}

// Sentinels matched by errors.Is against any *Error of the same Kind.
var (
	ErrNotFound         = errors.New("not found")
	ErrUnavailable      = errors.New("upstream unavailable")
	ErrMalformedPayload = errors.New("malformed payload")
)

// Error is a failure of the operation Op, tagged with its Kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrUnavailable:
		return e.Kind == KindUnavailable
	case ErrMalformedPayload:
		return e.Kind == KindMalformedPayload
	}
	return false
}

func NotFound(op string, err error) error {
	return &Error{Kind: KindNotFound, Op: op, Err: err}
}

func Unavailable(op string, err error) error {
	return &Error{Kind: KindUnavailable, Op: op, Err: err}
}

func Malformed(op string, err error) error {
	return &Error{Kind: KindMalformedPayload, Op: op, Err: err}
}

// KindOf returns the Kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var upstreamErr *Error
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Kind
	}
	return KindUnknown
}

// Retryable reports whether repeating the call could succeed. Only transport
// failures qualify.
func Retryable(err error) bool {
	return KindOf(err) == KindUnavailable
}
