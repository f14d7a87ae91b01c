// Package errs defines the shared error taxonomy used across VectorWave's
// transform packages (modwt, cwt, padding, streaming, denoise).
//
// Every exported operation in those packages returns errors built with New,
// which callers can classify with errors.Is against the Kind sentinels, or
// inspect directly with errors.As against *Error.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies the failure mode of an Error, per the taxonomy in the
// package error-handling design.
type Kind int

const (
	// InvalidArgument covers null/empty signals, non-positive lengths,
	// non-positive scales, invalid ratios, fit-points < 2, out-of-range
	// thresholds, and unknown wavelet names.
	InvalidArgument Kind = iota
	// InvalidSignal covers non-finite sample values (NaN/Inf).
	InvalidSignal
	// InvalidConfiguration covers inconsistent boundary modes, levels
	// exceeding the level cap, and non-power-of-two streaming block sizes.
	InvalidConfiguration
	// InvalidState covers operations on a closed streaming handle or a
	// transform requested on a partially consumed ring buffer.
	InvalidState
	// ResourceExhausted covers ring-buffer write timeouts and
	// out-of-memory conditions on a growable buffer.
	ResourceExhausted
	// NumericInstability marks a non-fatal condition recovered locally
	// with a documented fallback (e.g. periodicity forced to zero when
	// variance underflows).
	NumericInstability
)

// String renders the Kind's canonical name.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidSignal:
		return "InvalidSignal"
	case InvalidConfiguration:
		return "InvalidConfiguration"
	case InvalidState:
		return "InvalidState"
	case ResourceExhausted:
		return "ResourceExhausted"
	case NumericInstability:
		return "NumericInstability"
	default:
		return "Unknown"
	}
}

// Error is a VectorWave error carrying a Kind alongside the usual message
// and optional wrapped cause.
type Error struct {
	Kind    Kind
	Op      string // package/operation that raised the error, e.g. "modwt.Decompose"
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error (including the Kind* sentinels
// below) with the same Kind. This lets callers write errors.Is(err,
// errs.KindInvalidArgument) to classify an error by its Kind.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// New builds an *Error for op (e.g. "padding.Pad") of the given kind.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap builds an *Error for op that wraps an underlying cause.
func Wrap(kind Kind, op, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Cause: cause}
}

// Sentinel kind markers usable with errors.Is(err, errs.KindInvalidArgument)
// style checks when only the Kind — not an *Error instance — is at hand.
// Each wraps a zero-value *Error carrying only the Kind, matched by Is above
// when compared against any *Error of the same Kind.
var (
	KindInvalidArgument      error = &Error{Kind: InvalidArgument, Op: "errs", Message: "invalid argument"}
	KindInvalidSignal        error = &Error{Kind: InvalidSignal, Op: "errs", Message: "invalid signal"}
	KindInvalidConfiguration error = &Error{Kind: InvalidConfiguration, Op: "errs", Message: "invalid configuration"}
	KindInvalidState         error = &Error{Kind: InvalidState, Op: "errs", Message: "invalid state"}
	KindResourceExhausted    error = &Error{Kind: ResourceExhausted, Op: "errs", Message: "resource exhausted"}
	KindNumericInstability   error = &Error{Kind: NumericInstability, Op: "errs", Message: "numeric instability"}
)

// Of reports the Kind of err if it is (or wraps) an *Error, and ok=true.
func Of(err error) (kind Kind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
