package client

import (
	"errors"
	"fmt"
)

// Kind enumerates the closed set of failures a backend call can produce.
type Kind int

const (
	// KindInvalidRequest: the request could not be built (bad base URL, unencodable body).
	KindInvalidRequest Kind = iota + 1
	// KindInvalidResponse: the transport returned something that is not a readable HTTP response.
	KindInvalidResponse
	// KindRequestFailed: the call failed without a structured server message.
	KindRequestFailed
	// KindDecodingFailed: the body did not match the expected shape.
	KindDecodingFailed
	// KindUnauthorized: the token is missing or was rejected.
	KindUnauthorized
	// KindServerError: the server explained the failure in a human-readable message.
	KindServerError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid request"
	case KindInvalidResponse:
		return "invalid response"
	case KindRequestFailed:
		return "request failed"
	case KindDecodingFailed:
		return "decoding failed"
	case KindUnauthorized:
		return "unauthorized"
	case KindServerError:
		return "server error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the only error type returned by Client implementations.
// Message is set for KindServerError only; Err keeps the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindServerError:
		return e.Message
	case e.Err != nil:
		return e.Kind.String() + ": " + e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of message or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidRequest  = &Error{Kind: KindInvalidRequest}
	ErrInvalidResponse = &Error{Kind: KindInvalidResponse}
	ErrRequestFailed   = &Error{Kind: KindRequestFailed}
	ErrDecodingFailed  = &Error{Kind: KindDecodingFailed}
	ErrUnauthorized    = &Error{Kind: KindUnauthorized}
	ErrServerError     = &Error{Kind: KindServerError}
)

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// ServerError builds a KindServerError carrying msg.
func ServerError(msg string) *Error {
	return &Error{Kind: KindServerError, Message: msg}
}

// KindOf returns the kind of err, or 0 when err is nil or not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// GenericUserMessage is shown for every failure that carries no server message.
const GenericUserMessage = "Something went wrong. Please try again."

// UserMessage returns the text to put in front of a user: the server's own
// message for KindServerError, GenericUserMessage for everything else.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindServerError && e.Message != "" {
		return e.Message
	}
	return GenericUserMessage
}
