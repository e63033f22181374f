package client

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call.
type Kind int

const (
	// KindRemoteRejected: the server answered and reported a failure.
	KindRemoteRejected Kind = iota + 1
	// KindUnreachable: no response was received.
	KindUnreachable
	// KindMalformedResponse: a response arrived but could not be decoded.
	KindMalformedResponse
)

var (
	ErrRemoteRejected    = errors.New("rejected by server")
	ErrUnreachable       = errors.New("server unreachable")
	ErrMalformedResponse = errors.New("malformed server response")
)

func (k Kind) String() string {
	switch k {
	case KindRemoteRejected:
		return "remote_rejected"
	case KindUnreachable:
		return "unreachable"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindRemoteRejected:
		return ErrRemoteRejected
	case KindUnreachable:
		return ErrUnreachable
	default:
		return ErrMalformedResponse
	}
}

// Error is the single failure shape produced by HTTPClient.
type Error struct {
	Kind Kind
	// Op names the backend operation, e.g. "loginUser" or "GET /stats".
	Op string
	// Message is the server-supplied text for KindRemoteRejected.
	Message string
	// StatusCode is the HTTP status when a response was received.
	StatusCode int
	Err        error
}

// Error returns the server's message verbatim for rejections, so it can be
// shown to the user as-is.
func (e *Error) Error() string {
	if e.Kind == KindRemoteRejected && e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind.sentinel(), e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind.sentinel())
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind.sentinel(), e.Err}
	}
	return []error{e.Kind.sentinel()}
}

func rejected(op string, status int, msg string) *Error {
	return &Error{Kind: KindRemoteRejected, Op: op, StatusCode: status, Message: msg}
}

func unreachable(op string, err error) *Error {
	return &Error{Kind: KindUnreachable, Op: op, Err: err}
}

func malformed(op string, status int, err error) *Error {
	return &Error{Kind: KindMalformedResponse, Op: op, StatusCode: status, Err: err}
}

// KindOf reports the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// NewRejected reports a server-side failure that arrived inside an otherwise
// successful response, e.g. a mutation payload carrying only a message.
func NewRejected(op, msg string) *Error {
	if msg == "" {
		msg = "request failed"
	}
	return rejected(op, 0, msg)
}

// NewMalformed reports a decoded response that is missing required parts.
func NewMalformed(op string, err error) *Error {
	return malformed(op, 0, err)
}
