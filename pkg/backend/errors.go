package backend

import (
	"errors"
	"net/http"
)

// ErrorKind tells callers why a backend call failed.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindTransport
	KindUnauthorized
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

const (
	MsgFetchCategory  = "Failed to fetch category"
	MsgRemoveProduct  = "Failed to remove product"
	MsgCreateCheckout = "Failed to create checkout session"
)

// Error is returned by every Client call. Error() is the fixed user-facing
// message of the operation; the cause stays reachable through Unwrap.
type Error struct {
	Kind       ErrorKind
	Op         string
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a backend error, or KindUnknown for anything
// else.
func KindOf(err error) ErrorKind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}

func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}

func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindUnknown
	}
}
