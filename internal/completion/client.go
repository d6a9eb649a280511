// Package completion provides a pluggable interface for text
// completion providers. A client sends exactly one request per call,
// never retries, and normalizes every failure into a ServiceError.
package completion

import (
	"context"
	"fmt"
)

// ErrorKind classifies a completion failure.
type ErrorKind string

const (
	KindNetwork           ErrorKind = "network"
	KindAuth              ErrorKind = "auth"
	KindRateLimited       ErrorKind = "rateLimited"
	KindMalformedResponse ErrorKind = "malformedResponse"
	KindServiceRejected   ErrorKind = "serviceRejected"
)

// ServiceError is the only error type a Client returns. Raw transport
// errors never cross the client boundary.
type ServiceError struct {
	Kind   ErrorKind
	Status int    // HTTP status, 0 for transport failures
	Body   string // server-supplied error body, if any
	Err    error  // underlying cause, if any
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion %s: %v", e.Kind, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("completion %s (%d): %s", e.Kind, e.Status, e.Body)
	}
	return fmt.Sprintf("completion %s (%d)", e.Kind, e.Status)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Client generates a completion for a prompt under a system
// instruction. The content of the reply is never interpreted here.
type Client interface {
	Complete(ctx context.Context, prompt, system string) (string, error)
}

// classify maps a non-2xx status to an error kind.
func classify(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindRateLimited
	default:
		return KindServiceRejected
	}
}
