package errors

import (
	"fmt"
	"strings"
)

// ErrNotConfigured is returned by cart mutations when the storefront
// credentials (shop domain + access token) are missing. Never retried.
type ErrNotConfigured struct{}

func (e *ErrNotConfigured) Error() string {
	return "storefront client not configured: shop domain and access token required"
}

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrTransport covers network failures, non-200 responses and top-level
// GraphQL errors. Callers may retry; the client itself never does.
type ErrTransport struct {
	Op  string
	Err error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

func (e *ErrTransport) Unwrap() error {
	return e.Err
}

// ErrRemoteValidation wraps a non-empty userErrors array returned by the
// commerce platform (e.g. out-of-stock, invalid variant). Not retryable;
// messages are surfaced to the user verbatim.
type ErrRemoteValidation struct {
	Op       string
	Messages []string
}

func (e *ErrRemoteValidation) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%s: rejected by commerce platform", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, strings.Join(e.Messages, "; "))
}

// ErrValidation is returned when local request validation fails
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}
