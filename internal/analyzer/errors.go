package analyzer

import (
	"errors"
	"fmt"
)

// ErrTransport marks failures to obtain a usable response from the service.
var ErrTransport = errors.New("analysis service unreachable")

// TransportError reports a network failure, a non-2xx response, or a body
// that could not be decoded.
type TransportError struct {
	Err error
	// StatusCode is set when the service answered with a non-2xx status.
	StatusCode int
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", ErrTransport, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
}

// Unwrap exposes both ErrTransport and the underlying cause.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// ServiceError reports an envelope whose status was not "success".
type ServiceError struct {
	// Message is the service supplied reason, possibly empty.
	Message string
	Status  string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("analysis failed with status %q", e.Status)
	}
	return fmt.Sprintf("analysis failed: %s", e.Message)
}
