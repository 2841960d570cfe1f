package airtime

import "errors"

var ErrSerialization = errors.New("failed to serialize airtime request")

// TransportError means no usable response was obtained from the provider:
// the call failed, returned a non-2xx status, or sent an unreadable body.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
