package hid

import (
	"errors"
	"fmt"
)

var (
	// ErrNotOpen indicates an operation on a channel that is not open.
	ErrNotOpen = errors.New("channel not open")
	// ErrReceivePending indicates a second concurrent ReceiveFrame.
	// The protocol pairs each response with exactly one request, so at
	// most one receiver may wait at a time.
	ErrReceivePending = errors.New("receive already pending")
)

// ConnError wraps a failure to establish or operate the underlying
// device connection. It is fatal to the session and never retried.
type ConnError struct {
	Op  string
	Err error
}

// Error implements error.
func (e *ConnError) Error() string {
	return fmt.Sprintf("device %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *ConnError) Unwrap() error {
	return e.Err
}
