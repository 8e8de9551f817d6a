package protocol

import "fmt"

// EncodeError indicates a parameter list too large for one frame.
// It is reported before any I/O takes place.
type EncodeError struct {
	// Code is the command being encoded.
	Code byte
	// Count is the rejected number of parameter bytes.
	Count int
}

// Error implements error.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("command %q: %d parameter bytes exceed frame capacity %d",
		e.Code, e.Count, MaxParams)
}

// ResponseError indicates a response payload too short to decode.
// The protocol has no recovery handshake, so it is surfaced, never
// retried.
type ResponseError struct {
	// Code is the command the response was expected to answer.
	Code byte
	// Size is the actual payload size.
	Size int
	// Want is the minimum payload size for this command.
	Want int
}

// Error implements error.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("command %q: response of %d bytes, want at least %d",
		e.Code, e.Size, e.Want)
}
