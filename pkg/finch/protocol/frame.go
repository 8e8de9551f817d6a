package protocol

// Encode builds one outbound command frame. Byte 0 holds the command
// code, the parameter bytes follow in order, and the rest of the frame
// is zero. Commands that expect no parameter byte on the wire (the
// sensor queries) pass no params; actuator commands without payload
// pass a single zero byte, which is what the firmware expects.
func Encode(code byte, params ...byte) ([]byte, error) {
	if len(params) > MaxParams {
		return nil, &EncodeError{Code: code, Count: len(params)}
	}
	frame := make([]byte, FrameSize)
	frame[0] = code
	copy(frame[1:], params)
	return frame, nil
}
