// Package finch drives a Finch robot over a host-supplied HID device.
package finch

// A Session wraps one open device connection: it performs the identify
// handshake on open, exposes the typed actuator and sensor operations,
// and guarantees the idle command and the transport close on teardown.
// Run provides the scoped form: acquire, run the caller's task, release
// on every exit path.
//
// The protocol is strictly request/response with no pipelining, so all
// operations on one Session are serialized.
