// Package sim provides a simulated Finch for tests and offline use.
package sim

// Device implements hid.Device in process: it tracks actuator state
// from received frames and answers sensor queries with correctly
// encoded reports from a configurable sensor model. Serve exposes a
// device over a packet stream so remote tools can connect to it the
// same way they would to real hardware.
