// Package hid abstracts the report-based transport to the robot.
package hid

// The host environment owns device discovery and permission grants and
// hands this package an already-selected Device. The Finch answers at
// most one outstanding request at a time, so Channel pairs one-shot
// sends and receives over a single-slot mailbox instead of a stream.
