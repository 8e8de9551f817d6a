// Package protocol implements the Finch wire protocol.
package protocol

// The Finch speaks a strict request/response protocol over a
// report-based transport. Every outbound command is a fixed 8-byte
// frame: byte 0 carries an ASCII command code, the following bytes
// carry command parameters, and the remainder is zero padding.
//
// Responses are raw report payloads whose layout depends on the
// command that requested them. This package provides the frame
// encoder and one decoder per sensor response. It performs no I/O.
