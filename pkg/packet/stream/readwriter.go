// Package stream frames packets over a plain byte stream.
package stream

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxPacketSize bounds one framed packet. Device reports are a few
// bytes, so a larger length prefix means the stream is corrupt and
// reading on would only desynchronize the framing further.
const MaxPacketSize = 256

// ReadWriter implements packet.ReadWriter.
// Each packet is prefixed by 4-byte (little-endian) indicating the length.
type ReadWriter struct {
	io.ReadWriter
}

// New creates a ReadWriter with io.ReadWriter.
func New(s io.ReadWriter) *ReadWriter {
	return &ReadWriter{s}
}

// Close closes the underlying stream when it supports closing, so
// transport teardown reaches the wrapped connection.
func (p *ReadWriter) Close() error {
	if closer, ok := p.ReadWriter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// ReadPacket implements packet.Reader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	var size uint32
	if err := binary.Read(p, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if size > MaxPacketSize {
		return nil, fmt.Errorf("frame length %d exceeds limit %d", size, MaxPacketSize)
	}
	pkt := make([]byte, size)
	_, err := io.ReadFull(p, pkt)
	return pkt, err
}

// WritePacket implements packet.Writer.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	if len(pkt) > MaxPacketSize {
		return fmt.Errorf("packet of %d bytes exceeds limit %d", len(pkt), MaxPacketSize)
	}
	if err := binary.Write(p, binary.LittleEndian, uint32(len(pkt))); err != nil {
		return err
	}
	_, err := p.Write(pkt)
	return err
}
