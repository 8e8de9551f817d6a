// Package websocket frames packets over websocket messages.
package websocket

import "golang.org/x/net/websocket"

// ReadWriter implements packet.ReadWriter. Each websocket message
// carries exactly one packet.
type ReadWriter websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *ReadWriter {
	return (*ReadWriter)(conn)
}

// ReadPacket implements packet.Reader.
func (p *ReadWriter) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &pkt)
	return
}

// WritePacket implements packet.Writer.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send((*websocket.Conn)(p), pkt)
}

// Close closes the underlying connection. The defined type hides the
// embedded Close, so it is restated here for transport teardown.
func (p *ReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}
