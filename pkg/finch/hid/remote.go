package hid

import (
	"io"
	"sync"

	"github.com/golang/glog"

	"github.com/michaelfm1211/gofinch/pkg/packet"
)

// RemoteDevice implements Device over a packet.ReadWriter, typically a
// websocket or TCP stream served by a simulator or a report bridge.
// Outbound packets carry the report ID in byte 0 followed by the frame;
// inbound packets are raw report payloads.
type RemoteDevice struct {
	rw packet.ReadWriter

	lock    sync.Mutex
	handler ReportHandler
	opened  bool
	done    chan struct{}
}

// NewRemoteDevice wraps a packet readwriter.
func NewRemoteDevice(rw packet.ReadWriter) *RemoteDevice {
	return &RemoteDevice{rw: rw}
}

// Open implements Device. It starts the inbound report pump.
func (d *RemoteDevice) Open() error {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.opened {
		return nil
	}
	d.opened = true
	d.done = make(chan struct{})
	go d.readLoop(d.done)
	return nil
}

// Close implements Device. It stops the report pump and closes the
// underlying stream if it supports closing.
func (d *RemoteDevice) Close() error {
	d.lock.Lock()
	defer d.lock.Unlock()
	if !d.opened {
		return nil
	}
	d.opened = false
	close(d.done)
	if closer, ok := d.rw.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// SendReport implements Device.
func (d *RemoteDevice) SendReport(reportID byte, data []byte) error {
	pkt := make([]byte, len(data)+1)
	pkt[0] = reportID
	copy(pkt[1:], data)
	return d.rw.WritePacket(pkt)
}

// HandleReports implements Device.
func (d *RemoteDevice) HandleReports(h ReportHandler) {
	d.lock.Lock()
	d.handler = h
	d.lock.Unlock()
}

func (d *RemoteDevice) readLoop(done chan struct{}) {
	for {
		pkt, err := d.rw.ReadPacket()
		if err != nil {
			select {
			case <-done:
			default:
				glog.Warningf("remote device read: %v", err)
			}
			return
		}
		d.lock.Lock()
		h := d.handler
		d.lock.Unlock()
		if h != nil {
			h(pkt)
		}
	}
}
