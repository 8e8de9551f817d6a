package hid

import (
	"context"
	"sync"

	"github.com/golang/glog"
)

// DefaultReportID is the output report ID the Finch listens on.
const DefaultReportID = 0

// Channel adapts a Device to one-shot frame exchanges. Inbound reports
// land in a single-slot mailbox: the slot holds at most one report, a
// report arriving while the slot is full is dropped and logged. The
// protocol never has more than one response in flight, so a drop only
// happens when the peer misbehaves.
type Channel struct {
	// ReportID is the output report ID used for sends.
	ReportID byte

	dev    Device
	slot   chan []byte
	lock   sync.Mutex
	opened bool
	// pending guards the single-receiver invariant.
	pending bool
}

// NewChannel wraps a Device. The channel owns the device's report
// handler registration for its open lifetime.
func NewChannel(dev Device) *Channel {
	return &Channel{
		ReportID: DefaultReportID,
		dev:      dev,
		slot:     make(chan []byte, 1),
	}
}

// Open opens the underlying device. Opening an already-open channel
// reuses the existing handle and is a no-op.
func (c *Channel) Open() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.opened {
		glog.V(2).Info("channel already open, reusing handle")
		return nil
	}
	if err := c.dev.Open(); err != nil {
		return &ConnError{Op: "open", Err: err}
	}
	c.dev.HandleReports(c.deliver)
	c.opened = true
	return nil
}

// Close releases the underlying device. Closing an already-closed
// channel is a no-op, not an error.
func (c *Channel) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if !c.opened {
		return nil
	}
	c.opened = false
	c.dev.HandleReports(nil)
	if err := c.dev.Close(); err != nil {
		return &ConnError{Op: "close", Err: err}
	}
	return nil
}

// SendFrame sends one outbound frame. The send completes before any
// dependent ReceiveFrame is issued by the caller.
func (c *Channel) SendFrame(frame []byte) error {
	c.lock.Lock()
	opened := c.opened
	c.lock.Unlock()
	if !opened {
		return ErrNotOpen
	}
	if glog.V(3) {
		glog.Infof("SND % X", frame)
	}
	if err := c.dev.SendReport(c.ReportID, frame); err != nil {
		return &ConnError{Op: "send", Err: err}
	}
	return nil
}

// ReceiveFrame suspends the caller until exactly one inbound report
// arrives and resolves with its payload. At most one receiver may be
// pending; a second concurrent call fails with ErrReceivePending.
func (c *Channel) ReceiveFrame(ctx context.Context) ([]byte, error) {
	c.lock.Lock()
	if !c.opened {
		c.lock.Unlock()
		return nil, ErrNotOpen
	}
	if c.pending {
		c.lock.Unlock()
		return nil, ErrReceivePending
	}
	c.pending = true
	c.lock.Unlock()

	defer func() {
		c.lock.Lock()
		c.pending = false
		c.lock.Unlock()
	}()

	select {
	case report := <-c.slot:
		if glog.V(3) {
			glog.Infof("RCV % X", report)
		}
		return report, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// deliver places one inbound report into the mailbox slot.
func (c *Channel) deliver(report []byte) {
	payload := make([]byte, len(report))
	copy(payload, report)
	select {
	case c.slot <- payload:
	default:
		glog.Warningf("input report dropped, mailbox full: % X", report)
	}
}
