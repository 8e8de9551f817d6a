package finch

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/michaelfm1211/gofinch/pkg/finch/hid"
	"github.com/michaelfm1211/gofinch/pkg/finch/protocol"
	"github.com/michaelfm1211/gofinch/pkg/run"
)

// Session is one open connection to a Finch. It owns its channel for
// its lifetime and is not reentrant: at most one session is active
// against a physical device at a time.
type Session struct {
	ch       *hid.Channel
	firmware byte

	// lock serializes frame exchanges: the device answers at most one
	// outstanding request, so a second query must wait for the prior
	// response.
	lock   sync.Mutex
	closed bool
}

// Open opens the device and performs the identify handshake. The
// returned session must be released with Close. On handshake failure
// the transport is torn down before returning.
func Open(ctx context.Context, dev hid.Device) (*Session, error) {
	ch := hid.NewChannel(dev)
	if err := ch.Open(); err != nil {
		return nil, err
	}
	s := &Session{ch: ch}
	if err := s.handshake(ctx); err != nil {
		var errs run.Errors
		errs.Add(err, s.Close())
		return nil, errs.Err()
	}
	return s, nil
}

// Close sends the idle command and releases the channel. It runs the
// teardown at most once; closing an already-closed session is a no-op.
// A teardown failure is returned but the transport close is still
// attempted.
func (s *Session) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	var errs run.Errors
	frame, err := protocol.Encode(protocol.CmdIdle, 0)
	if err == nil {
		err = s.ch.SendFrame(frame)
	}
	errs.Add(err)
	errs.Add(s.ch.Close())
	glog.V(1).Info("session closed")
	return errs.Err()
}

// Firmware returns the identifier byte recorded during the handshake.
// It is diagnostic only and does not gate any operation.
func (s *Session) Firmware() byte {
	return s.firmware
}

// Drive sets the speed of both wheels, 0-255 each.
func (s *Session) Drive(left, right uint8) error {
	return s.send(protocol.CmdDrive, 0, left, 0, right)
}

// Illuminate sets the beak LED color.
func (s *Session) Illuminate(r, g, b uint8) error {
	return s.send(protocol.CmdIlluminate, r, g, b)
}

// Halt stops all motors and outputs.
func (s *Session) Halt() error {
	return s.send(protocol.CmdHalt, 0)
}

// Sound plays a tone of the given frequency for the given duration,
// then suspends the caller until the tone has finished, so the buzzer
// is free when control returns. Duration is capped at the protocol's
// 16-bit millisecond range.
func (s *Session) Sound(ctx context.Context, d time.Duration, freqHz uint16) error {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	if ms > 0xffff {
		ms = 0xffff
	}
	err := s.send(protocol.CmdSound,
		byte(ms>>8), byte(ms), byte(freqHz>>8))
	if err != nil {
		return err
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReadObstacles queries the obstacle detectors.
func (s *Session) ReadObstacles(ctx context.Context) (protocol.Obstacles, error) {
	data, err := s.query(ctx, protocol.CmdObstacles)
	if err != nil {
		return protocol.Obstacles{}, err
	}
	return protocol.DecodeObstacles(data)
}

// ReadAcceleration queries the accelerometer.
func (s *Session) ReadAcceleration(ctx context.Context) (protocol.Acceleration, error) {
	data, err := s.query(ctx, protocol.CmdAcceleration)
	if err != nil {
		return protocol.Acceleration{}, err
	}
	return protocol.DecodeAcceleration(data)
}

// ReadTemperature queries the thermometer, in degrees Celsius.
func (s *Session) ReadTemperature(ctx context.Context) (float64, error) {
	data, err := s.query(ctx, protocol.CmdTemperature)
	if err != nil {
		return 0, err
	}
	return protocol.DecodeTemperature(data)
}

// ReadLight queries the light sensors.
func (s *Session) ReadLight(ctx context.Context) (protocol.Light, error) {
	data, err := s.query(ctx, protocol.CmdLight)
	if err != nil {
		return protocol.Light{}, err
	}
	return protocol.DecodeLight(data)
}

// handshake sends the identify command and records the single-byte
// firmware identifier.
func (s *Session) handshake(ctx context.Context) error {
	data, err := s.query(ctx, protocol.CmdIdentify)
	if err != nil {
		return err
	}
	if len(data) < protocol.IdentifyResponseSize {
		return &protocol.ResponseError{
			Code: protocol.CmdIdentify,
			Size: len(data),
			Want: protocol.IdentifyResponseSize,
		}
	}
	s.firmware = data[0]
	glog.V(1).Infof("firmware identifier 0x%02X", s.firmware)
	return nil
}

// send encodes and sends one fire-and-forget command.
func (s *Session) send(code byte, params ...byte) error {
	frame, err := protocol.Encode(code, params...)
	if err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.closed {
		return hid.ErrNotOpen
	}
	return s.ch.SendFrame(frame)
}

// query sends one sensor query and awaits its single response.
func (s *Session) query(ctx context.Context, code byte) ([]byte, error) {
	frame, err := protocol.Encode(code)
	if err != nil {
		return nil, err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.closed {
		return nil, hid.ErrNotOpen
	}
	if err := s.ch.SendFrame(frame); err != nil {
		return nil, err
	}
	return s.ch.ReceiveFrame(ctx)
}
