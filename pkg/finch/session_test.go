package finch_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/michaelfm1211/gofinch/pkg/finch"
	"github.com/michaelfm1211/gofinch/pkg/finch/protocol"
	"github.com/michaelfm1211/gofinch/pkg/finch/sim"
)

func openSession(t *testing.T) (*finch.Session, *sim.Device) {
	dev := sim.NewDevice()
	s, err := finch.Open(context.Background(), dev)
	require.NoError(t, err)
	return s, dev
}

func TestSessionHandshake(t *testing.T) {
	s, dev := openSession(t)
	defer s.Close()
	require.Equal(t, byte(sim.DefaultFirmware), s.Firmware())

	frames := dev.Frames()
	require.NotEmpty(t, frames)
	require.Equal(t, byte(protocol.CmdIdentify), frames[0][0])
}

func TestSessionDrive(t *testing.T) {
	s, dev := openSession(t)
	defer s.Close()

	require.NoError(t, s.Drive(255, 128))
	left, right := dev.Wheels()
	require.Equal(t, uint8(255), left)
	require.Equal(t, uint8(128), right)

	frames := dev.Frames()
	last := frames[len(frames)-1]
	require.Equal(t, []byte{0x4D, 0, 255, 0, 128, 0, 0, 0}, last)
}

func TestSessionIlluminate(t *testing.T) {
	s, dev := openSession(t)
	defer s.Close()

	require.NoError(t, s.Illuminate(10, 20, 30))
	r, g, b := dev.LED()
	require.Equal(t, [3]uint8{10, 20, 30}, [3]uint8{r, g, b})
}

func TestSessionHalt(t *testing.T) {
	s, dev := openSession(t)
	defer s.Close()

	require.NoError(t, s.Drive(100, 100))
	require.NoError(t, s.Halt())
	left, right := dev.Wheels()
	require.Equal(t, uint8(0), left)
	require.Equal(t, uint8(0), right)

	frames := dev.Frames()
	last := frames[len(frames)-1]
	require.Equal(t, []byte{'X', 0, 0, 0, 0, 0, 0, 0}, last)
}

func TestSessionSound(t *testing.T) {
	s, dev := openSession(t)
	defer s.Close()

	start := time.Now()
	require.NoError(t, s.Sound(context.Background(), 30*time.Millisecond, 440))
	require.True(t, time.Since(start) >= 30*time.Millisecond)

	frames := dev.Frames()
	last := frames[len(frames)-1]
	// 30ms big-endian and the frequency high byte (440 >> 8 == 1)
	require.Equal(t, []byte{'B', 0, 30, 1, 0, 0, 0, 0}, last)
}

func TestSessionSoundCanceled(t *testing.T) {
	s, _ := openSession(t)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Sound(ctx, time.Second, 440)
	require.Equal(t, context.Canceled, err)
}

func TestSessionSensorReads(t *testing.T) {
	s, dev := openSession(t)
	defer s.Close()
	ctx := context.Background()

	dev.SetObstacles(true, false)
	obstacles, err := s.ReadObstacles(ctx)
	require.NoError(t, err)
	require.Equal(t, protocol.Obstacles{Left: true}, obstacles)

	dev.SetAcceleration(-1.2, 0, 1, true, false)
	accel, err := s.ReadAcceleration(ctx)
	require.NoError(t, err)
	require.InDelta(t, -1.2, accel.X, 0.05)
	require.InDelta(t, 0, accel.Y, 0.05)
	require.InDelta(t, 1, accel.Z, 0.05)
	require.True(t, accel.Tap)
	require.False(t, accel.Shake)

	dev.SetTemperature(35)
	celsius, err := s.ReadTemperature(ctx)
	require.NoError(t, err)
	require.InDelta(t, 35, celsius, 0.25)

	dev.SetLight(200, 17)
	light, err := s.ReadLight(ctx)
	require.NoError(t, err)
	require.Equal(t, protocol.Light{Left: 200, Right: 17}, light)
}

func TestSessionClosedRejectsOperations(t *testing.T) {
	s, _ := openSession(t)
	require.NoError(t, s.Close())
	require.Error(t, s.Drive(1, 1))
	_, err := s.ReadLight(context.Background())
	require.Error(t, err)
}
