package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelfm1211/gofinch/pkg/finch/protocol"
)

func TestDeviceQueryResponses(t *testing.T) {
	testCases := []struct {
		name      string
		configure func(*Device)
		query     byte
		expect    []byte
	}{
		{
			"identify",
			func(d *Device) { d.Firmware = 0x2A },
			protocol.CmdIdentify,
			[]byte{0x2A, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			"obstacles",
			func(d *Device) { d.SetObstacles(true, false) },
			protocol.CmdObstacles,
			[]byte{1, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			"temperature ambient",
			func(d *Device) { d.SetTemperature(25) },
			protocol.CmdTemperature,
			[]byte{127, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			"light",
			func(d *Device) { d.SetLight(5, 9) },
			protocol.CmdLight,
			[]byte{5, 9, 0, 0, 0, 0, 0, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dev := NewDevice()
			tc.configure(dev)
			require.NoError(t, dev.Open())
			var got []byte
			dev.HandleReports(func(report []byte) { got = report })
			frame, err := protocol.Encode(tc.query)
			require.NoError(t, err)
			require.NoError(t, dev.SendReport(0, frame))
			require.Equal(t, tc.expect, got)
		})
	}
}

func TestDeviceAccelerationRoundTrip(t *testing.T) {
	dev := NewDevice()
	dev.SetAcceleration(-1.2, 0.5, 1.0, false, true)
	require.NoError(t, dev.Open())

	var got []byte
	dev.HandleReports(func(report []byte) { got = report })
	frame, err := protocol.Encode(protocol.CmdAcceleration)
	require.NoError(t, err)
	require.NoError(t, dev.SendReport(0, frame))

	reading, err := protocol.DecodeAcceleration(got)
	require.NoError(t, err)
	require.InDelta(t, -1.2, reading.X, accelScale/2)
	require.InDelta(t, 0.5, reading.Y, accelScale/2)
	require.InDelta(t, 1.0, reading.Z, accelScale/2)
	require.False(t, reading.Tap)
	require.True(t, reading.Shake)

	// flags were consumed by the first query
	require.NoError(t, dev.SendReport(0, frame))
	reading, err = protocol.DecodeAcceleration(got)
	require.NoError(t, err)
	require.False(t, reading.Shake)
}

func TestDeviceActuatorState(t *testing.T) {
	dev := NewDevice()
	require.NoError(t, dev.Open())

	drive, err := protocol.Encode(protocol.CmdDrive, 0, 200, 0, 100)
	require.NoError(t, err)
	require.NoError(t, dev.SendReport(0, drive))
	left, right := dev.Wheels()
	require.Equal(t, uint8(200), left)
	require.Equal(t, uint8(100), right)
	require.False(t, dev.Idle())

	idle, err := protocol.Encode(protocol.CmdIdle, 0)
	require.NoError(t, err)
	require.NoError(t, dev.SendReport(0, idle))
	left, right = dev.Wheels()
	require.Equal(t, uint8(0), left)
	require.Equal(t, uint8(0), right)
	require.True(t, dev.Idle())
}
