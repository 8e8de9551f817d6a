package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeObstacles(t *testing.T) {
	testCases := []struct {
		name   string
		data   []byte
		expect Obstacles
	}{
		{"none", []byte{0, 0}, Obstacles{}},
		{"left only", []byte{1, 0, 0, 0, 0, 0, 0, 0}, Obstacles{Left: true}},
		{"right only", []byte{0, 1}, Obstacles{Right: true}},
		{"both", []byte{1, 1}, Obstacles{Left: true, Right: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reading, err := DecodeObstacles(tc.data)
			require.NoError(t, err)
			require.Equal(t, tc.expect, reading)
		})
	}
}

func TestDecodeAcceleration(t *testing.T) {
	testCases := []struct {
		name    string
		data    []byte
		x, y, z float64
		tap     bool
		shake   bool
	}{
		{"wraparound", []byte{0, 0, 32, 0, 0}, 0, 0, -1.6, false, false},
		{"biased negative", []byte{40, 0, 0, 0, 0}, -1.2, 0, 0, false, false},
		{"positive max", []byte{31, 31, 31, 0, 0}, 1.55, 1.55, 1.55, false, false},
		{"tap flag", []byte{0, 0, 0, 0, 0x20}, 0, 0, 0, true, false},
		{"shake flag", []byte{0, 0, 0, 0, 0x80}, 0, 0, 0, false, true},
		{"tap and shake", []byte{0, 0, 0, 0, 0xA0}, 0, 0, 0, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reading, err := DecodeAcceleration(tc.data)
			require.NoError(t, err)
			require.InDelta(t, tc.x, reading.X, 1e-9)
			require.InDelta(t, tc.y, reading.Y, 1e-9)
			require.InDelta(t, tc.z, reading.Z, 1e-9)
			require.Equal(t, tc.tap, reading.Tap)
			require.Equal(t, tc.shake, reading.Shake)
		})
	}
}

func TestDecodeTemperature(t *testing.T) {
	testCases := []struct {
		name   string
		raw    byte
		expect float64
	}{
		{"ambient", 127, 25.0},
		{"cold", 0, 25 - 127/2.4},
		{"warm", 151, 35.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			celsius, err := DecodeTemperature([]byte{tc.raw})
			require.NoError(t, err)
			require.InDelta(t, tc.expect, celsius, 1e-9)
		})
	}
}

func TestDecodeLight(t *testing.T) {
	reading, err := DecodeLight([]byte{200, 17, 0, 0})
	require.NoError(t, err)
	require.Equal(t, Light{Left: 200, Right: 17}, reading)
}

func TestDecodeShortResponse(t *testing.T) {
	testCases := []struct {
		name string
		code byte
		err  error
	}{
		{"obstacles", CmdObstacles, func() error { _, err := DecodeObstacles([]byte{1}); return err }()},
		{"acceleration", CmdAcceleration, func() error { _, err := DecodeAcceleration([]byte{1, 2, 3, 4}); return err }()},
		{"temperature", CmdTemperature, func() error { _, err := DecodeTemperature(nil); return err }()},
		{"light", CmdLight, func() error { _, err := DecodeLight([]byte{9}); return err }()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err)
			respErr, ok := tc.err.(*ResponseError)
			require.True(t, ok)
			require.Equal(t, tc.code, respErr.Code)
		})
	}
}
