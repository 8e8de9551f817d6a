package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		name   string
		code   byte
		params []byte
		expect []byte
	}{
		{"no params", CmdObstacles, nil, []byte{'I', 0, 0, 0, 0, 0, 0, 0}},
		{"single zero param", CmdHalt, []byte{0}, []byte{'X', 0, 0, 0, 0, 0, 0, 0}},
		{"drive", CmdDrive, []byte{0, 255, 0, 128}, []byte{0x4D, 0, 255, 0, 128, 0, 0, 0}},
		{"led", CmdIlluminate, []byte{10, 20, 30}, []byte{'O', 10, 20, 30, 0, 0, 0, 0}},
		{"full frame", CmdSound, []byte{1, 2, 3, 4, 5, 6, 7}, []byte{'B', 1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			frame, err := Encode(tc.code, tc.params...)
			require.NoError(t, err)
			require.Len(t, frame, FrameSize)
			require.Equal(t, tc.expect, frame)
		})
	}
}

func TestEncodeOverflow(t *testing.T) {
	_, err := Encode(CmdDrive, 1, 2, 3, 4, 5, 6, 7, 8)
	require.Error(t, err)
	encErr, ok := err.(*EncodeError)
	require.True(t, ok)
	require.Equal(t, byte(CmdDrive), encErr.Code)
	require.Equal(t, 8, encErr.Count)
}
