package run

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	var none Errors
	require.NoError(t, none.Add(nil, nil).Err())

	var single Errors
	require.Equal(t, errA, single.Add(nil, errA).Err())

	var multi Errors
	err := multi.Add(errA, nil, errB).Err()
	require.Error(t, err)
	require.True(t, errors.Is(err, errA))
	require.True(t, errors.Is(err, errB))
	require.Contains(t, err.Error(), "a")
	require.Contains(t, err.Error(), "b")
}
