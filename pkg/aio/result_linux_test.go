//go:build linux

package aio_test

import (
	"syscall"
	"testing"

	"github.com/avmi/seastar/pkg/aio"
	"github.com/stretchr/testify/require"
)

func TestMapResult(t *testing.T) {
	res := aio.MapResult(512, 0)
	require.NoError(t, res.Err)
	require.Equal(t, 512, res.N)

	res = aio.MapResult(-int32(syscall.EAGAIN), 0)
	require.ErrorIs(t, res.Err, syscall.EAGAIN)
	require.Equal(t, 0, res.N)

	res = aio.MapResult(-int32(syscall.ECANCELED), 0)
	require.True(t, aio.IsCanceled(res.Err))
}

func TestMapResultFlags(t *testing.T) {
	res := aio.MapResult(1, 1<<16)
	require.Equal(t, uint32(1)<<16, res.Flags)
}
