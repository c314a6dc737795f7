//go:build linux

package aio_test

import (
	"syscall"
	"testing"
	"unsafe"

	"github.com/avmi/seastar/pkg/aio"
	"github.com/avmi/seastar/pkg/liburing"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestPackSQEWrite(t *testing.T) {
	buf := make([]byte, 512)
	req := aio.MakeWrite(7, 4096, unsafe.Pointer(&buf[0]), 512)

	var sqe liburing.SubmissionQueueEntry
	require.NoError(t, aio.PackSQE(req, &sqe, 77))

	require.Equal(t, liburing.IORING_OP_WRITE, sqe.OpCode)
	require.Equal(t, int32(7), sqe.Fd)
	require.Equal(t, uint64(4096), sqe.Off)
	require.Equal(t, uint64(uintptr(unsafe.Pointer(&buf[0]))), sqe.Addr)
	require.Equal(t, uint32(512), sqe.Len)
	require.Equal(t, uint64(77), sqe.UserData)
}

func TestPackSQEReadv(t *testing.T) {
	iov := make([]syscall.Iovec, 4)
	req := aio.MakeReadv(3, 1<<33, iov)

	var sqe liburing.SubmissionQueueEntry
	require.NoError(t, aio.PackSQE(req, &sqe, 1))

	require.Equal(t, liburing.IORING_OP_READV, sqe.OpCode)
	require.Equal(t, uint64(1)<<33, sqe.Off)
	require.Equal(t, uint64(uintptr(unsafe.Pointer(&iov[0]))), sqe.Addr)
	require.Equal(t, uint32(4), sqe.Len)
}

func TestPackSQEFdatasync(t *testing.T) {
	req := aio.MakeFdatasync(11)

	var sqe liburing.SubmissionQueueEntry
	require.NoError(t, aio.PackSQE(req, &sqe, 2))

	require.Equal(t, liburing.IORING_OP_FSYNC, sqe.OpCode)
	require.Equal(t, int32(11), sqe.Fd)
	require.Equal(t, liburing.IORING_FSYNC_DATASYNC, sqe.OpcodeFlags)
}

func TestPackSQEAccept(t *testing.T) {
	var sa syscall.RawSockaddrAny
	var sl uint32 = syscall.SizeofSockaddrAny
	req := aio.MakeAccept(5, &sa, &sl, unix.SOCK_CLOEXEC)

	var sqe liburing.SubmissionQueueEntry
	require.NoError(t, aio.PackSQE(req, &sqe, 3))

	require.Equal(t, liburing.IORING_OP_ACCEPT, sqe.OpCode)
	require.Equal(t, uint64(uintptr(unsafe.Pointer(&sa))), sqe.Addr)
	// the socklen cell travels by address in the offset field
	require.Equal(t, uint64(uintptr(unsafe.Pointer(&sl))), sqe.Off)
	require.Equal(t, uint32(unix.SOCK_CLOEXEC), sqe.OpcodeFlags)
}

func TestPackSQEConnect(t *testing.T) {
	var sa syscall.RawSockaddrAny
	req := aio.MakeConnect(5, &sa, syscall.SizeofSockaddrInet6)

	var sqe liburing.SubmissionQueueEntry
	require.NoError(t, aio.PackSQE(req, &sqe, 4))

	require.Equal(t, liburing.IORING_OP_CONNECT, sqe.OpCode)
	require.Equal(t, uint64(uintptr(unsafe.Pointer(&sa))), sqe.Addr)
	// connect carries the length itself, not a pointer to it
	require.Equal(t, uint64(syscall.SizeofSockaddrInet6), sqe.Off)
}

func TestPackSQEPoll(t *testing.T) {
	req := aio.MakePollAdd(3, unix.POLLIN|unix.POLLERR)

	var sqe liburing.SubmissionQueueEntry
	require.NoError(t, aio.PackSQE(req, &sqe, 5))

	require.Equal(t, liburing.IORING_OP_POLL_ADD, sqe.OpCode)
	require.Equal(t, int32(3), sqe.Fd)
	require.Equal(t, uint32(unix.POLLIN|unix.POLLERR), sqe.OpcodeFlags)

	token := unsafe.Pointer(&sqe)
	req = aio.MakePollRemove(3, token)
	require.NoError(t, aio.PackSQE(req, &sqe, 6))
	require.Equal(t, liburing.IORING_OP_POLL_REMOVE, sqe.OpCode)
	require.Equal(t, uint64(uintptr(token)), sqe.Addr)
}

func TestPackSQECancel(t *testing.T) {
	var prior liburing.SubmissionQueueEntry
	token := unsafe.Pointer(&prior)
	req := aio.MakeCancel(3, token)

	var sqe liburing.SubmissionQueueEntry
	require.NoError(t, aio.PackSQE(req, &sqe, 7))

	require.Equal(t, liburing.IORING_OP_ASYNC_CANCEL, sqe.OpCode)
	require.Equal(t, uint64(uintptr(token)), sqe.Addr)
}

func TestPackSQERecvmsg(t *testing.T) {
	var msg syscall.Msghdr
	req := aio.MakeRecvmsg(6, &msg, unix.MSG_PEEK)

	var sqe liburing.SubmissionQueueEntry
	require.NoError(t, aio.PackSQE(req, &sqe, 8))

	require.Equal(t, liburing.IORING_OP_RECVMSG, sqe.OpCode)
	require.Equal(t, uint64(uintptr(unsafe.Pointer(&msg))), sqe.Addr)
	require.Equal(t, uint32(1), sqe.Len)
	require.Equal(t, uint32(unix.MSG_PEEK), sqe.OpcodeFlags)
}

func TestSupported(t *testing.T) {
	// readv is the io_uring baseline, no kernel that runs these tests
	// predates it
	ok, err := aio.Supported(aio.OpReadv)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = aio.Supported(aio.Op(99))
	require.Error(t, err)
	require.True(t, aio.IsUnsupportedOp(err))
}
