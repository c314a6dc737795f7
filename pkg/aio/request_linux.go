//go:build linux

package aio

import (
	"syscall"
	"unsafe"
)

// Op identifies the kind of asynchronous operation a Request describes.
// The set is closed, new kinds are not attachable from outside.
type Op uint8

const (
	OpRead Op = iota
	OpReadv
	OpWrite
	OpWritev
	OpFdatasync
	OpRecv
	OpRecvmsg
	OpSend
	OpSendmsg
	OpAccept
	OpConnect
	OpPollAdd
	OpPollRemove
	OpCancel
)

// Request describes one asynchronous kernel I/O operation. It is a plain
// immutable value: built once by a Make function, then read by the
// submission side. It owns neither the descriptor nor any memory it points
// at, and that memory must stay valid until the operation completes.
//
// The upper layers hand buffers, iovec arrays, message headers and socket
// addresses around as raw pointers. Keeping them all in one untyped slot is
// how a tag mixup turns into a very long debugging session, so every
// referent kind gets its own typed field and a wrong read cannot compile.
// The opaque token of poll_remove and cancel still travels in the buffer
// slot, readable through Address.
type Request struct {
	op Op
	fd int

	// attribute slot, selected by op
	off    uint64
	flags  int
	events uint32

	// pointer slot, selected by op
	buf unsafe.Pointer
	iov *syscall.Iovec
	msg *syscall.Msghdr
	sa  *syscall.RawSockaddrAny

	// size slot, selected by op
	size       uint64
	socklen    uint32
	socklenPtr *uint32
}

// MakeRead builds a positional read of size bytes into addr.
func MakeRead(fd int, pos uint64, addr unsafe.Pointer, size uint64) Request {
	return Request{op: OpRead, fd: fd, off: pos, buf: addr, size: size}
}

// MakeReadv builds a positional scatter read into iov.
func MakeReadv(fd int, pos uint64, iov []syscall.Iovec) Request {
	req := Request{op: OpReadv, fd: fd, off: pos, size: uint64(len(iov))}
	if len(iov) > 0 {
		req.iov = &iov[0]
	}
	return req
}

// MakeWrite builds a positional write of size bytes from addr.
func MakeWrite(fd int, pos uint64, addr unsafe.Pointer, size uint64) Request {
	return Request{op: OpWrite, fd: fd, off: pos, buf: addr, size: size}
}

// MakeWritev builds a positional gather write from iov.
func MakeWritev(fd int, pos uint64, iov []syscall.Iovec) Request {
	req := Request{op: OpWritev, fd: fd, off: pos, size: uint64(len(iov))}
	if len(iov) > 0 {
		req.iov = &iov[0]
	}
	return req
}

func MakeFdatasync(fd int) Request {
	return Request{op: OpFdatasync, fd: fd}
}

func MakeRecv(fd int, addr unsafe.Pointer, size uint64, flags int) Request {
	return Request{op: OpRecv, fd: fd, flags: flags, buf: addr, size: size}
}

func MakeRecvmsg(fd int, msg *syscall.Msghdr, flags int) Request {
	return Request{op: OpRecvmsg, fd: fd, flags: flags, msg: msg}
}

func MakeSend(fd int, addr unsafe.Pointer, size uint64, flags int) Request {
	return Request{op: OpSend, fd: fd, flags: flags, buf: addr, size: size}
}

func MakeSendmsg(fd int, msg *syscall.Msghdr, flags int) Request {
	return Request{op: OpSendmsg, fd: fd, flags: flags, msg: msg}
}

// MakeAccept builds an accept on fd. socklen is an output cell, the kernel
// writes the peer address length through it on completion.
func MakeAccept(fd int, sa *syscall.RawSockaddrAny, socklen *uint32, flags int) Request {
	return Request{op: OpAccept, fd: fd, flags: flags, sa: sa, socklenPtr: socklen}
}

// MakeConnect builds a connect on fd. socklen is taken by value, accept and
// connect are asymmetric here on purpose.
func MakeConnect(fd int, sa *syscall.RawSockaddrAny, socklen uint32) Request {
	return Request{op: OpConnect, fd: fd, sa: sa, socklen: socklen}
}

func MakePollAdd(fd int, events uint32) Request {
	return Request{op: OpPollAdd, fd: fd, events: events}
}

// MakePollRemove builds the removal of a prior poll registration. token
// identifies that registration, it is not a data buffer.
func MakePollRemove(fd int, token unsafe.Pointer) Request {
	return Request{op: OpPollRemove, fd: fd, buf: token}
}

// MakeCancel builds the cancellation of a prior request identified by token.
func MakeCancel(fd int, token unsafe.Pointer) Request {
	return Request{op: OpCancel, fd: fd, buf: token}
}

func (req Request) Opcode() Op {
	return req.op
}

func (req Request) Fd() int {
	return req.fd
}

// Pos is the file position of read, readv, write and writev.
func (req Request) Pos() uint64 {
	return req.off
}

// Flags is the socket flag bitmask of recv, recvmsg, send, sendmsg and accept.
func (req Request) Flags() int {
	return req.flags
}

// Events is the poll event mask of poll_add.
func (req Request) Events() uint32 {
	return req.events
}

// Address is the buffer base of read, write, recv and send, and the opaque
// token of poll_remove and cancel.
func (req Request) Address() unsafe.Pointer {
	return req.buf
}

// Iovec is the first element of the readv and writev descriptor array, the
// element count is IovLen.
func (req Request) Iovec() *syscall.Iovec {
	return req.iov
}

func (req Request) Msghdr() *syscall.Msghdr {
	return req.msg
}

func (req Request) Sockaddr() *syscall.RawSockaddrAny {
	return req.sa
}

// Size is the byte length of read, write, recv and send.
func (req Request) Size() uint64 {
	return req.size
}

// IovLen is the element count of readv and writev. Same storage as Size,
// named for the call site.
func (req Request) IovLen() uint64 {
	return req.size
}

// Socklen is the address length of connect, carried by value.
func (req Request) Socklen() uint32 {
	return req.socklen
}

// SocklenPtr is the address length output cell of accept.
func (req Request) SocklenPtr() *uint32 {
	return req.socklenPtr
}

// IsRead reports whether the operation moves data from the kernel to the
// caller. fdatasync, accept, connect, poll_add, poll_remove and cancel are
// neither read nor write class.
func (req Request) IsRead() bool {
	switch req.op {
	case OpRead, OpReadv, OpRecv, OpRecvmsg:
		return true
	default:
		return false
	}
}

// IsWrite reports whether the operation moves data from the caller to the
// kernel.
func (req Request) IsWrite() bool {
	switch req.op {
	case OpWrite, OpWritev, OpSend, OpSendmsg:
		return true
	default:
		return false
	}
}
