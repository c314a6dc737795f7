//go:build linux

package aio

import (
	"sync"
	"unsafe"

	"github.com/avmi/seastar/pkg/kernel"
	"github.com/avmi/seastar/pkg/liburing"
	"github.com/brickingsoft/errors"
)

// PackSQE encodes req into sqe and stamps userdata on it. The entry only
// borrows the pointers req carries, the caller keeps them alive until the
// matching completion arrives.
func PackSQE(req Request, sqe *liburing.SubmissionQueueEntry, userdata uint64) error {
	switch req.Opcode() {
	case OpRead:
		sqe.PrepareRead(req.Fd(), uintptr(req.Address()), uint32(req.Size()), req.Pos())
	case OpReadv:
		sqe.PrepareReadv(req.Fd(), uintptr(unsafe.Pointer(req.Iovec())), uint32(req.IovLen()), req.Pos())
	case OpWrite:
		sqe.PrepareWrite(req.Fd(), uintptr(req.Address()), uint32(req.Size()), req.Pos())
	case OpWritev:
		sqe.PrepareWritev(req.Fd(), uintptr(unsafe.Pointer(req.Iovec())), uint32(req.IovLen()), req.Pos())
	case OpFdatasync:
		sqe.PrepareFsync(req.Fd(), liburing.IORING_FSYNC_DATASYNC)
	case OpRecv:
		sqe.PrepareRecv(req.Fd(), uintptr(req.Address()), uint32(req.Size()), req.Flags())
	case OpRecvmsg:
		sqe.PrepareRecvMsg(req.Fd(), req.Msghdr(), uint32(req.Flags()))
	case OpSend:
		sqe.PrepareSend(req.Fd(), uintptr(req.Address()), uint32(req.Size()), req.Flags())
	case OpSendmsg:
		sqe.PrepareSendMsg(req.Fd(), req.Msghdr(), uint32(req.Flags()))
	case OpAccept:
		socklen := uint64(uintptr(unsafe.Pointer(req.SocklenPtr())))
		sqe.PrepareAccept(req.Fd(), req.Sockaddr(), socklen, req.Flags())
	case OpConnect:
		sqe.PrepareConnect(req.Fd(), req.Sockaddr(), uint64(req.Socklen()))
	case OpPollAdd:
		sqe.PreparePollAdd(req.Fd(), req.Events())
	case OpPollRemove:
		sqe.PreparePollRemove(uint64(uintptr(req.Address())))
	case OpCancel:
		sqe.PrepareCancel64(uint64(uintptr(req.Address())), 0)
	default:
		return errors.From(ErrUnsupportedOp,
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaOpKey, req.Opcode().String()),
		)
	}
	sqe.SetData64(userdata)
	return nil
}

// minKernel is the kernel release each opcode first shipped in.
var minKernel = map[Op]kernel.Version{
	OpRead:       {Major: 5, Minor: 6},
	OpReadv:      {Major: 5, Minor: 1},
	OpWrite:      {Major: 5, Minor: 6},
	OpWritev:     {Major: 5, Minor: 1},
	OpFdatasync:  {Major: 5, Minor: 1},
	OpRecv:       {Major: 5, Minor: 6},
	OpRecvmsg:    {Major: 5, Minor: 3},
	OpSend:       {Major: 5, Minor: 6},
	OpSendmsg:    {Major: 5, Minor: 3},
	OpAccept:     {Major: 5, Minor: 5},
	OpConnect:    {Major: 5, Minor: 5},
	OpPollAdd:    {Major: 5, Minor: 1},
	OpPollRemove: {Major: 5, Minor: 1},
	OpCancel:     {Major: 5, Minor: 5},
}

var (
	runningOnce    sync.Once
	runningVersion kernel.Version
	runningErr     error
)

// Supported reports whether the running kernel accepts the opcode req would
// be packed into.
func Supported(op Op) (bool, error) {
	runningOnce.Do(func() {
		runningVersion, runningErr = kernel.Get()
	})
	if runningErr != nil {
		return false, runningErr
	}
	min, ok := minKernel[op]
	if !ok {
		return false, errors.From(ErrUnsupportedOp,
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaOpKey, op.String()),
		)
	}
	return kernel.Compare(runningVersion, min) >= 0, nil
}
