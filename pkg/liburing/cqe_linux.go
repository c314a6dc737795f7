//go:build linux

package liburing

import "unsafe"

const (
	IORING_CQE_F_BUFFER uint32 = 1 << iota
	IORING_CQE_F_MORE
	IORING_CQE_F_SOCK_NONEMPTY
	IORING_CQE_F_NOTIF
)

const IORING_CQE_BUFFER_SHIFT = 16

// CompletionQueueEvent mirrors struct io_uring_cqe. Res is the operation
// result, negative values carry a negated errno.
type CompletionQueueEvent struct {
	UserData uint64
	Res      int32
	Flags    uint32
}

func (c *CompletionQueueEvent) GetData() unsafe.Pointer {
	if c.UserData == 0 {
		return nil
	}
	return unsafe.Pointer(uintptr(c.UserData))
}
