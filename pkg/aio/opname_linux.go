//go:build linux

package aio

import "strconv"

var opNames = [...]string{
	OpRead:       "read",
	OpReadv:      "readv",
	OpWrite:      "write",
	OpWritev:     "writev",
	OpFdatasync:  "fdatasync",
	OpRecv:       "recv",
	OpRecvmsg:    "recvmsg",
	OpSend:       "send",
	OpSendmsg:    "sendmsg",
	OpAccept:     "accept",
	OpConnect:    "connect",
	OpPollAdd:    "poll_add",
	OpPollRemove: "poll_remove",
	OpCancel:     "cancel",
}

// String is the stable display name of the operation, total over Op so that
// log and metric lines never drop a request on the floor.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}
