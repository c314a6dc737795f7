//go:build linux

package aio

import (
	"syscall"

	"github.com/brickingsoft/errors"
)

var (
	ErrCanceled      = errors.Define("operation canceled")
	ErrUnsupportedOp = errors.Define("unsupported operation")
)

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "aio"

	errMetaOpKey = "op"
)

func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

func IsUnsupportedOp(err error) bool {
	return errors.Is(err, ErrUnsupportedOp)
}

// Result is what the submission mechanism reports back for one Request:
// bytes transferred, completion flags, or the failure of the attempted
// operation. The Request itself carries no error state, nothing has been
// attempted at construction time.
type Result struct {
	N     int
	Flags uint32
	Err   error
}

// Handler receives the completion of one submitted request.
type Handler func(res Result)

// MapResult converts a raw completion pair into a Result. A negative res
// carries a negated errno, the convention of the completion ring.
func MapResult(res int32, flags uint32) Result {
	if res < 0 {
		errno := syscall.Errno(-res)
		if errno == syscall.ECANCELED {
			return Result{Err: errors.From(ErrCanceled,
				errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
				errors.WithWrap(errno),
			)}
		}
		return Result{Err: errno}
	}
	return Result{N: int(res), Flags: flags}
}
