//go:build linux

package aio_test

import (
	"testing"
	"unsafe"

	"github.com/avmi/seastar/pkg/aio"
	"github.com/avmi/seastar/pkg/liburing"
	"github.com/stretchr/testify/require"
)

// fakeSubmitter packs requests into entries and completes them immediately,
// standing in for the ring the real runtime owns.
type fakeSubmitter struct {
	entries []liburing.SubmissionQueueEntry
}

func (s *fakeSubmitter) Submit(req aio.Request, handler aio.Handler) error {
	var sqe liburing.SubmissionQueueEntry
	if err := aio.PackSQE(req, &sqe, uint64(len(s.entries)+1)); err != nil {
		return err
	}
	s.entries = append(s.entries, sqe)
	handler(aio.MapResult(int32(req.Size()), 0))
	return nil
}

func TestSubmitterRoundTrip(t *testing.T) {
	sub := &fakeSubmitter{}

	buf := make([]byte, 256)
	var got aio.Result
	err := sub.Submit(aio.MakeWrite(7, 0, unsafe.Pointer(&buf[0]), 256), func(res aio.Result) {
		got = res
	})
	require.NoError(t, err)
	require.NoError(t, got.Err)
	require.Equal(t, 256, got.N)
	require.Len(t, sub.entries, 1)
	require.Equal(t, liburing.IORING_OP_WRITE, sub.entries[0].OpCode)
	require.Equal(t, uint64(1), sub.entries[0].UserData)
}

var _ aio.Submitter = (*fakeSubmitter)(nil)
