//go:build linux

package aio

// Submitter is the submission side of the kernel async I/O facility. It
// consumes request values and later hands each completion to the handler
// registered with it. Implementations own request lifetimes past Submit,
// the caller only guarantees the memory a request references stays valid
// until the handler runs.
type Submitter interface {
	Submit(req Request, handler Handler) (err error)
}

// Queue sits between callers and a Submitter, ordering and batching
// requests before submission. Any ordering guarantee between two requests
// lives here, the request values themselves impose none.
type Queue interface {
	Push(req Request, handler Handler) (err error)
	Flush() (err error)
}
