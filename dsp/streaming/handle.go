package streaming

import (
	"sync"

	"github.com/Prophetizo/vectorwave/dsp/errs"
)

// Block is one published coefficient span: A and D are the trailing,
// overlap-free region of one window's transform, starting at the global
// sample Offset.
type Block struct {
	Offset int
	A, D   []float64
}

// Handle is the caller-owned lifecycle around a Processor. Write feeds
// samples, publishing every block that becomes fully available; Flush
// drains the final partial block; Close releases the handle. A Write or
// Flush failure puts the handle into a terminal Closed state (its block
// channel is closed and no further publication happens) rather than
// leaving it retryable, matching the "terminal OnError, stop publishing"
// contract; Write/Flush on an already-closed handle return an
// InvalidState error instead of touching the processor again, and Close
// on an already-closed handle is a no-op returning nil.
type Handle struct {
	proc   *Processor
	blocks chan Block

	mu     sync.Mutex
	closed bool
	err    error
}

// Open starts a streaming MODWT processor and returns a Handle plus its
// read-only subscription channel. The channel is unbuffered: per §9's
// "at most one in-flight block per subscriber," a publish blocks until
// the subscriber receives it, so Write/Flush never race ahead of a slow
// consumer. The channel is closed exactly once, when the handle closes
// (cleanly or on a terminal error).
func Open(cfg Config) (*Handle, <-chan Block, error) {
	h := &Handle{blocks: make(chan Block)}
	cfg.OnBlock = func(offset int, a, d []float64) {
		h.blocks <- Block{
			Offset: offset,
			A:      append([]float64(nil), a...),
			D:      append([]float64(nil), d...),
		}
	}
	proc, err := NewProcessor(cfg)
	if err != nil {
		return nil, nil, err
	}
	h.proc = proc
	return h, h.blocks, nil
}

// Write feeds samples into the processor, publishing every block that
// becomes fully available. It blocks under backpressure per the ring
// buffer's bounded exponential backoff, and returns InvalidState if the
// handle is already closed.
func (h *Handle) Write(samples []float64) error {
	return h.guarded(func() error { return h.proc.Feed(samples) })
}

// Flush drains any remaining partial block (zero-padded to block_size,
// published only through the true end of the stream) and then closes the
// handle, since Flush signals no further samples are coming.
func (h *Handle) Flush() error {
	err := h.guarded(func() error { return h.proc.Flush() })
	h.terminalClose(err)
	return err
}

// Close releases the handle. It is idempotent: closing an already-closed
// handle is a no-op returning nil.
func (h *Handle) Close() error {
	h.terminalClose(nil)
	return nil
}

// Err returns the error that closed the handle, if Write or Flush failed;
// nil if the handle is still open or was closed cleanly.
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *Handle) guarded(op func() error) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return errs.New(errs.InvalidState, "streaming.Handle", "operation on a closed streaming handle")
	}
	h.mu.Unlock()

	if err := op(); err != nil {
		h.terminalClose(err)
		return err
	}
	return nil
}

func (h *Handle) terminalClose(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.err = err
	close(h.blocks)
}
