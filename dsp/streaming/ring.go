package streaming

import (
	"sync/atomic"
	"time"

	"github.com/Prophetizo/vectorwave/dsp/errs"
	"github.com/Prophetizo/vectorwave/internal/fft"
)

// RingBuffer is a power-of-two-capacity circular float64 buffer with
// atomic write/read cursors, generalizing the teacher's circular
// delay-line index arithmetic (writePos modulo buffer length) into a
// monotonic-counter form that supports backpressure and resize.
type RingBuffer struct {
	data     []float64
	capacity uint64
	mask     uint64

	writePos atomic.Uint64 // total samples ever reserved for writing
	readPos  atomic.Uint64 // total samples ever consumed
}

// NewRingBuffer allocates a ring buffer whose capacity is the next power
// of two >= requested.
func NewRingBuffer(requested int) (*RingBuffer, error) {
	if requested <= 0 {
		return nil, errs.New(errs.InvalidArgument, "streaming.NewRingBuffer", "capacity must be positive")
	}
	cap := fft.NextPow2(requested)
	return &RingBuffer{
		data:     make([]float64, cap),
		capacity: uint64(cap),
		mask:     uint64(cap - 1),
	}, nil
}

// Capacity returns the buffer's total slot count.
func (r *RingBuffer) Capacity() int { return int(r.capacity) }

// Available returns the number of samples currently readable.
func (r *RingBuffer) Available() int {
	return int(r.writePos.Load() - r.readPos.Load())
}

// FreeSpace returns the number of samples that can be written without
// blocking.
func (r *RingBuffer) FreeSpace() int {
	return int(r.capacity) - r.Available()
}

// Write reserves space for samples via a compare-and-swap loop and copies
// them in. Returns a ResourceExhausted error (WouldBlock) if there is not
// enough free space; see WriteBlocking for the backoff-and-retry variant
// that implements the spec's backpressure policy.
func (r *RingBuffer) Write(samples []float64) error {
	n := uint64(len(samples))
	if n == 0 {
		return nil
	}
	for {
		cur := r.writePos.Load()
		free := r.capacity - (cur - r.readPos.Load())
		if free < n {
			return errs.New(errs.ResourceExhausted, "streaming.Write", "insufficient free space")
		}
		if r.writePos.CompareAndSwap(cur, cur+n) {
			for i, v := range samples {
				r.data[(cur+uint64(i))&r.mask] = v
			}
			return nil
		}
	}
}

// WriteBatch writes multiple sample arrays as one atomic reservation: the
// write cursor advances by their combined length only after every array
// is copied in, so readers never observe a partial batch.
func (r *RingBuffer) WriteBatch(arrays [][]float64) error {
	total := 0
	for _, a := range arrays {
		total += len(a)
	}
	if total == 0 {
		return nil
	}
	n := uint64(total)
	for {
		cur := r.writePos.Load()
		free := r.capacity - (cur - r.readPos.Load())
		if free < n {
			return errs.New(errs.ResourceExhausted, "streaming.WriteBatch", "insufficient free space")
		}
		if r.writePos.CompareAndSwap(cur, cur+n) {
			pos := cur
			for _, a := range arrays {
				for _, v := range a {
					r.data[pos&r.mask] = v
					pos++
				}
			}
			return nil
		}
	}
}

// backoffSchedule is the spec's bounded exponential backoff: 1us, 2us,
// 4us, ... capped at 1ms.
func backoffSchedule() []time.Duration {
	schedule := make([]time.Duration, 0, 11)
	d := time.Microsecond
	for d < time.Millisecond {
		schedule = append(schedule, d)
		d *= 2
	}
	schedule = append(schedule, time.Millisecond)
	return schedule
}

// WriteBlocking retries Write with bounded exponential backoff (1us, 2us,
// 4us, ... up to 1ms) until it succeeds or the backoff schedule is
// exhausted, at which point it returns ResourceExhausted (WouldBlock).
func (r *RingBuffer) WriteBlocking(samples []float64) error {
	if err := r.Write(samples); err == nil {
		return nil
	}
	for _, d := range backoffSchedule() {
		time.Sleep(d)
		if err := r.Write(samples); err == nil {
			return nil
		}
	}
	return errs.New(errs.ResourceExhausted, "streaming.WriteBlocking", "write would block after exhausting backoff")
}

// Read copies up to len(out) available samples into out, advancing the
// read cursor by the amount copied.
func (r *RingBuffer) Read(out []float64) int {
	n := r.Peek(out)
	r.readPos.Add(uint64(n))
	return n
}

// Peek copies up to len(out) available samples into out without
// advancing the read cursor, for callers (Processor) that need to
// re-examine the tail of a window before deciding how far to advance.
func (r *RingBuffer) Peek(out []float64) int {
	avail := r.Available()
	n := len(out)
	if n > avail {
		n = avail
	}
	cur := r.readPos.Load()
	for i := 0; i < n; i++ {
		out[i] = r.data[(cur+uint64(i))&r.mask]
	}
	return n
}

// Advance moves the read cursor forward by n samples without copying
// anything out, for callers that have already consumed a prefix via Peek.
func (r *RingBuffer) Advance(n int) error {
	if n < 0 || n > r.Available() {
		return errs.New(errs.InvalidArgument, "streaming.Advance", "advance amount exceeds available samples")
	}
	r.readPos.Add(uint64(n))
	return nil
}

// PrefetchWrite issues a best-effort cache warm-up read of the slot the
// next Write call will touch first. Go has no portable prefetch
// intrinsic, so this approximates the hint by touching the cache line
// itself.
func (r *RingBuffer) PrefetchWrite() {
	cur := r.writePos.Load()
	_ = r.data[cur&r.mask]
}

// PrefetchRead issues the same best-effort hint for the next Read/Peek
// call's first slot.
func (r *RingBuffer) PrefetchRead() {
	cur := r.readPos.Load()
	_ = r.data[cur&r.mask]
}
