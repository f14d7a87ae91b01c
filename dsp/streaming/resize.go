package streaming

import (
	"sync"
	"time"

	"github.com/Prophetizo/vectorwave/dsp/errs"
)

const (
	highUtilization   = 0.85
	lowUtilization    = 0.25
	sustainedDuration = time.Second
)

// ResizableRingBuffer wraps a RingBuffer behind a pause-capable swap: a
// resize epoch briefly excludes writers (via mu) while unread samples are
// copied into a freshly sized buffer, then the swap completes and writers
// resume.
//
// Utilization is evaluated by calling CheckUtilization on a cadence the
// caller controls (e.g. from a time.Ticker), rather than from a hidden
// background goroutine, so resize timing stays observable and testable.
type ResizableRingBuffer struct {
	mu  sync.RWMutex
	ring *RingBuffer

	minCapacity int
	maxCapacity int

	highSince time.Time
	lowSince  time.Time
}

// NewResizableRingBuffer builds a resizable ring buffer starting at
// initialCapacity (rounded up to a power of two), never shrinking below
// minCapacity nor growing past maxCapacity.
func NewResizableRingBuffer(initialCapacity, minCapacity, maxCapacity int) (*ResizableRingBuffer, error) {
	if minCapacity <= 0 || maxCapacity < minCapacity || initialCapacity < minCapacity || initialCapacity > maxCapacity {
		return nil, errs.New(errs.InvalidArgument, "streaming.NewResizableRingBuffer", "capacity bounds are inconsistent")
	}
	ring, err := NewRingBuffer(initialCapacity)
	if err != nil {
		return nil, err
	}
	return &ResizableRingBuffer{ring: ring, minCapacity: minCapacity, maxCapacity: maxCapacity}, nil
}

// Write delegates to the current ring buffer, held briefly under a read
// lock so a concurrent resize can exclude it.
func (r *ResizableRingBuffer) Write(samples []float64) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ring.Write(samples)
}

// WriteBlocking delegates to the current ring buffer's backoff-and-retry
// write.
func (r *ResizableRingBuffer) WriteBlocking(samples []float64) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ring.WriteBlocking(samples)
}

// Read delegates to the current ring buffer.
func (r *ResizableRingBuffer) Read(out []float64) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ring.Read(out)
}

// Capacity returns the current ring's capacity.
func (r *ResizableRingBuffer) Capacity() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ring.Capacity()
}

// CheckUtilization samples the current Available()/Capacity() ratio at
// time now and grows or shrinks the buffer once the high/low thresholds
// have been sustained for sustainedDuration. Call this on whatever cadence
// the caller likes (a ticker, or once per Feed); it is a no-op between
// threshold crossings.
func (r *ResizableRingBuffer) CheckUtilization(now time.Time) error {
	r.mu.RLock()
	util := float64(r.ring.Available()) / float64(r.ring.Capacity())
	capacity := r.ring.Capacity()
	r.mu.RUnlock()

	switch {
	case util > highUtilization:
		r.lowSince = time.Time{}
		if r.highSince.IsZero() {
			r.highSince = now
		} else if now.Sub(r.highSince) >= sustainedDuration && capacity < r.maxCapacity {
			r.highSince = time.Time{}
			return r.resize(capacity * 2)
		}
	case util < lowUtilization:
		r.highSince = time.Time{}
		if r.lowSince.IsZero() {
			r.lowSince = now
		} else if now.Sub(r.lowSince) >= sustainedDuration && capacity > r.minCapacity {
			r.lowSince = time.Time{}
			return r.resize(capacity / 2)
		}
	default:
		r.highSince = time.Time{}
		r.lowSince = time.Time{}
	}
	return nil
}

// resize swaps in a freshly sized ring buffer, preserving every unread
// sample's order. Writers are excluded for the duration via mu's write
// lock, the "resize epoch" of the spec's design.
func (r *ResizableRingBuffer) resize(newCapacity int) error {
	if newCapacity < r.minCapacity {
		newCapacity = r.minCapacity
	}
	if newCapacity > r.maxCapacity {
		newCapacity = r.maxCapacity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make([]float64, r.ring.Available())
	r.ring.Read(pending)

	next, err := NewRingBuffer(newCapacity)
	if err != nil {
		return err
	}
	if err := next.Write(pending); err != nil {
		return errs.Wrap(errs.ResourceExhausted, "streaming.resize", "resized capacity too small for pending samples", err)
	}
	r.ring = next
	return nil
}
