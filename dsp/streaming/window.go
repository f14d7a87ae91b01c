package streaming

import (
	"github.com/Prophetizo/vectorwave/dsp/buffer"
	"github.com/Prophetizo/vectorwave/dsp/modwt"
)

// Processor drives single-level streaming MODWT over a sliding window: it
// accumulates samples in a RingBuffer, transforms every full block as it
// becomes available, and publishes only the block's trailing, overlap-free
// span to the subscriber (the leading `overlap` samples of every non-first
// block are boundary-contaminated by the backward-looking kernel; the
// trailing edge never is).
type Processor struct {
	cfg     Config
	ring    *RingBuffer
	pool    *buffer.Pool // scratch block buffers, reused across every drain/flush
	overlap int          // L-1, the wavelet filter's support width minus one
	advance int          // block_size - overlap: read-cursor advance per block
	started bool
}

// NewProcessor builds a Processor over a fresh ring buffer sized
// nextPow2(BlockSize * CapacityMultiplier).
func NewProcessor(cfg Config) (*Processor, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	ring, err := NewRingBuffer(cfg.BlockSize * cfg.CapacityMultiplier)
	if err != nil {
		return nil, err
	}
	overlap := cfg.Wavelet.SupportWidth() - 1
	return &Processor{
		cfg:     cfg,
		ring:    ring,
		pool:    buffer.NewPool(),
		overlap: overlap,
		advance: cfg.BlockSize - overlap,
	}, nil
}

// Feed appends samples to the ring buffer (blocking with the spec's
// bounded exponential backoff on backpressure) and transforms every full
// block now available.
func (p *Processor) Feed(samples []float64) error {
	if err := p.ring.WriteBlocking(samples); err != nil {
		return err
	}
	return p.drainReady()
}

// Flush transforms any remaining partial block, zero-padding it out to
// block_size, and publishes through the block's final sample since no
// further block will ever cover that tail.
func (p *Processor) Flush() error {
	if err := p.drainReady(); err != nil {
		return err
	}
	remaining := p.ring.Available()
	if remaining == 0 {
		return nil
	}
	buf := p.pool.Get(p.cfg.BlockSize)
	defer p.pool.Put(buf)
	block := buf.Samples()
	n := p.ring.Peek(block)
	blockStart := int(p.ring.readPos.Load())

	a, d, err := modwt.Forward(block, p.cfg.Wavelet, p.cfg.Mode)
	if err != nil {
		return err
	}
	left := p.skipWidth(!p.started)
	// n < block_size means the tail was zero-padded: only samples through
	// the true end of the stream are real, so the published span stops at
	// n rather than at block_size.
	hi := p.cfg.BlockSize
	if n < hi {
		hi = n
	}
	p.cfg.OnBlock(blockStart+left, a[left:hi], d[left:hi])
	p.started = true
	return p.ring.Advance(n)
}

func (p *Processor) drainReady() error {
	for p.ring.Available() >= p.cfg.BlockSize {
		buf := p.pool.Get(p.cfg.BlockSize)
		block := buf.Samples()
		p.ring.Peek(block)
		blockStart := int(p.ring.readPos.Load())

		a, d, err := modwt.Forward(block, p.cfg.Wavelet, p.cfg.Mode)
		p.pool.Put(buf)
		if err != nil {
			return err
		}
		left := p.skipWidth(!p.started)
		p.cfg.OnBlock(blockStart+left, a[left:p.cfg.BlockSize], d[left:p.cfg.BlockSize])
		p.started = true

		if err := p.ring.Advance(p.advance); err != nil {
			return err
		}
	}
	return nil
}

// skipWidth returns how many samples to trim from the left edge of a
// block's coefficients before publishing. The forward kernel
// (y[t] = sum f[k]*x[(t-stride*k) mod N]) only looks backward, so a
// window's left `overlap` samples are contaminated by the intra-block
// Periodic/Zero boundary assumption at the block's own start; the right
// edge never is, since nothing beyond it feeds into any published sample.
// The first block has no predecessor to be contaminated by, so its left
// edge is already trustworthy.
func (p *Processor) skipWidth(isFirst bool) int {
	if isFirst {
		return 0
	}
	return p.overlap
}
