// Package streaming implements the block-wise streaming MODWT: samples
// accumulate in a ring buffer, each full block is transformed once it is
// available, and only the trailing, boundary-unaffected portion of each
// block's coefficients is published. The forward kernel only looks
// backward from each output index, so a block's leading `overlap` samples
// are contaminated by the intra-block boundary assumption at the block's
// own start while its trailing samples never are; trimming the leading
// edge keeps consecutive blocks from double-publishing the same sample
// under a different (less trustworthy, edge-adjacent) boundary assumption.
//
// The ring buffer here assumes a single producer goroutine per instance:
// Write's compare-and-swap loop guards against a producer racing its own
// backpressure retry or a concurrent resize, not against multiple
// concurrent producers publishing into the same buffer. Multiple readers
// are not supported either — Processor owns the one read cursor that
// drains blocks for transformation.
package streaming
