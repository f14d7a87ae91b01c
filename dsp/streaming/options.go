package streaming

import (
	"fmt"

	"github.com/Prophetizo/vectorwave/dsp/boundary"
	"github.com/Prophetizo/vectorwave/dsp/errs"
	"github.com/Prophetizo/vectorwave/dsp/wavelet"
)

// BlockCallback receives the trailing, boundary-unaffected slice of a
// block's approximation and detail coefficients, plus the global sample
// offset the slice starts at.
type BlockCallback func(offset int, a, d []float64)

// Config configures a Processor. OnBlock may be left nil when the Config
// is only used through Open, which supplies its own callback that
// publishes to the returned channel, overwriting whatever OnBlock was set
// to; set OnBlock directly only when driving a Processor without Open.
type Config struct {
	Wavelet            *wavelet.Wavelet
	Mode               boundary.Mode // Periodic or ZeroPadding only
	BlockSize          int           // power of two
	CapacityMultiplier int           // ring capacity = nextPow2(BlockSize * CapacityMultiplier), >= 2
	OnBlock            BlockCallback
}

func (c Config) validate() error {
	if c.Wavelet == nil || !c.Wavelet.IsDiscrete() {
		return errs.New(errs.InvalidArgument, "streaming.NewProcessor", "wavelet must be a discrete filter bank")
	}
	if c.Mode != boundary.Periodic && c.Mode != boundary.ZeroPadding {
		return errs.New(errs.InvalidConfiguration, "streaming.NewProcessor", fmt.Sprintf("boundary mode %v not supported for streaming (Periodic or ZeroPadding only)", c.Mode))
	}
	if c.BlockSize <= 0 || c.BlockSize&(c.BlockSize-1) != 0 {
		return errs.New(errs.InvalidConfiguration, "streaming.NewProcessor", "block size must be a power of two")
	}
	if c.CapacityMultiplier < 2 {
		return errs.New(errs.InvalidArgument, "streaming.NewProcessor", "capacity multiplier must be >= 2")
	}
	if c.BlockSize <= c.Wavelet.SupportWidth() {
		return errs.New(errs.InvalidArgument, "streaming.NewProcessor", "block size must exceed the wavelet's support width")
	}
	if c.OnBlock == nil {
		return errs.New(errs.InvalidArgument, "streaming.NewProcessor", "OnBlock subscriber callback must not be nil")
	}
	return nil
}
