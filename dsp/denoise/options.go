package denoise

import "github.com/Prophetizo/vectorwave/dsp/modwt"

type config struct {
	estimator  Estimator
	rule       Rule
	modwtOpts  []modwt.Option
}

func defaultConfig() config {
	return config{estimator: Universal, rule: Soft}
}

// Option configures a Denoise call.
type Option func(*config)

// WithEstimator selects the threshold estimator. Default Universal.
func WithEstimator(e Estimator) Option {
	return func(c *config) { c.estimator = e }
}

// WithRule selects the shrinkage rule. Default Soft.
func WithRule(r Rule) Option {
	return func(c *config) { c.rule = r }
}

// WithModwtOptions forwards parallel-strategy options to the underlying
// dsp/modwt.Decompose call.
func WithModwtOptions(opts ...modwt.Option) Option {
	return func(c *config) { c.modwtOpts = opts }
}
