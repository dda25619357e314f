package apted

// Options configures an Engine.
//
// ValidateCosts – when true, every cost returned by the configured
// Model is checked for being finite and non-negative; Distance
// reports costmodel.ErrNonFiniteCost instead of returning a
// NaN-poisoned or meaningless result. Disabled by default since it
// adds a check to every cost-model call in the hottest loop of the
// algorithm.
type Options struct {
	ValidateCosts bool
}

// Option is a functional option for configuring an Engine.
type Option func(*Options)

// WithCostValidation enables per-call validation of the configured
// Model's returned costs.
func WithCostValidation() Option {
	return func(o *Options) {
		o.ValidateCosts = true
	}
}

func defaultOptions() Options {
	return Options{ValidateCosts: false}
}
