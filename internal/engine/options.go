package engine

// Option configures an aggregation run.
type Option func(*config)

type config struct {
	strictTicks bool
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithStrictTicks makes a tick that is missing a required field (ticker,
// last price or last quantity) fail the whole run instead of being
// dropped. The default drop policy keeps the remaining data available.
func WithStrictTicks() Option {
	return func(c *config) {
		c.strictTicks = true
	}
}
