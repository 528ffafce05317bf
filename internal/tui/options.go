package tui

// Options configures TUI startup behavior.
type Options struct {
	Value float64 // starting value for every bar
}

// Option mutates Options.
type Option func(*Options)

// WithValue sets the starting value.
func WithValue(v float64) Option {
	return func(o *Options) {
		o.Value = v
	}
}

// DefaultValue is the starting value when none is given.
const DefaultValue = 45

func newOptions(opts ...Option) Options {
	o := Options{Value: DefaultValue}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
