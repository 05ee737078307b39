package pipeloop

import "github.com/katalvlaran/pipeloop/area"

// Options holds tunable parameters for Solve.
type Options struct {
	// Method selects how the enclosed cells are counted.
	Method area.Method
	// Verify runs both area methods and fails on disagreement.
	Verify bool
}

// Option configures Solve.
type Option func(*Options)

// DefaultOptions returns Options with Method=MethodPick and Verify=false.
func DefaultOptions() Options {
	return Options{Method: area.MethodPick}
}

// WithMethod selects the enclosed-cell counting method.
func WithMethod(m area.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithVerify enables cross-checking Pick's theorem against the scanline sweep.
func WithVerify() Option {
	return func(o *Options) { o.Verify = true }
}
