package pool

import "math"

type options struct {
	initialSize int
	maxSize     int
}

func defaultOptions() options {
	return options{
		initialSize: 0,
		maxSize:     math.MaxInt,
	}
}

// Option configures a Pool.
type Option func(*options)

// WithInitialSize pre-populates the pool with n objects (capped at the max size).
func WithInitialSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialSize = n
		}
	}
}

// WithMaxSize caps the number of idle objects the pool retains.
// Negative values are treated as zero (nothing is ever retained).
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxSize = n
	}
}
