package repository

import "time"

type options struct {
	now                   func() time.Time
	metricsUpdateInterval time.Duration
}

func defaultOptions() options {
	return options{
		now:                   time.Now,
		metricsUpdateInterval: 5 * time.Second,
	}
}

// Option applies a configuration option to a store.
type Option func(*options)

// WithMetricsUpdateInterval sets the interval for background metrics updates.
func WithMetricsUpdateInterval(interval time.Duration) Option {
	return func(o *options) {
		if interval > 0 {
			o.metricsUpdateInterval = interval
		}
	}
}

// WithClock sets the time source used for UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
