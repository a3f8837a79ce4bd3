package service

import (
	"context"
	"time"
)

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

// Observer receives operation outcomes. *metrics.Recorder implements it.
type Observer interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
	RecordCreated(entity string)
	RecordDeleted(entity string)
	PredictionMade(kind string)
}

// Validator checks an input struct, returning the first violation.
type Validator interface {
	Check(input any) error
}

type options struct {
	clock    Clock
	observer Observer
}

// Option configures a service.
type Option func(*options)

// WithClock overrides time.Now.
func WithClock(clock Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithObserver reports operation outcomes to observer.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{clock: time.Now, observer: noopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type noopObserver struct{}

func (noopObserver) Observe(context.Context, string, bool, time.Duration) {}
func (noopObserver) RecordCreated(string)                                {}
func (noopObserver) RecordDeleted(string)                                {}
func (noopObserver) PredictionMade(string)                               {}

// observe reports the outcome of an operation started at start. It is meant
// to be deferred with a pointer to the named error result.
func (o options) observe(ctx context.Context, operation string, start time.Time, errp *error) {
	o.observer.Observe(ctx, operation, *errp == nil, time.Since(start))
}
