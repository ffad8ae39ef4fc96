package synthesizer

import (
	"fmt"
	"time"

	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
)

type options struct {
	workers      int
	fetchTimeout time.Duration
}

func defaultOptions() *options {
	return &options{
		workers:      constants.DefaultWorkers,
		fetchTimeout: constants.DefaultFetchTimeout,
	}
}

// Option is a function that configures a Synthesizer.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithWorkers bounds how many ids are fetched at once.
func WithWorkers(n int) Option {
	return func(o *options) error {
		if n < 1 || n > constants.MaxWorkers {
			return &errors.ValidationError{
				Field:   "workers",
				Value:   n,
				Message: fmt.Sprintf("must be between 1 and %d", constants.MaxWorkers),
			}
		}
		o.workers = n
		return nil
	}
}

// WithFetchTimeout bounds each provider call. Zero disables the per-fetch
// timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return &errors.ValidationError{Field: "fetch_timeout", Value: d, Message: "cannot be negative"}
		}
		o.fetchTimeout = d
		return nil
	}
}
