package reconciler

import (
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/differ"
	"github.com/agentstation/dexmap/pkg/errors"
)

type options struct {
	maxID  int
	differ differ.Differ
}

func defaultOptions() *options {
	return &options{
		maxID:  constants.MaxID,
		differ: differ.New(),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithMaxID sets the highest id the catalog should cover.
func WithMaxID(maxID int) Option {
	return func(o *options) error {
		if maxID < constants.MinID {
			return &errors.ValidationError{
				Field:   "max_id",
				Value:   maxID,
				Message: "must be at least 1",
			}
		}
		o.maxID = maxID
		return nil
	}
}

// WithDiffer replaces the drift detector.
func WithDiffer(d differ.Differ) Option {
	return func(o *options) error {
		if d == nil {
			return &errors.ValidationError{Field: "differ", Message: "cannot be nil"}
		}
		o.differ = d
		return nil
	}
}
