package tpool

import (
	"log/slog"

	"github.com/pkg/errors"
)

const minPoolSize = 1

var (
	ErrPoolSize   = errors.New("ERROR: pool size must be 1 or greater")
	ErrPoolClosed = errors.New("ERROR: pool is closed")
)

type Option func(*Pool) error

// WithLogger sets the logger used for pool and worker lifecycle events.
// By default the pool logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pool) error {
		if logger == nil {
			return errors.New("ERROR: logger must not be nil")
		}

		p.logger = logger
		return nil
	}
}
