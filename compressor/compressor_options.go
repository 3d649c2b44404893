package compressor

import (
	"log/slog"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

const defaultSuffix = ".gz"

var (
	ErrCompressionLevel = errors.New("ERROR: invalid gzip compression level")
	ErrEmptySuffix      = errors.New("ERROR: suffix must not be empty")
)

type option func(*Compressor) error

// Concurrency sets the number of workers used for compression. The value
// is validated when the underlying worker pool is built.
func Concurrency(n int) option {
	return func(c *Compressor) error {
		c.concurrency = n
		return nil
	}
}

// Level sets the gzip compression level.
// An error is returned if the level is outside the range gzip supports.
func Level(n int) option {
	return func(c *Compressor) error {
		if n < gzip.StatelessCompression || n > gzip.BestCompression {
			return ErrCompressionLevel
		}

		c.level = n
		return nil
	}
}

// Suffix sets the suffix appended to compressed file names.
func Suffix(s string) option {
	return func(c *Compressor) error {
		if s == "" {
			return ErrEmptySuffix
		}

		c.suffix = s
		return nil
	}
}

// Logger sets the logger passed through to the worker pool.
func Logger(l *slog.Logger) option {
	return func(c *Compressor) error {
		c.logger = l
		return nil
	}
}
