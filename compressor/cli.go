package compressor

import (
	"github.com/pkg/errors"
)

type CLI struct {
	Paths       []string
	Concurrency int
	Level       int
	Suffix      string
}

func (c *CLI) Compress() error {
	compressor, err := NewCompressor(Concurrency(c.Concurrency), Level(c.Level), Suffix(c.Suffix))
	if err != nil {
		return errors.Wrap(err, "ERROR: could not create compressor")
	}

	if err := compressor.Compress(c.Paths...); err != nil {
		compressor.Close()
		return errors.Wrapf(err, "ERROR: could not compress %v", c.Paths)
	}

	return compressor.Close()
}
