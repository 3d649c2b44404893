// Package compressor compresses files concurrently using a tpool worker
// pool, one gzip job per regular file.
package compressor

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/tpool"
)

type Compressor struct {
	pool        *tpool.Pool
	concurrency int
	level       int
	suffix      string
	logger      *slog.Logger

	mu       sync.Mutex
	firstErr error
}

// NewCompressor returns a new compressor. The compressor can be configured
// by passing in a number of options. Available options include
// Concurrency(n int), Level(n int), Suffix(s string) and Logger(l *slog.Logger).
// It returns an error if the compressor can't be created.
// Close() should be called on the returned compressor when done.
func NewCompressor(options ...option) (*Compressor, error) {
	c := &Compressor{
		concurrency: runtime.GOMAXPROCS(0),
		level:       gzip.DefaultCompression,
		suffix:      defaultSuffix,
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	var poolOptions []tpool.Option
	if c.logger != nil {
		poolOptions = append(poolOptions, tpool.WithLogger(c.logger))
	}

	pool, err := tpool.New(c.concurrency, poolOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "ERROR: could not create worker pool")
	}
	c.pool = pool

	return c, nil
}

// Compress walks each of the given paths and submits one compression job
// per regular file. A file at some path p is compressed to p + suffix.
// Files already carrying the suffix are skipped. Compress returns once
// every job has been enqueued; job failures are reported by Close.
func (c *Compressor) Compress(paths ...string) error {
	g := new(errgroup.Group)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			return c.walk(path)
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "ERROR: could not walk input paths")
	}

	return nil
}

// Close waits for all submitted compression jobs to finish and shuts the
// worker pool down. It returns the first job failure, if any.
func (c *Compressor) Close() error {
	c.pool.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.firstErr
}

func (c *Compressor) walk(root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !entry.Type().IsRegular() || strings.HasSuffix(path, c.suffix) {
			return nil
		}

		return c.pool.Execute(func() {
			if err := c.compressFile(path); err != nil {
				c.record(errors.Wrapf(err, "ERROR: could not compress file %s", path))
			}
		})
	})
}

func (c *Compressor) compressFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path + c.suffix)
	if err != nil {
		return err
	}
	defer dst.Close()

	writer, err := gzip.NewWriterLevel(dst, c.level)
	if err != nil {
		return err
	}

	if _, err := io.Copy(writer, src); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return dst.Close()
}

// record keeps the first failure; jobs return nothing to the pool.
func (c *Compressor) record(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.firstErr == nil {
		c.firstErr = err
	}
}
