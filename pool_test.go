package tpool_test

import (
	"bytes"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"github.com/alecthomas/assert/v2"
	"go.uber.org/goleak"

	"github.com/tpool"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	t.Run("returns an error if size is less than one", func(t *testing.T) {
		_, err := tpool.New(0)
		assert.IsError(t, err, tpool.ErrPoolSize)

		_, err = tpool.New(-1)
		assert.IsError(t, err, tpool.ErrPoolSize)
	})

	t.Run("creation errors from separate failed builds compare as equal", func(t *testing.T) {
		_, firstErr := tpool.New(0)
		_, secondErr := tpool.New(0)

		assert.Error(t, firstErr)
		assert.Equal(t, firstErr, secondErr)
	})

	t.Run("builds a pool with exactly size workers", func(t *testing.T) {
		for _, size := range []int{1, 4, 16} {
			pool, err := tpool.New(size)
			assert.NoError(t, err)

			assert.Equal(t, size, pool.Size())
			pool.Close()
		}
	})

	t.Run("returns an error if the logger is nil", func(t *testing.T) {
		_, err := tpool.New(1, tpool.WithLogger(nil))
		assert.Error(t, err)
	})
}

func TestExecute(t *testing.T) {
	t.Run("runs every submitted job exactly once", func(t *testing.T) {
		pool, err := tpool.New(4)
		assert.NoError(t, err)

		var mu sync.Mutex
		var got []int

		for i := 0; i < 100; i++ {
			i := i
			err := pool.Execute(func() {
				mu.Lock()
				defer mu.Unlock()
				got = append(got, i)
			})
			assert.NoError(t, err)
		}

		pool.Close()

		sort.Ints(got)
		want := make([]int, 100)
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, got)
	})

	t.Run("does not block the submitter when workers are busy", func(t *testing.T) {
		pool, err := tpool.New(1)
		assert.NoError(t, err)

		release := make(chan struct{})
		assert.NoError(t, pool.Execute(func() { <-release }))

		for i := 0; i < 50; i++ {
			assert.NoError(t, pool.Execute(func() {}))
		}

		close(release)
		pool.Close()
		assert.Equal(t, 0, pool.Pending())
	})

	t.Run("runs jobs on multiple workers in parallel", func(t *testing.T) {
		pool, err := tpool.New(2)
		assert.NoError(t, err)

		var arrived sync.WaitGroup
		arrived.Add(2)
		release := make(chan struct{})

		for i := 0; i < 2; i++ {
			assert.NoError(t, pool.Execute(func() {
				arrived.Done()
				<-release
			}))
		}

		arrived.Wait() // blocks unless both jobs are running at once
		close(release)
		pool.Close()
	})

	t.Run("returns an error when the pool is closed", func(t *testing.T) {
		pool, err := tpool.New(1)
		assert.NoError(t, err)
		pool.Close()

		err = pool.Execute(func() {})
		assert.IsError(t, err, tpool.ErrPoolClosed)
	})

	t.Run("keeps serving after a job panics", func(t *testing.T) {
		pool, err := tpool.New(1)
		assert.NoError(t, err)

		assert.NoError(t, pool.Execute(func() { panic("boom") }))

		ran := false
		assert.NoError(t, pool.Execute(func() { ran = true }))

		pool.Close()
		assert.True(t, ran)
	})
}

func TestClose(t *testing.T) {
	t.Run("completes with zero submissions", func(t *testing.T) {
		pool, err := tpool.New(1)
		assert.NoError(t, err)

		pool.Close()
	})

	t.Run("drains jobs enqueued before close", func(t *testing.T) {
		pool, err := tpool.New(2)
		assert.NoError(t, err)

		var mu sync.Mutex
		count := 0
		for i := 0; i < 20; i++ {
			assert.NoError(t, pool.Execute(func() {
				mu.Lock()
				count++
				mu.Unlock()
			}))
		}

		pool.Close()
		assert.Equal(t, 20, count)
	})

	t.Run("is safe to call from multiple goroutines", func(t *testing.T) {
		pool, err := tpool.New(4)
		assert.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pool.Close()
			}()
		}
		wg.Wait()
	})

	t.Run("logs shutdown through the configured logger", func(t *testing.T) {
		output := bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(&output, nil))

		pool, err := tpool.New(1, tpool.WithLogger(logger))
		assert.NoError(t, err)
		pool.Close()

		assert.Contains(t, output.String(), "pool shutdown completed")
	})
}

func BenchmarkExecute(b *testing.B) {
	pool, err := tpool.New(4)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.Execute(func() {})
	}
	b.StopTimer()

	pool.Close()
}

func BenchmarkClose(b *testing.B) {
	for i := 0; i < b.N; i++ {
		pool, err := tpool.New(4)
		if err != nil {
			b.Fatal(err)
		}
		pool.Close()
	}
}
