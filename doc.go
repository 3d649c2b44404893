// Package tpool implements a fixed-size worker pool.
//
// A pool owns a set of workers spawned at construction and an unbounded
// job queue. Jobs are fire-and-forget closures, executed exactly once by
// some worker. Closing the pool delivers every job already submitted and
// blocks until all workers have exited.
package tpool
