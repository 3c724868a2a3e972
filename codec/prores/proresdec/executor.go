/*
DESCRIPTION
  executor.go provides the pluggable slice-parallel dispatch contract
  (the FFmpeg execute2 analogue) and a default goroutine-pool
  implementation.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package proresdec

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Executor dispatches n independent units of work, indexed 0..n-1, and
// collects one error per unit. Callers needing a custom scheduling
// policy (a shared worker pool across several Decoders, for instance)
// may supply their own Executor via WithExecutor.
type Executor interface {
	// Execute calls fn(jobIndex, threadIndex) for every jobIndex in
	// [0, n), possibly concurrently, and returns the error from each call
	// in a slice of length n (a nil entry means that unit succeeded).
	// threadIndex identifies which worker ran the call (0..worker count
	// - 1), for implementations that want per-worker scratch state; the
	// default kernel doesn't need it.
	Execute(n int, fn func(jobIndex, threadIndex int) error) []error
}

// DefaultExecutor runs work on a fixed-size goroutine pool sized to
// runtime.GOMAXPROCS(0). ProRes slices carry no inter-slice state, so
// unlike a row-parallel video encoder there's no need for per-row
// handshaking: each worker simply claims the next unclaimed index from
// a shared atomic counter until the work is exhausted.
type DefaultExecutor struct {
	// Workers overrides the pool size; zero means runtime.GOMAXPROCS(0).
	Workers int
}

var _ Executor = DefaultExecutor{}

func (e DefaultExecutor) Execute(n int, fn func(jobIndex, threadIndex int) error) []error {
	errs := make([]error, n)
	if n == 0 {
		return errs
	}

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				errs[i] = fn(i, w)
			}
		}()
	}
	wg.Wait()
	return errs
}
