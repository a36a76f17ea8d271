// Package event marshals automation requests onto the host's single execution
// thread. The host runs all document work itself; callers enqueue a callback
// and block until the host signals completion or the wait times out. Work that
// has started on the host side is never interrupted - a caller-side timeout
// only abandons the wait.
package event

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"revos/internal/domain"
)

// ErrQueueClosed is returned for requests raised after Close.
var ErrQueueClosed = errors.New("event queue closed")

type job struct {
	name string
	fn   func() error
	done chan error
}

// Queue serializes callbacks onto one dispatcher goroutine, standing in for
// the host's external-event mechanism. Two callbacks never run concurrently.
type Queue struct {
	jobs    chan job
	timeout time.Duration
	closed  chan struct{}
}

// New starts a queue whose callers wait up to timeout for completion.
func New(timeout time.Duration) *Queue {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	q := &Queue{
		jobs:    make(chan job, 64),
		timeout: timeout,
		closed:  make(chan struct{}),
	}
	go q.dispatch()
	return q
}

func (q *Queue) dispatch() {
	for {
		select {
		case <-q.closed:
			return
		case j := <-q.jobs:
			start := time.Now()
			err := runRecovered(j.name, j.fn)
			if d := time.Since(start); d > time.Second {
				log.Printf("event: %s held the host thread for %s", j.name, d)
			}
			j.done <- err
		}
	}
}

// runRecovered converts a panic inside a host callback into a host operation
// error so one bad request cannot take down the process.
func runRecovered(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event: %s panicked: %v", name, r)
			err = fmt.Errorf("%w: %s: %v", domain.ErrHostOperation, name, r)
		}
	}()
	return fn()
}

// Do enqueues fn and blocks until it completes, the configured timeout
// elapses, or ctx is done. On timeout the in-progress host work keeps running;
// its eventual result is discarded.
func (q *Queue) Do(ctx context.Context, name string, fn func() error) error {
	j := job{name: name, fn: fn, done: make(chan error, 1)}

	select {
	case <-q.closed:
		return ErrQueueClosed
	case q.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	}

	timer := time.NewTimer(q.timeout)
	defer timer.Stop()

	select {
	case err := <-j.done:
		return err
	case <-timer.C:
		log.Printf("event: %s still running after %s, abandoning wait", name, q.timeout)
		return fmt.Errorf("%w after %s: %s", domain.ErrHostTimeout, q.timeout, name)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the dispatcher. Queued but unstarted jobs are dropped.
func (q *Queue) Close() {
	close(q.closed)
}
