package event_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revos/internal/domain"
	"revos/internal/host/event"
)

func TestQueue_RunsCallback(t *testing.T) {
	q := event.New(time.Second)
	defer q.Close()

	ran := false
	err := q.Do(context.Background(), "test", func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestQueue_PropagatesError(t *testing.T) {
	q := event.New(time.Second)
	defer q.Close()

	want := errors.New("boom")
	err := q.Do(context.Background(), "test", func() error { return want })
	assert.ErrorIs(t, err, want)
}

func TestQueue_SerializesCallbacks(t *testing.T) {
	q := event.New(2 * time.Second)
	defer q.Close()

	var inFlight, maxInFlight int32
	run := func() error {
		n := atomic.AddInt32(&inFlight, 1)
		if n > atomic.LoadInt32(&maxInFlight) {
			atomic.StoreInt32(&maxInFlight, n)
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return nil
	}

	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		go func() {
			_ = q.Do(context.Background(), "concurrent", run)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 5; i++ {
		<-done
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight))
}

func TestQueue_Timeout(t *testing.T) {
	q := event.New(20 * time.Millisecond)
	defer q.Close()

	started := make(chan struct{})
	finished := make(chan struct{})
	err := q.Do(context.Background(), "slow", func() error {
		close(started)
		time.Sleep(100 * time.Millisecond)
		close(finished)
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrHostTimeout)

	// The host-side work is not interrupted by the caller's timeout.
	<-started
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("host work was interrupted by caller timeout")
	}
}

func TestQueue_RecoversPanic(t *testing.T) {
	q := event.New(time.Second)
	defer q.Close()

	err := q.Do(context.Background(), "panicky", func() error {
		panic("bad element")
	})
	assert.ErrorIs(t, err, domain.ErrHostOperation)

	// The queue keeps serving after a panic.
	assert.NoError(t, q.Do(context.Background(), "next", func() error { return nil }))
}

func TestQueue_Closed(t *testing.T) {
	q := event.New(time.Second)
	q.Close()

	err := q.Do(context.Background(), "late", func() error { return nil })
	assert.ErrorIs(t, err, event.ErrQueueClosed)
}
