package game

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickSchedulerFiresOnce(t *testing.T) {
	s := NewTickScheduler(time.Millisecond)
	defer s.Stop()

	var n int32
	done := make(chan struct{})
	s.RequestTick(func() {
		atomic.AddInt32(&n, 1)
		close(done)
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tick never fired")
	}
	// one-shot: no refire
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&n))
}

func TestTickSchedulerCancel(t *testing.T) {
	s := NewTickScheduler(5 * time.Millisecond)
	defer s.Stop()

	var n int32
	h := s.RequestTick(func() { atomic.AddInt32(&n, 1) })
	s.CancelTick(h)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&n))
}

func TestTickSchedulerReschedule(t *testing.T) {
	s := NewTickScheduler(time.Millisecond)
	defer s.Stop()

	done := make(chan struct{})
	var ticks int32
	var step func()
	step = func() {
		if atomic.AddInt32(&ticks, 1) < 3 {
			s.RequestTick(step)
			return
		}
		close(done)
	}
	s.RequestTick(step)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("chained ticks never completed")
	}
}
