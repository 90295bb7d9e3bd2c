package game

import (
	"sync"
	"time"
)

// Handle identifies a pending tick request.
type Handle int

// Scheduler hands out one-shot frame callbacks, requestAnimationFrame style.
// The ebiten client is implicitly one (Update runs once per frame);
// TickScheduler covers headless runs and tests. Cancelling before the frame
// boundary drops the callback.
type Scheduler interface {
	RequestTick(fn func()) Handle
	CancelTick(h Handle)
}

// TickScheduler fires callbacks from a fixed-rate timer goroutine. Callbacks
// run sequentially on that goroutine, so session state stays single-threaded.
type TickScheduler struct {
	interval time.Duration

	mu      sync.Mutex
	next    Handle
	pending map[Handle]func()
	started bool
	stop    chan struct{}
}

func NewTickScheduler(interval time.Duration) *TickScheduler {
	return &TickScheduler{
		interval: interval,
		pending:  make(map[Handle]func()),
		stop:     make(chan struct{}),
	}
}

func (t *TickScheduler) RequestTick(fn func()) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	h := t.next
	t.pending[h] = fn
	if !t.started {
		t.started = true
		go t.loop()
	}
	return h
}

func (t *TickScheduler) CancelTick(h Handle) {
	t.mu.Lock()
	delete(t.pending, h)
	t.mu.Unlock()
}

// Stop ends the timer loop; anything still pending is dropped.
func (t *TickScheduler) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		close(t.stop)
		t.started = false
		t.stop = make(chan struct{})
	}
	t.pending = make(map[Handle]func())
}

func (t *TickScheduler) loop() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	stop := t.stop
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			due := make([]func(), 0, len(t.pending))
			for h, fn := range t.pending {
				due = append(due, fn)
				delete(t.pending, h)
			}
			t.mu.Unlock()
			for _, fn := range due {
				fn()
			}
		}
	}
}
