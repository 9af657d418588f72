// Package loop implements a single-threaded dispatch queue. All timer, settings and
// switcher callbacks are posted here and executed one at a time, in posting order.
package loop

import (
	"context"
	"errors"
	"sync"

	log "github.com/go-pkgz/lgr"
)

// ErrStopped is returned by Run after the loop was stopped with Quit.
var ErrStopped = errors.New("loop stopped")

// Loop is a FIFO queue of functions executed on the goroutine calling Run.
type Loop struct {
	queue chan func()
	quit  chan struct{}
	once  sync.Once
}

// New makes a loop with the given queue capacity.
func New(size int) *Loop {
	if size <= 0 {
		size = 64
	}
	return &Loop{queue: make(chan func(), size), quit: make(chan struct{})}
}

// Post schedules fn for execution on the loop. Blocks if the queue is full.
// Posting after Run returned or Quit was called may drop fn.
func (l *Loop) Post(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.quit:
	}
}

// Run executes posted functions until ctx is canceled or Quit is called.
// A panic in a posted function is logged and re-raised.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Quit()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.quit:
			return ErrStopped
		case fn := <-l.queue:
			l.exec(fn)
		}
	}
}

// Drain executes all currently queued functions on the calling goroutine and returns
// the number executed. Used for tests and for final cleanup after Run returned.
func (l *Loop) Drain() int {
	n := 0
	for {
		select {
		case fn := <-l.queue:
			l.exec(fn)
			n++
		default:
			return n
		}
	}
}

// Quit stops Run. Safe to call multiple times.
func (l *Loop) Quit() {
	l.once.Do(func() { close(l.quit) })
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] loop callback panic: %v", x)
			panic(x)
		}
	}()
	fn()
}
