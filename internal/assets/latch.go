package assets

import (
	"context"
	"sync/atomic"
)

// Latch opens once Signal has been called n times. Signals may arrive in
// any order and from any goroutine; extra signals are ignored.
type Latch struct {
	remaining atomic.Int32
	done      chan struct{}
}

func NewLatch(n int) *Latch {
	l := &Latch{done: make(chan struct{})}
	if n <= 0 {
		close(l.done)
		return l
	}
	l.remaining.Store(int32(n))
	return l
}

func (l *Latch) Signal() {
	if l.remaining.Add(-1) == 0 {
		close(l.done)
	}
}

// Done is closed when the latch opens.
func (l *Latch) Done() <-chan struct{} { return l.done }

// Remaining is the number of signals still outstanding.
func (l *Latch) Remaining() int {
	n := l.remaining.Load()
	if n < 0 {
		return 0
	}
	return int(n)
}

// Wait blocks until the latch opens or ctx ends.
func (l *Latch) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
