// Package buffer provides an unbounded queue between a transport's
// read loop and its consumer.
package buffer

import "sync"

// Unbounded queues items without ever blocking the sender. Transport
// readers use it so a slow consumer cannot stall the wire: a server
// that streams faster than the client drains must not back-pressure
// into a stuck read loop.
type Unbounded[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	closed bool
	out    chan T
}

// NewUnbounded creates an empty buffer ready for Send.
func NewUnbounded[T any]() *Unbounded[T] {
	b := &Unbounded[T]{out: make(chan T)}
	b.cond = sync.NewCond(&b.mu)
	go b.drain()
	return b
}

// drain moves queued items to the output channel, closing it once the
// buffer is closed and empty.
func (b *Unbounded[T]) drain() {
	for {
		b.mu.Lock()
		for len(b.items) == 0 && !b.closed {
			b.cond.Wait()
		}
		if len(b.items) == 0 {
			b.mu.Unlock()
			close(b.out)
			return
		}
		item := b.items[0]
		b.items = b.items[1:]
		b.mu.Unlock()

		b.out <- item
	}
}

// Send enqueues an item without blocking. Sends after Close are
// dropped.
func (b *Unbounded[T]) Send(item T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.items = append(b.items, item)
	b.cond.Signal()
}

// Receive returns the consumer channel. It closes after Close once all
// queued items have been delivered.
func (b *Unbounded[T]) Receive() <-chan T {
	return b.out
}

// Close stops accepting items. Safe to call more than once.
func (b *Unbounded[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.cond.Signal()
}

// Len reports how many items are queued but not yet delivered.
func (b *Unbounded[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
