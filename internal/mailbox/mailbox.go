// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package mailbox provides the FIFO, multi-producer single-consumer channel an
// actor drains. A mailbox has two terminal signals:
//
//   - Close: no producer remains. The consumer keeps receiving buffered items
//     and gets ErrClosed once the mailbox is empty.
//   - Dispose: the consumer is gone. Buffered items are discarded and every
//     pending or later Enqueue fails with ErrDisposed.
package mailbox

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/atomic"
)

var (
	// ErrClosed is returned when every producer is gone. Receive only returns it
	// once the buffered items have been drained.
	ErrClosed = errors.New("mailbox is closed")
	// ErrDisposed is returned once the consumer has disposed the mailbox
	ErrDisposed = errors.New("mailbox is disposed")
)

// Mailbox defines the contract of an actor mailbox.
//
// Concurrency and ordering
//   - Enqueue is safe for any number of concurrent producers.
//   - Receive, TryReceive and Dispose must be called from the single consumer.
//   - Items are received in the order their Enqueue calls completed.
type Mailbox[T any] interface {
	// Enqueue pushes an item into the mailbox. Bounded mailboxes block while
	// full until a slot frees up, ctx is done or the mailbox is disposed.
	Enqueue(ctx context.Context, item T) error
	// Receive blocks until an item is available, the mailbox is closed and
	// empty, the mailbox is disposed or ctx is done.
	Receive(ctx context.Context) (T, error)
	// TryReceive returns the next item without blocking.
	TryReceive() (T, bool)
	// Len returns a snapshot of the number of buffered items.
	Len() int64
	// Close marks the mailbox as having no producer left. It is idempotent.
	Close()
	// Dispose discards the buffered items, unblocks waiting producers and
	// returns the number of discarded items. It is idempotent.
	Dispose() int
}

// New returns a bounded mailbox when capacity is positive and an unbounded
// one otherwise.
func New[T any](capacity int) Mailbox[T] {
	if capacity > 0 {
		return NewBounded[T](capacity)
	}
	return NewUnbounded[T]()
}

// gate tracks the terminal signals shared by both implementations.
//
// Producers hold the read lock while checking the gate and pushing so that
// once Close or Dispose returns, every accepted item is visible to the consumer.
type gate struct {
	mu       sync.RWMutex
	closed   atomic.Bool
	disposed atomic.Bool
	// signal wakes the consumer; buffered so a wake-up is never lost
	signal chan struct{}
	// lifetime is canceled on Dispose to release blocked producers
	lifetime context.Context
	kill     context.CancelFunc
}

func (g *gate) setup() {
	g.signal = make(chan struct{}, 1)
	g.lifetime, g.kill = context.WithCancel(context.Background())
}

// admit must be called with the read lock held
func (g *gate) admit() error {
	if g.disposed.Load() {
		return ErrDisposed
	}
	if g.closed.Load() {
		return ErrClosed
	}
	return nil
}

func (g *gate) notify() {
	select {
	case g.signal <- struct{}{}:
	default:
	}
}

func (g *gate) close() {
	g.mu.Lock()
	g.closed.Store(true)
	g.mu.Unlock()
	g.notify()
}

// dispose reports whether this call performed the transition
func (g *gate) dispose() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.disposed.Load() {
		return false
	}
	g.disposed.Store(true)
	g.kill()
	g.notify()
	return true
}

// receive implements the blocking consumer loop on top of a non-blocking pop
func receive[T any](ctx context.Context, g *gate, pop func() (T, bool)) (T, error) {
	var zero T
	for {
		if g.disposed.Load() {
			return zero, ErrDisposed
		}

		if item, ok := pop(); ok {
			return item, nil
		}

		if g.closed.Load() {
			// producers finish pushing before the close is committed
			if item, ok := pop(); ok {
				return item, nil
			}
			return zero, ErrClosed
		}

		select {
		case <-g.signal:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}
