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

package mailbox

import (
	"context"

	gods "github.com/Workiva/go-datastructures/queue"
	"golang.org/x/sync/semaphore"
)

// Bounded is a mailbox holding at most capacity items.
//
// Items live in a ring buffer sized to at least capacity. The exact bound is
// enforced by a weighted semaphore: a producer acquires a slot before pushing
// and the consumer releases it after popping, which lets a blocked producer
// give up when its context is done or the mailbox is disposed.
type Bounded[T any] struct {
	gate
	buffer   *gods.RingBuffer
	slots    *semaphore.Weighted
	capacity int
}

// enforce compilation error
var _ Mailbox[int] = (*Bounded[int])(nil)

// NewBounded creates a Bounded mailbox. capacity must be positive.
func NewBounded[T any](capacity int) *Bounded[T] {
	m := &Bounded[T]{
		buffer:   gods.NewRingBuffer(uint64(capacity)),
		slots:    semaphore.NewWeighted(int64(capacity)),
		capacity: capacity,
	}
	m.setup()
	return m
}

// Enqueue pushes the item at the tail of the mailbox, blocking while the
// mailbox is full.
func (m *Bounded[T]) Enqueue(ctx context.Context, item T) error {
	if !m.slots.TryAcquire(1) {
		if err := m.acquire(ctx); err != nil {
			return err
		}
	}

	m.mu.RLock()
	if err := m.admit(); err != nil {
		m.mu.RUnlock()
		m.slots.Release(1)
		return err
	}
	// a slot is held so the ring buffer has room and Put returns immediately
	err := m.buffer.Put(item)
	m.mu.RUnlock()
	if err != nil {
		m.slots.Release(1)
		return ErrDisposed
	}

	m.notify()
	return nil
}

// acquire waits for a free slot until ctx is done or the mailbox is disposed
func (m *Bounded[T]) acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(m.lifetime, cancel)
	defer stop()

	if err := m.slots.Acquire(waitCtx, 1); err != nil {
		if m.lifetime.Err() != nil {
			return ErrDisposed
		}
		return ctx.Err()
	}
	return nil
}

// Receive returns the next item, blocking while the mailbox is empty
func (m *Bounded[T]) Receive(ctx context.Context) (T, error) {
	return receive(ctx, &m.gate, m.TryReceive)
}

// TryReceive returns the next item when one is available
func (m *Bounded[T]) TryReceive() (T, bool) {
	var zero T
	if m.buffer.Len() == 0 {
		return zero, false
	}

	raw, err := m.buffer.Get()
	if err != nil {
		return zero, false
	}
	m.slots.Release(1)

	item, _ := raw.(T)
	return item, true
}

// Len returns the number of buffered items
func (m *Bounded[T]) Len() int64 {
	return int64(m.buffer.Len())
}

// Cap returns the mailbox capacity
func (m *Bounded[T]) Cap() int {
	return m.capacity
}

// Close marks the mailbox as having no producer left
func (m *Bounded[T]) Close() {
	m.close()
}

// Dispose discards the buffered items and releases blocked producers
func (m *Bounded[T]) Dispose() int {
	if !m.dispose() {
		return 0
	}

	discarded := 0
	for {
		if _, ok := m.TryReceive(); !ok {
			break
		}
		discarded++
	}
	m.buffer.Dispose()
	return discarded
}
