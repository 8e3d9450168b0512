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

	"github.com/tochemey/asyncactor/internal/queue"
)

// Unbounded is a mailbox without capacity limit backed by a lock-free MPSC
// queue. Enqueue never blocks; if producers outpace the consumer memory grows
// without limit.
type Unbounded[T any] struct {
	gate
	queue *queue.Mpsc[T]
}

// enforce compilation error
var _ Mailbox[int] = (*Unbounded[int])(nil)

// NewUnbounded creates an Unbounded mailbox
func NewUnbounded[T any]() *Unbounded[T] {
	m := &Unbounded[T]{queue: queue.NewMpsc[T]()}
	m.setup()
	return m
}

// Enqueue pushes the item at the tail of the mailbox. ctx is not consulted
// since the call never blocks.
func (m *Unbounded[T]) Enqueue(_ context.Context, item T) error {
	m.mu.RLock()
	if err := m.admit(); err != nil {
		m.mu.RUnlock()
		return err
	}
	m.queue.Push(item)
	m.mu.RUnlock()
	m.notify()
	return nil
}

// Receive returns the next item, blocking while the mailbox is empty
func (m *Unbounded[T]) Receive(ctx context.Context) (T, error) {
	return receive(ctx, &m.gate, m.queue.Pop)
}

// TryReceive returns the next item when one is available
func (m *Unbounded[T]) TryReceive() (T, bool) {
	return m.queue.Pop()
}

// Len returns the number of buffered items
func (m *Unbounded[T]) Len() int64 {
	return m.queue.Len()
}

// Close marks the mailbox as having no producer left
func (m *Unbounded[T]) Close() {
	m.close()
}

// Dispose discards the buffered items
func (m *Unbounded[T]) Dispose() int {
	if !m.dispose() {
		return 0
	}

	discarded := 0
	for {
		if _, ok := m.queue.Pop(); !ok {
			return discarded
		}
		discarded++
	}
}
