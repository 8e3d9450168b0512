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

package queue

import (
	"go.uber.org/atomic"
)

// cacheLinePadding keeps the producer and consumer ends on separate cache lines
type cacheLinePadding [64]byte

type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// Mpsc is a lock-free, unbounded, multi-producer single-consumer FIFO queue.
//
// Any number of goroutines may call Push concurrently. Pop, Peek and IsEmpty
// must only be called from the single consumer goroutine.
//
// Reference: https://concurrencyfreaks.blogspot.com/2014/04/multi-producer-single-consumer-queue.html
type Mpsc[T any] struct {
	// head is the stub node preceding the next value; consumer side only
	head *node[T]
	_    cacheLinePadding

	// tail is the last linked node; producer side
	tail atomic.Pointer[node[T]]
	_    cacheLinePadding

	length atomic.Int64
}

// NewMpsc creates an empty Mpsc queue
func NewMpsc[T any]() *Mpsc[T] {
	stub := new(node[T])
	q := &Mpsc[T]{head: stub}
	q.tail.Store(stub)
	return q
}

// Push appends the value at the tail of the queue.
func (q *Mpsc[T]) Push(value T) {
	n := &node[T]{value: value}
	// length is bumped before the node becomes visible so Len never goes negative
	q.length.Inc()
	prev := q.tail.Swap(n)
	prev.next.Store(n)
}

// Pop removes the value at the head of the queue.
// It returns false when the queue is empty.
func (q *Mpsc[T]) Pop() (T, bool) {
	var zero T
	next := q.head.next.Load()
	if next == nil {
		return zero, false
	}

	value := next.value
	next.value = zero
	q.head = next
	q.length.Dec()
	return value, true
}

// IsEmpty reports whether there is a value ready to be popped.
func (q *Mpsc[T]) IsEmpty() bool {
	return q.head.next.Load() == nil
}

// Len returns a snapshot of the number of values pushed and not yet popped.
// A value still being linked by a producer is already counted.
func (q *Mpsc[T]) Len() int64 {
	return q.length.Load()
}
