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

// Package future provides a single-assignment, awaitable result of a task
// running on its own goroutine.
package future

import (
	"context"
	"fmt"
	"sync"

	gerrors "github.com/tochemey/asyncactor/errors"
)

// Future represents a value which may or may not currently be available,
// but will be available at some point in the future, or an error if that value
// could not be made available.
//
// Example usage:
//
//	fut := future.New(ctx, func(ctx context.Context) (int, error) {
//	    // Perform some long-running computation
//	    return 42, nil
//	})
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
//	defer cancel()
//
//	result, err := fut.Await(ctx)
type Future[T any] interface {
	// Await blocks until the Future is completed or ctx is done and returns
	// either the result or an error. Giving up on ctx does not affect the
	// underlying task; Await can be called again later.
	Await(ctx context.Context) (T, error)
	// Done returns a channel closed once the Future has completed
	Done() <-chan struct{}
	// Cancel cancels the context handed to the task
	Cancel()
}

// New runs task on a new goroutine with a cancelable child of ctx and returns
// the Future completed with its outcome. A panic in task fails the Future with
// a *errors.PanicError.
func New[T any](ctx context.Context, task func(context.Context) (T, error)) Future[T] {
	taskCtx, cancel := context.WithCancel(ctx)
	f := &future[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.complete(zero, gerrors.NewPanicError(fmt.Errorf("%v", r)))
			}
		}()

		value, err := task(taskCtx)
		f.complete(value, err)
	}()

	return f
}

type future[T any] struct {
	once   sync.Once
	done   chan struct{}
	value  T
	err    error
	cancel context.CancelFunc
}

// enforce compilation error
var _ Future[int] = (*future[int])(nil)

func (x *future[T]) complete(value T, err error) {
	x.once.Do(func() {
		x.value = value
		x.err = err
		close(x.done)
	})
}

// Await blocks until the Future is completed or ctx is done
func (x *future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-x.done:
		return x.value, x.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed once the Future has completed
func (x *future[T]) Done() <-chan struct{} {
	return x.done
}

// Cancel cancels the context handed to the task
func (x *future[T]) Cancel() {
	x.cancel()
}
