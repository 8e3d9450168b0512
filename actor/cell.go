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

package actor

import (
	"context"
	"errors"

	"go.uber.org/atomic"

	gerrors "github.com/tochemey/asyncactor/errors"
	"github.com/tochemey/asyncactor/internal/mailbox"
)

// cell is the state shared by every reference to an actor: the sending side of
// the mailbox and the liveness counter of strong references.
//
// The counter only moves up from a positive value, so once it reaches zero it
// stays there and the mailbox is closed exactly once.
type cell[M any] struct {
	name       string
	mailbox    mailbox.Mailbox[envelope[M]]
	refs       atomic.Int64
	terminated atomic.Bool
	// releaseOnCollect attaches a GC cleanup releasing every ActorRef
	releaseOnCollect bool
}

func newCell[M any](name string, capacity int, releaseOnCollect bool) *cell[M] {
	c := &cell[M]{
		name:             name,
		mailbox:          mailbox.New[envelope[M]](capacity),
		releaseOnCollect: releaseOnCollect,
	}
	c.refs.Store(1)
	return c
}

// acquire adds a strong reference unless the actor is gone
func (c *cell[M]) acquire() bool {
	for {
		if c.terminated.Load() {
			return false
		}

		current := c.refs.Load()
		if current <= 0 {
			return false
		}

		if c.refs.CompareAndSwap(current, current+1) {
			return true
		}
	}
}

// release drops a strong reference. The release reaching zero closes the
// mailbox; the Task drains what is buffered and then terminates.
func (c *cell[M]) release() {
	if c.refs.Dec() == 0 {
		c.mailbox.Close()
	}
}

func (c *cell[M]) alive() bool {
	return !c.terminated.Load() && c.refs.Load() > 0
}

func (c *cell[M]) enqueue(ctx context.Context, env envelope[M]) error {
	if err := c.mailbox.Enqueue(ctx, env); err != nil {
		if errors.Is(err, mailbox.ErrClosed) || errors.Is(err, mailbox.ErrDisposed) {
			return gerrors.ErrDead
		}
		return err
	}
	return nil
}
