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
	"runtime"

	"go.uber.org/atomic"

	gerrors "github.com/tochemey/asyncactor/errors"
)

// ActorRef is a strong reference to an actor.
//
// As long as one unreleased ActorRef exists the actor keeps running. Each
// ActorRef must be released once with Release; once the last one is released
// the actor processes the messages already in its mailbox and terminates.
//
// An ActorRef is safe for concurrent use.
type ActorRef[M any] struct {
	handle *handle[M]
}

// handle is allocated apart from the ActorRef so that a GC cleanup attached to
// the ActorRef can still reach it.
type handle[M any] struct {
	cell     *cell[M]
	released atomic.Bool
}

func (h *handle[M]) release() {
	if h.released.CompareAndSwap(false, true) {
		h.cell.release()
	}
}

// newActorRef wraps a strong reference already accounted in the cell counter
func newActorRef[M any](c *cell[M]) *ActorRef[M] {
	ref := &ActorRef[M]{handle: &handle[M]{cell: c}}
	if c.releaseOnCollect {
		runtime.AddCleanup(ref, (*handle[M]).release, ref.handle)
	}
	return ref
}

// Name returns the actor name
func (x *ActorRef[M]) Name() string {
	return x.handle.cell.name
}

// Send enqueues a message in the actor mailbox.
//
// With a bounded mailbox Send blocks while the mailbox is full until a slot is
// freed, ctx is done or the actor terminates. It returns errors.ErrDead when
// this reference has been released or the actor is no longer running.
func (x *ActorRef[M]) Send(ctx context.Context, message M) error {
	if x.handle.released.Load() {
		return gerrors.ErrDead
	}
	return x.handle.cell.enqueue(ctx, messageEnvelope(message))
}

// Stop enqueues a stop request carrying the given exit code.
//
// The request is queued behind the messages already sent, so they are all
// processed before the actor stops. Messages queued after it are discarded.
func (x *ActorRef[M]) Stop(ctx context.Context, code int) error {
	if x.handle.released.Load() {
		return gerrors.ErrDead
	}
	return x.handle.cell.enqueue(ctx, stopEnvelope[M](code))
}

// Clone returns a new strong reference to the same actor. It returns nil when
// the actor is gone, which can only happen when this reference has already
// been released or the actor has terminated.
func (x *ActorRef[M]) Clone() *ActorRef[M] {
	ref, _ := x.Downgrade().Upgrade()
	return ref
}

// Downgrade returns a weak reference to the same actor
func (x *ActorRef[M]) Downgrade() *WeakActorRef[M] {
	return &WeakActorRef[M]{cell: x.handle.cell}
}

// Release drops this strong reference. It is safe to call more than once;
// only the first call counts.
func (x *ActorRef[M]) Release() {
	x.handle.release()
}

// IsAlive returns true when this reference has not been released and the
// actor is still running
func (x *ActorRef[M]) IsAlive() bool {
	return !x.handle.released.Load() && x.handle.cell.alive()
}
