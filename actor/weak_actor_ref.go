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

	gerrors "github.com/tochemey/asyncactor/errors"
)

// WeakActorRef is a reference to an actor that does not keep it alive.
//
// It can send messages as long as the actor is running and can be upgraded to
// an ActorRef as long as a strong reference still exists.
type WeakActorRef[M any] struct {
	cell *cell[M]
}

// Name returns the actor name
func (x *WeakActorRef[M]) Name() string {
	return x.cell.name
}

// Upgrade returns a new strong reference when the actor still has one and has
// not terminated. The returned ActorRef must be released.
//
// The result is a snapshot: the actor may stop right after a successful
// upgrade, in which case the new reference reports errors.ErrDead on send.
func (x *WeakActorRef[M]) Upgrade() (*ActorRef[M], bool) {
	if !x.cell.acquire() {
		return nil, false
	}
	return newActorRef(x.cell), true
}

// Send enqueues a message in the actor mailbox. It returns errors.ErrDead when
// the actor is gone.
//
// A strong reference is held while the message is enqueued, so a message
// accepted here is processed even if the last ActorRef is released meanwhile.
// Calling Send from the actor's own Receive on a full bounded mailbox blocks
// until ctx is done.
func (x *WeakActorRef[M]) Send(ctx context.Context, message M) error {
	if !x.cell.acquire() {
		return gerrors.ErrDead
	}
	defer x.cell.release()
	return x.cell.enqueue(ctx, messageEnvelope(message))
}

// Stop enqueues a stop request carrying the given exit code. It returns
// errors.ErrDead when the actor is gone.
func (x *WeakActorRef[M]) Stop(ctx context.Context, code int) error {
	if !x.cell.acquire() {
		return gerrors.ErrDead
	}
	defer x.cell.release()
	return x.cell.enqueue(ctx, stopEnvelope[M](code))
}

// IsAlive returns true when the actor has a strong reference left and has not
// terminated
func (x *WeakActorRef[M]) IsAlive() bool {
	return x.cell.alive()
}
