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
)

// Actor defines the contract a user type fulfills to be driven by a Task.
//
// The actor owns its state exclusively: the Task invokes Receive sequentially,
// one message at a time, so no synchronization is needed inside the actor.
type Actor[M any] interface {
	// Receive handles a message taken from the mailbox.
	//
	// self is a weak reference to the actor itself. It can be used to send
	// messages to itself or to stop itself without keeping the actor alive.
	//
	// Returning an error terminates the actor: no further message is dispatched
	// and the error becomes the result of the Task. Panics are recovered and
	// reported as *errors.PanicError.
	Receive(ctx context.Context, self *WeakActorRef[M], message M) error
}

// PreStarter is implemented by actors that need setup logic running on the
// Task goroutine before any message is processed.
type PreStarter[M any] interface {
	// PreStart is invoked once when the Task starts. When it returns an error
	// the Task ends with that error and no message is processed.
	PreStart(ctx context.Context, self *WeakActorRef[M]) error
}

// PostStopper is implemented by actors that need cleanup logic.
type PostStopper interface {
	// PostStop is invoked once the receive loop has ended, either via a stop
	// request, the release of the last ActorRef or a Receive failure.
	// It is not invoked when the Task context is canceled.
	PostStop(ctx context.Context, exit Exit) error
}
