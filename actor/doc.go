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

// Package actor provides a minimal actor primitive.
//
// An actor owns private state and handles messages one at a time, in the
// order they were sent. It is reached through references sharing its mailbox:
//
//   - ActorRef is a strong reference. The actor stays alive while at least one
//     ActorRef has not been released. Releasing the last one lets the actor
//     process what is already buffered and then terminate.
//   - WeakActorRef does not keep the actor alive. It can send while the actor
//     lives and be upgraded back to an ActorRef.
//
// Activate binds an actor to its mailbox and returns a Task. The Task
// does nothing until Run is called, so the caller decides which goroutine
// drives the actor. Spawn runs it on a new goroutine instead.
//
//	ref, task := actor.Activate[string](greeter)
//	go task.Run(ctx)
//	_ = ref.Send(ctx, "hello")
//	ref.Release()
//
// There is no supervision: a failing Receive terminates the actor and its
// error becomes the terminal result of the Task.
package actor
