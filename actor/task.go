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
	"fmt"
	"runtime"
	"time"

	"github.com/flowchartsman/retry"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	gerrors "github.com/tochemey/asyncactor/errors"
	"github.com/tochemey/asyncactor/future"
	"github.com/tochemey/asyncactor/internal/mailbox"
	"github.com/tochemey/asyncactor/internal/metric"
	"github.com/tochemey/asyncactor/log"
)

// Task drives an actor: it owns the actor and the receiving side of its
// mailbox and dispatches envelopes one at a time until the actor terminates.
//
// A Task does nothing until Run is called. The caller decides where it runs,
// typically on a dedicated goroutine (see Start). A Task can only be run once.
type Task[M any] struct {
	cell   *cell[M]
	actor  Actor[M]
	self   *WeakActorRef[M]
	state  atomic.Int32
	logger log.Logger
	metric *metric.ActorMetric

	startAttempts int
	startBackoff  time.Duration
}

// Activate binds the given actor to a new mailbox and returns the first strong
// reference to it together with the Task driving it.
//
// Nothing runs until the Task is run. The actor terminates when a stop request
// is processed, when Receive fails or once every ActorRef has been released.
func Activate[M any](actor Actor[M], opts ...Option) (*ActorRef[M], *Task[M]) {
	cfg := newConfig(opts...)
	c := newCell[M](cfg.name, cfg.capacity, cfg.releaseOnCollect)
	logger := cfg.logger.With("actor", cfg.name)

	var actorMetric *metric.ActorMetric
	if cfg.metricEnabled {
		var err error
		provider := metric.NewProvider(cfg.meterProvider)
		if actorMetric, err = metric.NewActorMetric(provider.Meter(), cfg.name); err != nil {
			logger.Warnf("metrics disabled: %v", err)
		}
	}

	task := &Task[M]{
		cell:          c,
		actor:         actor,
		self:          &WeakActorRef[M]{cell: c},
		logger:        logger,
		metric:        actorMetric,
		startAttempts: cfg.startAttempts,
		startBackoff:  cfg.startBackoff,
	}
	task.state.Store(int32(Idle))
	return newActorRef(c), task
}

// Name returns the actor name
func (t *Task[M]) Name() string {
	return t.cell.name
}

// State returns the current lifecycle state
func (t *Task[M]) State() State {
	return State(t.state.Load())
}

// Start runs the Task on a new goroutine and returns a Future completed with
// its result
func (t *Task[M]) Start(ctx context.Context) future.Future[Exit] {
	return future.New(ctx, t.Run)
}

// Run drives the actor until it terminates and returns its terminal result.
//
//   - A processed stop request yields Exit{Code: code, Stopped: true}.
//   - Releasing the last ActorRef yields Exit{} once the buffered messages
//     have been processed.
//   - A Receive or PreStart failure yields that error.
//
// Canceling ctx aborts the actor abruptly: buffered messages are discarded,
// PostStop is not called, the actor state may be partially updated and Run
// returns the context error.
//
// Run returns errors.ErrTaskAlreadyRun when called more than once.
func (t *Task[M]) Run(ctx context.Context) (Exit, error) {
	if !t.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return Exit{}, gerrors.ErrTaskAlreadyRun
	}

	if t.actor == nil {
		t.abort(ctx)
		return Exit{}, gerrors.ErrUndefinedActor
	}

	t.logger.Debug("actor started")
	if err := t.preStart(ctx); err != nil {
		t.logger.Errorf("actor failed to start: %v", err)
		t.abort(ctx)
		return Exit{}, err
	}

	for {
		env, err := t.cell.mailbox.Receive(ctx)
		if err != nil {
			if errors.Is(err, mailbox.ErrClosed) {
				t.logger.Debug("last reference released, actor stopping")
				return t.stop(ctx, Exit{}, nil)
			}

			t.logger.Warnf("actor aborted: %v", err)
			t.abort(ctx)
			return Exit{}, err
		}

		if env.stop {
			t.logger.Debugf("stop requested with code %d, actor stopping", env.code)
			return t.stop(ctx, Exit{Code: env.code, Stopped: true}, nil)
		}

		if err := t.dispatch(ctx, env.message); err != nil {
			// the handler gave up because ctx is done
			if ctxErr := ctx.Err(); ctxErr != nil {
				t.logger.Warnf("actor aborted: %v", ctxErr)
				t.abort(ctx)
				return Exit{}, ctxErr
			}

			t.logger.Errorf("failed to process message: %v", err)
			return t.stop(ctx, Exit{}, err)
		}
	}
}

// preStart runs the PreStart hook, retrying it when configured to
func (t *Task[M]) preStart(ctx context.Context) error {
	starter, ok := t.actor.(PreStarter[M])
	if !ok {
		return nil
	}

	start := func(ctx context.Context) error {
		return t.guard(func() error { return starter.PreStart(ctx, t.self) })
	}
	if t.startAttempts <= 1 {
		return start(ctx)
	}

	retrier := retry.NewRetrier(t.startAttempts, time.Millisecond, t.startBackoff)
	return retrier.RunContext(ctx, func(ctx context.Context) error {
		if err := start(ctx); err != nil {
			t.logger.Warnf("actor failed to start, retrying: %v", err)
			return err
		}
		return nil
	})
}

// dispatch hands a single message to the actor
func (t *Task[M]) dispatch(ctx context.Context, message M) error {
	start := time.Now()
	err := t.guard(func() error { return t.actor.Receive(ctx, t.self, message) })
	t.metric.RecordProcessed(ctx, time.Since(start), err != nil)
	return err
}

// stop ends the receive loop gracefully and runs the PostStop hook
func (t *Task[M]) stop(ctx context.Context, exit Exit, cause error) (Exit, error) {
	t.state.Store(int32(Stopping))
	t.terminate(ctx)

	if stopper, ok := t.actor.(PostStopper); ok {
		if err := t.guard(func() error { return stopper.PostStop(ctx, exit) }); err != nil {
			t.logger.Errorf("actor failed to stop: %v", err)
			cause = multierr.Append(cause, err)
		}
	}

	t.actor = nil
	t.state.Store(int32(Terminated))
	t.logger.Debug("actor terminated")
	return exit, cause
}

// terminate makes the actor unreachable: weak references stop upgrading and
// every pending or later send fails. Envelopes still buffered are discarded.
func (t *Task[M]) terminate(ctx context.Context) {
	t.cell.terminated.Store(true)
	if discarded := t.cell.mailbox.Dispose(); discarded > 0 {
		t.logger.Debugf("%d envelope(s) discarded", discarded)
		t.metric.RecordDiscarded(ctx, discarded)
	}
}

// abort terminates the actor without running the PostStop hook
func (t *Task[M]) abort(ctx context.Context) {
	t.terminate(ctx)
	t.actor = nil
	t.state.Store(int32(Terminated))
}

// guard runs fn and turns a panic into a *errors.PanicError
func (t *Task[M]) guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			// enrich the panic with its location for rich logging purpose
			pc, file, line, _ := runtime.Caller(2)
			location := fmt.Sprintf("%s[%s:%d]", runtime.FuncForPC(pc).Name(), file, line)
			if cause, ok := r.(error); ok {
				err = gerrors.NewPanicError(fmt.Errorf("%w at %s", cause, location))
				return
			}
			err = gerrors.NewPanicError(fmt.Errorf("%v at %s", r, location))
		}
	}()
	return fn()
}
