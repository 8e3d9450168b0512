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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestFuncActor(t *testing.T) {
	t.Run("runs the hooks around the receive loop", func(t *testing.T) {
		ctx := context.Background()
		var (
			started atomic.Bool
			sum     atomic.Int64
			exit    Exit
		)

		actor := NewFuncActor(
			func(_ context.Context, _ *WeakActorRef[int64], message int64) error {
				sum.Add(message)
				return nil
			},
			WithPreStart(func(context.Context) error {
				started.Store(true)
				return nil
			}),
			WithPostStop(func(_ context.Context, e Exit) error {
				exit = e
				return nil
			}),
		)

		ref, task := Activate[int64](actor, quiet()...)
		for i := range int64(4) {
			require.NoError(t, ref.Send(ctx, i+1))
		}
		require.NoError(t, ref.Stop(ctx, 2))
		ref.Release()

		result, err := task.Run(ctx)
		require.NoError(t, err)
		assert.True(t, started.Load())
		assert.EqualValues(t, 10, sum.Load())
		assert.Equal(t, Exit{Code: 2, Stopped: true}, result)
		assert.Equal(t, result, exit)
	})

	t.Run("without hooks", func(t *testing.T) {
		ctx := context.Background()
		errNope := errors.New("nope")
		actor := NewFuncActor(func(context.Context, *WeakActorRef[string], string) error {
			return errNope
		})
		require.NoError(t, actor.PreStart(ctx, nil))
		require.NoError(t, actor.PostStop(ctx, Exit{}))

		ref, task := Activate[string](actor, quiet()...)
		defer ref.Release()
		require.NoError(t, ref.Send(ctx, "hello"))

		_, err := task.Run(ctx)
		assert.ErrorIs(t, err, errNope)
	})
}
