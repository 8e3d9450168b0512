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

package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	gerrors "github.com/tochemey/asyncactor/errors"
)

func TestFuture(t *testing.T) {
	t.Run("With success", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		ctx := context.Background()
		fut := New(ctx, func(context.Context) (string, error) {
			return "done", nil
		})

		value, err := fut.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, "done", value)

		// awaiting a completed future returns the same outcome
		value, err = fut.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, "done", value)
		<-fut.Done()
	})
	t.Run("With failure", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		ctx := context.Background()
		expected := errors.New("failed")
		fut := New(ctx, func(context.Context) (int, error) {
			return 0, expected
		})

		_, err := fut.Await(ctx)
		require.ErrorIs(t, err, expected)
	})
	t.Run("With panic", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		ctx := context.Background()
		fut := New(ctx, func(context.Context) (int, error) {
			panic("boom")
		})

		_, err := fut.Await(ctx)
		var panicErr *gerrors.PanicError
		require.ErrorAs(t, err, &panicErr)
		assert.EqualError(t, err, "panic: boom")
	})
	t.Run("With Await timeout", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		release := make(chan struct{})
		fut := New(context.Background(), func(context.Context) (int, error) {
			<-release
			return 7, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := fut.Await(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		close(release)
		value, err := fut.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, value)
	})
	t.Run("With Cancel", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		fut := New(context.Background(), func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})

		fut.Cancel()
		_, err := fut.Await(context.Background())
		require.ErrorIs(t, err, context.Canceled)
	})
}
