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
	"os"
	"time"

	"github.com/google/uuid"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/tochemey/asyncactor/log"
)

// defaultLogger reports handler failures on stderr
var defaultLogger log.Logger = log.NewZap(log.ErrorLevel, os.Stderr)

// config defines the settings applied when activating an actor
type config struct {
	// name identifies the actor in logs and metrics
	name string
	// capacity bounds the mailbox; zero means unbounded
	capacity int
	// logger used by the actor Task
	logger log.Logger
	// metricEnabled turns on the otel instruments
	metricEnabled bool
	// meterProvider overrides the global otel MeterProvider
	meterProvider otelmetric.MeterProvider
	// releaseOnCollect releases ActorRefs collected by the GC
	releaseOnCollect bool
	// startAttempts is the number of times PreStart is tried
	startAttempts int
	// startBackoff caps the delay between two PreStart attempts
	startBackoff time.Duration
}

// newConfig creates an instance of config
func newConfig(opts ...Option) *config {
	cfg := &config{
		name:          uuid.NewString(),
		logger:        defaultLogger,
		startAttempts: 1,
	}

	for _, opt := range opts {
		opt.Apply(cfg)
	}
	return cfg
}

// Option is the interface that applies an activation setting
type Option interface {
	// Apply sets the Option value of a config.
	Apply(config *config)
}

var _ Option = option(nil)

// option implements the Option interface.
type option func(config *config)

// Apply sets the Option value of a config.
func (f option) Apply(c *config) {
	f(c)
}

// WithName sets the actor name. By default a random UUID is used.
func WithName(name string) Option {
	return option(func(config *config) {
		if name != "" {
			config.name = name
		}
	})
}

// WithMailboxCapacity bounds the actor mailbox. Once capacity messages are
// buffered, senders block until the actor catches up. A capacity lower than
// one keeps the mailbox unbounded, which is the default.
func WithMailboxCapacity(capacity int) Option {
	return option(func(config *config) {
		config.capacity = max(capacity, 0)
	})
}

// WithLogger sets the logger used by the actor Task
func WithLogger(logger log.Logger) Option {
	return option(func(config *config) {
		if logger != nil {
			config.logger = logger
		}
	})
}

// WithMetric enables the OpenTelemetry instruments using the global
// MeterProvider
func WithMetric() Option {
	return option(func(config *config) {
		config.metricEnabled = true
	})
}

// WithMeterProvider enables the OpenTelemetry instruments using the given
// MeterProvider
func WithMeterProvider(provider otelmetric.MeterProvider) Option {
	return option(func(config *config) {
		config.metricEnabled = true
		config.meterProvider = provider
	})
}

// WithReleaseOnCollect attaches a GC cleanup to every ActorRef of the actor so
// that a reference dropped without calling Release is released once it is
// garbage collected. Explicit Release remains the deterministic way.
func WithReleaseOnCollect() Option {
	return option(func(config *config) {
		config.releaseOnCollect = true
	})
}

// WithPreStartRetries retries a failing PreStart up to attempts times in
// total, backing off between attempts up to maxBackoff. The Task fails with
// the last PreStart error once the attempts are exhausted.
func WithPreStartRetries(attempts int, maxBackoff time.Duration) Option {
	return option(func(config *config) {
		config.startAttempts = max(attempts, 1)
		config.startBackoff = max(maxBackoff, time.Millisecond)
	})
}
