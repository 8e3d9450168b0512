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

package metric

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ActorMetric defines the instruments recorded by an actor receive loop
type ActorMetric struct {
	// Specifies the total number of messages processed
	processedCount metric.Int64Counter
	// Specifies the total number of messages whose handler failed
	failureCount metric.Int64Counter
	// Specifies the total number of envelopes discarded at termination
	discardedCount metric.Int64Counter
	// Specifies the message processing duration in milliseconds
	receivedDuration metric.Int64Histogram
	// the actor attributes
	attributes metric.MeasurementOption
}

// NewActorMetric creates an instance of ActorMetric for the named actor
func NewActorMetric(meter metric.Meter, actorName string) (*ActorMetric, error) {
	actorMetric := &ActorMetric{
		attributes: metric.WithAttributeSet(attribute.NewSet(attribute.String("actor.name", actorName))),
	}

	var err error
	if actorMetric.processedCount, err = meter.Int64Counter(
		"actor_processed_count",
		metric.WithDescription("Total number of messages processed"),
	); err != nil {
		return nil, fmt.Errorf("failed to create processedCount instrument, %w", err)
	}

	if actorMetric.failureCount, err = meter.Int64Counter(
		"actor_failure_count",
		metric.WithDescription("Total number of messages whose handler failed"),
	); err != nil {
		return nil, fmt.Errorf("failed to create failureCount instrument, %w", err)
	}

	if actorMetric.discardedCount, err = meter.Int64Counter(
		"actor_discarded_count",
		metric.WithDescription("Total number of envelopes discarded when the actor terminated"),
	); err != nil {
		return nil, fmt.Errorf("failed to create discardedCount instrument, %w", err)
	}

	if actorMetric.receivedDuration, err = meter.Int64Histogram(
		"actor_received_duration",
		metric.WithDescription("The latency of the messages processed in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, fmt.Errorf("failed to create receivedDuration instrument, %w", err)
	}

	return actorMetric, nil
}

// RecordProcessed records one handled message and how long the handler took.
// A nil ActorMetric records nothing.
func (x *ActorMetric) RecordProcessed(ctx context.Context, duration time.Duration, failed bool) {
	if x == nil {
		return
	}
	x.processedCount.Add(ctx, 1, x.attributes)
	x.receivedDuration.Record(ctx, duration.Milliseconds(), x.attributes)
	if failed {
		x.failureCount.Add(ctx, 1, x.attributes)
	}
}

// RecordDiscarded records envelopes dropped when the actor terminated
func (x *ActorMetric) RecordDiscarded(ctx context.Context, count int) {
	if x == nil || count <= 0 {
		return
	}
	x.discardedCount.Add(ctx, int64(count), x.attributes)
}
