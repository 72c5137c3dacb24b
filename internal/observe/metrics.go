// Package observe holds the pipeline's OpenTelemetry metric instruments and
// the Prometheus bridge that exposes them.
//
// Tests should build [Metrics] with [NewMetrics] over their own
// [metric.MeterProvider] to avoid cross-test pollution.
package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/nguyentantai21042004/gloss-flow"

// Job statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Metrics holds all metric instruments. Safe for concurrent use.
type Metrics struct {
	// Jobs counts processed inputs by kind and status.
	Jobs metric.Int64Counter

	// StageDuration tracks the latency of each pipeline stage
	// (demux, transcribe, gloss, validate, signs, report).
	StageDuration metric.Float64Histogram

	// Verdicts counts validation outcomes: valid, corrected or error.
	Verdicts metric.Int64Counter
}

// stageBuckets are in seconds; transcription of long inputs takes minutes.
var stageBuckets = []float64{
	0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 300,
}

// NewMetrics creates all instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Jobs, err = m.Int64Counter("glossflow.jobs",
		metric.WithDescription("Processed inputs by kind and status."),
	); err != nil {
		return nil, err
	}
	if met.StageDuration, err = m.Float64Histogram("glossflow.stage.duration",
		metric.WithDescription("Latency of a pipeline stage."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(stageBuckets...),
	); err != nil {
		return nil, err
	}
	if met.Verdicts, err = m.Int64Counter("glossflow.validation.verdicts",
		metric.WithDescription("Remote gloss validation outcomes."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// Nop returns Metrics that record nothing.
func Nop() *Metrics {
	met, err := NewMetrics(noop.NewMeterProvider())
	if err != nil {
		panic("observe: noop metrics: " + err.Error())
	}
	return met
}

func (m *Metrics) RecordJob(ctx context.Context, kind, status string) {
	m.Jobs.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("kind", kind),
			attribute.String("status", status),
		),
	)
}

func (m *Metrics) RecordStage(ctx context.Context, stage string, d time.Duration) {
	m.StageDuration.Record(ctx, d.Seconds(),
		metric.WithAttributes(attribute.String("stage", stage)),
	)
}

func (m *Metrics) RecordVerdict(ctx context.Context, verdict string) {
	m.Verdicts.Add(ctx, 1,
		metric.WithAttributes(attribute.String("verdict", verdict)),
	)
}
