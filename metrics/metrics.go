// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	gdlog "github.com/lewiji/go-dot-log"
	"github.com/lewiji/go-dot-log/telemetry/semconv"
)

// Instrument names.
const (
	meterName          = "github.com/lewiji/go-dot-log/metrics"
	messagesMetricName = "gdlog_messages"
	bytesMetricName    = "gdlog_message_bytes"
)

// ErrNoPrometheus is returned by [Recorder.Gatherer] when the recorder uses a
// caller-provided meter provider and therefore owns no Prometheus registry.
var ErrNoPrometheus = errors.New("recorder has no prometheus registry")

// Recorder counts the messages emitted on each channel.
//
// By default it owns a private Prometheus registry fed by the OpenTelemetry
// Prometheus exporter, served by [Recorder.Handler]. With
// [WithMeterProvider] it records into the caller's provider instead.
//
// Thread-safety: all methods are safe for concurrent use.
type Recorder struct {
	meterProvider       metric.MeterProvider
	customMeterProvider bool
	registry            *promclient.Registry
	handler             http.Handler

	messages metric.Int64Counter
	bytes    metric.Int64Counter

	// attribute sets are built once per channel
	channelAttrs map[gdlog.Channel]metric.AddOption

	isShuttingDown atomic.Bool
}

// New creates a Recorder.
func New(opts ...Option) (*Recorder, error) {
	r := &Recorder{}
	for _, opt := range opts {
		opt(r)
	}

	if r.meterProvider == nil {
		if err := r.initPrometheusProvider(); err != nil {
			return nil, err
		}
	}

	if err := r.initializeMetrics(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNew creates a Recorder or panics on error.
func MustNew(opts ...Option) *Recorder {
	r, err := New(opts...)
	if err != nil {
		panic("metrics initialization failed: " + err.Error())
	}
	return r
}

// initPrometheusProvider wires a private registry to an SDK meter provider.
func (r *Recorder) initPrometheusProvider() error {
	r.registry = promclient.NewRegistry()

	exporter, err := prometheus.New(
		prometheus.WithRegisterer(r.registry),
	)
	if err != nil {
		return fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	r.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	r.handler = promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
	return nil
}

func (r *Recorder) initializeMetrics() error {
	meter := r.meterProvider.Meter(meterName)

	var err error
	r.messages, err = meter.Int64Counter(
		messagesMetricName,
		metric.WithDescription("Number of messages emitted per channel"),
	)
	if err != nil {
		return fmt.Errorf("failed to create messages counter: %w", err)
	}

	r.bytes, err = meter.Int64Counter(
		bytesMetricName,
		metric.WithDescription("Bytes of formatted message text emitted per channel"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return fmt.Errorf("failed to create message bytes counter: %w", err)
	}

	r.channelAttrs = make(map[gdlog.Channel]metric.AddOption, len(gdlog.Channels))
	for _, ch := range gdlog.Channels {
		r.channelAttrs[ch] = metric.WithAttributeSet(attribute.NewSet(attribute.String(semconv.Channel, string(ch))))
	}
	return nil
}

// Instrument returns sinks that count each message before forwarding it to s.
// Nil sinks in s stay nil.
//
// Example:
//
//	rec := metrics.MustNew()
//	log := gdlog.MustNew("Player", gdlog.WithSinks(rec.Instrument(gdlog.DefaultSinks())))
//	http.Handle("/metrics", rec.Handler())
func (r *Recorder) Instrument(s gdlog.Sinks) gdlog.Sinks {
	return gdlog.Sinks{
		Print:       r.wrap(gdlog.ChannelPrint, s.Print),
		PushWarning: r.wrap(gdlog.ChannelWarning, s.PushWarning),
		PushError:   r.wrap(gdlog.ChannelError, s.PushError),
	}
}

func (r *Recorder) wrap(ch gdlog.Channel, next gdlog.Sink) gdlog.Sink {
	if next == nil {
		return nil
	}
	attrs := r.channelAttrs[ch]
	return func(message string) {
		r.record(attrs, message)
		next(message)
	}
}

// record adds one emission. Nothing is recorded after Shutdown.
func (r *Recorder) record(attrs metric.AddOption, message string) {
	if r.isShuttingDown.Load() {
		return
	}
	ctx := context.Background()
	r.messages.Add(ctx, 1, attrs)
	r.bytes.Add(ctx, int64(len(message)), attrs)
}

// Handler returns the Prometheus scrape handler. Recorders built with
// [WithMeterProvider] serve 404.
func (r *Recorder) Handler() http.Handler {
	if r.handler == nil {
		return http.NotFoundHandler()
	}
	return r.handler
}

// Gatherer returns the private Prometheus registry.
func (r *Recorder) Gatherer() (promclient.Gatherer, error) {
	if r.registry == nil {
		return nil, ErrNoPrometheus
	}
	return r.registry, nil
}

// WriteText writes the current values in the Prometheus text exposition
// format, as a scrape of [Recorder.Handler] would return them.
func (r *Recorder) WriteText(w io.Writer) error {
	g, err := r.Gatherer()
	if err != nil {
		return err
	}
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Shutdown flushes and stops the meter provider the recorder created.
// Caller-provided providers are left to the caller. Shutdown is idempotent.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if !r.isShuttingDown.CompareAndSwap(false, true) {
		return nil
	}
	if r.customMeterProvider {
		return nil
	}

	mp, ok := r.meterProvider.(*sdkmetric.MeterProvider)
	if !ok {
		return nil
	}
	if err := mp.Shutdown(ctx); err != nil {
		return fmt.Errorf("meter provider shutdown: %w", err)
	}
	return nil
}
