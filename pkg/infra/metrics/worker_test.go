package metrics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/telemetry"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/metrics/metric_events"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExporter struct {
	mu     sync.Mutex
	events []*metric_events.Event
	err    error
	closed bool
}

func (r *recordingExporter) Name() string { return "recording" }

func (r *recordingExporter) ValidateConfig(map[string]interface{}) error { return nil }

func (r *recordingExporter) Handle(_ context.Context, evt *metric_events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return r.err
}

func (r *recordingExporter) WithSettings(map[string]interface{}) (telemetry.Exporter, error) {
	return r, nil
}

func (r *recordingExporter) Close() { r.closed = true }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestWorker_DeliversToExporters(t *testing.T) {
	ok := &recordingExporter{}
	failing := &recordingExporter{err: errors.New("broker down")}
	w := NewWorker(quietLogger(), []telemetry.Exporter{ok, failing}, 10)
	w.StartWorkers(2)

	start := time.Now()
	evt := metric_events.NewSearchEvent(start)
	evt.Mode = "keyword"
	evt.ResultCount = 3
	evt.Finish(start, start.Add(15*time.Millisecond))
	w.Process(evt)
	w.Shutdown()

	require.Len(t, ok.events, 1)
	assert.Equal(t, evt.TraceID, ok.events[0].TraceID)
	assert.EqualValues(t, 15, ok.events[0].Latency)
	assert.Len(t, failing.events, 1)
	assert.True(t, ok.closed)
	assert.True(t, failing.closed)
}

func TestWorker_ProcessAfterShutdownIsDropped(t *testing.T) {
	exp := &recordingExporter{}
	w := NewWorker(quietLogger(), []telemetry.Exporter{exp}, 10)
	w.StartWorkers(1)
	w.Shutdown()
	w.Shutdown()

	assert.NotPanics(t, func() {
		w.Process(&metric_events.Event{Mode: "semantic"})
	})
	assert.Empty(t, exp.events)
}

func TestWorker_DropsWhenQueueFull(t *testing.T) {
	w := NewWorker(quietLogger(), nil, 1)
	for i := 0; i < 5; i++ {
		w.Process(&metric_events.Event{Mode: "keyword"})
	}
	w.StartWorkers(1)
	w.Shutdown()
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", StatusClass(204))
	assert.Equal(t, "4xx", StatusClass(404))
	assert.Equal(t, "5xx", StatusClass(0))
}
