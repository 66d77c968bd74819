package metrics

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/telemetry"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/metrics/metric_events"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const exportTimeout = 10 * time.Second

//go:generate mockery --name=Worker --dir=. --output=./mocks --filename=worker_mock.go --case=underscore --with-expecter
type Worker interface {
	StartWorkers(n int)
	Shutdown()
	Process(evt *metric_events.Event)
}

type worker struct {
	logger    *logrus.Logger
	exporters []telemetry.Exporter
	taskChan  chan func()
	ctx       context.Context
	cancel    context.CancelFunc
	closed    atomic.Bool
	wg        sync.WaitGroup
	mu        sync.RWMutex
}

func NewWorker(logger *logrus.Logger, exporters []telemetry.Exporter, bufferSize int) Worker {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &worker{
		logger:    logger,
		exporters: exporters,
		taskChan:  make(chan func(), bufferSize),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Shutdown stops accepting events, drains what is queued and closes the
// exporters.
func (m *worker) Shutdown() {
	m.mu.Lock()
	if m.closed.Swap(true) {
		m.mu.Unlock()
		return
	}
	close(m.taskChan)
	m.mu.Unlock()

	m.logger.Info("shutting down metrics workers")
	m.wg.Wait()
	m.cancel()
	for _, exp := range m.exporters {
		exp.Close()
	}
	m.logger.Info("metrics workers stopped")
}

func (m *worker) StartWorkers(n int) {
	m.logger.WithField("workers", n).Info("starting metrics workers")
	for i := 0; i < n; i++ {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			for task := range m.taskChan {
				task()
			}
		}()
	}
}

func (m *worker) Process(evt *metric_events.Event) {
	m.enqueueTask(func() {
		m.registryMetricsToPrometheus(evt)
	})
	if len(m.exporters) > 0 {
		m.enqueueTask(func() {
			m.registryMetricsToExporters(evt)
		})
	}
}

func (m *worker) registryMetricsToPrometheus(evt *metric_events.Event) {
	prometheus.SearchTotal.WithLabelValues(evt.Mode).Inc()
	prometheus.SearchResults.WithLabelValues(evt.Mode).Observe(float64(evt.ResultCount))
	if evt.Fallback {
		prometheus.SearchFallbackTotal.WithLabelValues(evt.FallbackReason).Inc()
	}
	if prometheus.Config.EnableLatency {
		prometheus.SearchLatency.WithLabelValues(evt.Mode).Observe(float64(evt.Latency))
	}
}

func (m *worker) registryMetricsToExporters(evt *metric_events.Event) {
	ctx, cancel := context.WithTimeout(m.ctx, exportTimeout)
	defer cancel()

	var failedExporters []string
	for _, exporter := range m.exporters {
		if err := exporter.Handle(ctx, evt); err != nil {
			m.logger.WithFields(logrus.Fields{
				"trace_id": evt.TraceID,
				"exporter": exporter.Name(),
			}).WithError(err).Error("exporter failed")
			failedExporters = append(failedExporters, exporter.Name())
		}
	}
	if len(failedExporters) > 0 {
		m.logger.WithField("failed_exporters", failedExporters).
			Warnf("%d exporters failed to handle search event", len(failedExporters))
	}
}

func (m *worker) enqueueTask(task func()) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed.Load() {
		return
	}
	select {
	case m.taskChan <- task:
	default:
		m.logger.Warn("metrics queue is full, dropping task")
	}
}

// StatusClass maps an HTTP status code to its class label, e.g. "4xx".
func StatusClass(code int) string {
	if code < 100 || code > 599 {
		return "5xx"
	}
	return fmt.Sprintf("%dxx", code/100)
}
