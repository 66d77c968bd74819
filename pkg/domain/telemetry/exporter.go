package telemetry

import (
	"context"

	"github.com/NeuralTrust/ToolFinder/pkg/infra/metrics/metric_events"
)

// ExporterDTO names an exporter and carries its raw settings.
type ExporterDTO struct {
	Name     string                 `json:"name"`
	Settings map[string]interface{} `json:"settings"`
}

type Exporter interface {
	Name() string
	ValidateConfig(settings map[string]interface{}) error
	Handle(ctx context.Context, evt *metric_events.Event) error
	WithSettings(settings map[string]interface{}) (Exporter, error)
	Close()
}
