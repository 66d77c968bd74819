package telemetry

import (
	"fmt"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/telemetry"
)

type ExporterLocator struct {
	exporters map[string]telemetry.Exporter
}

func NewExporterLocator(opts ...ExporterLocatorOption) *ExporterLocator {
	el := &ExporterLocator{
		exporters: make(map[string]telemetry.Exporter),
	}
	for _, opt := range opts {
		opt(el)
	}
	return el
}

func (p *ExporterLocator) GetExporter(exporter telemetry.ExporterDTO) (telemetry.Exporter, error) {
	base, ok := p.exporters[exporter.Name]
	if !ok {
		return nil, fmt.Errorf("unknown exporter: %s", exporter.Name)
	}
	if err := base.ValidateConfig(exporter.Settings); err != nil {
		return nil, err
	}
	return base.WithSettings(exporter.Settings)
}

func (p *ExporterLocator) ValidateExporter(exporter telemetry.ExporterDTO) error {
	base, ok := p.exporters[exporter.Name]
	if !ok {
		return fmt.Errorf("unknown exporter: %s", exporter.Name)
	}
	return base.ValidateConfig(exporter.Settings)
}

// BuildAll configures every exporter in dtos. Already built exporters are
// closed when a later one fails.
func (p *ExporterLocator) BuildAll(dtos []telemetry.ExporterDTO) ([]telemetry.Exporter, error) {
	out := make([]telemetry.Exporter, 0, len(dtos))
	for _, dto := range dtos {
		exp, err := p.GetExporter(dto)
		if err != nil {
			for _, built := range out {
				built.Close()
			}
			return nil, fmt.Errorf("exporter %s: %w", dto.Name, err)
		}
		out = append(out, exp)
	}
	return out, nil
}

type ExporterLocatorOption func(*ExporterLocator)

// WithExporter registers the base exporter used for configs named name.
func WithExporter(name string, exporter telemetry.Exporter) ExporterLocatorOption {
	return func(el *ExporterLocator) {
		el.exporters[name] = exporter
	}
}
