package kafka

import (
	"context"
	"testing"

	"github.com/NeuralTrust/ToolFinder/pkg/infra/metrics/metric_events"
	"github.com/stretchr/testify/assert"
)

func TestExporter_ValidateConfig(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]interface{}
		wantErr  string
	}{
		{
			name:     "valid",
			settings: map[string]interface{}{"host": "localhost", "port": "9092", "topic": "searches"},
		},
		{
			name:     "numeric port",
			settings: map[string]interface{}{"host": "localhost", "port": 9092, "topic": "searches"},
		},
		{
			name:     "missing host",
			settings: map[string]interface{}{"port": "9092", "topic": "searches"},
			wantErr:  "kafka host is required",
		},
		{
			name:     "missing port",
			settings: map[string]interface{}{"host": "localhost", "topic": "searches"},
			wantErr:  "kafka port is required",
		},
		{
			name:     "missing topic",
			settings: map[string]interface{}{"host": "localhost", "port": "9092"},
			wantErr:  "kafka topic is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewKafkaExporter().ValidateConfig(tt.settings)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestExporter_HandleWithoutProducer(t *testing.T) {
	exp := NewKafkaExporter()
	assert.Equal(t, ExporterName, exp.Name())
	assert.ErrorIs(t, exp.Handle(context.Background(), &metric_events.Event{}), ErrProducerNotInitialized)
	exp.Close()
}
