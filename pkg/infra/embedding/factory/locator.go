package factory

import (
	"fmt"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	infraBedrock "github.com/NeuralTrust/ToolFinder/pkg/infra/bedrock"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/embedding/bedrock"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/embedding/gemini"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/embedding/openai"
	"github.com/sirupsen/logrus"
)

const (
	OpenAIProvider  = "openai"
	GeminiProvider  = "gemini"
	BedrockProvider = "bedrock"
)

type EmbeddingServiceLocator struct {
	logger        *logrus.Logger
	bedrockClient infraBedrock.Client
}

func NewServiceLocator(logger *logrus.Logger, bedrockClient infraBedrock.Client) *EmbeddingServiceLocator {
	return &EmbeddingServiceLocator{
		logger:        logger,
		bedrockClient: bedrockClient,
	}
}

func (l *EmbeddingServiceLocator) GetService(provider string) (embedding.Creator, error) {
	switch provider {
	case OpenAIProvider:
		return openai.NewOpenAIEmbeddingService(l.logger), nil
	case GeminiProvider:
		return gemini.NewGeminiEmbeddingService(l.logger), nil
	case BedrockProvider:
		return bedrock.NewBedrockEmbeddingService(l.logger, l.bedrockClient), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}

// DefaultModel is the model used when the configuration leaves it empty.
func DefaultModel(provider string) string {
	switch provider {
	case GeminiProvider:
		return gemini.DefaultModel
	case BedrockProvider:
		return bedrock.DefaultModel
	default:
		return openai.DefaultModel
	}
}
