package factory

import (
	"testing"

	infraBedrock "github.com/NeuralTrust/ToolFinder/pkg/infra/bedrock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingServiceLocator_GetService(t *testing.T) {
	logger := logrus.New()
	locator := NewServiceLocator(logger, infraBedrock.NewClient(logger))

	for _, provider := range []string{OpenAIProvider, GeminiProvider, BedrockProvider} {
		svc, err := locator.GetService(provider)
		require.NoError(t, err, provider)
		assert.NotNil(t, svc)
	}

	_, err := locator.GetService("cohere")
	assert.Error(t, err)
}

func TestDefaultModel(t *testing.T) {
	assert.Equal(t, "text-embedding-3-small", DefaultModel(OpenAIProvider))
	assert.Equal(t, "gemini-embedding-001", DefaultModel(GeminiProvider))
	assert.Equal(t, "amazon.titan-embed-text-v2:0", DefaultModel(BedrockProvider))
	assert.Equal(t, "text-embedding-3-small", DefaultModel(""))
}
