package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	infraBedrock "github.com/NeuralTrust/ToolFinder/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	creds  infraBedrock.Credentials
	input  *bedrockruntime.InvokeModelInput
	output []byte
	err    error
}

func (f *fakeClient) InvokeModel(
	_ context.Context,
	params *bedrockruntime.InvokeModelInput,
	_ ...func(*bedrockruntime.Options),
) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: f.output}, nil
}

func (f *fakeClient) BuildClient(_ context.Context, creds infraBedrock.Credentials) (infraBedrock.Client, error) {
	f.creds = creds
	return f, nil
}

func (f *fakeClient) GetRuntimeClient() *bedrockruntime.Client {
	return nil
}

func cfg() *embedding.Config {
	return &embedding.Config{
		Dimensions: 256,
		Credentials: embedding.Credentials{
			AWSRegion:    "us-east-1",
			AWSAccessKey: "AKIA",
			AWSSecretKey: "secret",
		},
	}
}

func TestGenerate_Success(t *testing.T) {
	fake := &fakeClient{output: []byte(`{"embedding":[0,2],"inputTextTokenCount":3}`)}
	svc := NewBedrockEmbeddingService(logrus.New(), fake)

	emb, err := svc.Generate(context.Background(), "transcribe audio", cfg())
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", fake.creds.Region)
	assert.Equal(t, "AKIA", fake.creds.AccessKey)
	assert.Equal(t, DefaultModel, aws.ToString(fake.input.ModelId))

	var sent titanRequest
	require.NoError(t, json.Unmarshal(fake.input.Body, &sent))
	assert.Equal(t, "transcribe audio", sent.InputText)
	assert.Equal(t, 256, sent.Dimensions)
	assert.True(t, sent.Normalize)

	assert.Equal(t, []float64{0, 1}, emb.Value)
	assert.Equal(t, DefaultModel, emb.Model)
}

func TestGenerate_Failures(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	t.Run("missing region", func(t *testing.T) {
		svc := NewBedrockEmbeddingService(logger, &fakeClient{})
		_, err := svc.Generate(context.Background(), "x", &embedding.Config{})
		assert.ErrorIs(t, err, embedding.ErrMissingCredentials)
	})

	t.Run("invoke error", func(t *testing.T) {
		svc := NewBedrockEmbeddingService(logger, &fakeClient{err: errors.New("throttled")})
		_, err := svc.Generate(context.Background(), "x", cfg())
		assert.ErrorIs(t, err, embedding.ErrProviderNonOKResponse)
	})

	t.Run("empty embedding", func(t *testing.T) {
		svc := NewBedrockEmbeddingService(logger, &fakeClient{output: []byte(`{"embedding":[]}`)})
		_, err := svc.Generate(context.Background(), "x", cfg())
		assert.ErrorIs(t, err, embedding.ErrEmptyEmbedding)
	})
}
