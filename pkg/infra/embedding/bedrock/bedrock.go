package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	infraBedrock "github.com/NeuralTrust/ToolFinder/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/sirupsen/logrus"
)

const DefaultModel = "amazon.titan-embed-text-v2:0"

type titanRequest struct {
	InputText  string `json:"inputText"`
	Dimensions int    `json:"dimensions,omitempty"`
	Normalize  bool   `json:"normalize"`
}

type titanResponse struct {
	Embedding           []float64 `json:"embedding"`
	InputTextTokenCount int       `json:"inputTextTokenCount"`
}

type embeddingService struct {
	logger *logrus.Logger
	client infraBedrock.Client
}

func NewBedrockEmbeddingService(logger *logrus.Logger, client infraBedrock.Client) embedding.Creator {
	return &embeddingService{
		logger: logger,
		client: client,
	}
}

func (s *embeddingService) Generate(
	ctx context.Context,
	text string,
	cfg *embedding.Config,
) (*embedding.Embedding, error) {
	if cfg == nil || cfg.Credentials.AWSRegion == "" {
		return nil, embedding.ErrMissingCredentials
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	cli, err := s.client.BuildClient(ctx, infraBedrock.Credentials{
		AccessKey:    cfg.Credentials.AWSAccessKey,
		SecretKey:    cfg.Credentials.AWSSecretKey,
		SessionToken: cfg.Credentials.AWSSession,
		Region:       cfg.Credentials.AWSRegion,
	})
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(titanRequest{
		InputText:  text,
		Dimensions: cfg.Dimensions,
		Normalize:  true,
	})
	if err != nil {
		return nil, err
	}

	out, err := cli.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		s.logger.WithError(err).Error("bedrock embeddings request failed")
		return nil, fmt.Errorf("%w: %v", embedding.ErrProviderNonOKResponse, err)
	}

	var resp titanResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		s.logger.WithError(err).Error("failed to decode bedrock embeddings response")
		return nil, err
	}
	if len(resp.Embedding) == 0 {
		return nil, embedding.ErrEmptyEmbedding
	}
	embedding.Normalize(resp.Embedding)

	return &embedding.Embedding{
		Value:     resp.Embedding,
		Model:     model,
		CreatedAt: time.Now(),
	}, nil
}
