package openai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const DefaultModel = "text-embedding-3-small"

type embeddingService struct {
	logger     *logrus.Logger
	baseOpts   []option.RequestOption
	clientPool *sync.Map
	sf         singleflight.Group
}

// NewOpenAIEmbeddingService returns a Creator backed by the OpenAI embeddings
// API. Extra request options are applied to every client it builds.
func NewOpenAIEmbeddingService(logger *logrus.Logger, opts ...option.RequestOption) embedding.Creator {
	return &embeddingService{
		logger:     logger,
		baseOpts:   opts,
		clientPool: &sync.Map{},
	}
}

func (s *embeddingService) Generate(
	ctx context.Context,
	text string,
	cfg *embedding.Config,
) (*embedding.Embedding, error) {
	if cfg == nil || cfg.Credentials.ApiKey == "" {
		return nil, embedding.ErrMissingCredentials
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	params := openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
		Model: openai.EmbeddingModel(model),
	}
	if cfg.Dimensions > 0 {
		params.Dimensions = openai.Int(int64(cfg.Dimensions))
	}

	resp, err := s.getOrCreateClient(cfg.Credentials.ApiKey).Embeddings.New(ctx, params)
	if err != nil {
		s.logger.WithError(err).Error("openai embeddings request failed")
		return nil, fmt.Errorf("%w: %v", embedding.ErrProviderNonOKResponse, err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		s.logger.Error("empty embeddings received from API")
		return nil, embedding.ErrEmptyEmbedding
	}

	value := resp.Data[0].Embedding
	embedding.Normalize(value)

	return &embedding.Embedding{
		Value:     value,
		Model:     model,
		CreatedAt: time.Now(),
	}, nil
}

func (s *embeddingService) getOrCreateClient(apiKey string) *openai.Client {
	if v, ok := s.clientPool.Load(apiKey); ok {
		if cli, ok := v.(*openai.Client); ok {
			return cli
		}
	}
	v, _, _ := s.sf.Do(apiKey, func() (any, error) {
		if existing, ok := s.clientPool.Load(apiKey); ok {
			return existing, nil
		}
		cli := s.newClient(apiKey)
		s.clientPool.Store(apiKey, cli)
		return cli, nil
	})
	if cli, ok := v.(*openai.Client); ok {
		return cli
	}
	return s.newClient(apiKey)
}

func (s *embeddingService) newClient(apiKey string) *openai.Client {
	opts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, s.baseOpts...)
	cli := openai.NewClient(opts...)
	return &cli
}
