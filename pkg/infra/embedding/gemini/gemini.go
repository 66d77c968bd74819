package gemini

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-embedding-001"

// contentEmbedder is the subset of *genai.Models used here.
type contentEmbedder interface {
	EmbedContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.EmbedContentConfig,
	) (*genai.EmbedContentResponse, error)
}

type embedderFactory func(ctx context.Context, apiKey string) (contentEmbedder, error)

type embeddingService struct {
	logger     *logrus.Logger
	newClient  embedderFactory
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewGeminiEmbeddingService(logger *logrus.Logger) embedding.Creator {
	return newEmbeddingService(logger, func(ctx context.Context, apiKey string) (contentEmbedder, error) {
		cli, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, err
		}
		return cli.Models, nil
	})
}

func newEmbeddingService(logger *logrus.Logger, factory embedderFactory) *embeddingService {
	return &embeddingService{
		logger:     logger,
		newClient:  factory,
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

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	cli, err := s.getOrCreateClient(ctx, cfg.Credentials.ApiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	embedCfg := &genai.EmbedContentConfig{TaskType: taskType(cfg.Task)}
	if cfg.Dimensions > 0 {
		dims := int32(cfg.Dimensions)
		embedCfg.OutputDimensionality = &dims
	}

	resp, err := cli.EmbedContent(ctx, model, genai.Text(text), embedCfg)
	if err != nil {
		s.logger.WithError(err).Error("gemini embeddings request failed")
		return nil, fmt.Errorf("%w: %v", embedding.ErrProviderNonOKResponse, err)
	}
	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil || len(resp.Embeddings[0].Values) == 0 {
		return nil, embedding.ErrEmptyEmbedding
	}

	raw := resp.Embeddings[0].Values
	value := make([]float64, len(raw))
	for i, v := range raw {
		value[i] = float64(v)
	}
	embedding.Normalize(value)

	return &embedding.Embedding{
		Value:     value,
		Model:     model,
		CreatedAt: time.Now(),
	}, nil
}

func taskType(task embedding.Task) string {
	switch task {
	case embedding.TaskQuery:
		return "RETRIEVAL_QUERY"
	case embedding.TaskDocument:
		return "RETRIEVAL_DOCUMENT"
	default:
		return ""
	}
}

func (s *embeddingService) getOrCreateClient(ctx context.Context, apiKey string) (contentEmbedder, error) {
	if v, ok := s.clientPool.Load(apiKey); ok {
		if cli, ok := v.(contentEmbedder); ok {
			return cli, nil
		}
	}
	v, err, _ := s.sf.Do(apiKey, func() (any, error) {
		if existing, ok := s.clientPool.Load(apiKey); ok {
			return existing, nil
		}
		cli, err := s.newClient(ctx, apiKey)
		if err != nil {
			return nil, err
		}
		s.clientPool.Store(apiKey, cli)
		return cli, nil
	})
	if err != nil {
		return nil, err
	}
	cli, ok := v.(contentEmbedder)
	if !ok {
		return nil, fmt.Errorf("unexpected gemini client type %T", v)
	}
	return cli, nil
}
