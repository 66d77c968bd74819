package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
)

type redisEmbeddingRepository struct {
	cache cache.Client
}

func NewRedisEmbeddingRepository(c cache.Client) embedding.Repository {
	return &redisEmbeddingRepository{
		cache: c,
	}
}

func (r *redisEmbeddingRepository) Store(
	ctx context.Context,
	key string,
	emb *embedding.Embedding,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(emb)
	if err != nil {
		return fmt.Errorf("failed to marshal embedding data: %w", err)
	}
	return r.cache.Set(ctx, fmt.Sprintf(cache.QueryEmbeddingKeyPattern, key), string(jsonData), ttl)
}

func (r *redisEmbeddingRepository) Get(ctx context.Context, key string) (*embedding.Embedding, error) {
	jsonData, err := r.cache.Get(ctx, fmt.Sprintf(cache.QueryEmbeddingKeyPattern, key))
	if err != nil {
		return nil, fmt.Errorf("failed to get embedding from cache: %w", err)
	}

	var data embedding.Embedding
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal embedding data: %w", err)
	}
	return &data, nil
}
