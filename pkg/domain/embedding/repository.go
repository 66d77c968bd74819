package embedding

import (
	"context"
	"time"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=embedding_repository_mock.go --case=underscore --with-expecter

// Repository caches query embeddings so repeated searches skip the provider.
type Repository interface {
	Get(ctx context.Context, key string) (*Embedding, error)
	Store(ctx context.Context, key string, emb *Embedding, ttl time.Duration) error
}
