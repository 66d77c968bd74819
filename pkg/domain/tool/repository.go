package tool

import (
	"context"

	"github.com/google/uuid"
)

// Match is a tool returned by a vector similarity query.
type Match struct {
	Tool
	Similarity float64 `json:"similarity"`
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=tool_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Create(ctx context.Context, tool *Tool) error
	Get(ctx context.Context, id uuid.UUID) (*Tool, error)
	List(ctx context.Context) ([]Tool, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]Tool, error)
	ListTrending(ctx context.Context, limit int) ([]Tool, error)
	ListWithoutEmbedding(ctx context.Context, model string) ([]Tool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SaveEmbedding(ctx context.Context, id uuid.UUID, vector []float64, model string) error
	HasEmbedding(ctx context.Context, id uuid.UUID, model string) (bool, error)
	MatchByEmbedding(ctx context.Context, vector []float64, model string, threshold float64, count int) ([]Match, error)
}
