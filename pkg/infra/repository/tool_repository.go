package repository

import (
	"context"
	"errors"

	"github.com/NeuralTrust/ToolFinder/pkg/domain"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/database/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// toolColumns leaves out the embedding so list queries stay small.
const toolColumns = `id, name, description, url, category_id, tags, is_trending, "order", created_at`

const toolOrder = `"order" ASC, created_at ASC`

type toolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) tool.Repository {
	return &toolRepository{
		db: db,
	}
}

func (r *toolRepository) Create(ctx context.Context, t *tool.Tool) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *toolRepository) Get(ctx context.Context, id uuid.UUID) (*tool.Tool, error) {
	var t tool.Tool
	if err := r.db.WithContext(ctx).
		Select(toolColumns).
		Where("id = ?", id).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("tool", id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *toolRepository) List(ctx context.Context) ([]tool.Tool, error) {
	var tools []tool.Tool
	if err := r.db.WithContext(ctx).
		Select(toolColumns).
		Order(toolOrder).
		Find(&tools).Error; err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *toolRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]tool.Tool, error) {
	var tools []tool.Tool
	if err := r.db.WithContext(ctx).
		Select(toolColumns).
		Where("category_id = ?", categoryID).
		Order(toolOrder).
		Find(&tools).Error; err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *toolRepository) ListTrending(ctx context.Context, limit int) ([]tool.Tool, error) {
	var tools []tool.Tool
	if err := r.db.WithContext(ctx).
		Select(toolColumns).
		Where("is_trending = ?", true).
		Order(toolOrder).
		Limit(limit).
		Find(&tools).Error; err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *toolRepository) ListWithoutEmbedding(ctx context.Context, model string) ([]tool.Tool, error) {
	var tools []tool.Tool
	if err := r.db.WithContext(ctx).
		Select(toolColumns).
		Where("embedding IS NULL OR embedding_model IS DISTINCT FROM ?", model).
		Order(toolOrder).
		Find(&tools).Error; err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *toolRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&tool.Tool{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("tool", id)
	}
	return nil
}

func (r *toolRepository) SaveEmbedding(ctx context.Context, id uuid.UUID, vector []float64, model string) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE tools SET embedding = ?::vector, embedding_model = ? WHERE id = ?`,
		types.Vector(vector), model, id,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("tool", id)
	}
	return nil
}

func (r *toolRepository) HasEmbedding(ctx context.Context, id uuid.UUID, model string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&tool.Tool{}).
		Where("id = ? AND embedding IS NOT NULL AND embedding_model = ?", id, model).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *toolRepository) MatchByEmbedding(
	ctx context.Context,
	vector []float64,
	model string,
	threshold float64,
	count int,
) ([]tool.Match, error) {
	var matches []tool.Match
	if err := r.db.WithContext(ctx).Raw(
		`SELECT * FROM match_tools(?::vector, ?, ?, ?)`,
		types.Vector(vector), model, threshold, count,
	).Scan(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}
