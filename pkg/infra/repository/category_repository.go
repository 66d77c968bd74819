package repository

import (
	"context"
	"errors"

	"github.com/NeuralTrust/ToolFinder/pkg/domain"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/category"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{
		db: db,
	}
}

func (r *categoryRepository) List(ctx context.Context) ([]category.Category, error) {
	var categories []category.Category
	if err := r.db.WithContext(ctx).
		Order(`"order" ASC, name ASC`).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var c category.Category
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("category", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	var c category.Category
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundErrorByKey("category", slug)
		}
		return nil, err
	}
	return &c, nil
}
