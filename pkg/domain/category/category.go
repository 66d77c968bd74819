package category

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Slug        string    `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	Icon        string    `json:"icon" gorm:"type:text"`
	Color       string    `json:"color" gorm:"type:text"`
	Order       int       `json:"order" gorm:"column:order;not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *Category) TableName() string {
	return "categories"
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=category_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id uuid.UUID) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
}
