package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/NeuralTrust/ToolFinder/pkg/domain"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/category"
	domainTool "github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
	"github.com/NeuralTrust/ToolFinder/pkg/handlers/http/request"
	infraCache "github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/event"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=tool_creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, req *request.CreateToolRequest) (*domainTool.Tool, error)
}

type creator struct {
	logger       *logrus.Logger
	repo         domainTool.Repository
	categoryRepo category.Repository
	publisher    infraCache.EventPublisher
}

func NewCreator(
	logger *logrus.Logger,
	repo domainTool.Repository,
	categoryRepo category.Repository,
	publisher infraCache.EventPublisher,
) Creator {
	return &creator{
		logger:       logger,
		repo:         repo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

func (c *creator) Create(ctx context.Context, req *request.CreateToolRequest) (*domainTool.Tool, error) {
	categoryID, err := uuid.Parse(strings.TrimSpace(req.CategoryID))
	if err != nil {
		return nil, domain.NewValidationError("category_id", "must be a valid UUID")
	}

	entity := &domainTool.Tool{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		URL:         strings.TrimSpace(req.URL),
		CategoryID:  categoryID,
		Tags:        domainTool.NormalizeTags(req.Tags),
		IsTrending:  false,
		Order:       0,
	}
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	if _, err := c.categoryRepo.Get(ctx, categoryID); err != nil {
		if domain.IsNotFoundError(err) {
			return nil, domain.NewValidationError("category_id", "does not exist")
		}
		c.logger.WithError(err).Error("failed to load category")
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	if err := c.repo.Create(ctx, entity); err != nil {
		c.logger.WithError(err).Error("failed to create tool")
		return nil, fmt.Errorf("failed to create tool: %w", err)
	}

	if err := c.publisher.Publish(ctx, event.ToolCreatedEvent{
		ToolID:     entity.ID.String(),
		CategoryID: entity.CategoryID.String(),
	}); err != nil {
		c.logger.WithError(err).WithField("tool_id", entity.ID.String()).Error("failed to publish tool created event")
	}

	return entity, nil
}
