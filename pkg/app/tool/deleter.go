package tool

import (
	"context"
	"fmt"

	domainTool "github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
	infraCache "github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/event"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Deleter --dir=. --output=./mocks --filename=tool_deleter_mock.go --case=underscore --with-expecter
type Deleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type deleter struct {
	logger    *logrus.Logger
	repo      domainTool.Repository
	publisher infraCache.EventPublisher
}

func NewDeleter(
	logger *logrus.Logger,
	repo domainTool.Repository,
	publisher infraCache.EventPublisher,
) Deleter {
	return &deleter{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
	}
}

func (d *deleter) Delete(ctx context.Context, id uuid.UUID) error {
	entity, err := d.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := d.repo.Delete(ctx, id); err != nil {
		d.logger.WithError(err).WithField("tool_id", id.String()).Error("failed to delete tool")
		return fmt.Errorf("failed to delete tool: %w", err)
	}
	if err := d.publisher.Publish(ctx, event.ToolDeletedEvent{
		ToolID:     id.String(),
		CategoryID: entity.CategoryID.String(),
	}); err != nil {
		d.logger.WithError(err).WithField("tool_id", id.String()).Error("failed to publish tool deleted event")
	}
	return nil
}
