package subscriber

import (
	"context"

	infraCache "github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type ToolCreatedCacheEventSubscriber struct {
	logger *logrus.Logger
	cache  infraCache.Client
}

func NewToolCreatedCacheEventSubscriber(
	logger *logrus.Logger,
	c infraCache.Client,
) infraCache.EventSubscriber[event.ToolCreatedEvent] {
	return &ToolCreatedCacheEventSubscriber{
		logger: logger,
		cache:  c,
	}
}

func (s *ToolCreatedCacheEventSubscriber) OnEvent(ctx context.Context, evt event.ToolCreatedEvent) error {
	s.logger.WithFields(logrus.Fields{
		"tool_id":     evt.ToolID,
		"category_id": evt.CategoryID,
	}).Debug("invalidating tool caches after create")

	if err := invalidateToolCaches(ctx, s.cache, evt.CategoryID); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate tool caches")
	}
	return nil
}
