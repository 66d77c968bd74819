package subscriber

import (
	"context"

	infraCache "github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type ToolDeletedCacheEventSubscriber struct {
	logger *logrus.Logger
	cache  infraCache.Client
}

func NewToolDeletedCacheEventSubscriber(
	logger *logrus.Logger,
	c infraCache.Client,
) infraCache.EventSubscriber[event.ToolDeletedEvent] {
	return &ToolDeletedCacheEventSubscriber{
		logger: logger,
		cache:  c,
	}
}

func (s *ToolDeletedCacheEventSubscriber) OnEvent(ctx context.Context, evt event.ToolDeletedEvent) error {
	s.logger.WithFields(logrus.Fields{
		"tool_id":     evt.ToolID,
		"category_id": evt.CategoryID,
	}).Debug("invalidating tool caches after delete")

	if err := invalidateToolCaches(ctx, s.cache, evt.CategoryID); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate tool caches")
	}
	return nil
}
