package tool

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainTool "github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=tool_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	Snapshot(ctx context.Context) ([]domainTool.Tool, error)
	Find(ctx context.Context, id uuid.UUID) (*domainTool.Tool, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]domainTool.Tool, error)
	ListTrending(ctx context.Context, limit int) ([]domainTool.Tool, error)
}

type finder struct {
	logger      *logrus.Logger
	repo        domainTool.Repository
	cache       cache.Client
	memoryCache *cache.TTLMap
	ttl         time.Duration
	group       singleflight.Group
}

// NewFinder serves tool lists from the local TTL map, then Redis, then the
// database. ttl applies to the Redis copies.
func NewFinder(
	logger *logrus.Logger,
	repo domainTool.Repository,
	c cache.Client,
	localTTL time.Duration,
	ttl time.Duration,
) Finder {
	return &finder{
		logger:      logger,
		repo:        repo,
		cache:       c,
		memoryCache: c.CreateTTLMap(cache.ToolsTTLName, localTTL),
		ttl:         ttl,
	}
}

func (f *finder) Snapshot(ctx context.Context) ([]domainTool.Tool, error) {
	return f.load(ctx, cache.ToolsSnapshotKey, f.repo.List)
}

func (f *finder) Find(ctx context.Context, id uuid.UUID) (*domainTool.Tool, error) {
	return f.repo.Get(ctx, id)
}

func (f *finder) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]domainTool.Tool, error) {
	key := fmt.Sprintf(cache.CategoryToolsKeyPattern, categoryID.String())
	return f.load(ctx, key, func(ctx context.Context) ([]domainTool.Tool, error) {
		return f.repo.ListByCategory(ctx, categoryID)
	})
}

func (f *finder) ListTrending(ctx context.Context, limit int) ([]domainTool.Tool, error) {
	key := fmt.Sprintf(cache.TrendingKeyPattern, limit)
	return f.load(ctx, key, func(ctx context.Context) ([]domainTool.Tool, error) {
		return f.repo.ListTrending(ctx, limit)
	})
}

func (f *finder) load(
	ctx context.Context,
	key string,
	fetch func(ctx context.Context) ([]domainTool.Tool, error),
) ([]domainTool.Tool, error) {
	if value, ok := f.memoryCache.Get(key); ok {
		if tools, ok := value.([]domainTool.Tool); ok {
			return tools, nil
		}
		f.logger.WithField("key", key).Warn("unexpected type in tools memory cache")
	}

	gen := f.memoryCache.Generation()
	value, err, _ := f.group.Do(key, func() (interface{}, error) {
		cached, err := cache.GetJSON[[]domainTool.Tool](ctx, f.cache, key)
		if err == nil && cached != nil {
			f.memoryCache.SetIfGeneration(gen, key, *cached)
			return *cached, nil
		}
		if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
			f.logger.WithError(err).WithField("key", key).Warn("distributed cache read tools failure")
		}

		tools, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if tools == nil {
			tools = []domainTool.Tool{}
		}
		// An invalidation during the fetch means tools may already be stale.
		if f.memoryCache.SetIfGeneration(gen, key, tools) {
			if err := cache.SetJSON(ctx, f.cache, key, tools, f.ttl); err != nil {
				f.logger.WithError(err).WithField("key", key).Warn("failed to save tools to distributed cache")
			}
		}
		return tools, nil
	})
	if err != nil {
		f.logger.WithError(err).WithField("key", key).Error("failed to fetch tools from repository")
		return nil, err
	}
	tools, ok := value.([]domainTool.Tool)
	if !ok {
		return nil, fmt.Errorf("unexpected tools type %T", value)
	}
	return tools, nil
}
