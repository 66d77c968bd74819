package category

import (
	"context"
	"errors"
	"time"

	domainCategory "github.com/NeuralTrust/ToolFinder/pkg/domain/category"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/sirupsen/logrus"
)

var ErrInvalidCacheType = errors.New("invalid type assertion for categories")

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=category_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	List(ctx context.Context) ([]domainCategory.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domainCategory.Category, error)
}

type finder struct {
	logger      *logrus.Logger
	repo        domainCategory.Repository
	cache       cache.Client
	memoryCache *cache.TTLMap
	ttl         time.Duration
}

func NewFinder(
	logger *logrus.Logger,
	repo domainCategory.Repository,
	c cache.Client,
	localTTL time.Duration,
	ttl time.Duration,
) Finder {
	return &finder{
		logger:      logger,
		repo:        repo,
		cache:       c,
		memoryCache: c.CreateTTLMap(cache.CategoriesTTLName, localTTL),
		ttl:         ttl,
	}
}

// List returns every category ordered for display. Categories are seeded by
// migrations and never edited at runtime, so they are cached aggressively.
func (f *finder) List(ctx context.Context) ([]domainCategory.Category, error) {
	if categories, err := f.getFromMemoryCache(); err == nil {
		return categories, nil
	} else if errors.Is(err, ErrInvalidCacheType) {
		f.logger.WithError(err).Warn("memory cache read categories failure")
	}

	cached, err := cache.GetJSON[[]domainCategory.Category](ctx, f.cache, cache.CategoriesKey)
	if err == nil && cached != nil {
		f.memoryCache.Set(cache.CategoriesKey, *cached)
		return *cached, nil
	}
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		f.logger.WithError(err).Warn("distributed cache read categories failure")
	}

	categories, err := f.repo.List(ctx)
	if err != nil {
		f.logger.WithError(err).Error("failed to fetch categories from repository")
		return nil, err
	}
	if categories == nil {
		categories = []domainCategory.Category{}
	}
	f.memoryCache.Set(cache.CategoriesKey, categories)
	if err := cache.SetJSON(ctx, f.cache, cache.CategoriesKey, categories, f.ttl); err != nil {
		f.logger.WithError(err).Warn("failed to save categories to distributed cache")
	}
	return categories, nil
}

func (f *finder) GetBySlug(ctx context.Context, slug string) (*domainCategory.Category, error) {
	return f.repo.GetBySlug(ctx, slug)
}

func (f *finder) getFromMemoryCache() ([]domainCategory.Category, error) {
	value, found := f.memoryCache.Get(cache.CategoriesKey)
	if !found {
		return nil, errors.New("categories not found in memory cache")
	}
	categories, ok := value.([]domainCategory.Category)
	if !ok {
		return nil, ErrInvalidCacheType
	}
	return categories, nil
}
