package dependency_container

import (
	"fmt"
	"math/rand"
	"reflect"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/app/admin"
	appCategory "github.com/NeuralTrust/ToolFinder/pkg/app/category"
	"github.com/NeuralTrust/ToolFinder/pkg/app/search"
	appTool "github.com/NeuralTrust/ToolFinder/pkg/app/tool"
	"github.com/NeuralTrust/ToolFinder/pkg/config"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/telemetry"
	handlers "github.com/NeuralTrust/ToolFinder/pkg/handlers/http"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/bedrock"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/channel"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/event"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/subscriber"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/database"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/embedding/factory"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/httpx"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/jwt"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/metrics"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/prometheus"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/repository"
	infraTelemetry "github.com/NeuralTrust/ToolFinder/pkg/infra/telemetry"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/telemetry/kafka"
	"github.com/NeuralTrust/ToolFinder/pkg/middleware"
	"github.com/sirupsen/logrus"
)

const embeddingBreakerName = "embedding"

type Container struct {
	Cache               cache.Client
	RedisListener       cache.EventListener
	RedisPublisher      cache.EventPublisher
	EventsChannel       channel.Channel
	MetricsWorker       metrics.Worker
	JWTManager          jwt.Manager
	ToolIndexer         appTool.Indexer
	IndexQueue          subscriber.IndexQueue
	Searcher            search.Searcher
	HandlerTransport    *handlers.HandlerTransport
	MiddlewareTransport *middleware.Transport
}

type ContainerDI struct {
	Cfg            *config.Config
	Logger         *logrus.Logger
	DB             *database.DB
	EventsRegistry map[string]reflect.Type
	EventsChannel  channel.Channel
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg

	cacheInstance, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, di.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	redisPublisher := cache.NewRedisEventPublisher(cacheInstance, di.EventsChannel)
	redisListener := cache.NewRedisEventListener(di.Logger, cacheInstance, di.EventsRegistry)

	// repository
	toolRepository := repository.NewToolRepository(di.DB.DB)
	categoryRepository := repository.NewCategoryRepository(di.DB.DB)
	embeddingRepository := repository.NewRedisEmbeddingRepository(cacheInstance)

	// embeddings
	embeddingCfg, embeddingCreator := newEmbedding(di.Logger, &cfg.Embedding)
	breaker := httpx.NewCircuitBreaker(
		embeddingBreakerName,
		cfg.Embedding.Timeout,
		cfg.Embedding.MaxFailures,
		httpx.WithStateListener(func(name, from, to string) {
			di.Logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from,
				"to":      to,
			}).Warn("circuit breaker state changed")
			open := 0.0
			if to == "open" {
				open = 1
			}
			prometheus.CircuitBreakerState.WithLabelValues(name).Set(open)
		}),
	)

	// service
	toolFinder := appTool.NewFinder(di.Logger, toolRepository, cacheInstance, cfg.Cache.LocalTTL, cfg.Cache.ToolsTTL)
	categoryFinder := appCategory.NewFinder(di.Logger, categoryRepository, cacheInstance, cfg.Cache.LocalTTL, cfg.Cache.ToolsTTL)
	toolCreator := appTool.NewCreator(di.Logger, toolRepository, categoryRepository, redisPublisher)
	toolDeleter := appTool.NewDeleter(di.Logger, toolRepository, redisPublisher)
	toolIndexer := appTool.NewIndexer(
		di.Logger,
		toolRepository,
		categoryRepository,
		embeddingCreator,
		breaker,
		embeddingCfg,
		cfg.Embedding.IndexWorkers,
	)
	searcher := search.NewSearcher(
		di.Logger,
		search.NewScorer(search.DefaultTopics()...),
		toolFinder,
		toolRepository,
		embeddingCreator,
		embeddingRepository,
		breaker,
		search.Options{
			Embedding:      embeddingCfg,
			MatchThreshold: cfg.Embedding.MatchThreshold,
			MatchCount:     cfg.Embedding.MatchCount,
			CacheTTL:       cfg.Cache.EmbeddingTTL,
		},
	)

	jwtManager := jwt.NewJwtManager(cfg.Admin.SecretKey, cfg.Admin.TokenTTL)
	sessionCreator := admin.NewSessionCreator(di.Logger, jwtManager, cfg.Admin.Password)

	// subscribers
	cache.RegisterEventSubscriber[event.ToolCreatedEvent](
		redisListener, subscriber.NewToolCreatedCacheEventSubscriber(di.Logger, cacheInstance),
	)
	cache.RegisterEventSubscriber[event.ToolDeletedEvent](
		redisListener, subscriber.NewToolDeletedCacheEventSubscriber(di.Logger, cacheInstance),
	)
	// nil when indexing is disabled
	var indexQueue subscriber.IndexQueue
	if embeddingCfg != nil {
		indexSubscriber := subscriber.NewIndexToolEventSubscriber(di.Logger, toolIndexer, subscriber.IndexQueueOptions{
			Timeout: cfg.Embedding.Timeout,
		})
		cache.RegisterEventSubscriber[event.ToolCreatedEvent](redisListener, indexSubscriber)
		indexQueue = indexSubscriber
	}

	// telemetry
	exporterLocator := infraTelemetry.NewExporterLocator(
		infraTelemetry.WithExporter(kafka.ExporterName, kafka.NewKafkaExporter()),
	)
	exporters, err := exporterLocator.BuildAll(exporterDTOs(cfg.Telemetry.Exporters))
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry exporters: %w", err)
	}
	metricsWorker := metrics.NewWorker(di.Logger, exporters, cfg.Metrics.BufferSize)

	handlerTransport := &handlers.HandlerTransport{
		GetVersionHandler:        handlers.NewGetVersionHandler(di.Logger),
		ListCategoriesHandler:    handlers.NewListCategoriesHandler(di.Logger, categoryFinder),
		GetCategoryHandler:       handlers.NewGetCategoryHandler(di.Logger, categoryFinder, toolFinder),
		ListTrendingToolsHandler: handlers.NewListTrendingToolsHandler(di.Logger, toolFinder, cfg.Search.TrendingLimit),
		GetToolHandler:           handlers.NewGetToolHandler(di.Logger, toolFinder),
		SearchHandler: handlers.NewSearchHandler(
			di.Logger,
			searcher,
			search.NewMessageSelector(rand.New(rand.NewSource(time.Now().UnixNano()))), // #nosec G404
			metricsWorker,
		),
		CreateSessionHandler: handlers.NewCreateSessionHandler(di.Logger, sessionCreator),
		CreateToolHandler:    handlers.NewCreateToolHandler(di.Logger, toolCreator),
		DeleteToolHandler:    handlers.NewDeleteToolHandler(di.Logger, toolDeleter),
		IndexToolHandler:     handlers.NewIndexToolHandler(di.Logger, toolIndexer),
	}

	middlewareTransport := &middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(di.Logger),
		SecurityMiddleware:     middleware.NewSecurityMiddleware(),
		CORSMiddleware:         middleware.NewCORSGlobalMiddleware(cfg.Server.AllowedOrigins, cfg.Server.CORSMaxAge),
		AdminAuthMiddleware:    middleware.NewAdminAuthMiddleware(di.Logger, jwtManager),
	}
	if cfg.Metrics.Enabled {
		middlewareTransport.MetricsMiddleware = middleware.NewMetricsMiddleware()
	}

	return &Container{
		Cache:               cacheInstance,
		RedisListener:       redisListener,
		RedisPublisher:      redisPublisher,
		EventsChannel:       di.EventsChannel,
		MetricsWorker:       metricsWorker,
		JWTManager:          jwtManager,
		ToolIndexer:         toolIndexer,
		IndexQueue:          indexQueue,
		Searcher:            searcher,
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
	}, nil
}

// newEmbedding resolves the configured provider. Both results are nil when no
// provider is configured, which leaves search keyword only.
func newEmbedding(logger *logrus.Logger, cfg *config.EmbeddingConfig) (*embedding.Config, embedding.Creator) {
	if cfg.Provider == "" {
		logger.Info("no embedding provider configured, semantic search disabled")
		return nil, nil
	}

	locator := factory.NewServiceLocator(logger, bedrock.NewClient(logger))
	creator, err := locator.GetService(cfg.Provider)
	if err != nil {
		logger.WithError(err).Warn("semantic search disabled")
		return nil, nil
	}

	model := cfg.Model
	if model == "" {
		model = factory.DefaultModel(cfg.Provider)
	}
	creds := embedding.Credentials{
		AWSRegion:    cfg.AWSRegion,
		AWSAccessKey: cfg.AWSAccessKey,
		AWSSecretKey: cfg.AWSSecretKey,
		AWSSession:   cfg.AWSSessionToken,
	}
	switch cfg.Provider {
	case factory.OpenAIProvider:
		creds.ApiKey = cfg.OpenAIKey
	case factory.GeminiProvider:
		creds.ApiKey = cfg.GeminiKey
	}
	if cfg.Provider != factory.BedrockProvider && creds.ApiKey == "" {
		logger.WithField("provider", cfg.Provider).Warn("embedding provider has no api key, semantic search disabled")
		return nil, nil
	}

	logger.WithFields(logrus.Fields{
		"provider": cfg.Provider,
		"model":    model,
	}).Info("semantic search enabled")
	return &embedding.Config{
		Provider:    cfg.Provider,
		Model:       model,
		Dimensions:  cfg.Dimensions,
		Credentials: creds,
	}, creator
}

func exporterDTOs(cfgs []config.ExporterConfig) []telemetry.ExporterDTO {
	dtos := make([]telemetry.ExporterDTO, 0, len(cfgs))
	for _, c := range cfgs {
		dtos = append(dtos, telemetry.ExporterDTO{Name: c.Name, Settings: c.Settings})
	}
	return dtos
}
