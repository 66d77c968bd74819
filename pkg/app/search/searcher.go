package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/domain"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/httpx"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type Mode string

const (
	ModeSemantic Mode = "semantic"
	ModeKeyword  Mode = "keyword"
)

const (
	FallbackDisabled       = "disabled"
	FallbackEmbeddingError = "embedding_error"
	FallbackCircuitOpen    = "circuit_open"
	FallbackMatchError     = "match_error"
	FallbackNoMatches      = "no_matches"
)

var ErrEmptyQuery = fmt.Errorf("%w: query must not be empty", domain.ErrInvalidInput)

type Result struct {
	Tools          []tool.Tool
	Mode           Mode
	FallbackReason string
}

// SnapshotFinder returns every tool the keyword ranking runs over.
type SnapshotFinder interface {
	Snapshot(ctx context.Context) ([]tool.Tool, error)
}

//go:generate mockery --name=Searcher --dir=. --output=./mocks --filename=searcher_mock.go --case=underscore --with-expecter
type Searcher interface {
	Search(ctx context.Context, query string) (*Result, error)
}

type Options struct {
	// Embedding is nil when no provider is configured; search is then keyword only.
	Embedding      *embedding.Config
	MatchThreshold float64
	MatchCount     int
	CacheTTL       time.Duration
}

type searcher struct {
	logger        *logrus.Logger
	scorer        *Scorer
	snapshots     SnapshotFinder
	toolRepo      tool.Repository
	creator       embedding.Creator
	embeddingRepo embedding.Repository
	breaker       httpx.CircuitBreaker
	opts          Options
}

func NewSearcher(
	logger *logrus.Logger,
	scorer *Scorer,
	snapshots SnapshotFinder,
	toolRepo tool.Repository,
	creator embedding.Creator,
	embeddingRepo embedding.Repository,
	breaker httpx.CircuitBreaker,
	opts Options,
) Searcher {
	if opts.MatchCount <= 0 {
		opts.MatchCount = MaxResults
	}
	return &searcher{
		logger:        logger,
		scorer:        scorer,
		snapshots:     snapshots,
		toolRepo:      toolRepo,
		creator:       creator,
		embeddingRepo: embeddingRepo,
		breaker:       breaker,
		opts:          opts,
	}
}

func (s *searcher) Search(ctx context.Context, query string) (*Result, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ErrEmptyQuery
	}

	reason := FallbackDisabled
	if s.semanticEnabled() {
		tools, fallback := s.semantic(ctx, q)
		if fallback == "" {
			return &Result{Tools: tools, Mode: ModeSemantic}, nil
		}
		reason = fallback
	}

	snapshot, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tools for keyword search: %w", err)
	}
	return &Result{
		Tools:          s.scorer.Rank(q, snapshot),
		Mode:           ModeKeyword,
		FallbackReason: reason,
	}, nil
}

func (s *searcher) semanticEnabled() bool {
	return s.creator != nil && s.opts.Embedding != nil && s.opts.Embedding.Provider != ""
}

// semantic returns the matched tools, or the reason keyword ranking must be
// used instead.
func (s *searcher) semantic(ctx context.Context, q string) ([]tool.Tool, string) {
	vector, model, err := s.queryEmbedding(ctx, q)
	if err != nil {
		s.logger.WithError(err).WithField("provider", s.opts.Embedding.Provider).
			Warn("query embedding failed, falling back to keyword search")
		if errors.Is(err, httpx.ErrCircuitOpen) {
			return nil, FallbackCircuitOpen
		}
		return nil, FallbackEmbeddingError
	}

	// Stored vectors from another model share no space with the query.
	matches, err := s.toolRepo.MatchByEmbedding(ctx, vector, model, s.opts.MatchThreshold, s.opts.MatchCount)
	if err != nil {
		s.logger.WithError(err).Warn("vector match failed, falling back to keyword search")
		return nil, FallbackMatchError
	}
	if len(matches) == 0 {
		return nil, FallbackNoMatches
	}

	tools := make([]tool.Tool, 0, len(matches))
	for _, m := range matches {
		tools = append(tools, m.Tool)
	}
	return tools, ""
}

func (s *searcher) queryEmbedding(ctx context.Context, q string) ([]float64, string, error) {
	cfg := s.opts.Embedding.WithTask(embedding.TaskQuery)
	key := QueryEmbeddingKey(cfg.Provider, cfg.Model, q)

	if s.embeddingRepo != nil {
		cached, err := s.embeddingRepo.Get(ctx, key)
		if err == nil && cached != nil && len(cached.Value) > 0 {
			prometheus.EmbeddingCacheTotal.WithLabelValues("hit").Inc()
			return cached.Value, cfg.Model, nil
		}
		if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WithError(err).Debug("query embedding cache lookup failed")
		}
		prometheus.EmbeddingCacheTotal.WithLabelValues("miss").Inc()
	}

	var emb *embedding.Embedding
	generate := func() error {
		var err error
		emb, err = s.creator.Generate(ctx, q, cfg)
		return err
	}
	var err error
	if s.breaker != nil {
		err = s.breaker.Execute(generate)
	} else {
		err = generate()
	}
	if err != nil {
		outcome := "error"
		if errors.Is(err, httpx.ErrCircuitOpen) {
			outcome = "circuit_open"
		}
		prometheus.EmbeddingRequestsTotal.WithLabelValues(cfg.Provider, outcome).Inc()
		return nil, "", err
	}
	if emb == nil || len(emb.Value) == 0 {
		prometheus.EmbeddingRequestsTotal.WithLabelValues(cfg.Provider, "error").Inc()
		return nil, "", embedding.ErrEmptyEmbedding
	}
	prometheus.EmbeddingRequestsTotal.WithLabelValues(cfg.Provider, "success").Inc()

	if s.embeddingRepo != nil {
		if err := s.embeddingRepo.Store(ctx, key, emb, s.opts.CacheTTL); err != nil {
			s.logger.WithError(err).Warn("failed to cache query embedding")
		}
	}
	return emb.Value, cfg.Model, nil
}

// QueryEmbeddingKey identifies a cached query embedding. Provider and model
// are part of the key because vectors from different models are not
// comparable.
func QueryEmbeddingKey(provider, model, query string) string {
	sum := sha256.Sum256([]byte(provider + "|" + model + "|" + query))
	return hex.EncodeToString(sum[:])
}
