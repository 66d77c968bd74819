package tool

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/category"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	domainTool "github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/httpx"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrIndexingDisabled = errors.New("no embedding provider configured")

//go:generate mockery --name=Indexer --dir=. --output=./mocks --filename=tool_indexer_mock.go --case=underscore --with-expecter
type Indexer interface {
	Index(ctx context.Context, id uuid.UUID) error
	IndexIfMissing(ctx context.Context, id uuid.UUID) error
	Backfill(ctx context.Context) (*BackfillReport, error)
}

type BackfillReport struct {
	Total   int `json:"total"`
	Indexed int `json:"indexed"`
	Failed  int `json:"failed"`
}

type indexer struct {
	logger       *logrus.Logger
	repo         domainTool.Repository
	categoryRepo category.Repository
	creator      embedding.Creator
	breaker      httpx.CircuitBreaker
	cfg          *embedding.Config
	workers      int
}

// NewIndexer builds the document embedding pipeline. creator or cfg may be
// nil, in which case every operation returns ErrIndexingDisabled.
func NewIndexer(
	logger *logrus.Logger,
	repo domainTool.Repository,
	categoryRepo category.Repository,
	creator embedding.Creator,
	breaker httpx.CircuitBreaker,
	cfg *embedding.Config,
	workers int,
) Indexer {
	if workers <= 0 {
		workers = 1
	}
	return &indexer{
		logger:       logger,
		repo:         repo,
		categoryRepo: categoryRepo,
		creator:      creator,
		breaker:      breaker,
		cfg:          cfg,
		workers:      workers,
	}
}

func (i *indexer) enabled() bool {
	return i.creator != nil && i.cfg != nil && i.cfg.Provider != ""
}

func (i *indexer) Index(ctx context.Context, id uuid.UUID) error {
	if !i.enabled() {
		return ErrIndexingDisabled
	}
	entity, err := i.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	return i.indexTool(ctx, entity, i.categoryName(ctx, entity.CategoryID))
}

func (i *indexer) IndexIfMissing(ctx context.Context, id uuid.UUID) error {
	if !i.enabled() {
		return ErrIndexingDisabled
	}
	exists, err := i.repo.HasEmbedding(ctx, id, i.cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to check tool embedding: %w", err)
	}
	if exists {
		return nil
	}
	return i.Index(ctx, id)
}

func (i *indexer) Backfill(ctx context.Context) (*BackfillReport, error) {
	if !i.enabled() {
		return nil, ErrIndexingDisabled
	}
	tools, err := i.repo.ListWithoutEmbedding(ctx, i.cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools without embedding: %w", err)
	}

	names := make(map[uuid.UUID]string)
	if categories, err := i.categoryRepo.List(ctx); err != nil {
		i.logger.WithError(err).Warn("failed to load categories, indexing without category names")
	} else {
		for _, c := range categories {
			names[c.ID] = c.Name
		}
	}

	var indexed, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.workers)
	for idx := range tools {
		entity := &tools[idx]
		g.Go(func() error {
			if err := i.indexTool(gctx, entity, names[entity.CategoryID]); err != nil {
				failed.Add(1)
				i.logger.WithError(err).WithField("tool_id", entity.ID.String()).Warn("failed to index tool")
				return nil
			}
			indexed.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &BackfillReport{
		Total:   len(tools),
		Indexed: int(indexed.Load()),
		Failed:  int(failed.Load()),
	}
	i.logger.WithFields(logrus.Fields{
		"total":   report.Total,
		"indexed": report.Indexed,
		"failed":  report.Failed,
		"model":   i.cfg.Model,
	}).Info("embedding backfill finished")
	return report, ctx.Err()
}

func (i *indexer) categoryName(ctx context.Context, id uuid.UUID) string {
	c, err := i.categoryRepo.Get(ctx, id)
	if err != nil {
		i.logger.WithError(err).WithField("category_id", id.String()).Warn("failed to load category for embedding text")
		return ""
	}
	return c.Name
}

func (i *indexer) indexTool(ctx context.Context, entity *domainTool.Tool, categoryName string) error {
	cfg := i.cfg.WithTask(embedding.TaskDocument)
	text := entity.EmbeddingText(categoryName)

	var emb *embedding.Embedding
	generate := func() error {
		var err error
		emb, err = i.creator.Generate(ctx, text, cfg)
		return err
	}
	var err error
	if i.breaker != nil {
		err = i.breaker.Execute(generate)
	} else {
		err = generate()
	}
	if err != nil {
		return fmt.Errorf("failed to generate embedding: %w", err)
	}
	if emb == nil || len(emb.Value) == 0 {
		return embedding.ErrEmptyEmbedding
	}
	if err := i.repo.SaveEmbedding(ctx, entity.ID, emb.Value, cfg.Model); err != nil {
		return fmt.Errorf("failed to save embedding: %w", err)
	}
	return nil
}
