package search

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/domain"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	embeddingMocks "github.com/NeuralTrust/ToolFinder/pkg/domain/embedding/mocks"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
	toolMocks "github.com/NeuralTrust/ToolFinder/pkg/domain/tool/mocks"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSnapshots struct {
	tools []tool.Tool
	err   error
	calls int
}

func (f *fakeSnapshots) Snapshot(context.Context) ([]tool.Tool, error) {
	f.calls++
	return f.tools, f.err
}

type openBreaker struct{}

func (openBreaker) Execute(func() error) error {
	return fmt.Errorf("breaker (test): %w", httpx.ErrCircuitOpen)
}

func (openBreaker) State() string { return "open" }

type searcherDeps struct {
	snapshots     *fakeSnapshots
	toolRepo      *toolMocks.Repository
	creator       *embeddingMocks.Creator
	embeddingRepo *embeddingMocks.Repository
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func embeddingOptions() Options {
	return Options{
		Embedding:      &embedding.Config{Provider: "openai", Model: "text-embedding-3-small"},
		MatchThreshold: 0.5,
		MatchCount:     5,
		CacheTTL:       time.Hour,
	}
}

func setupSearcher(t *testing.T, opts Options, breaker httpx.CircuitBreaker) (Searcher, *searcherDeps) {
	deps := &searcherDeps{
		snapshots: &fakeSnapshots{tools: []tool.Tool{
			newTool("Runway", "Generative video editing", "video"),
			newTool("Notion", "Notes and docs", "productivity"),
		}},
		toolRepo:      toolMocks.NewRepository(t),
		creator:       embeddingMocks.NewCreator(t),
		embeddingRepo: embeddingMocks.NewRepository(t),
	}
	s := NewSearcher(
		testLogger(),
		NewScorer(DefaultTopics()...),
		deps.snapshots,
		deps.toolRepo,
		deps.creator,
		deps.embeddingRepo,
		breaker,
		opts,
	)
	return s, deps
}

func isQueryConfig(cfg *embedding.Config) bool {
	return cfg != nil && cfg.Task == embedding.TaskQuery && cfg.Provider == "openai"
}

func TestSearch_EmptyQuery(t *testing.T) {
	s, deps := setupSearcher(t, embeddingOptions(), nil)

	res, err := s.Search(context.Background(), "   ")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, 0, deps.snapshots.calls)
}

func TestSearch_KeywordWhenProviderDisabled(t *testing.T) {
	s, deps := setupSearcher(t, Options{}, nil)

	res, err := s.Search(context.Background(), "video editing")

	require.NoError(t, err)
	assert.Equal(t, ModeKeyword, res.Mode)
	assert.Equal(t, FallbackDisabled, res.FallbackReason)
	require.NotEmpty(t, res.Tools)
	assert.Equal(t, "Runway", res.Tools[0].Name)
	assert.Equal(t, 1, deps.snapshots.calls)
}

func TestSearch_SemanticCacheMiss(t *testing.T) {
	ctx := context.Background()
	s, deps := setupSearcher(t, embeddingOptions(), httpx.NewCircuitBreaker("test", time.Second, 3))
	key := QueryEmbeddingKey("openai", "text-embedding-3-small", "video editing")
	vector := []float64{0.1, 0.2}
	matched := tool.Match{Tool: newTool("Runway", "video"), Similarity: 0.8}

	deps.embeddingRepo.EXPECT().Get(ctx, key).Return(nil, fmt.Errorf("lookup: %w", cache.ErrCacheMiss))
	deps.creator.EXPECT().Generate(ctx, "video editing", mock.MatchedBy(isQueryConfig)).
		Return(&embedding.Embedding{Value: vector, Model: "text-embedding-3-small"}, nil)
	deps.embeddingRepo.EXPECT().Store(ctx, key, mock.AnythingOfType("*embedding.Embedding"), time.Hour).Return(nil)
	deps.toolRepo.EXPECT().MatchByEmbedding(ctx, vector, "text-embedding-3-small", 0.5, 5).Return([]tool.Match{matched}, nil)

	res, err := s.Search(ctx, "  video editing ")

	require.NoError(t, err)
	assert.Equal(t, ModeSemantic, res.Mode)
	assert.Empty(t, res.FallbackReason)
	require.Len(t, res.Tools, 1)
	assert.Equal(t, "Runway", res.Tools[0].Name)
	assert.Equal(t, 0, deps.snapshots.calls)
}

func TestSearch_CachedEmbeddingIsNotRegenerated(t *testing.T) {
	ctx := context.Background()
	s, deps := setupSearcher(t, embeddingOptions(), nil)
	vector := []float64{0.3, 0.4}

	deps.embeddingRepo.EXPECT().Get(ctx, mock.AnythingOfType("string")).
		Return(&embedding.Embedding{Value: vector}, nil)
	deps.toolRepo.EXPECT().MatchByEmbedding(ctx, vector, "text-embedding-3-small", 0.5, 5).
		Return([]tool.Match{{Tool: newTool("Notion", "notes")}}, nil)

	res, err := s.Search(ctx, "take notes")

	require.NoError(t, err)
	assert.Equal(t, ModeSemantic, res.Mode)
	deps.creator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_FallsBackWhenProviderFails(t *testing.T) {
	ctx := context.Background()
	s, deps := setupSearcher(t, embeddingOptions(), nil)

	deps.embeddingRepo.EXPECT().Get(ctx, mock.Anything).Return(nil, cache.ErrCacheMiss)
	deps.creator.EXPECT().Generate(ctx, "video editing", mock.Anything).
		Return(nil, embedding.ErrProviderNonOKResponse)

	res, err := s.Search(ctx, "video editing")

	require.NoError(t, err)
	assert.Equal(t, ModeKeyword, res.Mode)
	assert.Equal(t, FallbackEmbeddingError, res.FallbackReason)
	require.NotEmpty(t, res.Tools)
	assert.Equal(t, "Runway", res.Tools[0].Name)
}

func TestSearch_FallsBackWhenCircuitOpen(t *testing.T) {
	ctx := context.Background()
	s, deps := setupSearcher(t, embeddingOptions(), openBreaker{})

	deps.embeddingRepo.EXPECT().Get(ctx, mock.Anything).Return(nil, cache.ErrCacheMiss)

	res, err := s.Search(ctx, "video editing")

	require.NoError(t, err)
	assert.Equal(t, ModeKeyword, res.Mode)
	assert.Equal(t, FallbackCircuitOpen, res.FallbackReason)
}

func TestSearch_FallsBackOnEmptyEmbedding(t *testing.T) {
	ctx := context.Background()
	s, deps := setupSearcher(t, embeddingOptions(), nil)

	deps.embeddingRepo.EXPECT().Get(ctx, mock.Anything).Return(nil, cache.ErrCacheMiss)
	deps.creator.EXPECT().Generate(ctx, mock.Anything, mock.Anything).Return(&embedding.Embedding{}, nil)

	res, err := s.Search(ctx, "video editing")

	require.NoError(t, err)
	assert.Equal(t, FallbackEmbeddingError, res.FallbackReason)
}

func TestSearch_FallsBackWhenNoMatches(t *testing.T) {
	ctx := context.Background()
	s, deps := setupSearcher(t, embeddingOptions(), nil)
	vector := []float64{1}

	deps.embeddingRepo.EXPECT().Get(ctx, mock.Anything).Return(&embedding.Embedding{Value: vector}, nil)
	deps.toolRepo.EXPECT().MatchByEmbedding(ctx, vector, "text-embedding-3-small", 0.5, 5).Return(nil, nil)

	res, err := s.Search(ctx, "notes")

	require.NoError(t, err)
	assert.Equal(t, ModeKeyword, res.Mode)
	assert.Equal(t, FallbackNoMatches, res.FallbackReason)
	require.Len(t, res.Tools, 1)
	assert.Equal(t, "Notion", res.Tools[0].Name)
}

func TestSearch_MatchesOnlyConfiguredModel(t *testing.T) {
	ctx := context.Background()
	opts := embeddingOptions()
	opts.Embedding.Model = "text-embedding-ada-002"
	s, deps := setupSearcher(t, opts, nil)
	vector := []float64{0.5, 0.5}

	deps.embeddingRepo.EXPECT().Get(ctx, QueryEmbeddingKey("openai", "text-embedding-ada-002", "notes")).
		Return(&embedding.Embedding{Value: vector}, nil)
	// Tools indexed with text-embedding-3-small are not visible to this model.
	deps.toolRepo.EXPECT().MatchByEmbedding(ctx, vector, "text-embedding-ada-002", 0.5, 5).Return(nil, nil)

	res, err := s.Search(ctx, "notes")

	require.NoError(t, err)
	assert.Equal(t, ModeKeyword, res.Mode)
	assert.Equal(t, FallbackNoMatches, res.FallbackReason)
	require.Len(t, res.Tools, 1)
	assert.Equal(t, "Notion", res.Tools[0].Name)
}

func TestSearch_FallsBackWhenMatchFails(t *testing.T) {
	ctx := context.Background()
	s, deps := setupSearcher(t, embeddingOptions(), nil)

	deps.embeddingRepo.EXPECT().Get(ctx, mock.Anything).Return(&embedding.Embedding{Value: []float64{1}}, nil)
	deps.toolRepo.EXPECT().MatchByEmbedding(ctx, mock.Anything, "text-embedding-3-small", 0.5, 5).Return(nil, errors.New("function match_tools does not exist"))

	res, err := s.Search(ctx, "notes")

	require.NoError(t, err)
	assert.Equal(t, FallbackMatchError, res.FallbackReason)
}

func TestSearch_SnapshotFailureIsReturned(t *testing.T) {
	s, deps := setupSearcher(t, Options{}, nil)
	deps.snapshots.err = errors.New("db down")

	res, err := s.Search(context.Background(), "notes")

	assert.Nil(t, res)
	assert.Error(t, err)
}

func TestQueryEmbeddingKey(t *testing.T) {
	a := QueryEmbeddingKey("openai", "m1", "video")

	assert.Len(t, a, 64)
	assert.Equal(t, a, QueryEmbeddingKey("openai", "m1", "video"))
	assert.NotEqual(t, a, QueryEmbeddingKey("openai", "m2", "video"))
	assert.NotEqual(t, a, QueryEmbeddingKey("gemini", "m1", "video"))
}
