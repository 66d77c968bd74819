package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/category"
	categoryMocks "github.com/NeuralTrust/ToolFinder/pkg/domain/category/mocks"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	embeddingMocks "github.com/NeuralTrust/ToolFinder/pkg/domain/embedding/mocks"
	domainTool "github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
	toolMocks "github.com/NeuralTrust/ToolFinder/pkg/domain/tool/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testModel = "text-embedding-3-small"

type indexerDeps struct {
	repo         *toolMocks.Repository
	categoryRepo *categoryMocks.Repository
	creator      *embeddingMocks.Creator
}

func setupIndexer(t *testing.T, workers int) (Indexer, *indexerDeps) {
	deps := &indexerDeps{
		repo:         toolMocks.NewRepository(t),
		categoryRepo: categoryMocks.NewRepository(t),
		creator:      embeddingMocks.NewCreator(t),
	}
	cfg := &embedding.Config{Provider: "openai", Model: testModel}
	return NewIndexer(quietLogger(), deps.repo, deps.categoryRepo, deps.creator, nil, cfg, workers), deps
}

func isDocumentTask(cfg *embedding.Config) bool {
	return cfg != nil && cfg.Task == embedding.TaskDocument && cfg.Model == testModel
}

func TestIndexer_Index(t *testing.T) {
	ctx := context.Background()
	idx, deps := setupIndexer(t, 1)
	id := uuid.New()
	entity := &domainTool.Tool{ID: id, Name: "Runway", Description: "Video editing", CategoryID: testCategoryID, Tags: []string{"video", "ai"}}
	vector := []float64{0.1, 0.2, 0.3}

	deps.repo.EXPECT().Get(ctx, id).Return(entity, nil)
	deps.categoryRepo.EXPECT().Get(ctx, testCategoryID).Return(&category.Category{Name: "Video"}, nil)
	deps.creator.EXPECT().
		Generate(ctx, "Runway: Video editing. Category: Video. Tags: video, ai", mock.MatchedBy(isDocumentTask)).
		Return(&embedding.Embedding{Value: vector}, nil)
	deps.repo.EXPECT().SaveEmbedding(ctx, id, vector, testModel).Return(nil)

	require.NoError(t, idx.Index(ctx, id))
}

func TestIndexer_Index_EmptyEmbedding(t *testing.T) {
	ctx := context.Background()
	idx, deps := setupIndexer(t, 1)
	id := uuid.New()

	deps.repo.EXPECT().Get(ctx, id).Return(&domainTool.Tool{ID: id, CategoryID: testCategoryID}, nil)
	deps.categoryRepo.EXPECT().Get(ctx, testCategoryID).Return(nil, errors.New("gone"))
	deps.creator.EXPECT().Generate(ctx, mock.Anything, mock.Anything).Return(&embedding.Embedding{}, nil)

	assert.ErrorIs(t, idx.Index(ctx, id), embedding.ErrEmptyEmbedding)
}

func TestIndexer_IndexIfMissing_SkipsExisting(t *testing.T) {
	ctx := context.Background()
	idx, deps := setupIndexer(t, 1)
	id := uuid.New()

	deps.repo.EXPECT().HasEmbedding(ctx, id, testModel).Return(true, nil)

	require.NoError(t, idx.IndexIfMissing(ctx, id))
	deps.creator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestIndexer_Disabled(t *testing.T) {
	idx := NewIndexer(quietLogger(), nil, nil, nil, nil, nil, 2)

	assert.ErrorIs(t, idx.Index(context.Background(), uuid.New()), ErrIndexingDisabled)
	assert.ErrorIs(t, idx.IndexIfMissing(context.Background(), uuid.New()), ErrIndexingDisabled)
	_, err := idx.Backfill(context.Background())
	assert.ErrorIs(t, err, ErrIndexingDisabled)
}

func TestIndexer_Backfill_CountsFailures(t *testing.T) {
	ctx := context.Background()
	idx, deps := setupIndexer(t, 2)
	tools := []domainTool.Tool{
		{ID: uuid.New(), Name: "Runway", Description: "video", CategoryID: testCategoryID, Tags: []string{"video"}},
		{ID: uuid.New(), Name: "Broken", Description: "fails", CategoryID: testCategoryID, Tags: []string{"x"}},
		{ID: uuid.New(), Name: "Notion", Description: "notes", CategoryID: testCategoryID, Tags: []string{"notes"}},
	}

	deps.repo.EXPECT().ListWithoutEmbedding(ctx, testModel).Return(tools, nil)
	deps.categoryRepo.EXPECT().List(ctx).Return([]category.Category{{ID: testCategoryID, Name: "Video"}}, nil)
	deps.creator.EXPECT().Generate(mock.Anything, "Broken: fails. Category: Video. Tags: x", mock.Anything).
		Return(nil, errors.New("rate limited"))
	deps.creator.EXPECT().Generate(mock.Anything, mock.Anything, mock.MatchedBy(isDocumentTask)).
		Return(&embedding.Embedding{Value: []float64{1}}, nil)
	deps.repo.EXPECT().SaveEmbedding(mock.Anything, mock.Anything, []float64{1}, testModel).Return(nil).Times(2)

	report, err := idx.Backfill(ctx)

	require.NoError(t, err)
	assert.Equal(t, &BackfillReport{Total: 3, Indexed: 2, Failed: 1}, report)
}

func TestIndexer_Backfill_ListError(t *testing.T) {
	ctx := context.Background()
	idx, deps := setupIndexer(t, 2)

	deps.repo.EXPECT().ListWithoutEmbedding(ctx, testModel).Return(nil, errors.New("db down"))

	report, err := idx.Backfill(ctx)
	assert.Nil(t, report)
	assert.Error(t, err)
}
