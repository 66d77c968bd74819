package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	domainTool "github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
	toolMocks "github.com/NeuralTrust/ToolFinder/pkg/domain/tool/mocks"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func sampleTools() []domainTool.Tool {
	return []domainTool.Tool{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Runway", Tags: []string{"video"}},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Notion", Tags: []string{"notes"}},
	}
}

func setupFinder(t *testing.T) (Finder, *toolMocks.Repository, redismock.ClientMock, cache.Client) {
	db, redisMock := redismock.NewClientMock()
	c := cache.NewClientWithRedis(db)
	repo := toolMocks.NewRepository(t)
	return NewFinder(quietLogger(), repo, c, time.Minute, 5*time.Minute), repo, redisMock, c
}

func TestFinder_Snapshot_LoadsFromRepositoryOnce(t *testing.T) {
	ctx := context.Background()
	f, repo, redisMock, _ := setupFinder(t)
	tools := sampleTools()
	payload, err := json.Marshal(tools)
	require.NoError(t, err)

	redisMock.ExpectGet(cache.ToolsSnapshotKey).RedisNil()
	repo.EXPECT().List(mock.Anything).Return(tools, nil).Once()
	redisMock.ExpectSet(cache.ToolsSnapshotKey, string(payload), 5*time.Minute).SetVal("OK")

	first, err := f.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := f.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestFinder_Snapshot_ServedFromRedis(t *testing.T) {
	f, _, redisMock, _ := setupFinder(t)
	payload, err := json.Marshal(sampleTools())
	require.NoError(t, err)

	redisMock.ExpectGet(cache.ToolsSnapshotKey).SetVal(string(payload))

	tools, err := f.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "Runway", tools[0].Name)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestFinder_Snapshot_InvalidatedDuringLoadIsNotCached(t *testing.T) {
	ctx := context.Background()
	f, repo, redisMock, c := setupFinder(t)

	redisMock.ExpectGet(cache.ToolsSnapshotKey).RedisNil()
	repo.EXPECT().List(mock.Anything).
		Run(func(context.Context) { c.GetTTLMap(cache.ToolsTTLName).Clear() }).
		Return(sampleTools(), nil).Once()

	tools, err := f.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, tools, 2)
	assert.Equal(t, 0, c.GetTTLMap(cache.ToolsTTLName).Len())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestFinder_Snapshot_RepositoryError(t *testing.T) {
	f, repo, redisMock, _ := setupFinder(t)

	redisMock.ExpectGet(cache.ToolsSnapshotKey).RedisNil()
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	tools, err := f.Snapshot(context.Background())
	assert.Nil(t, tools)
	assert.EqualError(t, err, "db down")
}

func TestFinder_ListTrending_EmptyIsCachedAsEmptyList(t *testing.T) {
	f, repo, redisMock, _ := setupFinder(t)

	redisMock.ExpectGet("tools:trending:6").RedisNil()
	repo.EXPECT().ListTrending(mock.Anything, 6).Return(nil, nil)
	redisMock.ExpectSet("tools:trending:6", "[]", 5*time.Minute).SetVal("OK")

	tools, err := f.ListTrending(context.Background(), 6)
	require.NoError(t, err)
	assert.NotNil(t, tools)
	assert.Empty(t, tools)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestFinder_ListByCategory_UsesCategoryKey(t *testing.T) {
	f, repo, redisMock, _ := setupFinder(t)
	categoryID := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	tools := sampleTools()[:1]
	payload, err := json.Marshal(tools)
	require.NoError(t, err)

	redisMock.ExpectGet("category:33333333-3333-3333-3333-333333333333:tools").RedisNil()
	repo.EXPECT().ListByCategory(mock.Anything, categoryID).Return(tools, nil)
	redisMock.ExpectSet("category:33333333-3333-3333-3333-333333333333:tools", string(payload), 5*time.Minute).SetVal("OK")

	got, err := f.ListByCategory(context.Background(), categoryID)
	require.NoError(t, err)
	assert.Equal(t, tools, got)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestFinder_Find(t *testing.T) {
	f, repo, _, _ := setupFinder(t)
	id := uuid.New()

	repo.EXPECT().Get(mock.Anything, id).Return(&domainTool.Tool{ID: id, Name: "Runway"}, nil)

	got, err := f.Find(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Runway", got.Name)
}
