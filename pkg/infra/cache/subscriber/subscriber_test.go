package subscriber

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/event"
	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestToolCreatedCacheEventSubscriber_Invalidates(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewClientWithRedis(db)
	tools := c.CreateTTLMap(cache.ToolsTTLName, time.Minute)
	tools.Set("snapshot", "stale")

	mock.ExpectDel(cache.ToolsSnapshotKey, "category:c1:tools").SetVal(2)
	mock.ExpectScan(0, cache.TrendingKeysMatch, 100).SetVal([]string{}, 0)

	sub := NewToolCreatedCacheEventSubscriber(quietLogger(), c)
	require.NoError(t, sub.OnEvent(context.Background(), event.ToolCreatedEvent{ToolID: "t1", CategoryID: "c1"}))

	_, ok := tools.Get("snapshot")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolDeletedCacheEventSubscriber_RedisErrorIsSwallowed(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewClientWithRedis(db)

	mock.ExpectDel(cache.ToolsSnapshotKey, "category:c1:tools").SetErr(errors.New("down"))

	sub := NewToolDeletedCacheEventSubscriber(quietLogger(), c)
	assert.NoError(t, sub.OnEvent(context.Background(), event.ToolDeletedEvent{ToolID: "t1", CategoryID: "c1"}))
}

type fakeIndexer struct {
	mu      sync.Mutex
	ids     []uuid.UUID
	err     error
	block   bool
	started chan uuid.UUID
	ctxErrs chan error
}

func newFakeIndexer() *fakeIndexer {
	return &fakeIndexer{
		started: make(chan uuid.UUID, 10),
		ctxErrs: make(chan error, 10),
	}
}

func (f *fakeIndexer) IndexIfMissing(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	f.ids = append(f.ids, id)
	f.mu.Unlock()
	if f.block {
		f.started <- id
		<-ctx.Done()
		f.ctxErrs <- ctx.Err()
		return ctx.Err()
	}
	if _, ok := ctx.Deadline(); !ok {
		f.ctxErrs <- errors.New("no deadline")
	}
	f.started <- id
	return f.err
}

func waitForIndex(t *testing.T, idx *fakeIndexer) uuid.UUID {
	t.Helper()
	select {
	case id := <-idx.started:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("tool was not indexed")
		return uuid.Nil
	}
}

func TestIndexToolEventSubscriber(t *testing.T) {
	id := uuid.New()

	t.Run("indexes the created tool with a bounded context", func(t *testing.T) {
		idx := newFakeIndexer()
		sub := NewIndexToolEventSubscriber(quietLogger(), idx, IndexQueueOptions{Timeout: time.Minute})
		sub.StartWorkers(1)
		defer sub.Shutdown()

		require.NoError(t, sub.OnEvent(context.Background(), event.ToolCreatedEvent{ToolID: id.String()}))

		assert.Equal(t, id, waitForIndex(t, idx))
		assert.Empty(t, idx.ctxErrs)
	})

	t.Run("indexing failure is not returned", func(t *testing.T) {
		idx := newFakeIndexer()
		idx.err = errors.New("provider down")
		sub := NewIndexToolEventSubscriber(quietLogger(), idx, IndexQueueOptions{})
		sub.StartWorkers(1)
		defer sub.Shutdown()

		assert.NoError(t, sub.OnEvent(context.Background(), event.ToolCreatedEvent{ToolID: id.String()}))
		waitForIndex(t, idx)
	})

	t.Run("slow provider does not block the listener", func(t *testing.T) {
		idx := newFakeIndexer()
		idx.block = true
		sub := NewIndexToolEventSubscriber(quietLogger(), idx, IndexQueueOptions{Size: 1, Timeout: time.Minute})
		sub.StartWorkers(1)

		require.NoError(t, sub.OnEvent(context.Background(), event.ToolCreatedEvent{ToolID: id.String()}))
		waitForIndex(t, idx)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 3; i++ {
				_ = sub.OnEvent(context.Background(), event.ToolCreatedEvent{ToolID: uuid.NewString()})
			}
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("OnEvent blocked behind a running index job")
		}

		sub.Shutdown()
		assert.ErrorIs(t, <-idx.ctxErrs, context.Canceled)
	})

	t.Run("job is cut off by the timeout", func(t *testing.T) {
		idx := newFakeIndexer()
		idx.block = true
		sub := NewIndexToolEventSubscriber(quietLogger(), idx, IndexQueueOptions{Timeout: 20 * time.Millisecond})
		sub.StartWorkers(1)
		defer sub.Shutdown()

		require.NoError(t, sub.OnEvent(context.Background(), event.ToolCreatedEvent{ToolID: id.String()}))

		select {
		case err := <-idx.ctxErrs:
			assert.ErrorIs(t, err, context.DeadlineExceeded)
		case <-time.After(2 * time.Second):
			t.Fatal("index job was not cancelled")
		}
	})

	t.Run("full queue drops the job", func(t *testing.T) {
		idx := newFakeIndexer()
		sub := NewIndexToolEventSubscriber(quietLogger(), idx, IndexQueueOptions{Size: 1})

		assert.NoError(t, sub.OnEvent(context.Background(), event.ToolCreatedEvent{ToolID: id.String()}))
		assert.NoError(t, sub.OnEvent(context.Background(), event.ToolCreatedEvent{ToolID: uuid.NewString()}))
		assert.Len(t, sub.jobs, 1)
		sub.Shutdown()
	})

	t.Run("events after shutdown are ignored", func(t *testing.T) {
		idx := newFakeIndexer()
		sub := NewIndexToolEventSubscriber(quietLogger(), idx, IndexQueueOptions{})
		sub.StartWorkers(1)
		sub.Shutdown()
		sub.Shutdown()

		assert.NoError(t, sub.OnEvent(context.Background(), event.ToolCreatedEvent{ToolID: id.String()}))
		assert.Empty(t, idx.ids)
	})

	t.Run("invalid id", func(t *testing.T) {
		idx := newFakeIndexer()
		sub := NewIndexToolEventSubscriber(quietLogger(), idx, IndexQueueOptions{})
		assert.Error(t, sub.OnEvent(context.Background(), event.ToolCreatedEvent{ToolID: "nope"}))
		assert.Empty(t, sub.jobs)
		sub.Shutdown()
	})
}
