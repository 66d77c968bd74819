package subscriber

import (
	"context"
	"fmt"
	"sync"
	"time"

	infraCache "github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/event"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultIndexQueueSize = 100
	defaultIndexTimeout   = 30 * time.Second
)

type ToolIndexer interface {
	IndexIfMissing(ctx context.Context, toolID uuid.UUID) error
}

// IndexQueue runs the indexing jobs handed over by IndexToolEventSubscriber.
type IndexQueue interface {
	StartWorkers(n int)
	Shutdown()
}

type IndexQueueOptions struct {
	Size    int
	Timeout time.Duration
}

// IndexToolEventSubscriber computes the embedding of a freshly created tool.
// Every replica receives the event, so indexing is skipped once a vector for
// the current model exists. Jobs run on their own workers so a slow provider
// never holds up the event listener. Failures and dropped jobs are only
// logged: the tool stays searchable by keyword and the reindex command picks
// it up later.
type IndexToolEventSubscriber struct {
	logger  *logrus.Logger
	indexer ToolIndexer
	timeout time.Duration
	jobs    chan uuid.UUID
	ctx     context.Context
	cancel  context.CancelFunc
	closed  bool
	wg      sync.WaitGroup
	mu      sync.RWMutex
}

var (
	_ infraCache.EventSubscriber[event.ToolCreatedEvent] = (*IndexToolEventSubscriber)(nil)
	_ IndexQueue                                        = (*IndexToolEventSubscriber)(nil)
)

func NewIndexToolEventSubscriber(
	logger *logrus.Logger,
	indexer ToolIndexer,
	opts IndexQueueOptions,
) *IndexToolEventSubscriber {
	if opts.Size <= 0 {
		opts.Size = defaultIndexQueueSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultIndexTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &IndexToolEventSubscriber{
		logger:  logger,
		indexer: indexer,
		timeout: opts.Timeout,
		jobs:    make(chan uuid.UUID, opts.Size),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *IndexToolEventSubscriber) OnEvent(_ context.Context, evt event.ToolCreatedEvent) error {
	id, err := uuid.Parse(evt.ToolID)
	if err != nil {
		return fmt.Errorf("invalid tool id %q: %w", evt.ToolID, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil
	}
	select {
	case s.jobs <- id:
	default:
		s.logger.WithField("tool_id", evt.ToolID).Warn("index queue is full, leaving tool for reindex")
	}
	return nil
}

func (s *IndexToolEventSubscriber) StartWorkers(n int) {
	if n <= 0 {
		n = 1
	}
	s.logger.WithField("workers", n).Info("starting index workers")
	for i := 0; i < n; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for id := range s.jobs {
				if s.ctx.Err() != nil {
					continue
				}
				s.index(id)
			}
		}()
	}
}

// Shutdown aborts in-flight jobs, discards queued ones and waits for the
// workers to exit.
func (s *IndexToolEventSubscriber) Shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.jobs)
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
	s.logger.Info("index workers stopped")
}

func (s *IndexToolEventSubscriber) index(id uuid.UUID) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()
	if err := s.indexer.IndexIfMissing(ctx, id); err != nil {
		s.logger.WithError(err).WithField("tool_id", id.String()).Warn("failed to index tool embedding")
	}
}
