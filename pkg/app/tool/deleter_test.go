package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/NeuralTrust/ToolFinder/pkg/domain"
	domainTool "github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
	toolMocks "github.com/NeuralTrust/ToolFinder/pkg/domain/tool/mocks"
	cacheMocks "github.com/NeuralTrust/ToolFinder/pkg/infra/cache/mocks"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/event"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleter_Delete_Success(t *testing.T) {
	ctx := context.Background()
	repo := toolMocks.NewRepository(t)
	publisher := cacheMocks.NewEventPublisher(t)
	id := uuid.New()

	repo.EXPECT().Get(ctx, id).Return(&domainTool.Tool{ID: id, CategoryID: testCategoryID}, nil)
	repo.EXPECT().Delete(ctx, id).Return(nil)
	publisher.EXPECT().Publish(ctx, event.ToolDeletedEvent{
		ToolID:     id.String(),
		CategoryID: testCategoryID.String(),
	}).Return(nil)

	err := NewDeleter(quietLogger(), repo, publisher).Delete(ctx, id)
	assert.NoError(t, err)
}

func TestDeleter_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := toolMocks.NewRepository(t)
	publisher := cacheMocks.NewEventPublisher(t)
	id := uuid.New()

	repo.EXPECT().Get(ctx, id).Return(nil, domain.NewNotFoundError("tool", id))

	err := NewDeleter(quietLogger(), repo, publisher).Delete(ctx, id)
	assert.True(t, domain.IsNotFoundError(err))
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDeleter_Delete_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := toolMocks.NewRepository(t)
	publisher := cacheMocks.NewEventPublisher(t)
	id := uuid.New()

	repo.EXPECT().Get(ctx, id).Return(&domainTool.Tool{ID: id}, nil)
	repo.EXPECT().Delete(ctx, id).Return(errors.New("locked"))

	err := NewDeleter(quietLogger(), repo, publisher).Delete(ctx, id)
	assert.Error(t, err)
}
