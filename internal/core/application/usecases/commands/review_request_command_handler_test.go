package commands_test

import (
	"testing"

	"pipeyard/internal/core/application/usecases/commands"
	"pipeyard/internal/core/domain/model/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewRequestCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	req := testRequest(t, request.Pending)
	cmd, _ := commands.NewReviewRequestCommand(req.ID(), true)

	repo := new(MockRequestRepository)
	uow := new(MockRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, req.ID()).Return(req, nil).Once(),
		repo.On("Update", mock.Anything, req).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, request.Approved, req.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewRequestCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()
	req := testRequest(t, request.Pending)
	cmd, _ := commands.NewReviewRequestCommand(req.ID(), false)

	repo := new(MockRequestRepository)
	uow := new(MockRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, req.ID()).Return(req, nil).Once(),
		repo.On("Update", mock.Anything, req).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, request.Rejected, req.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewRequestCommandHandler_Handle_AlreadyReviewed(t *testing.T) {
	ctx := t.Context()
	req := testRequest(t, request.Approved)
	cmd, _ := commands.NewReviewRequestCommand(req.ID(), true)

	repo := new(MockRequestRepository)
	uow := new(MockRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, req.ID()).Return(req, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, request.Approved, req.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
