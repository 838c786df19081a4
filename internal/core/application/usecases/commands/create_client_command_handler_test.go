package commands_test

import (
	"errors"
	"testing"

	"albarans/internal/core/application/usecases/commands"
	"albarans/internal/core/domain/model/client"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateClientCommand("Bar Les Voltes", "B12345678", commands.ClientContact{})

	repo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*client.Client")).
			Run(func(args mock.Arguments) {
				aggregate := args.Get(1).(*client.Client)
				require.NoError(t, aggregate.AssignCode(7))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateClientCommandHandler(factory)
	code, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "CLI007", code)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateClientCommand{} // not constructed properly
	factory := new(MockClientUoWFactory)
	h := commands.NewCreateClientCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateClientCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateClientCommand("Bar Les Voltes", "B12345678", commands.ClientContact{})

	repo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*client.Client")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateClientCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}
