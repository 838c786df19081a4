package commands_test

import (
	"testing"

	"albarans/internal/core/application/usecases/commands"
	"albarans/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("CLI001", "", 2, fixtureTime.AddDate(0, 0, 3), "")

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("GetByCode", mock.Anything, "CLI001").Return(restoredClient(t, 1), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				aggregate := args.Get(1).(*order.Order)
				require.NoError(t, aggregate.AssignNumber(7))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	number, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Regexp(t, `^ALB-\d{4}-007$`, number)
	clientRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownClient(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("CLI999", "", 0, fixtureTime, "")

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	notFound := errsNotFound()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("GetByCode", mock.Anything, "CLI999").Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, notFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
