package commands_test

import (
	"testing"

	"albarans/internal/core/application/usecases/commands"
	"albarans/internal/core/domain/model/order"
	"albarans/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_Preparation(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStatusCommand("ALB-2024-007", order.StatusInPreparation, "EMP003", "")
	aggregate := restoredOrder(t, 7, 2, order.StatusPending)

	orderRepo := new(MockOrderRepository)
	employeeRepo := new(MockEmployeeRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", mock.Anything, "ALB-2024-007").Return(aggregate, nil).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		employeeRepo.On("GetByCode", mock.Anything, "EMP003").Return(restoredEmployee(t, 3, 2), nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.StatusInPreparation, aggregate.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_WrongWarehouse(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStatusCommand("ALB-2024-007", order.StatusInPreparation, "EMP003", "")
	aggregate := restoredOrder(t, 7, 2, order.StatusPending)

	orderRepo := new(MockOrderRepository)
	employeeRepo := new(MockEmployeeRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", mock.Anything, "ALB-2024-007").Return(aggregate, nil).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		employeeRepo.On("GetByCode", mock.Anything, "EMP003").Return(restoredEmployee(t, 3, 9), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, order.StatusPending, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_Cancel(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStatusCommand("ALB-2024-007", order.StatusCancelled, "", "")
	aggregate := restoredOrder(t, 7, 2, order.StatusPending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", mock.Anything, "ALB-2024-007").Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.StatusCancelled, aggregate.Status())
	uow.AssertNotCalled(t, "EmployeeRepository")
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStatusCommand("ALB-2024-007", order.StatusDelivered, "", "")
	aggregate := restoredOrder(t, 7, 2, order.StatusPending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", mock.Anything, "ALB-2024-007").Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.StatusPending, aggregate.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_DeliveredRecordsSignature(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStatusCommand("ALB-2024-007", order.StatusDelivered, "", "signed: J. Puig")
	aggregate := restoredOrder(t, 7, 2, order.StatusShipped)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", mock.Anything, "ALB-2024-007").Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, aggregate.Status())
	assert.Equal(t, "signed: J. Puig", aggregate.Signature())
}

func TestNewChangeOrderStatusCommand_RequiresActorForPreparation(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand("ALB-2024-007", order.StatusInPreparation, "", "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
