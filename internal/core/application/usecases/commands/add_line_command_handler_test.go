package commands_test

import (
	"testing"

	"albarans/internal/core/application/usecases/commands"
	"albarans/internal/core/domain/model/order"
	"albarans/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddLineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddLineCommand("ALB-2024-007", "BEB001", 3, decimal.Zero, "")
	aggregate := restoredOrder(t, 7, 2, order.StatusPending)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", mock.Anything, "ALB-2024-007").Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByCode", mock.Anything, "BEB001").Return(restoredProduct(t, 1, "10.00"), nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("Get", mock.Anything, int64(1), int64(2)).Return(restoredStockEntry(t, 1, 2, 10), nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, aggregate.Lines(), 1)
	assert.Equal(t, "30.00", aggregate.Base().String())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddLineCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddLineCommand("ALB-2024-007", "BEB001", 6, decimal.Zero, "")
	aggregate := restoredOrder(t, 7, 2, order.StatusPending)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", mock.Anything, "ALB-2024-007").Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByCode", mock.Anything, "BEB001").Return(restoredProduct(t, 1, "10.00"), nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("Get", mock.Anything, int64(1), int64(2)).Return(restoredStockEntry(t, 1, 2, 5), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Empty(t, aggregate.Lines())
	uow.AssertNotCalled(t, "Commit", ctx)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddLineCommandHandler_Handle_MissingStockEntry(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddLineCommand("ALB-2024-007", "BEB001", 1, decimal.Zero, "")
	aggregate := restoredOrder(t, 7, 2, order.StatusPending)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", mock.Anything, "ALB-2024-007").Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByCode", mock.Anything, "BEB001").Return(restoredProduct(t, 1, "10.00"), nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("Get", mock.Anything, int64(1), int64(2)).Return(nil, errsNotFound()).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	var stockErr *errs.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Zero(t, stockErr.Available)
}

func TestAddLineCommandHandler_Handle_SkipsPrecheckWithoutWarehouse(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddLineCommand("ALB-2024-007", "BEB001", 3, decimal.Zero, "")
	clientID := int64(1)
	aggregate, err := order.NewOrder(&clientID, nil, nil, fixtureTime, fixtureTime, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", mock.Anything, "ALB-2024-007").Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByCode", mock.Anything, "BEB001").Return(restoredProduct(t, 1, "10.00"), nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "StockRepository")
}
