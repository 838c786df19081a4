package cmd

import (
	adapterhttp "albarans/internal/adapters/in/http"
	"albarans/internal/adapters/out/postgres"
	"albarans/internal/core/application/usecases/commands"
	"albarans/internal/core/application/usecases/queries"
	"albarans/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAddLineCommandHandler() commands.AddLineCommandHandler {
	return commands.NewAddLineCommandHandler(c.lineUoWFactory())
}

func (c *CompositionRoot) CreateEditLineCommandHandler() commands.EditLineCommandHandler {
	return commands.NewEditLineCommandHandler(c.lineUoWFactory())
}

func (c *CompositionRoot) CreateDeleteLineCommandHandler() commands.DeleteLineCommandHandler {
	return commands.NewDeleteLineCommandHandler(c.lineUoWFactory())
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f)
}

func (c *CompositionRoot) CreateFulfillOrderCommandHandler() commands.FulfillOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFulfillOrderCommandHandler(f, services.NewFulfillmentService())
}

func (c *CompositionRoot) CreateGetClientByCodeQueryHandler() queries.GetClientByCodeQueryHandler {
	return queries.NewGetClientByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductByCodeQueryHandler() queries.GetProductByCodeQueryHandler {
	return queries.NewGetProductByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByWarehouseQueryHandler() queries.GetOrdersByWarehouseQueryHandler {
	return queries.NewGetOrdersByWarehouseQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

// CommandHandlers bundles every command handler for the HTTP server.
func (c *CompositionRoot) CommandHandlers() adapterhttp.CommandHandlers {
	return adapterhttp.CommandHandlers{
		CreateClient:      c.CreateCreateClientCommandHandler(),
		UpdateClient:      c.CreateUpdateClientCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrder:       c.CreateUpdateOrderCommandHandler(),
		AddLine:           c.CreateAddLineCommandHandler(),
		EditLine:          c.CreateEditLineCommandHandler(),
		DeleteLine:        c.CreateDeleteLineCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		FulfillOrder:      c.CreateFulfillOrderCommandHandler(),
		AdjustStock:       c.CreateAdjustStockCommandHandler(),
	}
}

// QueryHandlers bundles every HTTP-facing query handler.
func (c *CompositionRoot) QueryHandlers() adapterhttp.QueryHandlers {
	return adapterhttp.QueryHandlers{
		GetClientByCode:    c.CreateGetClientByCodeQueryHandler(),
		GetProductByCode:   c.CreateGetProductByCodeQueryHandler(),
		GetCatalog:         c.CreateGetCatalogQueryHandler(),
		GetOrderByNumber:   c.CreateGetOrderByNumberQueryHandler(),
		GetWarehouseOrders: c.CreateGetOrdersByWarehouseQueryHandler(),
		GetStock:           c.CreateGetStockQueryHandler(),
	}
}

func (c *CompositionRoot) lineUoWFactory() commands.LineUoWFactory {
	return FuncLineUoWFactory(func() commands.LineUoW {
		return c.uowFactory.Create()
	})
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLineUoWFactory func() commands.LineUoW

func (f FuncLineUoWFactory) Create() commands.LineUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
