// Package http implements the inbound HTTP adapter. The Server type
// implements the generated ServerInterface and translates between the wire
// types and the application's commands and queries. Domain error kinds are
// mapped to HTTP status codes in one place.
package http

import (
	"errors"
	"net/http"
	"time"

	"albarans/internal/core/application/usecases/commands"
	"albarans/internal/core/application/usecases/queries"
	"albarans/internal/core/domain/model/order"
	"albarans/internal/generated/servers"
	"albarans/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CommandHandlers bundles every command handler the server dispatches to.
type CommandHandlers struct {
	CreateClient      commands.CreateClientCommandHandler
	UpdateClient      commands.UpdateClientCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	AddLine           commands.AddLineCommandHandler
	EditLine          commands.EditLineCommandHandler
	DeleteLine        commands.DeleteLineCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	FulfillOrder      commands.FulfillOrderCommandHandler
	AdjustStock       commands.AdjustStockCommandHandler
}

// QueryHandlers bundles every query handler the server dispatches to.
type QueryHandlers struct {
	GetClientByCode    queries.GetClientByCodeQueryHandler
	GetProductByCode   queries.GetProductByCodeQueryHandler
	GetCatalog         queries.GetCatalogQueryHandler
	GetOrderByNumber   queries.GetOrderByNumberQueryHandler
	GetWarehouseOrders queries.GetOrdersByWarehouseQueryHandler
	GetStock           queries.GetStockQueryHandler
}

// Server implements servers.ServerInterface.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var body servers.NewClient
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateClientCommand(body.CommercialName, body.Cif, commands.ClientContact{
		ContactPerson:   deref(body.ContactPerson),
		Phone:           deref(body.Phone),
		Email:           deref(body.Email),
		DeliveryAddress: deref(body.DeliveryAddress),
		Town:            deref(body.Town),
		PostalCode:      deref(body.PostalCode),
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	code, err := s.commands.CreateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Code: code})
}

// GetClientByCode handles GET /api/v1/clients/{code}.
func (s *Server) GetClientByCode(ctx echo.Context, code string) error {
	query, err := queries.NewGetClientByCodeQuery(code)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.queries.GetClientByCode.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Client{
		Code:            response.Code,
		CommercialName:  response.CommercialName,
		Cif:             response.CIF,
		ContactPerson:   optional(response.ContactPerson),
		Phone:           optional(response.Phone),
		Email:           optional(response.Email),
		DeliveryAddress: optional(response.DeliveryAddress),
		Town:            optional(response.Town),
		PostalCode:      optional(response.PostalCode),
		Active:          response.Active,
	})
}

// UpdateClient handles PUT /api/v1/clients/{code}.
func (s *Server) UpdateClient(ctx echo.Context, code string) error {
	var body servers.UpdateClient
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateClientCommand(code, body.CommercialName, body.Cif, commands.ClientContact{
		ContactPerson:   deref(body.ContactPerson),
		Phone:           deref(body.Phone),
		Email:           deref(body.Email),
		DeliveryAddress: deref(body.DeliveryAddress),
		Town:            deref(body.Town),
		PostalCode:      deref(body.PostalCode),
	}, body.Active)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.UpdateClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCatalog handles GET /api/v1/catalog.
func (s *Server) GetCatalog(ctx echo.Context, params servers.GetCatalogParams) error {
	activeOnly := false
	if params.ActiveOnly != nil {
		activeOnly = *params.ActiveOnly
	}
	var categoryID int64
	if params.CategoryId != nil {
		categoryID = *params.CategoryId
	}

	query := queries.NewGetCatalogQuery(activeOnly, categoryID)
	products, err := s.queries.GetCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, product := range products {
		response[i] = toProductResponse(product)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProductByCode handles GET /api/v1/products/{code}.
func (s *Server) GetProductByCode(ctx echo.Context, code string) error {
	query, err := queries.NewGetProductByCodeQuery(code)
	if err != nil {
		return errorResponse(ctx, err)
	}

	product, err := s.queries.GetProductByCode.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(product))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var warehouseID int64
	if body.WarehouseId != nil {
		warehouseID = *body.WarehouseId
	}
	var deliveryDate time.Time
	if body.DeliveryDate != nil {
		deliveryDate = *body.DeliveryDate
	}

	cmd, err := commands.NewCreateOrderCommand(
		body.ClientCode, deref(body.EmployeeCode), warehouseID, deliveryDate, deref(body.Notes))
	if err != nil {
		return errorResponse(ctx, err)
	}

	number, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Code: number})
}

// GetOrderByNumber handles GET /api/v1/orders/{number}.
func (s *Server) GetOrderByNumber(ctx echo.Context, number string) error {
	query, err := queries.NewGetOrderByNumberQuery(number)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.queries.GetOrderByNumber.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	lines := make([]servers.OrderLine, len(response.Lines))
	for i, line := range response.Lines {
		lines[i] = servers.OrderLine{
			Id:          line.ID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.StringFixed(2),
			Discount:    line.Discount.StringFixed(2),
			TaxRate:     line.TaxRate,
			Subtotal:    line.Subtotal.StringFixed(2),
			Notes:       optional(line.Notes),
		}
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Number:       response.Number,
		Status:       response.Status,
		ClientCode:   response.ClientCode,
		WarehouseId:  response.WarehouseID,
		CreatedAt:    optionalTime(response.CreatedAt),
		DeliveryDate: optionalTime(response.DeliveryDate),
		Notes:        optional(response.Notes),
		Signature:    optional(response.Signature),
		Base:         response.Base.StringFixed(2),
		Tax:          response.Tax.StringFixed(2),
		Total:        response.Total.StringFixed(2),
		Lines:        lines,
	})
}

// UpdateOrder handles PUT /api/v1/orders/{number}.
func (s *Server) UpdateOrder(ctx echo.Context, number string) error {
	var body servers.UpdateOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(
		number, deref(body.ClientCode), body.DeliveryDate, deref(body.Notes))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderLine handles POST /api/v1/orders/{number}/lines.
func (s *Server) AddOrderLine(ctx echo.Context, number string) error {
	var body servers.NewLine
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	discount, err := parseDiscount(body.Discount)
	if err != nil {
		return badRequest(ctx, "Invalid discount")
	}

	cmd, err := commands.NewAddLineCommand(number, body.ProductCode, body.Quantity, discount, deref(body.Notes))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.AddLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EditOrderLine handles PUT /api/v1/orders/{number}/lines/{lineId}.
func (s *Server) EditOrderLine(ctx echo.Context, number string, lineID int64) error {
	var body servers.NewLine
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	discount, err := parseDiscount(body.Discount)
	if err != nil {
		return badRequest(ctx, "Invalid discount")
	}

	cmd, err := commands.NewEditLineCommand(
		number, lineID, body.ProductCode, body.Quantity, discount, deref(body.Notes))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.EditLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrderLine handles DELETE /api/v1/orders/{number}/lines/{lineId}.
func (s *Server) DeleteOrderLine(ctx echo.Context, number string, lineID int64) error {
	cmd, err := commands.NewDeleteLineCommand(number, lineID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.DeleteLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/{number}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, number string) error {
	var body servers.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(number, target, deref(body.EmployeeCode), deref(body.Signature))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FulfillOrder handles POST /api/v1/orders/{number}/fulfillment.
func (s *Server) FulfillOrder(ctx echo.Context, number string) error {
	var body servers.FulfillmentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFulfillOrderCommand(number, body.EmployeeCode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.FulfillOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWarehouseOrders handles GET /api/v1/warehouses/{warehouseId}/orders.
func (s *Server) GetWarehouseOrders(
	ctx echo.Context, warehouseID int64, params servers.GetWarehouseOrdersParams,
) error {
	var statuses []order.Status
	if params.Status != nil {
		for _, name := range *params.Status {
			status, err := order.StatusFromString(name)
			if err != nil {
				return errorResponse(ctx, err)
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewGetOrdersByWarehouseQuery(warehouseID, statuses)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.queries.GetWarehouseOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, summary := range orders {
		response[i] = servers.OrderSummary{
			Number:       summary.Number,
			Status:       summary.Status,
			DeliveryDate: optionalTime(summary.DeliveryDate),
			Total:        summary.Total.StringFixed(2),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStockLevel handles GET /api/v1/warehouses/{warehouseId}/stock/{productCode}.
func (s *Server) GetStockLevel(ctx echo.Context, warehouseID int64, productCode string) error {
	query, err := queries.NewGetStockQuery(productCode, warehouseID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.queries.GetStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StockLevel{
		ProductCode:   response.ProductCode,
		WarehouseId:   response.WarehouseID,
		Quantity:      response.Quantity,
		Location:      optional(response.Location),
		LastEntryDate: optionalTime(response.LastEntryDate),
	})
}

// AdjustStock handles POST /api/v1/stock/adjustments.
func (s *Server) AdjustStock(ctx echo.Context) error {
	var body servers.StockAdjustment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdjustStockCommand(body.ProductCode, body.WarehouseId, body.Delta)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.AdjustStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps domain error kinds to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, order.ErrOrderIsNotEditable):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func toProductResponse(product queries.ProductResponse) servers.Product {
	perishable := product.Perishable
	return servers.Product{
		Code:         product.Code,
		Name:         product.Name,
		CategoryName: product.CategoryName,
		UnitPrice:    product.UnitPrice.StringFixed(2),
		Unit:         product.Unit,
		TaxRate:      product.TaxRate,
		Perishable:   &perishable,
		Active:       product.Active,
	}
}

func parseDiscount(raw *string) (decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*raw)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
