package commands_test

import (
	"testing"
	"time"

	"albarans/internal/core/domain/model/catalog"
	"albarans/internal/core/domain/model/client"
	"albarans/internal/core/domain/model/kernel"
	"albarans/internal/core/domain/model/order"
	"albarans/internal/core/domain/model/stock"
	"albarans/internal/core/domain/model/warehouse"
	"albarans/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2024, time.April, 2, 9, 30, 0, 0, time.UTC)

func errsNotFound() error {
	return errs.NewObjectNotFoundError("code", "unknown")
}

func restoredClient(t *testing.T, id int64) *client.Client {
	t.Helper()
	c, err := client.RestoreClient(
		id, kernel.ClientCode(id), "Bar Les Voltes", "B12345678",
		"", "", "", "", "", "", true)
	require.NoError(t, err)
	return c
}

func restoredProduct(t *testing.T, id int64, price string) *catalog.Product {
	t.Helper()
	money, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)
	p, err := catalog.RestoreProduct(
		id, kernel.ProductCode(id), "Aigua 1.5L", "", 1,
		money, catalog.Box, catalog.TaxRate10, false, "", true)
	require.NoError(t, err)
	return p
}

func restoredEmployee(t *testing.T, id, warehouseID int64) *warehouse.Employee {
	t.Helper()
	e, err := warehouse.RestoreEmployee(
		id, kernel.EmployeeCode(id), 10, "", fixtureTime.AddDate(-1, 0, 0),
		&warehouseID, warehouse.RoleOperator)
	require.NoError(t, err)
	return e
}

func restoredStockEntry(t *testing.T, productID, warehouseID int64, qty int) *stock.StockEntry {
	t.Helper()
	s, err := stock.RestoreStockEntry(productID, productID, warehouseID, qty, fixtureTime, "")
	require.NoError(t, err)
	return s
}

func restoredOrder(t *testing.T, id, warehouseID int64, status order.Status) *order.Order {
	t.Helper()
	clientID := int64(1)
	o, err := order.RestoreOrder(
		id, kernel.OrderNumber(fixtureTime.Year(), id), &clientID, nil, &warehouseID,
		fixtureTime, fixtureTime.AddDate(0, 0, 3), status, "", "",
		kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(), nil)
	require.NoError(t, err)
	return o
}

func orderWithLine(t *testing.T, id, warehouseID int64, product *catalog.Product, qty int, status order.Status) *order.Order {
	t.Helper()
	o := restoredOrder(t, id, warehouseID, order.StatusPending)
	_, err := o.AddLine(product, qty, decimal.Zero, "")
	require.NoError(t, err)
	if status != order.StatusPending {
		require.NoError(t, o.Transition(status))
	}
	return o
}
