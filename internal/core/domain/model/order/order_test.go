package order_test

import (
	"testing"
	"time"

	"albarans/internal/core/domain/model/catalog"
	"albarans/internal/core/domain/model/kernel"
	"albarans/internal/core/domain/model/order"
	"albarans/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2024, time.April, 2, 9, 30, 0, 0, time.UTC)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func newTestProduct(t *testing.T, id int64, price string, rate catalog.TaxRate) *catalog.Product {
	t.Helper()
	p, err := catalog.RestoreProduct(
		id, kernel.ProductCode(id), "Aigua 1.5L", "", 1,
		mustMoney(t, price), catalog.Box, rate, false, "", true)
	require.NoError(t, err)
	return p
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	clientID, warehouseID := int64(1), int64(2)
	o, err := order.NewOrder(&clientID, nil, &warehouseID, testCreatedAt, testCreatedAt.AddDate(0, 0, 3), "")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with zeroed totals", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Empty(t, o.Number())
		assert.True(t, o.Base().IsEqual(kernel.ZeroMoney()))
		assert.True(t, o.Total().IsEqual(kernel.ZeroMoney()))
		assert.Empty(t, o.Lines())
	})

	t.Run("should reject non-positive optional references", func(t *testing.T) {
		badID := int64(-1)

		_, err := order.NewOrder(&badID, nil, nil, testCreatedAt, time.Time{}, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_AssignNumber(t *testing.T) {
	t.Run("should derive number from creation year and id", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AssignNumber(7))

		assert.Equal(t, "ALB-2024-007", o.Number())
	})

	t.Run("should assign the number exactly once", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignNumber(7))

		err := o.AssignNumber(8)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderNumberIsAssigned, err)
		assert.Equal(t, "ALB-2024-007", o.Number())
	})
}

func TestOrder_AddLine(t *testing.T) {
	t.Run("should snapshot price and recompute totals", func(t *testing.T) {
		o := newTestOrder(t)
		p := newTestProduct(t, 1, "10.00", catalog.TaxRate21)

		line, err := o.AddLine(p, 3, decimal.Zero, "")

		require.NoError(t, err)
		assert.True(t, line.UnitPrice().IsEqual(mustMoney(t, "10.00")))
		assert.True(t, o.Base().IsEqual(mustMoney(t, "30.00")))
		assert.True(t, o.Tax().IsEqual(mustMoney(t, "6.30")))
		assert.True(t, o.Total().IsEqual(mustMoney(t, "36.30")))
	})

	t.Run("should apply discount to the subtotal", func(t *testing.T) {
		o := newTestOrder(t)
		p := newTestProduct(t, 1, "10.00", catalog.TaxRate10)

		_, err := o.AddLine(p, 2, decimal.NewFromInt(25), "")

		require.NoError(t, err)
		assert.True(t, o.Base().IsEqual(mustMoney(t, "15.00")))
		assert.True(t, o.Total().IsEqual(mustMoney(t, "16.50")))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		o := newTestOrder(t)
		p := newTestProduct(t, 1, "10.00", catalog.TaxRate21)

		_, err := o.AddLine(p, 0, decimal.Zero, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Empty(t, o.Lines())
	})

	t.Run("should reject discount outside the percentage range", func(t *testing.T) {
		o := newTestOrder(t)
		p := newTestProduct(t, 1, "10.00", catalog.TaxRate21)

		_, err := o.AddLine(p, 1, decimal.NewFromInt(101), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject line mutation after shipping", func(t *testing.T) {
		o := newTestOrder(t)
		p := newTestProduct(t, 1, "10.00", catalog.TaxRate21)
		require.NoError(t, o.Transition(order.StatusInPreparation))
		require.NoError(t, o.Ship())

		_, err := o.AddLine(p, 1, decimal.Zero, "")

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotEditable, err)
	})
}

func TestOrder_EditLine(t *testing.T) {
	t.Run("should refresh the price snapshot from the current product", func(t *testing.T) {
		o := newTestOrder(t)
		p := newTestProduct(t, 1, "10.00", catalog.TaxRate21)
		line, err := o.AddLine(p, 2, decimal.Zero, "")
		require.NoError(t, err)

		repriced := newTestProduct(t, 1, "12.50", catalog.TaxRate21)
		_, err = o.EditLine(line.ID(), repriced, 2, decimal.Zero, "")

		require.NoError(t, err)
		assert.True(t, o.Base().IsEqual(mustMoney(t, "25.00")))
	})

	t.Run("should fail for an unknown line", func(t *testing.T) {
		o := newTestOrder(t)
		p := newTestProduct(t, 1, "10.00", catalog.TaxRate21)

		_, err := o.EditLine(99, p, 2, decimal.Zero, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_RemoveLine(t *testing.T) {
	t.Run("should remove the line and recompute totals", func(t *testing.T) {
		o := newTestOrder(t)
		keep := newTestProduct(t, 1, "10.00", catalog.TaxRate21)
		drop := newTestProduct(t, 2, "5.00", catalog.TaxRate4)
		_, err := o.AddLine(keep, 1, decimal.Zero, "")
		require.NoError(t, err)
		dropped, err := o.AddLine(drop, 4, decimal.Zero, "")
		require.NoError(t, err)

		require.NoError(t, o.RemoveLine(dropped.ID()))

		assert.Len(t, o.Lines(), 1)
		assert.True(t, o.Base().IsEqual(mustMoney(t, "10.00")))
	})
}

func TestOrder_UpdateHeader(t *testing.T) {
	t.Run("should replace client, delivery date and notes", func(t *testing.T) {
		o := newTestOrder(t)
		newClientID := int64(9)
		newDate := testCreatedAt.AddDate(0, 0, 7)

		require.NoError(t, o.UpdateHeader(&newClientID, newDate, "leave at the bar"))

		require.NotNil(t, o.ClientID())
		assert.Equal(t, newClientID, *o.ClientID())
		assert.Equal(t, newDate, o.DeliveryDate())
		assert.Equal(t, "leave at the bar", o.Notes())
	})

	t.Run("should allow clearing the client reference", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.UpdateHeader(nil, o.DeliveryDate(), o.Notes()))

		assert.Nil(t, o.ClientID())
	})

	t.Run("should refuse header edits after shipping", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Transition(order.StatusInPreparation))
		require.NoError(t, o.Ship())

		err := o.UpdateHeader(nil, o.DeliveryDate(), "too late")

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotEditable, err)
	})
}

func TestOrder_RecomputeTotals(t *testing.T) {
	t.Run("should be idempotent with unchanged lines", func(t *testing.T) {
		o := newTestOrder(t)
		p1 := newTestProduct(t, 1, "3.33", catalog.TaxRate21)
		p2 := newTestProduct(t, 2, "7.77", catalog.TaxRate4)
		_, err := o.AddLine(p1, 3, decimal.NewFromInt(10), "")
		require.NoError(t, err)
		_, err = o.AddLine(p2, 2, decimal.Zero, "")
		require.NoError(t, err)

		base, tax, total := o.Base(), o.Tax(), o.Total()
		o.RecomputeTotals()

		assert.Equal(t, base.String(), o.Base().String())
		assert.Equal(t, tax.String(), o.Tax().String())
		assert.Equal(t, total.String(), o.Total().String())
	})

	t.Run("should keep base equal to sum of subtotals", func(t *testing.T) {
		o := newTestOrder(t)
		p1 := newTestProduct(t, 1, "1.05", catalog.TaxRate10)
		p2 := newTestProduct(t, 2, "0.95", catalog.TaxRate10)
		_, err := o.AddLine(p1, 7, decimal.Zero, "")
		require.NoError(t, err)
		_, err = o.AddLine(p2, 13, decimal.Zero, "")
		require.NoError(t, err)

		want := kernel.ZeroMoney()
		for _, line := range o.Lines() {
			want = want.Add(line.Subtotal())
		}

		assert.True(t, o.Base().IsEqual(want))
	})
}

func TestOrder_Transition(t *testing.T) {
	t.Run("should advance one state at a time", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Transition(order.StatusInPreparation))

		assert.Equal(t, order.StatusInPreparation, o.Status())
	})

	t.Run("should refuse direct transition to shipped", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Transition(order.StatusInPreparation))

		err := o.Transition(order.StatusShipped)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusInPreparation, o.Status())
	})

	t.Run("should cancel from any non-terminal status", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should refuse any transition from cancelled", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Transition(order.StatusInPreparation)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Ship(t *testing.T) {
	t.Run("should ship from in preparation", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Transition(order.StatusInPreparation))

		require.NoError(t, o.Ship())

		assert.Equal(t, order.StatusShipped, o.Status())
	})

	t.Run("should refuse shipping from pending", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Ship()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}
