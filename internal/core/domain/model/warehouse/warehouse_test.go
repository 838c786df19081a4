package warehouse_test

import (
	"testing"

	"albarans/internal/core/domain/model/warehouse"
	"albarans/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWarehouse(t *testing.T) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse(
		"Magatzem Central", "Pol. Ind. Mas Xirgu 12", decimal.NewFromInt(5000), true, "Joan")
	require.NoError(t, err)
	return w
}

func TestNewWarehouse(t *testing.T) {
	t.Run("should create warehouse without id", func(t *testing.T) {
		w := newTestWarehouse(t)

		require.NoError(t, w.Validate())
		assert.Equal(t, int64(0), w.ID())
		assert.Equal(t, "Magatzem Central", w.Name())
		assert.True(t, w.HasColdStorage())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := warehouse.NewWarehouse("", "", decimal.NewFromInt(100), false, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative capacity", func(t *testing.T) {
		_, err := warehouse.NewWarehouse("Magatzem", "", decimal.NewFromInt(-1), false, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWarehouse_AssignID(t *testing.T) {
	t.Run("should assign the id exactly once", func(t *testing.T) {
		w := newTestWarehouse(t)

		require.NoError(t, w.AssignID(4))
		err := w.AssignID(5)

		require.Error(t, err)
		assert.Equal(t, int64(4), w.ID())
	})
}

func TestWarehouse_Validate(t *testing.T) {
	t.Run("should reject zero-value warehouse", func(t *testing.T) {
		var w warehouse.Warehouse

		err := w.Validate()

		require.Error(t, err)
		assert.Equal(t, warehouse.ErrWarehouseIsNotConstructed, err)
	})
}
