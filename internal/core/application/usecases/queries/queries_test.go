package queries_test

import (
	"testing"
	"time"

	"albarans/internal/core/application/usecases/queries"
	"albarans/internal/core/domain/model/order"
	"albarans/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstructors(t *testing.T) {
	t.Run("should reject empty order number", func(t *testing.T) {
		_, err := queries.NewGetOrderByNumberQuery("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid status filter", func(t *testing.T) {
		_, err := queries.NewGetOrdersByWarehouseQuery(1, []order.Status{order.StatusUnknown})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should allow empty status filter", func(t *testing.T) {
		q, err := queries.NewGetOrdersByWarehouseQuery(1, nil)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("should reject zero warehouse in stock lookup", func(t *testing.T) {
		_, err := queries.NewGetStockQuery("BEB001", 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero instant in overdue listing", func(t *testing.T) {
		_, err := queries.NewGetOverdueOrdersQuery(time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero-value queries", func(t *testing.T) {
		var byNumber queries.GetOrderByNumberQuery
		var catalog queries.GetCatalogQuery

		assert.Error(t, byNumber.Validate())
		assert.Error(t, catalog.Validate())
	})
}
