package order_test

import (
	"testing"

	"albarans/internal/core/domain/model/order"
	"albarans/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTo(t *testing.T) {
	tests := map[string]struct {
		from    order.Status
		to      order.Status
		allowed bool
	}{
		"pending to in preparation":     {order.StatusPending, order.StatusInPreparation, true},
		"in preparation to shipped":     {order.StatusInPreparation, order.StatusShipped, true},
		"shipped to delivered":          {order.StatusShipped, order.StatusDelivered, true},
		"pending to shipped skips step": {order.StatusPending, order.StatusShipped, false},
		"pending to delivered":          {order.StatusPending, order.StatusDelivered, false},
		"shipped back to pending":       {order.StatusShipped, order.StatusPending, false},
		"pending to cancelled":          {order.StatusPending, order.StatusCancelled, true},
		"in preparation to cancelled":   {order.StatusInPreparation, order.StatusCancelled, true},
		"shipped to cancelled":          {order.StatusShipped, order.StatusCancelled, true},
		"delivered to cancelled":        {order.StatusDelivered, order.StatusCancelled, false},
		"cancelled to in preparation":   {order.StatusCancelled, order.StatusInPreparation, false},
		"cancelled to cancelled":        {order.StatusCancelled, order.StatusCancelled, false},
		"unknown to pending":            {order.StatusUnknown, order.StatusPending, false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.from.TransitionTo(tc.to)

			if !tc.allowed {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, order.StatusUnknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, got)
			assert.True(t, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusInPreparation.IsTerminal())
	assert.False(t, order.StatusShipped.IsTerminal())
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	tests := map[string]struct {
		name    string
		want    order.Status
		wantErr bool
	}{
		"pending":        {name: "PENDING", want: order.StatusPending},
		"in preparation": {name: "IN_PREPARATION", want: order.StatusInPreparation},
		"shipped":        {name: "SHIPPED", want: order.StatusShipped},
		"delivered":      {name: "DELIVERED", want: order.StatusDelivered},
		"cancelled":      {name: "CANCELLED", want: order.StatusCancelled},
		"unknown":        {name: "SENT", wantErr: true},
		"lower case":     {name: "pending", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := order.StatusFromString(tc.name)

			if tc.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.name, got.String())
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "UNKNOWN", order.StatusUnknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}
