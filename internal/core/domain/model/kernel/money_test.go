package kernel_test

import (
	"testing"

	"albarans/internal/core/domain/model/kernel"
	"albarans/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse valid decimal strings", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("12.50")

		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("should reject invalid decimal strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("twelve")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts exactly", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("0.10")
		b, _ := kernel.NewMoneyFromString("0.20")

		assert.Equal(t, "0.30", a.Add(b).String())
	})

	t.Run("should multiply by integer factors", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("2.35")

		assert.Equal(t, "7.05", price.MulInt(3).String())
	})

	t.Run("should keep full precision until Round", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("10.00")
		rate := decimal.RequireFromString("0.21")

		tax := price.Mul(rate)
		assert.True(t, tax.Decimal().Equal(decimal.RequireFromString("2.1")))
		assert.Equal(t, "2.10", tax.Round().String())
	})

	t.Run("should round half-up at two decimals", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromString("1.005")

		assert.Equal(t, "1.01", m.Round().String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	t.Run("zero value equals ZeroMoney", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
		assert.False(t, m.IsNegative())
	})

	t.Run("should compare numerically ignoring scale", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("5.0")
		b, _ := kernel.NewMoneyFromString("5.00")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should detect negative amounts", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromString("-0.01")

		assert.True(t, m.IsNegative())
	})
}

func TestEntityCodes(t *testing.T) {
	t.Run("should zero-pad client codes", func(t *testing.T) {
		assert.Equal(t, "CLI001", kernel.ClientCode(1))
		assert.Equal(t, "CLI042", kernel.ClientCode(42))
		assert.Equal(t, "CLI1042", kernel.ClientCode(1042))
	})

	t.Run("should zero-pad product codes", func(t *testing.T) {
		assert.Equal(t, "BEB007", kernel.ProductCode(7))
	})

	t.Run("should zero-pad employee codes", func(t *testing.T) {
		assert.Equal(t, "EMP003", kernel.EmployeeCode(3))
	})

	t.Run("should build order numbers from year and id", func(t *testing.T) {
		assert.Equal(t, "ALB-2024-007", kernel.OrderNumber(2024, 7))
		assert.Equal(t, "ALB-2026-123", kernel.OrderNumber(2026, 123))
	})
}
