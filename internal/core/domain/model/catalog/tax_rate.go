package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"albarans/internal/pkg/errs"
)

// TaxRate represents the tax rate applied to a product. It is a closed enum
// of exactly three rates (4%, 10%, 21%); no other rate is representable.
//
// The rate participates in monetary rounding, so its numeric value is exposed
// as an exact decimal fraction, never binary floating point.
type TaxRate int

const (
	// TaxRateUnknown represents an invalid or undefined tax rate.
	// This value (0) helps catch uninitialized TaxRate values.
	TaxRateUnknown TaxRate = iota

	// TaxRate4 is the 4% reduced rate.
	TaxRate4

	// TaxRate10 is the 10% reduced rate.
	TaxRate10

	// TaxRate21 is the 21% standard rate.
	TaxRate21
)

// getTaxRatePercents returns a map of valid TaxRate values to their integer percent.
func getTaxRatePercents() map[TaxRate]int {
	//nolint:exhaustive // TaxRateUnknown is intentionally excluded as it's invalid
	return map[TaxRate]int{
		TaxRate4:  4,
		TaxRate10: 10,
		TaxRate21: 21,
	}
}

// TaxRateFromPercent maps an integer percent back to its TaxRate.
// Only 4, 10 and 21 are accepted; anything else is a validation error.
// Used when reconstructing products from persistence.
func TaxRateFromPercent(percent int) (TaxRate, error) {
	for rate, p := range getTaxRatePercents() {
		if p == percent {
			return rate, nil
		}
	}
	return TaxRateUnknown, errs.NewValueIsInvalidErrorWithCause(
		"tax rate is invalid",
		fmt.Errorf("%d%% is not one of the permitted rates", percent),
	)
}

// Validate checks if the TaxRate value is one of the three permitted rates.
func (r TaxRate) Validate() error {
	if _, ok := getTaxRatePercents()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"tax rate is invalid",
			fmt.Errorf("%d is not a valid tax rate", r),
		)
	}
	return nil
}

// Percent returns the integer percent of the rate, or 0 for an invalid rate.
func (r TaxRate) Percent() int {
	return getTaxRatePercents()[r]
}

// Fraction returns the rate as an exact decimal fraction, e.g. 0.21 for
// TaxRate21. Returns decimal zero for an invalid rate.
func (r TaxRate) Fraction() decimal.Decimal {
	percent, ok := getTaxRatePercents()[r]
	if !ok {
		return decimal.Zero
	}
	return decimal.New(int64(percent), -2)
}

// String returns the human-readable percent form, e.g. "21%".
func (r TaxRate) String() string {
	if percent, ok := getTaxRatePercents()[r]; ok {
		return fmt.Sprintf("%d%%", percent)
	}
	return "Unknown"
}
