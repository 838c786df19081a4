package catalog

import (
	"fmt"

	"albarans/internal/pkg/errs"
)

// MeasureUnit represents the measurement unit a product is sold in.
type MeasureUnit int

const (
	// MeasureUnitUnknown represents an invalid or undefined unit.
	MeasureUnitUnknown MeasureUnit = iota

	// Unit is a single piece.
	Unit

	// Box is a packaged box.
	Box

	// Pallet is a full pallet.
	Pallet

	// Kg is sold by weight in kilograms.
	Kg

	// Liter is sold by volume in liters.
	Liter
)

// getMeasureUnitStrings returns a map of valid MeasureUnit values to their
// string representations, which are also the persisted forms.
func getMeasureUnitStrings() map[MeasureUnit]string {
	//nolint:exhaustive // MeasureUnitUnknown is intentionally excluded as it's invalid
	return map[MeasureUnit]string{
		Unit:   "UNIT",
		Box:    "BOX",
		Pallet: "PALLET",
		Kg:     "KG",
		Liter:  "LITER",
	}
}

// MeasureUnitFromString maps a persisted string back to its MeasureUnit.
func MeasureUnitFromString(s string) (MeasureUnit, error) {
	for unit, str := range getMeasureUnitStrings() {
		if str == s {
			return unit, nil
		}
	}
	return MeasureUnitUnknown, errs.NewValueIsInvalidErrorWithCause(
		"measure unit is invalid",
		fmt.Errorf("%q is not a valid measure unit", s),
	)
}

// Validate checks if the MeasureUnit value is valid.
func (u MeasureUnit) Validate() error {
	if _, ok := getMeasureUnitStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"measure unit is invalid",
			fmt.Errorf("%d is not a valid measure unit", u),
		)
	}
	return nil
}

// String returns the persisted name of the unit, or "Unknown" for invalid values.
func (u MeasureUnit) String() string {
	if str, ok := getMeasureUnitStrings()[u]; ok {
		return str
	}
	return "Unknown"
}
