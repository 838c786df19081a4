package queries

import (
	"errors"
	"time"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery lists delivery notes whose target delivery date has
// passed without the note reaching a terminal status. Consumed by the
// overdue-orders background job.
type GetOverdueOrdersQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates an overdue listing query relative to the
// given instant.
func NewGetOverdueOrdersQuery(asOf time.Time) (GetOverdueOrdersQuery, error) {
	if asOf.IsZero() {
		return GetOverdueOrdersQuery{}, errs.NewValueIsRequiredError("as of")
	}
	return GetOverdueOrdersQuery{asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// AsOf returns the reference instant for overdue computation.
func (q GetOverdueOrdersQuery) AsOf() time.Time {
	return q.asOf
}
