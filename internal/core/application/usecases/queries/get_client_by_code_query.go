package queries

import (
	"errors"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrGetClientByCodeQueryIsNotConstructed = errors.New(
	"GetClientByCodeQuery must be created via NewGetClientByCodeQuery constructor",
)

// GetClientByCodeQuery retrieves one client by its public code.
type GetClientByCodeQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewGetClientByCodeQuery creates a query for one client.
func NewGetClientByCodeQuery(code string) (GetClientByCodeQuery, error) {
	if code == "" {
		return GetClientByCodeQuery{}, errs.NewValueIsRequiredError("client code")
	}
	return GetClientByCodeQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetClientByCodeQueryIsNotConstructed)
}

// Code returns the requested client code.
func (q GetClientByCodeQuery) Code() string {
	return q.code
}

// GetClientByCodeQueryResponse is the client projection.
type GetClientByCodeQueryResponse struct {
	ID              int64
	Code            string
	CommercialName  string
	CIF             string
	ContactPerson   string
	Phone           string
	Email           string
	DeliveryAddress string
	Town            string
	PostalCode      string
	Active          bool
}
