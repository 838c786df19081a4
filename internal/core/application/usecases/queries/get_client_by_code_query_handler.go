package queries

import (
	"context"

	"gorm.io/gorm"

	"albarans/internal/pkg/errs"
)

// GetClientByCodeQueryHandler reads one client projection from the database.
type GetClientByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetClientByCodeQueryHandler creates a handler for client lookups.
func NewGetClientByCodeQueryHandler(db *gorm.DB) GetClientByCodeQueryHandler {
	return GetClientByCodeQueryHandler{db: db}
}

// Handle executes the lookup. Fails with a NotFound error when no client
// carries the requested code.
func (h GetClientByCodeQueryHandler) Handle(
	ctx context.Context,
	query GetClientByCodeQuery,
) (GetClientByCodeQueryResponse, error) {
	var response GetClientByCodeQueryResponse
	if err := query.Validate(); err != nil {
		return response, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, code, commercial_name, cif, contact_person, phone, email,
			delivery_address, town, postal_code, active
		FROM clients
		WHERE code = ?
	`, query.Code()).Row()

	err := row.Scan(
		&response.ID,
		&response.Code,
		&response.CommercialName,
		&response.CIF,
		&response.ContactPerson,
		&response.Phone,
		&response.Email,
		&response.DeliveryAddress,
		&response.Town,
		&response.PostalCode,
		&response.Active,
	)
	if err != nil {
		return GetClientByCodeQueryResponse{},
			errs.NewObjectNotFoundErrorWithCause("client code", query.Code(), err)
	}

	return response, nil
}
