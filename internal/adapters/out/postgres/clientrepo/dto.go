// Package clientrepo provides GORM-based persistence for client aggregates.
// It maps the rich client domain model to its relational representation and
// implements the two-phase create that assigns the sequential client code.
package clientrepo

import (
	"albarans/internal/core/domain/model/client"
)

// ClientDTO represents the database structure for persisting clients.
// The code column is null until the first insert completes and the
// sequential code derived from the id is patched in.
type ClientDTO struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	Code            *string `gorm:"type:varchar(16);uniqueIndex"`
	CommercialName  string  `gorm:"type:varchar(255);not null"`
	CIF             string  `gorm:"type:varchar(32);not null"`
	ContactPerson   string  `gorm:"type:varchar(255)"`
	Phone           string  `gorm:"type:varchar(32)"`
	Email           string  `gorm:"type:varchar(255)"`
	DeliveryAddress string  `gorm:"type:varchar(255)"`
	Town            string  `gorm:"type:varchar(128)"`
	PostalCode      string  `gorm:"type:varchar(16)"`
	Active          bool    `gorm:"not null;default:true"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client aggregate to its database representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	var code *string
	if c := aggregate.Code(); c != "" {
		code = &c
	}

	return ClientDTO{
		ID:              aggregate.ID(),
		Code:            code,
		CommercialName:  aggregate.CommercialName(),
		CIF:             aggregate.CIF(),
		ContactPerson:   aggregate.ContactPerson(),
		Phone:           aggregate.Phone(),
		Email:           aggregate.Email(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Town:            aggregate.Town(),
		PostalCode:      aggregate.PostalCode(),
		Active:          aggregate.IsActive(),
	}
}

// toDomain reconstructs a client aggregate from its database representation.
func toDomain(dto ClientDTO) (*client.Client, error) {
	code := ""
	if dto.Code != nil {
		code = *dto.Code
	}

	return client.RestoreClient(
		dto.ID,
		code,
		dto.CommercialName,
		dto.CIF,
		dto.ContactPerson,
		dto.Phone,
		dto.Email,
		dto.DeliveryAddress,
		dto.Town,
		dto.PostalCode,
		dto.Active,
	)
}
