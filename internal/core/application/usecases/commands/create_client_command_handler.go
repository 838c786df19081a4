package commands

import (
	"context"

	"albarans/internal/core/domain/model/client"
)

// CreateClientCommandHandler handles the business logic for client
// registration. The sequential client code is assigned by the repository
// inside the same transaction as the insert.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client registration command and returns the generated
// client code, e.g. "CLI007".
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	contact := cmd.Contact()
	aggregate, err := client.NewClient(
		cmd.CommercialName(), cmd.CIF(), contact.ContactPerson, contact.Phone,
		contact.Email, contact.DeliveryAddress, contact.Town, contact.PostalCode)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ClientRepository().Add(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return aggregate.Code(), nil
}
