package commands

import (
	"context"
)

// UpdateClientCommandHandler handles client detail updates. The client code
// is immutable: updates touch every other field but never the code.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewUpdateClientCommandHandler creates a handler for client updates.
func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client update command.
func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientRepo := uow.ClientRepository()
	aggregate, err := clientRepo.GetByCode(ctx, cmd.Code())
	if err != nil {
		return err
	}

	contact := cmd.Contact()
	if err = aggregate.UpdateDetails(
		cmd.CommercialName(), cmd.CIF(), contact.ContactPerson, contact.Phone,
		contact.Email, contact.DeliveryAddress, contact.Town, contact.PostalCode,
		cmd.Active()); err != nil {
		return err
	}

	if err = clientRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
