package commands

import (
	"errors"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a new client.
// The client code is generated by the handler, not supplied by the caller.
//
// Example:
//
//	cmd, err := NewCreateClientCommand("Bar Les Voltes", "B12345678", contact)
//	if err != nil {
//	    return fmt.Errorf("invalid client data: %w", err)
//	}
//
//	handler := NewCreateClientCommandHandler(uowFactory)
//	code, err := handler.Handle(ctx, cmd)
//	// code == "CLI007"
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	commercialName string
	cif            string
	contact        ClientContact

	guard guard.ConstructorGuard
}

// ClientContact groups the optional contact and delivery fields of a client.
type ClientContact struct {
	ContactPerson   string
	Phone           string
	Email           string
	DeliveryAddress string
	Town            string
	PostalCode      string
}

// NewCreateClientCommand creates a command to register a new client.
// The commercial name and CIF are required, contact fields are optional.
func NewCreateClientCommand(commercialName, cif string, contact ClientContact) (CreateClientCommand, error) {
	clientCommand := CreateClientCommand{
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setCommercialName(commercialName),
		clientCommand.setCIF(cif),
	); err != nil {
		return CreateClientCommand{}, err
	}

	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// CommercialName returns the client's trading name.
func (c CreateClientCommand) CommercialName() string {
	return c.commercialName
}

// CIF returns the client's fiscal identifier.
func (c CreateClientCommand) CIF() string {
	return c.cif
}

// Contact returns the optional contact and delivery fields.
func (c CreateClientCommand) Contact() ClientContact {
	return c.contact
}

func (c *CreateClientCommand) setCommercialName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("commercial name")
	}
	c.commercialName = name
	return nil
}

func (c *CreateClientCommand) setCIF(cif string) error {
	if cif == "" {
		return errs.NewValueIsRequiredError("cif")
	}
	c.cif = cif
	return nil
}
