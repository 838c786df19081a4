package commands

import (
	"errors"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand represents a request to update an existing client's
// details. The client is addressed by its immutable code, which is never
// changed by the update.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	code           string
	commercialName string
	cif            string
	contact        ClientContact
	active         bool

	guard guard.ConstructorGuard
}

// NewUpdateClientCommand creates a command to update a client's details.
func NewUpdateClientCommand(
	code string,
	commercialName string,
	cif string,
	contact ClientContact,
	active bool,
) (UpdateClientCommand, error) {
	clientCommand := UpdateClientCommand{
		contact: contact,
		active:  active,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setCode(code),
		clientCommand.setCommercialName(commercialName),
		clientCommand.setCIF(cif),
	); err != nil {
		return UpdateClientCommand{}, err
	}

	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

// Code returns the immutable code of the client to update.
func (c UpdateClientCommand) Code() string {
	return c.code
}

// CommercialName returns the new trading name.
func (c UpdateClientCommand) CommercialName() string {
	return c.commercialName
}

// CIF returns the new fiscal identifier.
func (c UpdateClientCommand) CIF() string {
	return c.cif
}

// Contact returns the new contact and delivery fields.
func (c UpdateClientCommand) Contact() ClientContact {
	return c.contact
}

// Active returns the new active flag.
func (c UpdateClientCommand) Active() bool {
	return c.active
}

func (c *UpdateClientCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("client code")
	}
	c.code = code
	return nil
}

func (c *UpdateClientCommand) setCommercialName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("commercial name")
	}
	c.commercialName = name
	return nil
}

func (c *UpdateClientCommand) setCIF(cif string) error {
	if cif == "" {
		return errs.NewValueIsRequiredError("cif")
	}
	c.cif = cif
	return nil
}
