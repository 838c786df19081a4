package client

import (
	"errors"
	"strings"

	"albarans/internal/core/domain/model/kernel"
	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var (
	// ErrClientIsNotConstructed is returned when a Client instance was not
	// created through NewClient or RestoreClient.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

	// ErrClientCodeIsAssigned is returned when attempting to assign a code to
	// a client that already carries one. Codes are assigned exactly once,
	// right after the first persistence.
	ErrClientCodeIsAssigned = errs.NewValueIsInvalidError("client code is already assigned")
)

// Client represents a wholesale customer that orders are billed and shipped
// to. It carries contact and billing fields plus an active flag used to hide
// clients from new order creation without losing their order history.
//
// Client follows these invariants:
//   - The code (CLI + zero-padded id) is unique, immutable, and assigned
//     exactly once, after the first persistence (two-phase create)
//   - The commercial name and CIF are always present
type Client struct {
	id              int64
	code            string
	commercialName  string
	cif             string
	contactPerson   string
	phone           string
	email           string
	deliveryAddress string
	town            string
	postalCode      string
	active          bool

	guard guard.ConstructorGuard
}

// NewClient creates a new Client with validation. The code is empty until
// AssignCode is called after the first persistence.
func NewClient(
	commercialName string,
	cif string,
	contactPerson string,
	phone string,
	email string,
	deliveryAddress string,
	town string,
	postalCode string,
) (*Client, error) {
	client := &Client{
		contactPerson:   contactPerson,
		phone:           phone,
		deliveryAddress: deliveryAddress,
		town:            town,
		postalCode:      postalCode,
		active:          true,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		client.setCommercialName(commercialName),
		client.setCIF(cif),
		client.setEmail(email),
	); err != nil {
		return nil, err
	}

	return client, nil
}

// RestoreClient reconstructs a Client from persistent storage, including its
// assigned code and active flag.
func RestoreClient(
	id int64,
	code string,
	commercialName string,
	cif string,
	contactPerson string,
	phone string,
	email string,
	deliveryAddress string,
	town string,
	postalCode string,
	active bool,
) (*Client, error) {
	client, err := NewClient(commercialName, cif, contactPerson, phone, email, deliveryAddress, town, postalCode)
	if err != nil {
		return nil, err
	}

	client.id = id
	client.code = code
	client.active = active
	return client, nil
}

// Validate ensures the Client instance was properly constructed.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// AssignCode records the database-assigned identifier and its derived code
// after the first insert. The code is assigned exactly once and is immutable
// afterwards.
func (c *Client) AssignCode(id int64) error {
	if c.id != 0 || c.code != "" {
		return ErrClientCodeIsAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("client id")
	}

	c.id = id
	c.code = kernel.ClientCode(id)
	return nil
}

// ID returns the client's sequential identifier (0 before first persistence).
func (c *Client) ID() int64 {
	return c.id
}

// Code returns the unique client code, e.g. "CLI007".
// Empty until the client has been persisted once.
func (c *Client) Code() string {
	return c.code
}

// CommercialName returns the client's trading name.
func (c *Client) CommercialName() string {
	return c.commercialName
}

// CIF returns the client's fiscal identification code.
func (c *Client) CIF() string {
	return c.cif
}

// ContactPerson returns the primary contact's name.
func (c *Client) ContactPerson() string {
	return c.contactPerson
}

// Phone returns the contact phone number.
func (c *Client) Phone() string {
	return c.phone
}

// Email returns the contact email address.
func (c *Client) Email() string {
	return c.email
}

// DeliveryAddress returns the default delivery address.
func (c *Client) DeliveryAddress() string {
	return c.deliveryAddress
}

// Town returns the delivery town.
func (c *Client) Town() string {
	return c.town
}

// PostalCode returns the delivery postal code.
func (c *Client) PostalCode() string {
	return c.postalCode
}

// IsActive reports whether the client may be selected for new orders.
func (c *Client) IsActive() bool {
	return c.active
}

// UpdateDetails applies plain field updates to the client's contact and
// billing data. The code is immutable and is not touched.
func (c *Client) UpdateDetails(
	commercialName string,
	cif string,
	contactPerson string,
	phone string,
	email string,
	deliveryAddress string,
	town string,
	postalCode string,
	active bool,
) error {
	if err := errors.Join(
		c.setCommercialName(commercialName),
		c.setCIF(cif),
		c.setEmail(email),
	); err != nil {
		return err
	}

	c.contactPerson = contactPerson
	c.phone = phone
	c.deliveryAddress = deliveryAddress
	c.town = town
	c.postalCode = postalCode
	c.active = active
	return nil
}

func (c *Client) setCommercialName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("commercialName")
	}
	c.commercialName = name
	return nil
}

func (c *Client) setCIF(cif string) error {
	if cif == "" {
		return errs.NewValueIsRequiredError("cif")
	}
	c.cif = cif
	return nil
}

func (c *Client) setEmail(email string) error {
	if email != "" && !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}
