package commands

import (
	"errors"
	"strings"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/pkg/errs"
	"instagrow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer's request to purchase a catalog
// package. All contact fields are required after trimming; the Instagram
// username has a single leading "@" stripped.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    "Maria Silva", "maria@example.com", "+55 11 91234-5678", "@maria", packageID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName      string
	customerEmail     string
	customerPhone     string
	instagramUsername string
	packageID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// Validates that every contact field is non-empty after trimming and that
// the package id is a constructed UUID.
func NewCreateOrderCommand(
	customerName, customerEmail, customerPhone, instagramUsername string,
	packageID kernel.UUID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerName(customerName),
		orderCommand.setCustomerEmail(customerEmail),
		orderCommand.setCustomerPhone(customerPhone),
		orderCommand.setInstagramUsername(instagramUsername),
		orderCommand.setPackageID(packageID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the trimmed customer name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the trimmed customer email.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// CustomerPhone returns the trimmed customer phone.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// InstagramUsername returns the normalized Instagram username.
func (c CreateOrderCommand) InstagramUsername() string {
	return c.instagramUsername
}

// PackageID returns the identifier of the catalog package to purchase.
func (c CreateOrderCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setCustomerEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	c.customerEmail = email
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setInstagramUsername(username string) error {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return errs.NewValueIsRequiredError("instagramUsername")
	}
	c.instagramUsername = username
	return nil
}

func (c *CreateOrderCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}
