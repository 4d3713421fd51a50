package commands

import (
	"errors"
	"strings"

	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/pkg/errs"
	"instagrow/internal/pkg/guard"
)

var (
	ErrCreatePackageCommandIsNotConstructed = errors.New(
		"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
	)
)

// CreatePackageCommand represents an admin request to provision a new
// catalog package.
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	name         string
	description  string
	packageType  catalog.PackageType
	quantity     int
	price        kernel.Money
	deliveryTime string
	popular      bool

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to provision a catalog package.
func NewCreatePackageCommand(
	name, description string,
	packageType catalog.PackageType,
	quantity int,
	price kernel.Money,
	deliveryTime string,
	popular bool,
) (CreatePackageCommand, error) {
	packageCommand := CreatePackageCommand{
		description: strings.TrimSpace(description),
		popular:     popular,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packageCommand.setName(name),
		packageCommand.setPackageType(packageType),
		packageCommand.setQuantity(quantity),
		packageCommand.setPrice(price),
		packageCommand.setDeliveryTime(deliveryTime),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return packageCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// Name returns the package display name.
func (c CreatePackageCommand) Name() string { return c.name }

// Description returns the package description.
func (c CreatePackageCommand) Description() string { return c.description }

// PackageType returns the package classification.
func (c CreatePackageCommand) PackageType() catalog.PackageType { return c.packageType }

// Quantity returns the granted quantity.
func (c CreatePackageCommand) Quantity() int { return c.quantity }

// Price returns the package price.
func (c CreatePackageCommand) Price() kernel.Money { return c.price }

// DeliveryTime returns the delivery time label.
func (c CreatePackageCommand) DeliveryTime() string { return c.deliveryTime }

// Popular returns the display hint flag.
func (c CreatePackageCommand) Popular() bool { return c.popular }

func (c *CreatePackageCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreatePackageCommand) setPackageType(packageType catalog.PackageType) error {
	if err := packageType.Validate(); err != nil {
		return err
	}
	c.packageType = packageType
	return nil
}

func (c *CreatePackageCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}

func (c *CreatePackageCommand) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}

func (c *CreatePackageCommand) setDeliveryTime(deliveryTime string) error {
	deliveryTime = strings.TrimSpace(deliveryTime)
	if deliveryTime == "" {
		return errs.NewValueIsRequiredError("deliveryTime")
	}
	c.deliveryTime = deliveryTime
	return nil
}
