package catalog

import (
	"errors"
	"strings"
	"time"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/pkg/errs"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package instance was not
	// created through NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")
)

// Package represents a purchasable growth offer in the catalog.
//
// Package follows these invariants:
//   - Must have a valid unique identifier and a valid type
//   - Name is required; quantity is positive; price is non-negative
//   - DeliveryTime is an opaque human-readable label ("1-2 horas"), never
//     parsed by the engine
//   - Popular is a display hint with no behavioral effect
type Package struct {
	id           kernel.UUID
	name         string
	description  string
	packageType  PackageType
	quantity     int
	price        kernel.Money
	deliveryTime string
	popular      bool
	createdAt    time.Time

	isConstructed bool
}

// NewPackage creates a new catalog Package with validation.
func NewPackage(
	id kernel.UUID,
	name, description string,
	packageType PackageType,
	quantity int,
	price kernel.Money,
	deliveryTime string,
	popular bool,
) (*Package, error) {
	p := &Package{
		popular:       popular,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDescription(description),
		p.setPackageType(packageType),
		p.setQuantity(quantity),
		p.setPrice(price),
		p.setDeliveryTime(deliveryTime),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a Package from persistence.
func RestorePackage(
	id kernel.UUID,
	name, description string,
	packageType PackageType,
	quantity int,
	price kernel.Money,
	deliveryTime string,
	popular bool,
	createdAt time.Time,
) (*Package, error) {
	if err := errors.Join(id.Validate(), packageType.Validate()); err != nil {
		return nil, err
	}

	return &Package{
		id:            id,
		name:          name,
		description:   description,
		packageType:   packageType,
		quantity:      quantity,
		price:         price,
		deliveryTime:  deliveryTime,
		popular:       popular,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Package instance was properly constructed.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// IsEqual compares two packages by their unique identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// Name returns the display name, e.g. "500 Seguidores".
func (p *Package) Name() string {
	return p.name
}

// Description returns the display description.
func (p *Package) Description() string {
	return p.description
}

// Type returns the package classification.
func (p *Package) Type() PackageType {
	return p.packageType
}

// Quantity returns the number of followers (or likes, views, comments) granted.
func (p *Package) Quantity() int {
	return p.quantity
}

// Price returns the package price.
func (p *Package) Price() kernel.Money {
	return p.price
}

// DeliveryTime returns the opaque delivery time label.
func (p *Package) DeliveryTime() string {
	return p.deliveryTime
}

// Popular returns the display hint flag.
func (p *Package) Popular() bool {
	return p.popular
}

// CreatedAt returns the provisioning timestamp.
func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Package) setDescription(description string) error {
	p.description = strings.TrimSpace(description)
	return nil
}

func (p *Package) setPackageType(packageType PackageType) error {
	if err := packageType.Validate(); err != nil {
		return err
	}
	p.packageType = packageType
	return nil
}

func (p *Package) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	p.quantity = quantity
	return nil
}

func (p *Package) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

func (p *Package) setDeliveryTime(deliveryTime string) error {
	deliveryTime = strings.TrimSpace(deliveryTime)
	if deliveryTime == "" {
		return errs.NewValueIsRequiredError("deliveryTime")
	}
	p.deliveryTime = deliveryTime
	return nil
}
