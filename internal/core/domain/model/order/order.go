package order

import (
	"errors"
	"strings"
	"time"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer purchase in the system. It is the aggregate root
// that manages the order lifecycle from creation through payment and delivery
// to completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Contact fields and Instagram username are required and immutable
//   - Package name, quantity, and price are a snapshot taken at creation time;
//     later catalog changes never affect them
//   - The payment reference (pix code) is assigned exactly once, before the
//     order is persisted, and is never blank
//   - Status transitions follow the Status state machine; terminal states
//     freeze the record
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id                kernel.UUID
	customerName      string
	customerEmail     string
	customerPhone     string
	instagramUsername string

	packageID       kernel.UUID
	packageName     string
	packageQuantity int
	packagePrice    kernel.Money

	status    Status
	pixCode   string
	pixQRCode string
	paymentID string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create an order for a fresh purchase, ensuring all business
// invariants hold before anything is persisted.
//
// The packageName, packageQuantity, and packagePrice arguments are the catalog
// snapshot taken by the caller at the moment of creation. The pix arguments
// come from the payment reference collaborator, which must have been invoked
// before construction.
func NewOrder(
	id kernel.UUID,
	customerName, customerEmail, customerPhone, instagramUsername string,
	packageID kernel.UUID,
	packageName string,
	packageQuantity int,
	packagePrice kernel.Money,
	pixCode, pixQRCode, paymentID string,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerEmail(customerEmail),
		o.setCustomerPhone(customerPhone),
		o.setInstagramUsername(instagramUsername),
		o.setPackageSnapshot(packageID, packageName, packageQuantity, packagePrice),
		o.setPaymentReference(pixCode, pixQRCode, paymentID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation-time rules. The stored status must still be a valid one.
func RestoreOrder(
	id kernel.UUID,
	customerName, customerEmail, customerPhone, instagramUsername string,
	packageID kernel.UUID,
	packageName string,
	packageQuantity int,
	packagePrice kernel.Money,
	status Status,
	pixCode, pixQRCode, paymentID string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:                id,
		customerName:      customerName,
		customerEmail:     customerEmail,
		customerPhone:     customerPhone,
		instagramUsername: instagramUsername,
		packageID:         packageID,
		packageName:       packageName,
		packageQuantity:   packageQuantity,
		packagePrice:      packagePrice,
		status:            status,
		pixCode:           pixCode,
		pixQRCode:         pixQRCode,
		paymentID:         paymentID,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the customer's contact email.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// CustomerPhone returns the customer's contact phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// InstagramUsername returns the normalized Instagram username, without a
// leading "@".
func (o *Order) InstagramUsername() string {
	return o.instagramUsername
}

// PackageID returns the identifier of the catalog package chosen at creation.
func (o *Order) PackageID() kernel.UUID {
	return o.packageID
}

// PackageName returns the snapshotted package name.
func (o *Order) PackageName() string {
	return o.packageName
}

// PackageQuantity returns the snapshotted follower quantity.
func (o *Order) PackageQuantity() int {
	return o.packageQuantity
}

// PackagePrice returns the snapshotted package price.
func (o *Order) PackagePrice() kernel.Money {
	return o.packagePrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PixCode returns the opaque payment reference assigned at creation.
func (o *Order) PixCode() string {
	return o.pixCode
}

// PixQRCode returns the payment QR code as a base64 PNG data URL.
func (o *Order) PixQRCode() string {
	return o.pixQRCode
}

// PaymentID returns the short payment identifier assigned at creation.
func (o *Order) PaymentID() string {
	return o.paymentID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to next according to the lifecycle state
// machine.
//
// Business rules:
//   - Requesting the status the order already has succeeds and changes
//     nothing (idempotent re-submission of a retried update)
//   - Any move not in the transition table fails with an
//     InvalidStatusTransitionError and leaves the order unchanged
//   - Completed and Cancelled are terminal: every subsequent transition
//     request fails
func (o *Order) ChangeStatus(next Status) error {
	if next == o.status {
		return nil
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	o.customerEmail = email
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setInstagramUsername(username string) error {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return errs.NewValueIsRequiredError("instagramUsername")
	}
	o.instagramUsername = username
	return nil
}

func (o *Order) setPackageSnapshot(
	packageID kernel.UUID, name string, quantity int, price kernel.Money,
) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("packageName")
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("packageQuantity")
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("packagePrice")
	}

	o.packageID = packageID
	o.packageName = name
	o.packageQuantity = quantity
	o.packagePrice = price
	return nil
}

func (o *Order) setPaymentReference(pixCode, pixQRCode, paymentID string) error {
	if strings.TrimSpace(pixCode) == "" {
		return errs.NewValueIsRequiredError("pixCode")
	}
	o.pixCode = pixCode
	o.pixQRCode = pixQRCode
	o.paymentID = paymentID
	return nil
}
