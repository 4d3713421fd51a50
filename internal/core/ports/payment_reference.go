package ports

import (
	"context"

	"instagrow/internal/core/domain/model/kernel"
)

// PaymentDraft carries the order details the payment rail needs to produce
// a payment reference. It exists before the order itself does.
type PaymentDraft struct {
	CustomerName string
	Amount       kernel.Money
}

// PaymentReference is the collaborator's output: an opaque pix code the
// customer pays with, a QR rendering of it, and a short payment identifier.
type PaymentReference struct {
	PixCode   string
	QRCode    string
	PaymentID string
}

// PaymentReferenceGenerator is the external payment collaborator contract.
// Generate is called exactly once per order creation, before the order is
// persisted, and must return a non-empty pix code; the engine never parses
// it. A failure aborts order creation with a PaymentReferenceError and no
// partial order is ever visible. The engine does not deduplicate codes;
// uniqueness is the collaborator's concern.
type PaymentReferenceGenerator interface {
	Generate(ctx context.Context, draft PaymentDraft) (PaymentReference, error)
}
