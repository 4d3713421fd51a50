package queries

import (
	"context"
	"database/sql"
	"time"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderColumns is the select list shared by the order queries; it matches
// the scan order of scanOrderRow.
const orderColumns = `
	id,
	customer_name,
	customer_email,
	customer_phone,
	instagram_username,
	package_id,
	package_name,
	package_quantity,
	package_price_cents,
	status,
	pix_code,
	pix_qr_code,
	payment_id,
	created_at,
	updated_at
`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrderRow maps one orders row onto an OrderResponse.
func scanOrderRow(scanner rowScanner) (OrderResponse, error) {
	var resp OrderResponse
	var id, packageID uuid.UUID
	var priceCents int64
	var status int
	var createdAt, updatedAt time.Time

	if err := scanner.Scan(
		&id,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.CustomerPhone,
		&resp.InstagramUsername,
		&packageID,
		&resp.PackageName,
		&resp.PackageQuantity,
		&priceCents,
		&status,
		&resp.PixCode,
		&resp.PixQRCode,
		&resp.PaymentID,
		&createdAt,
		&updatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	pkgID, err := kernel.UUIDFromBytes(packageID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.PackageID = pkgID

	resp.PackagePrice = kernel.NewMoneyFromCents(priceCents)
	resp.Status = order.Status(status)
	resp.CreatedAt = createdAt
	resp.UpdatedAt = updatedAt
	return resp, nil
}

// GetAllOrdersQueryHandler retrieves all orders from the database for the
// admin dashboard, newest first.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the all-orders query.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time descending,
// with the id as a tie-breaker so the ordering is stable within one call.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

var _ rowScanner = (*sql.Row)(nil)
