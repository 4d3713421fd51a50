package queries

import (
	"errors"
	"time"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/core/domain/model/order"
	"instagrow/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order for the admin view, newest first.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderResponse is the read-side projection of a single order.
type OrderResponse struct {
	ID                kernel.UUID
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	InstagramUsername string
	PackageID         kernel.UUID
	PackageName       string
	PackageQuantity   int
	PackagePrice      kernel.Money
	Status            order.Status
	PixCode           string
	PixQRCode         string
	PaymentID         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
