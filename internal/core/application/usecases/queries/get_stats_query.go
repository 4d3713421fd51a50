package queries

import (
	"errors"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/pkg/guard"
)

var (
	ErrGetStatsQueryIsNotConstructed = errors.New(
		"GetStatsQuery must be created via NewGetStatsQuery constructor",
	)
)

// GetStatsQuery retrieves aggregate order counters for the admin dashboard.
type GetStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a query to retrieve the dashboard stats.
func NewGetStatsQuery() GetStatsQuery {
	return GetStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// StatsResponse is the aggregate view over all orders. TotalRevenue counts
// completed orders only: an order that was paid but later cancelled never
// contributes to revenue.
type StatsResponse struct {
	TotalOrders     int64
	PendingOrders   int64
	CompletedOrders int64
	TotalRevenue    kernel.Money
}
