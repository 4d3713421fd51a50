package queries

import (
	"context"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStatsQueryHandler computes the dashboard counters in a single aggregate
// scan over the orders table.
type GetStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatsQueryHandler creates a handler for the stats query.
func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db}
}

// Handle executes the query. An empty orders table yields all-zero counters.
func (h GetStatsQueryHandler) Handle(
	ctx context.Context,
	query GetStatsQuery,
) (StatsResponse, error) {
	if err := query.Validate(); err != nil {
		return StatsResponse{}, err
	}

	var totalOrders, pendingOrders, completedOrders, revenueCents int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(package_price_cents) FILTER (WHERE status = ?), 0)
		FROM orders
	`, int(order.Pending), int(order.Completed), int(order.Completed)).Row()

	if err := row.Scan(&totalOrders, &pendingOrders, &completedOrders, &revenueCents); err != nil {
		return StatsResponse{}, err
	}

	return StatsResponse{
		TotalOrders:     totalOrders,
		PendingOrders:   pendingOrders,
		CompletedOrders: completedOrders,
		TotalRevenue:    kernel.NewMoneyFromCents(revenueCents),
	}, nil
}
