package http

import (
	"time"

	"instagrow/internal/core/application/usecases/queries"
	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/order"
)

// createOrderRequest is the wire payload for registering a purchase.
type createOrderRequest struct {
	CustomerName      string `json:"customer_name"`
	CustomerEmail     string `json:"customer_email"`
	CustomerPhone     string `json:"customer_phone"`
	InstagramUsername string `json:"instagram_username"`
	PackageID         string `json:"package_id"`
}

// updateOrderStatusRequest is the wire payload for a lifecycle transition.
type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// packageRequest is the wire payload shared by package create and update.
type packageRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	DeliveryTime string  `json:"delivery_time"`
	Popular      bool    `json:"popular"`
}

// orderResponse is the wire representation of an order.
type orderResponse struct {
	ID                string    `json:"id"`
	CustomerName      string    `json:"customer_name"`
	CustomerEmail     string    `json:"customer_email"`
	CustomerPhone     string    `json:"customer_phone"`
	InstagramUsername string    `json:"instagram_username"`
	PackageID         string    `json:"package_id"`
	PackageName       string    `json:"package_name"`
	PackageQuantity   int       `json:"package_quantity"`
	PackagePrice      float64   `json:"package_price"`
	Status            string    `json:"status"`
	PixCode           string    `json:"pix_code"`
	PixQRCode         string    `json:"pix_qr_code"`
	PaymentID         string    `json:"payment_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// packageResponse is the wire representation of a catalog package.
type packageResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	DeliveryTime string    `json:"delivery_time"`
	Popular      bool      `json:"popular"`
	CreatedAt    time.Time `json:"created_at"`
}

// statsResponse is the wire representation of the dashboard counters.
type statsResponse struct {
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}

// errorResponse is the wire representation of a failed request. The status
// fields are filled only for rejected lifecycle moves, so staff tooling can
// show where the order actually is.
type errorResponse struct {
	Code           int    `json:"code"`
	Message        string `json:"message"`
	CurrentStatus  string `json:"current_status,omitempty"`
	RejectedStatus string `json:"rejected_status,omitempty"`
}

func toOrderResponse(o queries.OrderResponse) orderResponse {
	return orderResponse{
		ID:                o.ID.String(),
		CustomerName:      o.CustomerName,
		CustomerEmail:     o.CustomerEmail,
		CustomerPhone:     o.CustomerPhone,
		InstagramUsername: o.InstagramUsername,
		PackageID:         o.PackageID.String(),
		PackageName:       o.PackageName,
		PackageQuantity:   o.PackageQuantity,
		PackagePrice:      o.PackagePrice.Float64(),
		Status:            o.Status.String(),
		PixCode:           o.PixCode,
		PixQRCode:         o.PixQRCode,
		PaymentID:         o.PaymentID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func toOrderResponseFromDomain(o *order.Order) orderResponse {
	return orderResponse{
		ID:                o.ID().String(),
		CustomerName:      o.CustomerName(),
		CustomerEmail:     o.CustomerEmail(),
		CustomerPhone:     o.CustomerPhone(),
		InstagramUsername: o.InstagramUsername(),
		PackageID:         o.PackageID().String(),
		PackageName:       o.PackageName(),
		PackageQuantity:   o.PackageQuantity(),
		PackagePrice:      o.PackagePrice().Float64(),
		Status:            o.Status().String(),
		PixCode:           o.PixCode(),
		PixQRCode:         o.PixQRCode(),
		PaymentID:         o.PaymentID(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

func toPackageResponse(p queries.PackageResponse) packageResponse {
	return packageResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		Type:         p.PackageType.String(),
		Quantity:     p.Quantity,
		Price:        p.Price.Float64(),
		DeliveryTime: p.DeliveryTime,
		Popular:      p.Popular,
		CreatedAt:    p.CreatedAt,
	}
}

func toPackageResponseFromDomain(p *catalog.Package) packageResponse {
	return packageResponse{
		ID:           p.ID().String(),
		Name:         p.Name(),
		Description:  p.Description(),
		Type:         p.Type().String(),
		Quantity:     p.Quantity(),
		Price:        p.Price().Float64(),
		DeliveryTime: p.DeliveryTime(),
		Popular:      p.Popular(),
		CreatedAt:    p.CreatedAt(),
	}
}
