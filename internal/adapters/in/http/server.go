// Package http exposes the application's use cases over a JSON REST API.
// The server translates between wire-level requests and the command/query
// handlers, and maps domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"instagrow/internal/core/application/usecases/commands"
	"instagrow/internal/core/application/usecases/queries"
	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/core/domain/model/order"
	"instagrow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	createPackageHandler     commands.CreatePackageCommandHandler
	updatePackageHandler     commands.UpdatePackageCommandHandler
	removePackageHandler     commands.RemovePackageCommandHandler
	seedCatalogHandler       commands.SeedCatalogCommandHandler

	// Query handlers
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	getAllPackagesHandler queries.GetAllPackagesQueryHandler
	getPackageHandler     queries.GetPackageQueryHandler
	getStatsHandler       queries.GetStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createPackageHandler commands.CreatePackageCommandHandler,
	updatePackageHandler commands.UpdatePackageCommandHandler,
	removePackageHandler commands.RemovePackageCommandHandler,
	seedCatalogHandler commands.SeedCatalogCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllPackagesHandler queries.GetAllPackagesQueryHandler,
	getPackageHandler queries.GetPackageQueryHandler,
	getStatsHandler queries.GetStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		createPackageHandler:     createPackageHandler,
		updatePackageHandler:     updatePackageHandler,
		removePackageHandler:     removePackageHandler,
		seedCatalogHandler:       seedCatalogHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getAllPackagesHandler:    getAllPackagesHandler,
		getPackageHandler:        getPackageHandler,
		getStatsHandler:          getStatsHandler,
	}
}

// RegisterMiddlewares binds the cross-cutting middleware onto the echo
// instance. The storefront is served from a separate origin, so the API
// answers CORS preflights for the configured origins.
func RegisterMiddlewares(e *echo.Echo, corsOrigins []string) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
		},
	}))
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/", s.Root)

	api.GET("/packages", s.GetPackages)
	api.POST("/packages", s.CreatePackage)
	api.GET("/packages/:id", s.GetPackage)
	api.PUT("/packages/:id", s.UpdatePackage)
	api.DELETE("/packages/:id", s.DeletePackage)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)

	api.GET("/admin/stats", s.GetStats)
	api.POST("/admin/seed", s.SeedCatalog)
}

// Root handles GET /api/v1/ - the API banner.
func (s *Server) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "InstaGrow API - Venda de Seguidores do Instagram",
		"version": "1.0",
	})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetPackages handles GET /api/v1/packages - lists the catalog, cheapest first.
func (s *Server) GetPackages(ctx echo.Context) error {
	packages, err := s.getAllPackagesHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllPackagesQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	response := make([]packageResponse, len(packages))
	for i, pkg := range packages {
		response[i] = toPackageResponse(pkg)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPackage handles GET /api/v1/packages/:id - retrieves one package.
func (s *Server) GetPackage(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetPackageQuery(id)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	pkg, err := s.getPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPackageResponse(pkg))
}

// CreatePackage handles POST /api/v1/packages - provisions a catalog package.
func (s *Server) CreatePackage(ctx echo.Context) error {
	cmd, err := s.bindPackageCommand(ctx)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	created, err := s.createPackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPackageResponseFromDomain(created))
}

// UpdatePackage handles PUT /api/v1/packages/:id - replaces a package's fields.
func (s *Server) UpdatePackage(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	fields, err := s.bindPackageCommand(ctx)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdatePackageCommand(id, fields)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	updated, err := s.updatePackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPackageResponseFromDomain(updated))
}

// DeletePackage handles DELETE /api/v1/packages/:id - removes a package.
// Existing orders keep their snapshot of the removed package's fields.
func (s *Server) DeletePackage(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewRemovePackageCommand(id)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.removePackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Pacote removido com sucesso"})
}

// GetOrders handles GET /api/v1/orders - lists all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// CreateOrder handles POST /api/v1/orders - registers a purchase and returns
// the order with its payment reference.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	packageID, err := kernel.UUIDFromString(req.PackageID)
	if err != nil {
		return s.errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("package_id", err))
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		req.InstagramUsername, packageID,
	)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponseFromDomain(created))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - advances an order
// through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("status", err))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponseFromDomain(updated))
}

// GetStats handles GET /api/v1/admin/stats - the dashboard counters.
func (s *Server) GetStats(ctx echo.Context) error {
	stats, err := s.getStatsHandler.Handle(ctx.Request().Context(), queries.NewGetStatsQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statsResponse{
		TotalOrders:     stats.TotalOrders,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		TotalRevenue:    stats.TotalRevenue.Float64(),
	})
}

// SeedCatalog handles POST /api/v1/admin/seed - provisions the default
// catalog when the store is empty. Idempotent.
func (s *Server) SeedCatalog(ctx echo.Context) error {
	seeded, err := s.seedCatalogHandler.Handle(
		ctx.Request().Context(), commands.NewSeedCatalogCommand())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"seeded": seeded})
}

// bindPackageCommand parses and validates a package payload shared by the
// create and update endpoints.
func (s *Server) bindPackageCommand(ctx echo.Context) (commands.CreatePackageCommand, error) {
	var req packageRequest
	if err := ctx.Bind(&req); err != nil {
		return commands.CreatePackageCommand{}, errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	packageType, err := catalog.PackageTypeFromString(req.Type)
	if err != nil {
		return commands.CreatePackageCommand{}, errs.NewValueIsInvalidErrorWithCause("type", err)
	}

	price, err := kernel.NewMoneyFromFloat(req.Price)
	if err != nil {
		return commands.CreatePackageCommand{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	return commands.NewCreatePackageCommand(
		req.Name, req.Description, packageType, req.Quantity,
		price, req.DeliveryTime, req.Popular,
	)
}

// errorJSON maps a domain error onto the HTTP status taxonomy:
// validation -> 400, unknown id -> 404, forbidden lifecycle move -> 409,
// payment collaborator failure -> 502, anything else -> 500.
func (s *Server) errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStatusTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrPaymentReferenceGeneration):
		status = http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	response := errorResponse{
		Code:    status,
		Message: err.Error(),
	}

	var transitionErr *errs.InvalidStatusTransitionError
	if errors.As(err, &transitionErr) {
		response.CurrentStatus = transitionErr.From
		response.RejectedStatus = transitionErr.To
	}

	return ctx.JSON(status, response)
}
