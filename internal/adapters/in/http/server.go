// Package http exposes the delivery marketplace over a REST API.
//
// Every mutating route acts on behalf of the authenticated caller: the
// principal comes from the JWT subject, never from the request body. Errors
// from the application layer are translated centrally by NewHTTPErrorHandler.
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/commands"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/queries"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPackageHandler    commands.CreatePackageCommandHandler
	registerCourierHandler  commands.RegisterCourierCommandHandler
	acceptPackageHandler    commands.AcceptPackageCommandHandler
	updateLocationHandler   commands.UpdatePackageLocationCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	cancelPackageHandler    commands.CancelPackageCommandHandler
	fileDisputeHandler      commands.FileDisputeCommandHandler
	rateCourierHandler      commands.RateCourierCommandHandler

	// Query handlers
	getPackageHandler         queries.GetPackageQueryHandler
	getOpenPackagesHandler    queries.GetOpenPackagesQueryHandler
	getCourierHandler         queries.GetCourierQueryHandler
	getCourierPackagesHandler queries.GetCourierPackagesQueryHandler
	getDisputeHandler         queries.GetDisputeQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPackageHandler commands.CreatePackageCommandHandler,
	registerCourierHandler commands.RegisterCourierCommandHandler,
	acceptPackageHandler commands.AcceptPackageCommandHandler,
	updateLocationHandler commands.UpdatePackageLocationCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelPackageHandler commands.CancelPackageCommandHandler,
	fileDisputeHandler commands.FileDisputeCommandHandler,
	rateCourierHandler commands.RateCourierCommandHandler,
	getPackageHandler queries.GetPackageQueryHandler,
	getOpenPackagesHandler queries.GetOpenPackagesQueryHandler,
	getCourierHandler queries.GetCourierQueryHandler,
	getCourierPackagesHandler queries.GetCourierPackagesQueryHandler,
	getDisputeHandler queries.GetDisputeQueryHandler,
) *Server {
	return &Server{
		createPackageHandler:      createPackageHandler,
		registerCourierHandler:    registerCourierHandler,
		acceptPackageHandler:      acceptPackageHandler,
		updateLocationHandler:     updateLocationHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		cancelPackageHandler:      cancelPackageHandler,
		fileDisputeHandler:        fileDisputeHandler,
		rateCourierHandler:        rateCourierHandler,
		getPackageHandler:         getPackageHandler,
		getOpenPackagesHandler:    getOpenPackagesHandler,
		getCourierHandler:         getCourierHandler,
		getCourierPackagesHandler: getCourierPackagesHandler,
		getDisputeHandler:         getDisputeHandler,
	}
}

// RegisterRoutes mounts all routes on the given echo instance. The API group
// requires a Bearer JWT, health and metrics stay open.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.Validator = NewValidator()

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", Auth(jwtSecret), Metrics())

	api.POST("/packages", s.CreatePackage)
	api.GET("/packages/open", s.GetOpenPackages)
	api.GET("/packages/:id", s.GetPackage)
	api.POST("/packages/:id/accept", s.AcceptPackage)
	api.PUT("/packages/:id/location", s.UpdatePackageLocation)
	api.POST("/packages/:id/complete", s.CompleteDelivery)
	api.POST("/packages/:id/cancel", s.CancelPackage)
	api.POST("/packages/:id/dispute", s.FileDispute)
	api.GET("/packages/:id/dispute", s.GetDispute)

	api.POST("/couriers", s.RegisterCourier)
	api.GET("/couriers/:principal", s.GetCourier)
	api.GET("/couriers/:principal/packages", s.GetCourierPackages)
	api.POST("/couriers/:principal/ratings", s.RateCourier)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreatePackage handles POST /api/v1/packages. The caller becomes the sender
// and the package price is held in escrow from the caller's balance.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var request createPackageRequest
	if err := ctx.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	caller, err := callerPrincipal(ctx)
	if err != nil {
		return err
	}
	recipient, err := kernel.NewPrincipal(request.Recipient)
	if err != nil {
		return err
	}
	pickup, err := kernel.NewAddress(request.PickupLocation)
	if err != nil {
		return err
	}
	delivery, err := kernel.NewAddress(request.DeliveryLocation)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreatePackageCommand(
		request.ID, caller, recipient, request.Price, pickup, delivery,
	)
	if err != nil {
		return err
	}

	if err := s.createPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	PackagesCreatedTotal.Inc()
	return ctx.NoContent(http.StatusCreated)
}

// RegisterCourier handles POST /api/v1/couriers - registers the caller as a courier.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var request registerCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	caller, err := callerPrincipal(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterCourierCommand(caller, request.Name)
	if err != nil {
		return err
	}

	if err := s.registerCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusCreated)
}

// AcceptPackage handles POST /api/v1/packages/:id/accept.
func (s *Server) AcceptPackage(ctx echo.Context) error {
	packageID, err := packageIDParam(ctx)
	if err != nil {
		return err
	}
	caller, err := callerPrincipal(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptPackageCommand(caller, packageID)
	if err != nil {
		return err
	}

	if err := s.acceptPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePackageLocation handles PUT /api/v1/packages/:id/location.
func (s *Server) UpdatePackageLocation(ctx echo.Context) error {
	packageID, err := packageIDParam(ctx)
	if err != nil {
		return err
	}

	var request updateLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	caller, err := callerPrincipal(ctx)
	if err != nil {
		return err
	}
	location, err := kernel.NewAddress(request.Location)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePackageLocationCommand(caller, packageID, location)
	if err != nil {
		return err
	}

	if err := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/packages/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	packageID, err := packageIDParam(ctx)
	if err != nil {
		return err
	}
	caller, err := callerPrincipal(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(caller, packageID)
	if err != nil {
		return err
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	DeliveriesCompletedTotal.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// CancelPackage handles POST /api/v1/packages/:id/cancel.
func (s *Server) CancelPackage(ctx echo.Context) error {
	packageID, err := packageIDParam(ctx)
	if err != nil {
		return err
	}
	caller, err := callerPrincipal(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelPackageCommand(caller, packageID)
	if err != nil {
		return err
	}

	if err := s.cancelPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FileDispute handles POST /api/v1/packages/:id/dispute.
func (s *Server) FileDispute(ctx echo.Context) error {
	packageID, err := packageIDParam(ctx)
	if err != nil {
		return err
	}

	var request fileDisputeRequest
	if err := ctx.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	caller, err := callerPrincipal(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewFileDisputeCommand(caller, packageID, request.Reason)
	if err != nil {
		return err
	}

	if err := s.fileDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	DisputesFiledTotal.Inc()
	return ctx.NoContent(http.StatusCreated)
}

// RateCourier handles POST /api/v1/couriers/:principal/ratings.
func (s *Server) RateCourier(ctx echo.Context) error {
	target, err := principalParam(ctx)
	if err != nil {
		return err
	}

	var request rateCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	caller, err := callerPrincipal(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRateCourierCommand(caller, target, request.Score)
	if err != nil {
		return err
	}

	if err := s.rateCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPackage handles GET /api/v1/packages/:id.
func (s *Server) GetPackage(ctx echo.Context) error {
	packageID, err := packageIDParam(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPackageQuery(packageID)
	if err != nil {
		return err
	}

	pkg, err := s.getPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toPackageResponse(pkg))
}

// GetOpenPackages handles GET /api/v1/packages/open - packages awaiting a courier.
func (s *Server) GetOpenPackages(ctx echo.Context) error {
	query := queries.NewGetOpenPackagesQuery()

	packages, err := s.getOpenPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]openPackageResponse, len(packages))
	for i, pkg := range packages {
		response[i] = toOpenPackageResponse(pkg)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCourier handles GET /api/v1/couriers/:principal.
func (s *Server) GetCourier(ctx echo.Context) error {
	principal, err := principalParam(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCourierQuery(principal)
	if err != nil {
		return err
	}

	courier, err := s.getCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toCourierResponse(courier))
}

// GetCourierPackages handles GET /api/v1/couriers/:principal/packages.
func (s *Server) GetCourierPackages(ctx echo.Context) error {
	principal, err := principalParam(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCourierPackagesQuery(principal)
	if err != nil {
		return err
	}

	packages, err := s.getCourierPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]courierPackageResponse, len(packages))
	for i, pkg := range packages {
		response[i] = toCourierPackageResponse(pkg)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDispute handles GET /api/v1/packages/:id/dispute.
func (s *Server) GetDispute(ctx echo.Context) error {
	packageID, err := packageIDParam(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDisputeQuery(packageID)
	if err != nil {
		return err
	}

	dispute, err := s.getDisputeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toDisputeResponse(dispute))
}

func packageIDParam(ctx echo.Context) (uint64, error) {
	packageID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid package id")
	}
	return packageID, nil
}

func principalParam(ctx echo.Context) (kernel.Principal, error) {
	principal, err := kernel.NewPrincipal(ctx.Param("principal"))
	if err != nil {
		return kernel.Principal{}, echo.NewHTTPError(http.StatusBadRequest, "invalid principal")
	}
	return principal, nil
}
