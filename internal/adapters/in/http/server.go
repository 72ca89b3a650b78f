// Package http exposes the REST API. Handlers are thin: bind and validate the
// wire DTO, build a command or query, delegate to the application layer and
// translate the outcome (RFC 7807 problems for errors).
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"brewery/internal/core/application/usecases/commands"
	"brewery/internal/core/application/usecases/queries"
	"brewery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the application-layer entry points the server exposes.
type Handlers struct {
	PlaceBeerOrder commands.PlaceBeerOrderCommandHandler
	CreateBeer     commands.CreateBeerCommandHandler
	UpdateBeer     commands.UpdateBeerCommandHandler
	DeleteBeer     commands.DeleteBeerCommandHandler
	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler

	GetBeerOrder    queries.GetBeerOrderQueryHandler
	GetBeer         queries.GetBeerQueryHandler
	GetAllBeers     queries.GetAllBeersQueryHandler
	GetCustomer     queries.GetCustomerQueryHandler
	GetAllCustomers queries.GetAllCustomersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates the HTTP server over the given application handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterRoutes binds all API routes on the given echo instance and installs
// the request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/beer-orders", s.PlaceBeerOrder)
	api.GET("/beer-orders/:id", s.GetBeerOrder)

	api.POST("/beers", s.CreateBeer)
	api.GET("/beers", s.GetAllBeers)
	api.GET("/beers/:id", s.GetBeer)
	api.PUT("/beers/:id", s.UpdateBeer)
	api.DELETE("/beers/:id", s.DeleteBeer)

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.GetAllCustomers)
	api.GET("/customers/:id", s.GetCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// PlaceBeerOrder handles POST /api/v1/beer-orders.
func (s *Server) PlaceBeerOrder(ctx echo.Context) error {
	var req placeBeerOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItem{BeerID: item.BeerID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceBeerOrderCommand(req.CustomerRef, items)
	if err != nil {
		return s.problem(ctx, err)
	}

	order, err := s.handlers.PlaceBeerOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	view, err := queries.NewBeerOrderResponse(order)
	if err != nil {
		return s.problem(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/v1/beer-orders/%d", view.ID))
	return ctx.JSON(http.StatusCreated, newBeerOrderResponse(view))
}

// GetBeerOrder handles GET /api/v1/beer-orders/:id.
func (s *Server) GetBeerOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.problem(ctx, err)
	}

	query, err := queries.NewGetBeerOrderQuery(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	view, err := s.handlers.GetBeerOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newBeerOrderResponse(view))
}

// CreateBeer handles POST /api/v1/beers.
func (s *Server) CreateBeer(ctx echo.Context) error {
	var req beerRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateBeerCommand(req.Name, req.Style, req.UPC, req.QuantityOnHand, req.Price)
	if err != nil {
		return s.problem(ctx, err)
	}

	b, err := s.handlers.CreateBeer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	view := queries.NewBeerResponse(b)
	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/v1/beers/%d", view.ID))
	return ctx.JSON(http.StatusCreated, newBeerResponse(view))
}

// GetAllBeers handles GET /api/v1/beers.
func (s *Server) GetAllBeers(ctx echo.Context) error {
	views, err := s.handlers.GetAllBeers.Handle(ctx.Request().Context(), queries.NewGetAllBeersQuery())
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]beerResponse, 0, len(views))
	for _, view := range views {
		response = append(response, newBeerResponse(view))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetBeer handles GET /api/v1/beers/:id.
func (s *Server) GetBeer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.problem(ctx, err)
	}

	query, err := queries.NewGetBeerQuery(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	view, err := s.handlers.GetBeer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newBeerResponse(view))
}

// UpdateBeer handles PUT /api/v1/beers/:id.
func (s *Server) UpdateBeer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.problem(ctx, err)
	}

	var req beerRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateBeerCommand(id, req.Name, req.Style, req.UPC, req.QuantityOnHand, req.Price)
	if err != nil {
		return s.problem(ctx, err)
	}

	b, err := s.handlers.UpdateBeer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newBeerResponse(queries.NewBeerResponse(b)))
}

// DeleteBeer handles DELETE /api/v1/beers/:id.
func (s *Server) DeleteBeer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewDeleteBeerCommand(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.handlers.DeleteBeer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req customerRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(customerDetailsFromRequest(req))
	if err != nil {
		return s.problem(ctx, err)
	}

	c, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	view := queries.NewCustomerResponse(c)
	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/v1/customers/%d", view.ID))
	return ctx.JSON(http.StatusCreated, newCustomerResponse(view))
}

// GetAllCustomers handles GET /api/v1/customers.
func (s *Server) GetAllCustomers(ctx echo.Context) error {
	views, err := s.handlers.GetAllCustomers.Handle(
		ctx.Request().Context(), queries.NewGetAllCustomersQuery())
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]customerResponse, 0, len(views))
	for _, view := range views {
		response = append(response, newCustomerResponse(view))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.problem(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	view, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCustomerResponse(view))
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.problem(ctx, err)
	}

	var req customerRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, customerDetailsFromRequest(req))
	if err != nil {
		return s.problem(ctx, err)
	}

	c, err := s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCustomerResponse(queries.NewCustomerResponse(c)))
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// problem translates an application error into an RFC 7807 response.
// Server-side failures are logged; client errors are not.
func (s *Server) problem(ctx echo.Context, err error) error {
	status, p := problemFromError(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
	}
	return ctx.JSON(status, p)
}

// bindAndValidate binds the request body and runs struct tag validation,
// writing a 400 problem on failure.
func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			newProblem(http.StatusBadRequest, "Bad Request", "invalid request body"))
	}
	if err := ctx.Validate(req); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			newProblem(http.StatusBadRequest, "Bad Request", err.Error()))
	}
	return nil
}

// pathID parses the :id path parameter as a positive integer.
func pathID(ctx echo.Context) (int, error) {
	raw := ctx.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%q is not a valid id", raw))
	}
	return id, nil
}

func customerDetailsFromRequest(req customerRequest) commands.CustomerDetails {
	return commands.CustomerDetails{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
	}
}
