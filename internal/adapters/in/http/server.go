// Package http exposes the marketplace over a JSON REST API.
// Request bodies are validated structurally here; business rules and
// authority checks live in the application and domain layers.
package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Cientista-Avogadro/docampo/internal/core/application/usecases/commands"
	"github.com/Cientista-Avogadro/docampo/internal/core/application/usecases/queries"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// RequestValidator adapts go-playground/validator to echo's Validator interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for request body tags.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate runs struct tag validation on a bound request body.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler       commands.RegisterUserCommandHandler
	updateProfileHandler      commands.UpdateProfileCommandHandler
	createProductHandler      commands.CreateProductCommandHandler
	updateProductHandler      commands.UpdateProductCommandHandler
	checkoutHandler           commands.CheckoutCommandHandler
	advanceFulfillmentHandler commands.AdvanceFulfillmentCommandHandler
	acceptDeliveryHandler     commands.AcceptDeliveryCommandHandler
	startDeliveryHandler      commands.StartDeliveryCommandHandler
	completeDeliveryHandler   commands.CompleteDeliveryCommandHandler

	// Query handlers
	authenticateHandler            queries.AuthenticateQueryHandler
	getPartyOrdersHandler          queries.GetPartyOrdersQueryHandler
	getUnassignedDeliveriesHandler queries.GetUnassignedDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	updateProfileHandler commands.UpdateProfileCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	advanceFulfillmentHandler commands.AdvanceFulfillmentCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	authenticateHandler queries.AuthenticateQueryHandler,
	getPartyOrdersHandler queries.GetPartyOrdersQueryHandler,
	getUnassignedDeliveriesHandler queries.GetUnassignedDeliveriesQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:            registerUserHandler,
		updateProfileHandler:           updateProfileHandler,
		createProductHandler:           createProductHandler,
		updateProductHandler:           updateProductHandler,
		checkoutHandler:                checkoutHandler,
		advanceFulfillmentHandler:      advanceFulfillmentHandler,
		acceptDeliveryHandler:          acceptDeliveryHandler,
		startDeliveryHandler:           startDeliveryHandler,
		completeDeliveryHandler:        completeDeliveryHandler,
		authenticateHandler:            authenticateHandler,
		getPartyOrdersHandler:          getPartyOrdersHandler,
		getUnassignedDeliveriesHandler: getUnassignedDeliveriesHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/users", s.RegisterUser)
	api.PUT("/users/:id", s.UpdateProfile)
	api.POST("/auth/login", s.Login)

	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id", s.UpdateProduct)

	api.POST("/checkout", s.Checkout)
	api.PATCH("/orders/:id/status", s.AdvanceFulfillment)
	api.GET("/orders", s.GetPartyOrders)

	api.GET("/deliveries/unassigned", s.GetUnassignedDeliveries)
	api.POST("/orders/:id/delivery/claim", s.ClaimDelivery)
	api.POST("/orders/:id/delivery/start", s.StartDelivery)
	api.POST("/orders/:id/delivery/complete", s.CompleteDelivery)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterUser handles POST /api/v1/users - creates an account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request RegisterUserRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	role, err := user.RoleFromString(request.Role)
	if err != nil {
		return errorResponse(ctx, err)
	}

	address, err := optionalAddress(request.Address)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(
		request.Name, request.Email, request.Password, role, request.Phone, address,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	userID, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: userID.String()})
}

// Login handles POST /api/v1/auth/login - verifies credentials.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	query, err := queries.NewAuthenticateQuery(request.Email, request.Password)
	if err != nil {
		return errorResponse(ctx, err)
	}

	account, err := s.authenticateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		UserID: account.UserID.String(),
		Name:   account.Name,
		Role:   account.Role.String(),
	})
}

// UpdateProfile handles PUT /api/v1/users/:id - updates account data.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	userID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request UpdateProfileRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return err
	}

	address, err := optionalAddress(request.Address)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateProfileCommand(userID, request.Name, request.Phone, address)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products - publishes a listing.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	vendorID, err := parseUUID(request.VendorID, "vendor_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	price, err := kernel.NewMoney(request.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(
		vendorID, request.Name, request.Description, price,
		request.Category, request.Stock, request.Images,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	productID, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// UpdateProduct handles PUT /api/v1/products/:id - edits a listing.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request UpdateProductRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return err
	}

	actorID, err := parseUUID(request.ActorID, "actor_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	price, err := kernel.NewMoney(request.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, actorID, request.Name, request.Description, price,
		request.Category, request.Stock, request.Images,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout - turns the cart into orders.
func (s *Server) Checkout(ctx echo.Context) error {
	var request CheckoutRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	buyerID, err := parseUUID(request.BuyerID, "buyer_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]commands.CheckoutItem, 0, len(request.Items))
	for _, item := range request.Items {
		productID, itemErr := parseUUID(item.ProductID, "product_id")
		if itemErr != nil {
			return errorResponse(ctx, itemErr)
		}
		items = append(items, commands.CheckoutItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	paymentMethod, err := order.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCheckoutCommand(
		buyerID, items, request.Street, request.City, request.PostalCode,
		paymentMethod, request.WantsDelivery,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderIDs, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := CheckoutResponse{OrderIDs: make([]string, 0, len(orderIDs))}
	for _, orderID := range orderIDs {
		response.OrderIDs = append(response.OrderIDs, orderID.String())
	}

	return ctx.JSON(http.StatusCreated, response)
}

// AdvanceFulfillment handles PATCH /api/v1/orders/:id/status - moves an order
// along its fulfillment axis (accept, start transit, confirm receipt, cancel).
func (s *Server) AdvanceFulfillment(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request AdvanceFulfillmentRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return err
	}

	actorID, err := parseUUID(request.ActorID, "actor_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	target, err := order.StatusFromString(request.Target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdvanceFulfillmentCommand(orderID, actorID, target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.advanceFulfillmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPartyOrders handles GET /api/v1/orders - lists the orders a party is
// involved in, newest first.
func (s *Server) GetPartyOrders(ctx echo.Context) error {
	partyID, err := parseUUID(ctx.QueryParam("party_id"), "party_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	role, err := user.RoleFromString(ctx.QueryParam("role"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetPartyOrdersQuery(partyID, role)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows, err := s.getPartyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]PartyOrderResponse, len(rows))
	for i, row := range rows {
		var deliveryStatus *string
		if row.DeliveryStatus != nil {
			status := row.DeliveryStatus.String()
			deliveryStatus = &status
		}

		response[i] = PartyOrderResponse{
			OrderID:            row.OrderID.String(),
			Status:             row.Status.String(),
			DeliveryStatus:     deliveryStatus,
			Counterparty:       row.CounterpartyName,
			Subtotal:           row.Subtotal.Amount(),
			DeliveryCommission: row.DeliveryCommission.Amount(),
			CreatedAt:          row.CreatedAt,
			DeliveredAt:        row.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnassignedDeliveries handles GET /api/v1/deliveries/unassigned - the
// open pool of delivery jobs intermediaries can claim.
func (s *Server) GetUnassignedDeliveries(ctx echo.Context) error {
	query := queries.NewGetUnassignedDeliveriesQuery()

	rows, err := s.getUnassignedDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]UnassignedDeliveryResponse, len(rows))
	for i, row := range rows {
		response[i] = UnassignedDeliveryResponse{
			OrderID:    row.OrderID.String(),
			VendorName: row.VendorName,
			DeliveryAddress: AddressResponse{
				Street:     row.DeliveryAddress.Street(),
				City:       row.DeliveryAddress.City(),
				PostalCode: row.DeliveryAddress.PostalCode(),
			},
			Subtotal:           row.Subtotal.Amount(),
			DeliveryCommission: row.DeliveryCommission.Amount(),
			CreatedAt:          row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimDelivery handles POST /api/v1/orders/:id/delivery/claim - assigns the
// delivery to the calling intermediary. Exactly one claimant wins; the rest
// receive a conflict.
func (s *Server) ClaimDelivery(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ClaimDeliveryRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return err
	}

	intermediaryID, err := parseUUID(request.IntermediaryID, "intermediary_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAcceptDeliveryCommand(orderID, intermediaryID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles POST /api/v1/orders/:id/delivery/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request DeliveryActionRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return err
	}

	actorID, err := parseUUID(request.ActorID, "actor_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewStartDeliveryCommand(orderID, actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/delivery/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request DeliveryActionRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return err
	}

	actorID, err := parseUUID(request.ActorID, "actor_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bindAndValidate decodes the request body and runs struct tag validation.
// On failure it writes the error response itself and returns the written error.
func bindAndValidate(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	if err := ctx.Validate(request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return nil
}

// parseUUID parses a path, query, or body identifier so that malformed
// input surfaces as a bad request rather than an internal error.
func parseUUID(value, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// optionalAddress converts an optional address body to a kernel address.
func optionalAddress(request *AddressRequest) (*kernel.Address, error) {
	if request == nil {
		return nil, nil
	}

	address, err := kernel.NewAddress(request.Street, request.City, request.PostalCode)
	if err != nil {
		return nil, err
	}

	return &address, nil
}
