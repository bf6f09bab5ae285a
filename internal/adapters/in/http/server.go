// Package http exposes the order-management API over echo. Handlers stay
// thin: bind the request, build a command or query, hand it to the use case,
// translate the outcome.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fastdelivery/internal/core/application/usecases/commands"
	"fastdelivery/internal/core/application/usecases/queries"
	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/ports"
)

// Server coordinates between the HTTP surface and the application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	approveOrderHandler commands.ApproveOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler

	createStoreHandler    commands.CreateStoreCommandHandler
	setStoreStatusHandler commands.SetStoreStatusCommandHandler
	deleteStoreHandler    commands.DeleteStoreCommandHandler

	createCourierHandler          commands.CreateCourierCommandHandler
	setCourierAvailabilityHandler commands.SetCourierAvailabilityCommandHandler
	deleteCourierHandler          commands.DeleteCourierCommandHandler

	listOrdersHandler            queries.ListOrdersQueryHandler
	listStoresHandler            queries.ListStoresQueryHandler
	findStoreByNameHandler       queries.FindStoreByNameQueryHandler
	listAvailableCouriersHandler queries.ListAvailableCouriersQueryHandler
	authenticateUserHandler      queries.AuthenticateUserQueryHandler

	sessions    ports.SessionStore
	logger      *slog.Logger
	development bool
}

// Handlers bundles the use case handlers the server depends on.
type Handlers struct {
	CreateOrder  commands.CreateOrderCommandHandler
	ApproveOrder commands.ApproveOrderCommandHandler
	DeliverOrder commands.DeliverOrderCommandHandler
	DeleteOrder  commands.DeleteOrderCommandHandler

	CreateStore    commands.CreateStoreCommandHandler
	SetStoreStatus commands.SetStoreStatusCommandHandler
	DeleteStore    commands.DeleteStoreCommandHandler

	CreateCourier          commands.CreateCourierCommandHandler
	SetCourierAvailability commands.SetCourierAvailabilityCommandHandler
	DeleteCourier          commands.DeleteCourierCommandHandler

	ListOrders            queries.ListOrdersQueryHandler
	ListStores            queries.ListStoresQueryHandler
	FindStoreByName       queries.FindStoreByNameQueryHandler
	ListAvailableCouriers queries.ListAvailableCouriersQueryHandler
	AuthenticateUser      queries.AuthenticateUserQueryHandler
}

// NewServer creates an HTTP server. development controls whether 500
// responses expose the underlying error message.
func NewServer(h Handlers, sessions ports.SessionStore, logger *slog.Logger, development bool) *Server {
	return &Server{
		createOrderHandler:            h.CreateOrder,
		approveOrderHandler:           h.ApproveOrder,
		deliverOrderHandler:           h.DeliverOrder,
		deleteOrderHandler:            h.DeleteOrder,
		createStoreHandler:            h.CreateStore,
		setStoreStatusHandler:         h.SetStoreStatus,
		deleteStoreHandler:            h.DeleteStore,
		createCourierHandler:          h.CreateCourier,
		setCourierAvailabilityHandler: h.SetCourierAvailability,
		deleteCourierHandler:          h.DeleteCourier,
		listOrdersHandler:             h.ListOrders,
		listStoresHandler:             h.ListStores,
		findStoreByNameHandler:        h.FindStoreByName,
		listAvailableCouriersHandler:  h.ListAvailableCouriers,
		authenticateUserHandler:       h.AuthenticateUser,
		sessions:                      sessions,
		logger:                        logger,
		development:                   development,
	}
}

// RegisterRoutes wires the route table onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	authenticated := sessionAuth(s.sessions)

	e.GET("/", s.Index)
	e.GET("/health", s.Health)

	e.POST("/api/auth/login", s.Login)
	e.POST("/api/auth/logout", s.Logout, authenticated)
	e.GET("/api/auth/me", s.Me, authenticated)

	e.GET("/api/stores", s.ListStores)
	e.POST("/api/stores", s.CreateStore, authenticated)
	e.GET("/api/stores/search", s.FindStoreByName)
	e.PATCH("/api/stores/:name/status", s.SetStoreStatus, authenticated)
	e.DELETE("/api/stores/:id", s.DeleteStore, authenticated)

	e.GET("/api/couriers/available", s.ListAvailableCouriers)
	e.POST("/api/couriers", s.CreateCourier, authenticated)
	e.PATCH("/api/couriers/:id/availability", s.SetCourierAvailability, authenticated)
	e.DELETE("/api/couriers/:id", s.DeleteCourier, authenticated)

	e.GET("/api/orders", s.ListOrders)
	e.POST("/api/orders", s.CreateOrder)
	e.POST("/api/orders/:id/approve", s.ApproveOrder, authenticated)
	e.POST("/api/orders/:id/deliver", s.DeliverOrder, authenticated)
	e.DELETE("/api/orders/:id", s.DeleteOrder, authenticated)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, errorEnvelope{Error: "route not found"})
	})
}

// Index handles GET / with a minimal API index document.
func (s *Server) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"name": "fastdelivery",
		"endpoints": []string{
			"/api/auth", "/api/stores", "/api/couriers", "/api/orders",
		},
	})
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	query, err := queries.NewAuthenticateUserQuery(req.Username, req.Password)
	if err != nil {
		return s.writeError(c, "auth.login", err)
	}

	identity, err := s.authenticateUserHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, "auth.login", err)
	}

	token, err := s.sessions.Create(c.Request().Context(), ports.Identity{
		ID:       identity.ID.String(),
		Username: identity.Username,
		Role:     identity.Role,
	})
	if err != nil {
		return s.writeError(c, "auth.login", err)
	}

	c.SetCookie(newSessionCookie(token, time.Now().Add(SessionTTL)))
	return c.JSON(http.StatusOK, userEnvelope{User: userFromAuthResponse(identity)})
}

// Logout handles POST /api/auth/logout. The server-side session is destroyed
// and the cookie expired.
func (s *Server) Logout(c echo.Context) error {
	cookie, err := c.Cookie(SessionCookieName)
	if err == nil {
		if delErr := s.sessions.Delete(c.Request().Context(), cookie.Value); delErr != nil {
			return s.writeError(c, "auth.logout", delErr)
		}
	}

	c.SetCookie(newSessionCookie("", time.Unix(0, 0)))
	return c.JSON(http.StatusOK, messageEnvelope{Message: "logged out"})
}

// Me handles GET /api/auth/me.
func (s *Server) Me(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorEnvelope{Error: "authentication required"})
	}
	return c.JSON(http.StatusOK, userEnvelope{User: userFromIdentity(identity)})
}

// ListStores handles GET /api/stores.
func (s *Server) ListStores(c echo.Context) error {
	stores, err := s.listStoresHandler.Handle(c.Request().Context(), queries.NewListStoresQuery())
	if err != nil {
		return s.writeError(c, "stores.list", err)
	}

	response := make([]storeJSON, 0, len(stores))
	for _, resp := range stores {
		response = append(response, storeFromQueryResponse(resp))
	}
	return c.JSON(http.StatusOK, storesEnvelope{Stores: response})
}

// CreateStore handles POST /api/stores.
func (s *Server) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateStoreCommand(kernel.NewUUID(), req.Name, req.Category, req.Address)
	if err != nil {
		return s.writeError(c, "stores.create", err)
	}

	created, err := s.createStoreHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, "stores.create", err)
	}

	return c.JSON(http.StatusCreated, storeEnvelope{Store: storeFromAggregate(created)})
}

// FindStoreByName handles GET /api/stores/search?name=.
func (s *Server) FindStoreByName(c echo.Context) error {
	query, err := queries.NewFindStoreByNameQuery(c.QueryParam("name"))
	if err != nil {
		return s.writeError(c, "stores.search", err)
	}

	found, err := s.findStoreByNameHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, "stores.search", err)
	}

	return c.JSON(http.StatusOK, storeEnvelope{Store: storeFromQueryResponse(found)})
}

// SetStoreStatus handles PATCH /api/stores/:name/status.
func (s *Server) SetStoreStatus(c echo.Context) error {
	var req storeStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.IsOpen == nil {
		return badRequest(c, "isOpen must be a boolean")
	}

	cmd, err := commands.NewSetStoreStatusCommand(c.Param("name"), *req.IsOpen)
	if err != nil {
		return s.writeError(c, "stores.setStatus", err)
	}

	updated, err := s.setStoreStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, "stores.setStatus", err)
	}

	return c.JSON(http.StatusOK, storeEnvelope{
		Store:   storeFromAggregate(updated),
		Message: "store status updated",
	})
}

// DeleteStore handles DELETE /api/stores/:id.
func (s *Server) DeleteStore(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, "stores.delete", err)
	}

	cmd, err := commands.NewDeleteStoreCommand(id)
	if err != nil {
		return s.writeError(c, "stores.delete", err)
	}

	if err = s.deleteStoreHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, "stores.delete", err)
	}

	return c.JSON(http.StatusOK, messageEnvelope{Message: "store deleted"})
}

// ListAvailableCouriers handles GET /api/couriers/available.
func (s *Server) ListAvailableCouriers(c echo.Context) error {
	couriers, err := s.listAvailableCouriersHandler.Handle(
		c.Request().Context(), queries.NewListAvailableCouriersQuery(),
	)
	if err != nil {
		return s.writeError(c, "couriers.listAvailable", err)
	}

	response := make([]courierJSON, 0, len(couriers))
	for _, resp := range couriers {
		response = append(response, courierFromQueryResponse(resp))
	}
	return c.JSON(http.StatusOK, couriersEnvelope{Couriers: response})
}

// CreateCourier handles POST /api/couriers.
func (s *Server) CreateCourier(c echo.Context) error {
	var req createCourierRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), req.Name, req.Vehicle)
	if err != nil {
		return s.writeError(c, "couriers.create", err)
	}

	created, err := s.createCourierHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, "couriers.create", err)
	}

	return c.JSON(http.StatusCreated, courierEnvelope{Courier: courierFromAggregate(created)})
}

// SetCourierAvailability handles PATCH /api/couriers/:id/availability.
func (s *Server) SetCourierAvailability(c echo.Context) error {
	var req courierAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Available == nil {
		return badRequest(c, "available must be a boolean")
	}

	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, "couriers.setAvailability", err)
	}

	cmd, err := commands.NewSetCourierAvailabilityCommand(id, *req.Available)
	if err != nil {
		return s.writeError(c, "couriers.setAvailability", err)
	}

	updated, err := s.setCourierAvailabilityHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, "couriers.setAvailability", err)
	}

	return c.JSON(http.StatusOK, courierEnvelope{
		Courier: courierFromAggregate(updated),
		Message: "courier availability updated",
	})
}

// DeleteCourier handles DELETE /api/couriers/:id.
func (s *Server) DeleteCourier(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, "couriers.delete", err)
	}

	cmd, err := commands.NewDeleteCourierCommand(id)
	if err != nil {
		return s.writeError(c, "couriers.delete", err)
	}

	if err = s.deleteCourierHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, "couriers.delete", err)
	}

	return c.JSON(http.StatusOK, messageEnvelope{Message: "courier deleted"})
}

// ListOrders handles GET /api/orders with an optional exact-match status filter.
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(
		c.Request().Context(), queries.NewListOrdersQuery(c.QueryParam("status")),
	)
	if err != nil {
		return s.writeError(c, "orders.list", err)
	}

	response := make([]orderJSON, 0, len(orders))
	for _, resp := range orders {
		response = append(response, orderFromQueryResponse(resp))
	}
	return c.JSON(http.StatusOK, ordersEnvelope{Orders: response})
}

// CreateOrder handles POST /api/orders. Order placement is the one mutating
// route open to unauthenticated customers.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemInput{
			Name:  item.Name,
			Qty:   item.Qty,
			Price: item.Price,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.StoreID, req.CustomerName, items)
	if err != nil {
		return s.writeError(c, "orders.create", err)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, "orders.create", err)
	}

	return c.JSON(http.StatusCreated, orderEnvelope{
		Order:   orderFromAggregate(created),
		Message: "order placed",
	})
}

// ApproveOrder handles POST /api/orders/:id/approve.
func (s *Server) ApproveOrder(c echo.Context) error {
	var req approveOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, "orders.approve", err)
	}

	cmd, err := commands.NewApproveOrderCommand(id, req.CourierID)
	if err != nil {
		return s.writeError(c, "orders.approve", err)
	}

	approved, err := s.approveOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, "orders.approve", err)
	}

	return c.JSON(http.StatusOK, orderEnvelope{
		Order:   orderFromAggregate(approved),
		Message: "order approved",
	})
}

// DeliverOrder handles POST /api/orders/:id/deliver.
func (s *Server) DeliverOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, "orders.deliver", err)
	}

	cmd, err := commands.NewDeliverOrderCommand(id)
	if err != nil {
		return s.writeError(c, "orders.deliver", err)
	}

	delivered, err := s.deliverOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, "orders.deliver", err)
	}

	return c.JSON(http.StatusOK, orderEnvelope{
		Order:   orderFromAggregate(delivered),
		Message: "order delivered",
	})
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, "orders.delete", err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.writeError(c, "orders.delete", err)
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, "orders.delete", err)
	}

	return c.JSON(http.StatusOK, messageEnvelope{Message: "order deleted"})
}
