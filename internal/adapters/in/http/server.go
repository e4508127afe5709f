package http

import (
	"errors"
	"net/http"

	"escrow/internal/adapters/out/paymentsim"
	"escrow/internal/core/application/usecases/commands"
	"escrow/internal/core/application/usecases/queries"
	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/core/domain/model/vendors"
	"escrow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the vendor dashboard and the client payment page over
// HTTP. It coordinates between echo handlers and application use cases.
type Server struct {
	// Command handlers
	createPaymentLinkHandler     commands.CreatePaymentLinkCommandHandler
	agreeToTermsHandler          commands.AgreeToTermsCommandHandler
	startProductionHandler       commands.StartProductionCommandHandler
	completeOrderHandler         commands.CompleteOrderCommandHandler
	markNotificationsReadHandler commands.MarkNotificationsReadCommandHandler
	clearNotificationsHandler    commands.ClearNotificationsCommandHandler
	saveVendorProfileHandler     commands.SaveVendorProfileCommandHandler
	subscribeHandler             commands.SubscribeCommandHandler
	loginHandler                 commands.LoginCommandHandler
	logoutHandler                commands.LogoutCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getEarningsHandler      queries.GetEarningsQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler
	getVendorProfileHandler queries.GetVendorProfileQueryHandler

	// Client payments run through the simulated processor.
	processor *paymentsim.Processor
}

// NewServer creates an HTTP server with the required command and query
// handlers and the payment processor used by the client payment page.
func NewServer(
	createPaymentLinkHandler commands.CreatePaymentLinkCommandHandler,
	agreeToTermsHandler commands.AgreeToTermsCommandHandler,
	startProductionHandler commands.StartProductionCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	markNotificationsReadHandler commands.MarkNotificationsReadCommandHandler,
	clearNotificationsHandler commands.ClearNotificationsCommandHandler,
	saveVendorProfileHandler commands.SaveVendorProfileCommandHandler,
	subscribeHandler commands.SubscribeCommandHandler,
	loginHandler commands.LoginCommandHandler,
	logoutHandler commands.LogoutCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getEarningsHandler queries.GetEarningsQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	getVendorProfileHandler queries.GetVendorProfileQueryHandler,
	processor *paymentsim.Processor,
) *Server {
	return &Server{
		createPaymentLinkHandler:     createPaymentLinkHandler,
		agreeToTermsHandler:          agreeToTermsHandler,
		startProductionHandler:       startProductionHandler,
		completeOrderHandler:         completeOrderHandler,
		markNotificationsReadHandler: markNotificationsReadHandler,
		clearNotificationsHandler:    clearNotificationsHandler,
		saveVendorProfileHandler:     saveVendorProfileHandler,
		subscribeHandler:             subscribeHandler,
		loginHandler:                 loginHandler,
		logoutHandler:                logoutHandler,
		getOrdersHandler:             getOrdersHandler,
		getOrderHandler:              getOrderHandler,
		getEarningsHandler:           getEarningsHandler,
		getNotificationsHandler:      getNotificationsHandler,
		getVendorProfileHandler:      getVendorProfileHandler,
		processor:                    processor,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	// Vendor dashboard
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/start-production", s.StartProduction)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.GET("/earnings", s.GetEarnings)
	api.GET("/notifications", s.GetNotifications)
	api.POST("/notifications/read", s.MarkNotificationsRead)
	api.DELETE("/notifications", s.ClearNotifications)
	api.GET("/profile", s.GetProfile)
	api.PUT("/profile", s.SaveProfile)
	api.GET("/plans", s.GetPlans)
	api.POST("/subscribe", s.Subscribe)
	api.POST("/login", s.Login)
	api.POST("/logout", s.Logout)

	// Client payment page
	api.GET("/pay/:orderId", s.GetPaymentPage)
	api.POST("/pay/:orderId/advance", s.BeginAdvancePayment)
	api.POST("/pay/:orderId/agree", s.AgreeToTerms)
	api.POST("/pay/:orderId/final", s.BeginFinalPayment)
	api.GET("/pay/:orderId/payment-status", s.GetPaymentStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateOrder handles POST /api/v1/orders - creates a payment link.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreatePaymentLinkCommand(
		orderID,
		req.ClientName, req.ClientPhone, req.ServiceType,
		req.TotalAmount, req.AdvancePercentage,
		req.ProductionDeadlineDays,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createPaymentLinkHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders with optional
// search, status filter, and sort mode.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(
		ctx.QueryParam("search"),
		statusFilter,
		queries.Sort(ctx.QueryParam("sort")),
	)
	if err != nil {
		return badRequest(ctx, "Invalid query parameters: "+err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, resp := range orders {
		response[i] = toOrderModel(resp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	resp, err := s.fetchOrder(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderModel(resp))
}

// StartProduction handles POST /api/v1/orders/:orderId/start-production.
// Releases the escrowed advance and starts the deadline clock.
func (s *Server) StartProduction(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewStartProductionCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.startProductionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete - marks
// production finished with the proof photos.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CompleteOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, req.Photos)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetEarnings handles GET /api/v1/earnings.
func (s *Server) GetEarnings(ctx echo.Context) error {
	resp, err := s.getEarningsHandler.Handle(ctx.Request().Context(), queries.NewGetEarningsQuery())
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Earnings{
		TotalEarnings:   resp.TotalEarnings.StringFixed(2),
		PendingEarnings: resp.PendingEarnings.StringFixed(2),
		ReservedFunds:   resp.ReservedFunds.StringFixed(2),
		ActiveOrders:    resp.ActiveOrders,
	})
}

// GetNotifications handles GET /api/v1/notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	resp, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), queries.NewGetNotificationsQuery())
	if err != nil {
		return commandError(ctx, err)
	}

	feed := NotificationFeed{
		Notifications: make([]Notification, len(resp.Notifications)),
		UnreadCount:   resp.UnreadCount,
	}
	for i, n := range resp.Notifications {
		feed.Notifications[i] = Notification{
			ID:        n.ID.String(),
			OrderID:   n.OrderID.String(),
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
			Read:      n.Read,
		}
	}

	return ctx.JSON(http.StatusOK, feed)
}

// MarkNotificationsRead handles POST /api/v1/notifications/read.
func (s *Server) MarkNotificationsRead(ctx echo.Context) error {
	if err := s.markNotificationsReadHandler.Handle(ctx.Request().Context()); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ClearNotifications handles DELETE /api/v1/notifications.
func (s *Server) ClearNotifications(ctx echo.Context) error {
	if err := s.clearNotificationsHandler.Handle(ctx.Request().Context()); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	resp, err := s.getVendorProfileHandler.Handle(ctx.Request().Context(), queries.NewGetVendorProfileQuery())
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Profile{
		Name:             resp.Name,
		Email:            resp.Email,
		Phone:            resp.Phone,
		BusinessName:     resp.BusinessName,
		SubscriptionPlan: string(resp.SubscriptionPlan),
		LoggedIn:         resp.LoggedIn,
	})
}

// SaveProfile handles PUT /api/v1/profile.
func (s *Server) SaveProfile(ctx echo.Context) error {
	var req SaveProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSaveVendorProfileCommand(req.Name, req.Email, req.Phone, req.BusinessName)
	if err != nil {
		return badRequest(ctx, "Invalid profile data: "+err.Error())
	}

	if err := s.saveVendorProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPlans handles GET /api/v1/plans - the static subscription catalog.
func (s *Server) GetPlans(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, toPlanModels(vendors.Plans()))
}

// Subscribe handles POST /api/v1/subscribe.
func (s *Server) Subscribe(ctx echo.Context) error {
	var req SubscribeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubscribeCommand(vendors.SubscriptionPlan(req.Plan))
	if err != nil {
		return badRequest(ctx, "Invalid plan: "+err.Error())
	}

	if err := s.subscribeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Login handles POST /api/v1/login - the placeholder login that seeds a
// default profile on first use.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Username)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.loginHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Logout handles POST /api/v1/logout.
func (s *Server) Logout(ctx echo.Context) error {
	if err := s.logoutHandler.Handle(ctx.Request().Context()); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetPaymentPage handles GET /api/v1/pay/:orderId - the order snapshot
// shown on the client payment page.
func (s *Server) GetPaymentPage(ctx echo.Context) error {
	resp, err := s.fetchOrder(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderModel(resp))
}

// BeginAdvancePayment handles POST /api/v1/pay/:orderId/advance - starts
// a simulated advance payment. The payment is accepted for processing and
// settles asynchronously.
func (s *Server) BeginAdvancePayment(ctx echo.Context) error {
	resp, err := s.fetchOrder(ctx)
	if err != nil {
		return err
	}

	if resp.Status != order.PendingPayment || resp.AdvancePaymentAt != nil {
		return conflict(ctx, "Advance payment is not available for this order")
	}

	if err := s.processor.Begin(resp.ID, paymentsim.KindAdvance); err != nil {
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(http.StatusAccepted, PaymentStatus{
		Kind:  string(paymentsim.KindAdvance),
		State: string(paymentsim.StatePending),
	})
}

// AgreeToTerms handles POST /api/v1/pay/:orderId/agree - records the
// client's consent and reserves the paid advance.
func (s *Server) AgreeToTerms(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAgreeToTermsCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.agreeToTermsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BeginFinalPayment handles POST /api/v1/pay/:orderId/final - starts a
// simulated final payment for a finished order.
func (s *Server) BeginFinalPayment(ctx echo.Context) error {
	resp, err := s.fetchOrder(ctx)
	if err != nil {
		return err
	}

	if resp.Status != order.FinalPaymentPending {
		return conflict(ctx, "Final payment is not available for this order")
	}

	if err := s.processor.Begin(resp.ID, paymentsim.KindFinal); err != nil {
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(http.StatusAccepted, PaymentStatus{
		Kind:  string(paymentsim.KindFinal),
		State: string(paymentsim.StatePending),
	})
}

// GetPaymentStatus handles GET /api/v1/pay/:orderId/payment-status - the
// client page polls this while a payment settles.
func (s *Server) GetPaymentStatus(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	kind := paymentsim.Kind(ctx.QueryParam("kind"))
	if err := kind.Validate(); err != nil {
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(http.StatusOK, PaymentStatus{
		Kind:  string(kind),
		State: string(s.processor.Status(orderID, kind)),
	})
}

// fetchOrder loads the order addressed by the :orderId path parameter.
// On failure it writes the error response and returns the written error,
// so callers can return it directly.
func (s *Server) fetchOrder(ctx echo.Context) (queries.OrderResponse, error) {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return queries.OrderResponse{}, badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderResponse{}, badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queries.OrderResponse{}, commandError(ctx, err)
	}

	return resp, nil
}

func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderId"))
}

// commandError maps a use case failure to an HTTP response. Missing
// aggregates map to 404, state conflicts (illegal transitions, stale
// optimistic updates) map to 409, anything else to 500.
func commandError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, order.ErrAdvanceAlreadyPaid),
		errors.Is(err, order.ErrAdvanceNotPaid),
		errors.Is(err, order.ErrConsentAlreadyGranted):
		code = http.StatusConflict
	}
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, Error{
		Code:    http.StatusConflict,
		Message: message,
	})
}
