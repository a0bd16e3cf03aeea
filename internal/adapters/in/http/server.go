package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/partner"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/sessions"
)

// roleHeader carries the acting role resolved by the identity collaborator.
// This service trusts it; authentication happens upstream.
const roleHeader = "X-Acting-Role"

// Server wires HTTP requests to the application's command and query
// handlers.
type Server struct {
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeStatusHandler      commands.ChangeOrderStatusCommandHandler
	pickupHandler            commands.PickupOrderCommandHandler
	availabilityHandler      commands.SetPartnerAvailabilityCommandHandler
	markPaidHandler          commands.MarkOrderPaidCommandHandler
	tableStatusHandler       commands.SetTableStatusCommandHandler
	kitchenQueueHandler      queries.GetKitchenQueueQueryHandler
	pickupQueueHandler       queries.GetPickupQueueQueryHandler
	partnerDeliveriesHandler queries.GetPartnerDeliveriesQueryHandler
	trackOrderHandler        queries.TrackOrderQueryHandler
	activeOrdersHandler      queries.GetActiveOrdersQueryHandler
	partnersBoardHandler     queries.GetPartnersBoardQueryHandler
	tablesHandler            queries.GetTablesQueryHandler
	deliveryCheckHandler     queries.CheckDeliveryAvailabilityQueryHandler
	sessionManager           *sessions.Manager
}

// NewServer creates the HTTP server facade.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	pickupHandler commands.PickupOrderCommandHandler,
	availabilityHandler commands.SetPartnerAvailabilityCommandHandler,
	markPaidHandler commands.MarkOrderPaidCommandHandler,
	tableStatusHandler commands.SetTableStatusCommandHandler,
	kitchenQueueHandler queries.GetKitchenQueueQueryHandler,
	pickupQueueHandler queries.GetPickupQueueQueryHandler,
	partnerDeliveriesHandler queries.GetPartnerDeliveriesQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	partnersBoardHandler queries.GetPartnersBoardQueryHandler,
	tablesHandler queries.GetTablesQueryHandler,
	deliveryCheckHandler queries.CheckDeliveryAvailabilityQueryHandler,
	sessionManager *sessions.Manager,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeStatusHandler:      changeStatusHandler,
		pickupHandler:            pickupHandler,
		availabilityHandler:      availabilityHandler,
		markPaidHandler:          markPaidHandler,
		tableStatusHandler:       tableStatusHandler,
		kitchenQueueHandler:      kitchenQueueHandler,
		pickupQueueHandler:       pickupQueueHandler,
		partnerDeliveriesHandler: partnerDeliveriesHandler,
		trackOrderHandler:        trackOrderHandler,
		activeOrdersHandler:      activeOrdersHandler,
		partnersBoardHandler:     partnersBoardHandler,
		tablesHandler:            tablesHandler,
		deliveryCheckHandler:     deliveryCheckHandler,
		sessionManager:           sessionManager,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.TrackOrder)
	v1.PUT("/orders/:id/status", s.ChangeOrderStatus)
	v1.PUT("/orders/:id/payment", s.MarkOrderPaid)
	v1.POST("/orders/:id/pickup", s.PickupOrder)

	v1.GET("/partners", s.GetPartners)
	v1.PUT("/partners/:id/availability", s.SetPartnerAvailability)
	v1.GET("/partners/:id/deliveries", s.GetPartnerDeliveries)

	v1.GET("/branches/:id/delivery-availability", s.CheckDeliveryAvailability)

	v1.GET("/tables", s.GetTables)
	v1.PUT("/tables/:id/status", s.SetTableStatus)

	v1.POST("/kitchen/session", s.OpenKitchenSession)
	v1.DELETE("/kitchen/session/:branchId", s.CloseKitchenSession)
	v1.GET("/kitchen/session/:branchId/alerts", s.GetKitchenAlerts)
	v1.POST("/kitchen/session/:branchId/alerts/:orderId/ack", s.AcknowledgeAlert)
	v1.PUT("/kitchen/session/:branchId/sound", s.SetKitchenSound)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	orderType, err := order.TypeFromString(req.OrderType)
	if err != nil {
		return s.respondError(ctx, err)
	}
	payMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return s.respondError(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return s.respondError(ctx, err)
		}
		lines = append(lines, commands.OrderLine{
			MenuItemID:     menuItemID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	var tableID *kernel.UUID
	if req.TableID != "" {
		id, err := kernel.UUIDFromString(req.TableID)
		if err != nil {
			return s.respondError(ctx, err)
		}
		tableID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, branchID, orderType, lines, req.TaxCents,
		order.Customer{Name: req.CustomerName, Phone: req.CustomerPhone, Email: req.CustomerEmail},
		req.DeliveryAddress, tableID, req.Instructions, payMethod,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlacedOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders?role=&branch_id= by slicing the
// store per role: kitchen sees its queue, delivery sees the claimable
// pickup queue, admin sees everything active.
func (s *Server) GetOrders(ctx echo.Context) error {
	branchID, err := kernel.UUIDFromString(ctx.QueryParam("branch_id"))
	if err != nil {
		return badRequest(ctx, "branch_id is required")
	}

	reqCtx := ctx.Request().Context()
	switch ctx.QueryParam("role") {
	case "kitchen":
		query, err := queries.NewGetKitchenQueueQuery(branchID)
		if err != nil {
			return s.respondError(ctx, err)
		}
		result, err := s.kitchenQueueHandler.Handle(reqCtx, query)
		if err != nil {
			return s.respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrderSummaries(result))
	case "delivery":
		query, err := queries.NewGetPickupQueueQuery(branchID)
		if err != nil {
			return s.respondError(ctx, err)
		}
		result, err := s.pickupQueueHandler.Handle(reqCtx, query)
		if err != nil {
			return s.respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrderSummaries(result))
	case "admin":
		query, err := queries.NewGetActiveOrdersQuery(branchID)
		if err != nil {
			return s.respondError(ctx, err)
		}
		result, err := s.activeOrdersHandler.Handle(reqCtx, query)
		if err != nil {
			return s.respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrderSummaries(result))
	default:
		return badRequest(ctx, "role must be one of kitchen, delivery, admin")
	}
}

// TrackOrder handles GET /api/v1/orders/:id.
func (s *Server) TrackOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTrackedOrder(result))
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}
	actor, err := kernel.RoleFromString(ctx.Request().Header.Get(roleHeader))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles PUT /api/v1/orders/:id/payment, the payment
// processor's settlement callback.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.markPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickupOrder handles POST /api/v1/orders/:id/pickup.
func (s *Server) PickupOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req PickupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewPickupOrderCommand(orderID, partnerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.pickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPartners handles GET /api/v1/partners?branch_id=.
func (s *Server) GetPartners(ctx echo.Context) error {
	branchID, err := kernel.UUIDFromString(ctx.QueryParam("branch_id"))
	if err != nil {
		return badRequest(ctx, "branch_id is required")
	}

	query, err := queries.NewGetPartnersBoardQuery(branchID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.partnersBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]PartnerResponse, len(result))
	for i, p := range result {
		response[i] = PartnerResponse{
			ID:             p.ID.String(),
			Name:           p.Name,
			Availability:   p.Availability,
			CurrentOrderID: uuidPtrString(p.CurrentOrderID),
			VehicleKind:    p.VehicleKind,
			VehiclePlate:   p.VehiclePlate,
			Version:        p.Version,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SetPartnerAvailability handles PUT /api/v1/partners/:id/availability.
func (s *Server) SetPartnerAvailability(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req AvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetPartnerAvailabilityCommand(partnerID, req.Available)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.availabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPartnerDeliveries handles GET /api/v1/partners/:id/deliveries.
func (s *Server) GetPartnerDeliveries(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetPartnerDeliveriesQuery(partnerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.partnerDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(result))
}

// CheckDeliveryAvailability handles GET /api/v1/branches/:id/delivery-availability.
func (s *Server) CheckDeliveryAvailability(ctx echo.Context) error {
	branchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewCheckDeliveryAvailabilityQuery(branchID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.deliveryCheckHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryAvailabilityResponse{
		Available:    result.Available,
		FreePartners: result.FreePartners,
	})
}

// GetTables handles GET /api/v1/tables?branch_id=.
func (s *Server) GetTables(ctx echo.Context) error {
	branchID, err := kernel.UUIDFromString(ctx.QueryParam("branch_id"))
	if err != nil {
		return badRequest(ctx, "branch_id is required")
	}

	query, err := queries.NewGetTablesQuery(branchID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.tablesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]TableResponse, len(result))
	for i, t := range result {
		response[i] = TableResponse{
			ID:             t.ID.String(),
			Number:         t.Number,
			Capacity:       t.Capacity,
			Status:         t.Status,
			CurrentOrderID: uuidPtrString(t.CurrentOrderID),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SetTableStatus handles PUT /api/v1/tables/:id/status.
func (s *Server) SetTableStatus(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req TableStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	target, err := table.StatusFromString(req.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewSetTableStatusCommand(tableID, target)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.tableStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenKitchenSession handles POST /api/v1/kitchen/session.
func (s *Server) OpenKitchenSession(ctx echo.Context) error {
	var req OpenSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if _, err := s.sessionManager.Open(branchID); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CloseKitchenSession handles DELETE /api/v1/kitchen/session/:branchId.
func (s *Server) CloseKitchenSession(ctx echo.Context) error {
	branchID, err := kernel.UUIDFromString(ctx.Param("branchId"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.sessionManager.Close(branchID); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetKitchenAlerts handles GET /api/v1/kitchen/session/:branchId/alerts.
func (s *Server) GetKitchenAlerts(ctx echo.Context) error {
	session, err := s.kitchenSession(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	alerting := session.Alerts().Alerting()
	response := make([]AlertResponse, len(alerting))
	for i, a := range alerting {
		response[i] = AlertResponse{OrderID: a.OrderID.String(), Number: a.Number}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AcknowledgeAlert handles POST /api/v1/kitchen/session/:branchId/alerts/:orderId/ack.
func (s *Server) AcknowledgeAlert(ctx echo.Context) error {
	session, err := s.kitchenSession(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	session.Alerts().Acknowledge(orderID)
	return ctx.NoContent(http.StatusNoContent)
}

// SetKitchenSound handles PUT /api/v1/kitchen/session/:branchId/sound.
func (s *Server) SetKitchenSound(ctx echo.Context) error {
	session, err := s.kitchenSession(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req SoundRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	session.Alerts().SetSoundEnabled(req.Enabled)
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) kitchenSession(ctx echo.Context) (*sessions.KitchenSession, error) {
	branchID, err := kernel.UUIDFromString(ctx.Param("branchId"))
	if err != nil {
		return nil, err
	}
	return s.sessionManager.Get(branchID)
}

// respondError maps application and domain failures onto the HTTP error
// taxonomy: missing things are 404, role violations 403, illegal state
// changes 422, lost races and duplicates 409, bad input 400.
func (s *Server) respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, sessions.ErrSessionNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrUnauthorizedRole):
		code = http.StatusForbidden
	case errors.Is(err, order.ErrOrderIsTerminal),
		errors.Is(err, commands.ErrOrderAlreadyClaimed),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, sessions.ErrSessionAlreadyOpen):
		code = http.StatusConflict
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrPickupViaAssignment),
		errors.Is(err, partner.ErrPartnerHasActiveDelivery),
		errors.Is(err, partner.ErrPartnerNotAvailable),
		errors.Is(err, table.ErrTableOccupied),
		errors.Is(err, table.ErrTableHasActiveOrder):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrItemsAreRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func uuidPtrString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toOrderSummaries(models []queries.OrderSummaryModel) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(models))
	for i, m := range models {
		response[i] = toOrderSummary(m)
	}
	return response
}

func toOrderSummary(m queries.OrderSummaryModel) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:              m.ID.String(),
		Number:          m.Number,
		OrderType:       m.OrderType,
		Status:          m.Status,
		Items:           m.Items,
		TotalCents:      m.TotalCents,
		CustomerName:    m.CustomerName,
		CustomerPhone:   m.CustomerPhone,
		DeliveryAddress: m.DeliveryAddress,
		TableID:         uuidPtrString(m.TableID),
		PartnerID:       uuidPtrString(m.PartnerID),
		Instructions:    m.Instructions,
		PaymentStatus:   m.PaymentStatus,
		CreatedAt:       m.CreatedAt,
		Version:         m.Version,
	}
}

func toTrackedOrder(m queries.TrackOrderModel) TrackedOrderResponse {
	return TrackedOrderResponse{
		OrderSummaryResponse: toOrderSummary(m.OrderSummaryModel),
		TaxCents:             m.TaxCents,
		PaymentMethod:        m.PaymentMethod,
		CustomerEmail:        m.CustomerEmail,
		History:              m.History,
	}
}
