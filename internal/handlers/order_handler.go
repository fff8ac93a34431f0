package handlers

import (
	"errors"
	"log"

	"pasar/internal/middleware"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles the buyer-facing settlement endpoints: checkout,
// payment, cancellation, refund disputes and order lookups.
type OrderHandler struct {
	checkoutService   *services.CheckoutService
	settlementService *services.SettlementService
	accountService    *services.AccountService
	validate          *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(checkoutService *services.CheckoutService, settlementService *services.SettlementService, accountService *services.AccountService) *OrderHandler {
	return &OrderHandler{
		checkoutService:   checkoutService,
		settlementService: settlementService,
		accountService:    accountService,
		validate:          validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app. All routes
// require a customer token; the auth middleware is scoped to the /orders
// prefix so the other role groups never pass through it.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	orderRoutes := router.Group("/orders", auth)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderDetail)
	orderRoutes.Post("/checkout", h.HandleCheckout)
	orderRoutes.Post("/pay/:tracking", h.HandlePay)
	orderRoutes.Post("/cancel/tracking/:tracking", h.HandleCancelByTracking)
	orderRoutes.Post("/cancel/:id", h.HandleCancelOne)
	orderRoutes.Post("/:id/dispute", h.HandleDispute)
}

// statusForError maps settlement errors onto HTTP statuses.
func statusForError(err error) int {
	var checkoutErr *services.CheckoutError
	switch {
	case errors.As(err, &checkoutErr):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrNotOwner):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrNoDefaultAddress),
		errors.Is(err, services.ErrUnsupportedPayment):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrAlreadyCancelled),
		errors.Is(err, services.ErrAlreadyShipped),
		errors.Is(err, services.ErrAlreadyInTransit),
		errors.Is(err, services.ErrAlreadyCompleted),
		errors.Is(err, services.ErrAlreadyDisputed),
		errors.Is(err, services.ErrNotPaid),
		errors.Is(err, services.ErrNotInTransit),
		errors.Is(err, services.ErrNotShipped),
		errors.Is(err, services.ErrNotCompleted),
		errors.Is(err, services.ErrNotRefundable):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// CheckoutRequest represents the request body for checkout.
type CheckoutRequest struct {
	CartIDs       []string `json:"cart_ids" validate:"required,min=1,dive,required"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=wallet"`
}

// HandleCheckout converts the buyer's cart lines into a tracking group.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	userID := middleware.ActorID(c)
	trackingNumber, total, err := h.checkoutService.Checkout(userID, req.CartIDs, req.PaymentMethod)
	if err != nil {
		log.Printf("Checkout failed for user %s: %v", userID, err)
		body := fiber.Map{
			"message": "Checkout failed",
			"error":   err.Error(),
		}
		var checkoutErr *services.CheckoutError
		if errors.As(err, &checkoutErr) {
			body["failures"] = checkoutErr
		}
		return c.Status(statusForError(err)).JSON(body)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":         "Checkout successful",
		"tracking_number": trackingNumber,
		"total_amount":    total,
	})
}

// HandlePay settles wallet payment for a whole tracking group.
func (h *OrderHandler) HandlePay(c *fiber.Ctx) error {
	userID := middleware.ActorID(c)
	trackingNumber := c.Params("tracking")

	paidIDs, err := h.settlementService.MarkPaid(userID, trackingNumber)
	if err != nil {
		log.Printf("Payment failed for tracking %s: %v", trackingNumber, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Payment failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":        "Payment successful",
		"paid_order_ids": paidIDs,
	})
}

// HandleCancelByTracking cancels a whole tracking group.
func (h *OrderHandler) HandleCancelByTracking(c *fiber.Ctx) error {
	userID := middleware.ActorID(c)
	trackingNumber := c.Params("tracking")

	cancelledIDs, err := h.settlementService.CancelByTracking(userID, trackingNumber)
	if err != nil {
		log.Printf("Cancellation failed for tracking %s: %v", trackingNumber, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Cancellation failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":             "Cancellation successful",
		"cancelled_order_ids": cancelledIDs,
	})
}

// HandleCancelOne cancels a single order.
func (h *OrderHandler) HandleCancelOne(c *fiber.Ctx) error {
	userID := middleware.ActorID(c)
	orderID := c.Params("id")

	cancelledID, err := h.settlementService.CancelOne(userID, orderID)
	if err != nil {
		log.Printf("Cancellation failed for order %s: %v", orderID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Cancellation failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":            "Cancellation successful",
		"cancelled_order_id": cancelledID,
	})
}

// DisputeRequest represents the request body for a refund dispute.
type DisputeRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

// HandleDispute opens the refund flow on a completed order.
func (h *OrderHandler) HandleDispute(c *fiber.Ctx) error {
	var req DisputeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	userID := middleware.ActorID(c)
	orderID := c.Params("id")
	if err := h.settlementService.DisputeForRefund(userID, orderID, req.Message); err != nil {
		log.Printf("Dispute failed for order %s: %v", orderID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Dispute failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order disputed for refund",
	})
}

// HandleGetOrders retrieves the buyer's orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	userID := middleware.ActorID(c)
	orders, err := h.accountService.GetUserOrders(userID)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderDetail retrieves one order with its audit trail.
func (h *OrderHandler) HandleGetOrderDetail(c *fiber.Ctx) error {
	orderID := c.Params("id")
	detail, err := h.accountService.GetOrderDetail(middleware.ActorID(c), middleware.Role(c), orderID)
	if err != nil {
		log.Printf("Error getting order %s: %v", orderID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(detail)
}
