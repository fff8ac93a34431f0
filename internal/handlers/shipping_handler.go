package handlers

import (
	"log"

	"pasar/internal/middleware"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ShippingHandler handles the rider-facing shipment endpoints and the
// vendor-facing completion endpoint.
type ShippingHandler struct {
	settlementService *services.SettlementService
	validate          *validator.Validate
}

// NewShippingHandler creates a new ShippingHandler.
func NewShippingHandler(settlementService *services.SettlementService) *ShippingHandler {
	return &ShippingHandler{
		settlementService: settlementService,
		validate:          validator.New(),
	}
}

// RegisterRiderRoutes registers the rider shipment routes.
func (h *ShippingHandler) RegisterRiderRoutes(router fiber.Router) {
	shipmentRoutes := router.Group("/shipments")
	shipmentRoutes.Post("/:id/transit", h.HandleMarkInTransit)
	shipmentRoutes.Post("/:id/shipped", h.HandleMarkShipped)
}

// RegisterVendorRoutes registers the vendor completion route.
func (h *ShippingHandler) RegisterVendorRoutes(router fiber.Router) {
	router.Post("/orders/:id/complete", h.HandleMarkCompleted)
}

// ShipmentRequest represents the request body for shipment transitions.
type ShipmentRequest struct {
	ShippingFeeID string `json:"shipping_fee_id" validate:"required"`
}

// HandleMarkInTransit moves a paid order into transit.
func (h *ShippingHandler) HandleMarkInTransit(c *fiber.Ctx) error {
	var req ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	orderID := c.Params("id")
	riderID := middleware.ActorID(c)
	if err := h.settlementService.MarkInTransit(riderID, orderID, req.ShippingFeeID); err != nil {
		log.Printf("Mark in transit failed for order %s: %v", orderID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not mark order in transit",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order marked in transit",
	})
}

// HandleMarkShipped records delivery of an in-transit order.
func (h *ShippingHandler) HandleMarkShipped(c *fiber.Ctx) error {
	var req ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	orderID := c.Params("id")
	riderID := middleware.ActorID(c)
	if err := h.settlementService.MarkShipped(riderID, orderID, req.ShippingFeeID); err != nil {
		log.Printf("Mark shipped failed for order %s: %v", orderID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not mark order shipped",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order marked shipped",
	})
}

// HandleMarkCompleted completes a shipped order and freezes its snapshot.
func (h *ShippingHandler) HandleMarkCompleted(c *fiber.Ctx) error {
	orderID := c.Params("id")
	vendorID := middleware.ActorID(c)
	if err := h.settlementService.MarkCompleted(vendorID, orderID); err != nil {
		log.Printf("Completion failed for order %s: %v", orderID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not complete order",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order completed",
	})
}
