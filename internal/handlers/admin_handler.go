package handlers

import (
	"log"

	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin refund decisions.
type AdminHandler struct {
	settlementService *services.SettlementService
	validate          *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(settlementService *services.SettlementService) *AdminHandler {
	return &AdminHandler{
		settlementService: settlementService,
		validate:          validator.New(),
	}
}

// RegisterRoutes registers the admin refund routes.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	refundRoutes := router.Group("/refunds")
	refundRoutes.Post("/:id/accept", h.HandleAcceptRefund)
	refundRoutes.Post("/:id/deny", h.HandleDenyRefund)
}

// HandleAcceptRefund settles an approved refund.
func (h *AdminHandler) HandleAcceptRefund(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.settlementService.AcceptRefund(orderID)
	if err != nil {
		log.Printf("Refund acceptance failed for order %s: %v", orderID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not accept refund",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Refund accepted",
		"order":   order,
	})
}

// DenyRefundRequest represents the request body for a refund denial.
type DenyRefundRequest struct {
	Feedback string `json:"feedback" validate:"required,max=500"`
}

// HandleDenyRefund closes the refund flow without moving money.
func (h *AdminHandler) HandleDenyRefund(c *fiber.Ctx) error {
	var req DenyRefundRequest
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
	if err := h.settlementService.DenyRefund(orderID, req.Feedback); err != nil {
		log.Printf("Refund denial failed for order %s: %v", orderID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not deny refund",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Refund denied",
	})
}
