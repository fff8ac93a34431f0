package handlers

import (
	"crypto/subtle"
	"fmt"
	"log"
	"strings"

	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication of all actor types.
type AuthHandler struct {
	authService   *services.AuthService
	validate      *validator.Validate
	adminUsername string
	adminPassword string
}

// NewAuthHandler creates a new AuthHandler. The admin credentials come from
// configuration; there is no admin row in the database.
func NewAuthHandler(authService *services.AuthService, adminUsername, adminPassword string) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		validate:      validator.New(),
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegisterUser)
	authRoutes.Post("/register/vendor", h.HandleRegisterVendor)
	authRoutes.Post("/register/rider", h.HandleRegisterRider)
	authRoutes.Post("/login", h.HandleLogin)
}

// validationResponse converts validator errors into a field:message map.
func validationResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// HandleRegisterUser handles new customer registration.
func (h *AuthHandler) HandleRegisterUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(user); err != nil {
		return validationResponse(c, err)
	}

	if err := h.authService.RegisterUser(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		if strings.Contains(err.Error(), "already taken") || strings.Contains(err.Error(), "already registered") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Registration failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
			"error":   err.Error(),
		})
	}

	// For security, do not return the password hash
	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// HandleRegisterVendor handles new vendor registration.
func (h *AuthHandler) HandleRegisterVendor(c *fiber.Ctx) error {
	var vendor models.Vendor
	if err := c.BodyParser(&vendor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(vendor); err != nil {
		return validationResponse(c, err)
	}

	if err := h.authService.RegisterVendor(&vendor); err != nil {
		log.Printf("Error registering vendor: %v", err)
		if strings.Contains(err.Error(), "already taken") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Registration failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register vendor",
			"error":   err.Error(),
		})
	}

	vendor.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Vendor registered successfully",
		"vendor":  vendor,
	})
}

// HandleRegisterRider handles new rider registration.
func (h *AuthHandler) HandleRegisterRider(c *fiber.Ctx) error {
	var rider models.Rider
	if err := c.BodyParser(&rider); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(rider); err != nil {
		return validationResponse(c, err)
	}

	if err := h.authService.RegisterRider(&rider); err != nil {
		log.Printf("Error registering rider: %v", err)
		if strings.Contains(err.Error(), "already taken") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Registration failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register rider",
			"error":   err.Error(),
		})
	}

	rider.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Rider registered successfully",
		"rider":   rider,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=customer vendor rider admin"`
}

// HandleLogin handles login for any actor type and issues a role-scoped JWT.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}
	if req.Role == "" {
		req.Role = models.RoleCustomer
	}

	var token string
	var err error
	switch req.Role {
	case models.RoleCustomer:
		token, err = h.authService.LoginUser(req.Username, req.Password)
	case models.RoleVendor:
		token, err = h.authService.LoginVendor(req.Username, req.Password)
	case models.RoleRider:
		token, err = h.authService.LoginRider(req.Username, req.Password)
	case models.RoleAdmin:
		if subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.adminUsername)) != 1 ||
			subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) != 1 {
			err = fmt.Errorf("invalid credentials")
		} else {
			token, err = h.authService.IssueAdminToken(req.Username)
		}
	}
	if err != nil {
		log.Printf("Error during login for %s %s: %v", req.Role, req.Username, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}
