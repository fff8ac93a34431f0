package handlers

import (
	"log"

	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles products, shipping quotes, cart lines, addresses
// and wallet lookups.
type CatalogHandler struct {
	catalogService *services.CatalogService
	accountService *services.AccountService
	validate       *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService, accountService *services.AccountService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		accountService: accountService,
		validate:       validator.New(),
	}
}

// RegisterPublicRoutes registers the unauthenticated product listing routes.
func (h *CatalogHandler) RegisterPublicRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
}

// RegisterCustomerRoutes registers the buyer cart/address/wallet routes.
// The auth middleware is applied per route: these share the api prefix with
// the public and role-grouped routes.
func (h *CatalogHandler) RegisterCustomerRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/cart", auth, h.HandleAddToCart)
	router.Get("/cart", auth, h.HandleGetCart)
	router.Post("/addresses", auth, h.HandleAddAddress)
	router.Get("/addresses", auth, h.HandleGetAddresses)
	router.Get("/wallet", auth, h.HandleGetWallet)
}

// RegisterVendorRoutes registers the vendor catalog routes.
func (h *CatalogHandler) RegisterVendorRoutes(router fiber.Router) {
	router.Post("/products", h.HandleCreateProduct)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)
	router.Get("/products", h.HandleGetVendorProducts)
	router.Get("/orders", h.HandleGetVendorOrders)
}

// RegisterRiderRoutes registers the rider shipping quote routes.
func (h *CatalogHandler) RegisterRiderRoutes(router fiber.Router) {
	router.Post("/shipping-fees", h.HandleCreateShippingFee)
	router.Get("/shipping-fees", h.HandleGetRiderShippingFees)
}

// HandleGetProducts retrieves all products.
func (h *CatalogHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product.
func (h *CatalogHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.catalogService.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product for the authenticated vendor.
func (h *CatalogHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.VendorID = middleware.ActorID(c)
	if err := h.validate.Struct(product); err != nil {
		return validationResponse(c, err)
	}

	if err := h.catalogService.CreateProduct(middleware.ActorID(c), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates a product owned by the authenticated vendor.
func (h *CatalogHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = c.Params("id")
	product.VendorID = middleware.ActorID(c)
	if err := h.validate.Struct(product); err != nil {
		return validationResponse(c, err)
	}

	if err := h.catalogService.UpdateProduct(middleware.ActorID(c), &product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product owned by the authenticated vendor.
func (h *CatalogHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.catalogService.DeleteProduct(middleware.ActorID(c), productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// HandleGetVendorProducts retrieves the authenticated vendor's products.
func (h *CatalogHandler) HandleGetVendorProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.GetVendorProducts(middleware.ActorID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetVendorOrders retrieves the authenticated vendor's orders.
func (h *CatalogHandler) HandleGetVendorOrders(c *fiber.Ctx) error {
	orders, err := h.accountService.GetVendorOrders(middleware.ActorID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleAddToCart adds a cart line for the authenticated buyer.
func (h *CatalogHandler) HandleAddToCart(c *fiber.Ctx) error {
	var cart models.Cart
	if err := c.BodyParser(&cart); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	cart.UserID = middleware.ActorID(c)
	if err := h.validate.Struct(cart); err != nil {
		return validationResponse(c, err)
	}

	if err := h.catalogService.AddToCart(middleware.ActorID(c), &cart); err != nil {
		log.Printf("Error adding to cart: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not add to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(cart)
}

// HandleGetCart retrieves the authenticated buyer's active cart.
func (h *CatalogHandler) HandleGetCart(c *fiber.Ctx) error {
	carts, err := h.catalogService.GetActiveCart(middleware.ActorID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(carts)
}

// HandleAddAddress adds an address for the authenticated buyer.
func (h *CatalogHandler) HandleAddAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	address.UserID = middleware.ActorID(c)
	if err := h.validate.Struct(address); err != nil {
		return validationResponse(c, err)
	}

	if err := h.accountService.AddAddress(middleware.ActorID(c), &address); err != nil {
		log.Printf("Error adding address: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add address",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

// HandleGetAddresses retrieves the authenticated buyer's address book.
func (h *CatalogHandler) HandleGetAddresses(c *fiber.Ctx) error {
	addresses, err := h.accountService.GetAddresses(middleware.ActorID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve addresses",
			"error":   err.Error(),
		})
	}
	return c.JSON(addresses)
}

// HandleGetWallet retrieves the authenticated buyer's wallet.
func (h *CatalogHandler) HandleGetWallet(c *fiber.Ctx) error {
	user, err := h.accountService.GetWallet(middleware.ActorID(c))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve wallet",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleCreateShippingFee creates a quote for the authenticated rider.
func (h *CatalogHandler) HandleCreateShippingFee(c *fiber.Ctx) error {
	var fee models.ShippingFee
	if err := c.BodyParser(&fee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	fee.RiderID = middleware.ActorID(c)
	if err := h.validate.Struct(fee); err != nil {
		return validationResponse(c, err)
	}

	if err := h.catalogService.CreateShippingFee(middleware.ActorID(c), &fee); err != nil {
		log.Printf("Error creating shipping fee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create shipping fee",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fee)
}

// HandleGetRiderShippingFees retrieves the authenticated rider's quotes.
func (h *CatalogHandler) HandleGetRiderShippingFees(c *fiber.Ctx) error {
	fees, err := h.catalogService.GetRiderShippingFees(middleware.ActorID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve shipping fees",
			"error":   err.Error(),
		})
	}
	return c.JSON(fees)
}
