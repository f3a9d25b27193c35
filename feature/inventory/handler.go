package inventory

import (
	"errors"
	"slices"

	"inventory-manager/core/logger"
	"inventory-manager/feature/inventory/models"
	"inventory-manager/feature/inventory/snapshot"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/products", h.HandleListProducts)
	app.Get("/products/alerts", h.HandleListAlerts)
	app.Post("/products", h.HandleAddProduct)
	app.Post("/sales", h.HandleSale)
}

// AddProductRequest is the payload for creating a product.
type AddProductRequest struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// SaleRequest is the payload for registering a sale.
type SaleRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SaleResponse reports the outcome of a registered sale.
type SaleResponse struct {
	Status      string `json:"status"`
	ProductID   string `json:"product_id"`
	Stock       int    `json:"stock"`
	ReceiptPath string `json:"receipt_path,omitempty"`
}

// HandleListProducts returns the full product collection.
// @Summary List products
// @Description Returns all products in the inventory, ordered by name then id.
// @Tags inventory
// @Produce json
// @Success 200 {array} models.Product "Products"
// @Router /products [get]
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	products := slices.Collect(h.service.Products())
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(products)
}

// HandleListAlerts returns products with stock at or below the threshold.
// @Summary Low-stock alerts
// @Description Returns products with stock lower than or equal to the threshold.
// @Tags inventory
// @Produce json
// @Param threshold query int false "Low-stock threshold" default(5)
// @Success 200 {array} models.Product "Low-stock products"
// @Router /products/alerts [get]
func (h *Handler) HandleListAlerts(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", DefaultAlertThreshold)
	matches := h.service.LowStock(threshold)
	if matches == nil {
		matches = []models.Product{}
	}
	return c.JSON(matches)
}

// HandleAddProduct creates a new product.
// @Summary Add product
// @Description Validates and inserts a new product into the inventory.
// @Tags inventory
// @Accept json
// @Produce json
// @Param product body AddProductRequest true "Product to add"
// @Success 201 {object} models.Product "Created product"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Duplicate id"
// @Router /products [post]
func (h *Handler) HandleAddProduct(c *fiber.Ctx) error {
	var req AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	product, err := h.service.AddProduct(c.Context(), req.ID, req.Name, req.Price, req.Stock)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleSale registers a sale, deducting stock when available.
// @Summary Register sale
// @Description Registers a sale, deducts stock and emits a receipt.
// @Tags inventory
// @Accept json
// @Produce json
// @Param sale body SaleRequest true "Sale to register"
// @Success 200 {object} SaleResponse "Registered sale"
// @Failure 400 {object} map[string]string "Invalid quantity or insufficient stock"
// @Failure 404 {object} map[string]string "Unknown product"
// @Router /sales [post]
func (h *Handler) HandleSale(c *fiber.Ctx) error {
	var req SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	tx, receiptPath, err := h.service.Sell(c.Context(), req.ProductID, req.Quantity)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(SaleResponse{
		Status:      "ok",
		ProductID:   tx.ProductID,
		Stock:       tx.ResultingStock,
		ReceiptPath: receiptPath,
	})
}

// respondError maps the domain error taxonomy to HTTP statuses.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)

	var verr *models.ValidationError
	var nferr *models.NotFoundError
	var iserr *models.InsufficientStockError
	var cerr *snapshot.CorruptStateError

	switch {
	case errors.As(err, &nferr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &iserr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &verr):
		status := fiber.StatusBadRequest
		if verr.Field == "id" && verr.Reason == "already exists" {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &cerr):
		l.Error("corrupt inventory state", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "inventory state unavailable"})
	default:
		l.Error("inventory operation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
