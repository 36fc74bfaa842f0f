package handlers

import (
	"log"

	"gerai/internal/middleware"
	"gerai/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the payment routes with the Fiber app. They
// require authentication.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Post("/", h.HandleCreatePayment)
}

// PaymentRequest represents the request body for payment creation. The
// amount is never taken from the body; it is derived from the order's total.
type PaymentRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

// HandleCreatePayment records a completed payment for an order the caller
// owns.
func (h *PaymentHandler) HandleCreatePayment(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationJSON(c, err)
	}

	payment, err := h.service.CreatePayment(identity, req.OrderID)
	if err != nil {
		log.Printf("Error creating payment for order %s: %v", req.OrderID, err)
		return errorJSON(c, "Could not create payment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}
