package handlers

import (
	"log"

	"gerai/internal/middleware"
	"gerai/internal/models"
	"gerai/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for the account directory.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the account routes with the Fiber app. All of
// them require authentication.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Put("/:id", h.HandleUpdateUser)
}

// HandleGetUsers lists all accounts. ADMIN only.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	users, err := h.service.ListUsers(identity)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return errorJSON(c, "Could not retrieve users", err)
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single account, allowed for the owner and
// for ADMIN callers.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	user, err := h.service.GetUser(c.Params("id"), identity)
	if err != nil {
		log.Printf("Error getting user %s: %v", c.Params("id"), err)
		return errorJSON(c, "Could not retrieve user", err)
	}
	return c.JSON(user)
}

// HandleUpdateUser applies a partial account update. ADMIN only.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var update models.UserUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing user update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(update); err != nil {
		return validationJSON(c, err)
	}

	user, err := h.service.UpdateUser(c.Params("id"), update, identity)
	if err != nil {
		log.Printf("Error updating user %s: %v", c.Params("id"), err)
		return errorJSON(c, "Could not update user", err)
	}
	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    user,
	})
}
