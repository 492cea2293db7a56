package http

import (
	"errors"

	"github.com/KhoaNam225/comssa-backend-workshop/core/domain"
	"github.com/KhoaNam225/comssa-backend-workshop/core/service/user"
	"github.com/KhoaNam225/comssa-backend-workshop/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user CRUD operations.
type UserHandler struct {
	service *user.Service
}

func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register registers user routes
func (h *UserHandler) Register(router fiber.Router) {
	users := router.Group("/users")

	users.Get("/", h.List)
	users.Post("/", h.Create)
	users.Get("/:id", h.Get)
	users.Put("/:id", h.Update)
	users.Delete("/:id", h.Delete)
}

// Create creates a new user. Any failure during creation, validation or
// store-side, is reported as a 400 to the caller.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req domain.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	created, err := h.service.CreateUser(c.Context(), &req)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, created)
}

// List returns every user in the collection.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		return response.InternalError(c, "failed to list users")
	}

	return response.OK(c, users)
}

// Get retrieves a user by ID. Malformed ids and true not-found both surface
// as 404.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	found, err := h.service.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return response.InternalError(c, "failed to get user")
	}
	if found == nil {
		return response.NotFound(c, "user not found")
	}

	return response.OK(c, found)
}

// Update applies a partial update; fields absent from the body are left
// untouched.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req domain.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	updated, err := h.service.UpdateUser(c.Context(), c.Params("id"), &req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return response.BadRequest(c, verr.Reason)
		}
		return response.InternalError(c, "failed to update user")
	}
	if updated == nil {
		return response.NotFound(c, "user not found")
	}

	return response.OK(c, updated)
}

// Delete removes a user. The repository's bool is the only signal for
// "existed and is gone" vs "never existed".
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteUser(c.Context(), c.Params("id"))
	if err != nil {
		return response.InternalError(c, "failed to delete user")
	}
	if !deleted {
		return response.NotFound(c, "user not found")
	}

	return response.OK(c, fiber.Map{"message": "User deleted successfully"})
}
