package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "loginapi/internal/errors"
	"loginapi/internal/service"
)

// UserHandler handles user record endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateUserRequest represents a partial user update. Both fields are
// optional; an empty body is a valid no-op.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserResponse projects a record's public fields.
type UserResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// UpdateUserResponse represents a successful update.
type UpdateUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.svc.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, UserResponse{
		UserID: user.ID,
		Email:  user.Email,
	})
}

// UpdateUser godoc
// @Summary Update a user's email and/or password
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} UpdateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, apperrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
	}

	// A present-but-empty field means "no change", matching the original
	// truthiness semantics of the API.
	if req.Email != nil && *req.Email == "" {
		req.Email = nil
	}
	if req.Password != nil && *req.Password == "" {
		req.Password = nil
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), c.Param("id"), req.Email, req.Password)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, UpdateUserResponse{
		Message: "User updated successfully",
		UserID:  user.ID,
		Email:   user.Email,
	})
}
