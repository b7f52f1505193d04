package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/holocron/catalog-api/internal/repository"
)

// UserHandler bundles the credential store for user CRUD endpoints.
// Registration lives on AuthHandler because it also hashes the password.
type UserHandler struct {
	Users *repository.UserRepo
}

func NewUserHandler(u *repository.UserRepo) *UserHandler {
	if u == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Users: u}
}

type userIDReq struct {
	ID *uint64 `json:"id"`
}

type userEditReq struct {
	ID   *uint64 `json:"id"`
	Name *string `json:"name"`
}

// List handles GET /user and returns every user.  The password hash is
// excluded by the model's json tag.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.ListAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list users failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "ok", "users": users})
}

// GetByID handles GET /user/:id.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	return h.respondUser(c, id)
}

// GetWithPost handles POST /user-with-post, the payload-addressed lookup.
func (h *UserHandler) GetWithPost(c echo.Context) error {
	var req userIDReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == nil {
		return c.JSON(http.StatusBadRequest, missingFieldMsg("id"))
	}
	return h.respondUser(c, *req.ID)
}

func (h *UserHandler) respondUser(c echo.Context, id uint64) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		logger.Error().Err(err).Msg("get user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, u)
}

// Update handles PUT /user.  The target id comes from the payload, not a
// path segment, and the display name is the only editable attribute.
func (h *UserHandler) Update(c echo.Context) error {
	var req userEditReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	switch {
	case req.ID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("id"))
	case req.Name == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("name"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.UpdateName(ctx, *req.ID, *req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		logger.Error().Err(err).Msg("update user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /user with the id in the payload.  Favorite rows of
// the user disappear with it via the cascading foreign keys.
func (h *UserHandler) Delete(c echo.Context) error {
	var req userIDReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == nil {
		return c.JSON(http.StatusBadRequest, missingFieldMsg("id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Delete(ctx, *req.ID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		logger.Error().Err(err).Msg("delete user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "User deleted"})
}
