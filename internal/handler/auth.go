package handler

import (
	"context"  // provides context with cancellation for DB calls
	"errors"   // sentinel comparisons against repository errors
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // timeouts for DB calls and the revocation timestamp

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/holocron/catalog-api/internal/config"
	"github.com/holocron/catalog-api/internal/repository"
	"github.com/holocron/catalog-api/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// registerReq uses pointer fields so an absent key can be told apart from a
// zero value; required-field checks run in declared order.
type registerReq struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}

func (r *registerReq) firstMissing() string {
	switch {
	case r.Email == nil:
		return "email"
	case r.Name == nil:
		return "name"
	case r.Password == nil:
		return "password"
	case r.IsActive == nil:
		return "is_active"
	}
	return ""
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account.  Every field is required and a
// duplicate email is a conflict, not a validation error.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if f := req.firstMissing(); f != "" {
		return c.JSON(http.StatusBadRequest, missingFieldMsg(f))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hash, err := utils.HashPassword(*req.Password, h.Cfg.BcryptCost)
	if err != nil {
		logger.Error().Err(err).Msg("hash password failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	if _, err := h.Users.Create(ctx, *req.Email, *req.Name, hash, *req.IsActive); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Email is already registered"})
		}
		logger.Error().Err(err).Msg("create user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"msg": "User created successfully"})
}

// Login verifies credentials and returns a signed access token.  Unknown
// email and wrong password are indistinguishable in the response.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		logger.Error().Err(err).Msg("login query failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		logger.Error().Err(err).Msg("issue access token failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": access.Token})
}

// Logout appends the current token's identifier to the revocation ledger.
// The route sits behind JWTAuth, so by the time we get here the token is
// valid and not yet revoked.  Revoking the same identifier again is a no-op
// success, which keeps repeated logouts idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	jti, _ := c.Get("jti").(string)
	if jti == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		logger.Error().Err(err).Msg("load user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	if err := h.Tokens.Revoke(ctx, jti, u.Email, time.Now()); err != nil {
		logger.Error().Err(err).Msg("revoke token failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Logout successfully"})
}

// Protected is a demo guarded endpoint; reaching it proves the presented
// token verified and is not on the revocation ledger.
func (h *AuthHandler) Protected(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "You are on a protected route"})
}
