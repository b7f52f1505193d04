package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers

	"github.com/holocron/catalog-api/internal/repository"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject and unique identifier into the request
// context.  The provided secret must match the one used when issuing
// tokens.  Beyond the signature and expiry checks performed by the JWT
// library, the middleware consults the revocation ledger: a token whose jti
// was blocked by a logout is rejected even though it still verifies
// cryptographically.  Handlers can access authenticated user information
// via `c.Get("user_id")` and `c.Get("jti")`.
func JWTAuth(secret string, tokens *repository.TokenRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Read the Authorization header.  A valid header should start
			// with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse the token using the HS256 signing method and our secret.
			// The callback supplies the signing key and ensures that the
			// algorithm matches what we expect.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}
			jti, _ := claims["jti"].(string)
			if jti == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			// Reject tokens that were invalidated by a logout.  The ledger
			// lookup is a plain existence probe keyed by the jti claim.
			revoked, err := tokens.IsRevoked(c.Request().Context(), jti)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "revocation check failed"})
			}
			if revoked {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token has been revoked"})
			}

			// Store the subject (user ID) and token identifier in the
			// context for handlers and downstream middleware.
			c.Set("user_id", claims["sub"])
			c.Set("jti", jti)
			return next(c)
		}
	}
}
