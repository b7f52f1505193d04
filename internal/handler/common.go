package handler // handler defines http handlers

import (
	"errors"  // errors provides sentinel values used in getUserID
	"os"      // os supplies stdout for the package logger
	"strconv" // strconv converts strings to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types
	"github.com/rs/zerolog"       // zerolog is the structured logger used across handlers
)

// logger writes structured JSON logs for the handler layer.  Handlers log
// unexpected repository failures here before mapping them to a 500 response.
var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// getUserID extracts the user_id from echo.Context and converts it to uint64.
// The JWT middleware stores the raw sub claim, whose concrete type depends on
// how the token was decoded, so several representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// missingFieldMsg formats the validation error for an absent required field.
// The wording is part of the API contract.
func missingFieldMsg(field string) echo.Map {
	return echo.Map{"error": "You need to specify the " + field}
}

// parseIDParam reads the :id path segment as an unsigned integer.
func parseIDParam(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
