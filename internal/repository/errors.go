// Package repository contains data access logic separated from HTTP handlers.
// This file defines error values and helpers shared by the repositories so
// higher layers can distinguish failure scenarios without inspecting driver
// specific errors themselves.
package repository

import (
	"errors"
	"strings"
)

// ErrUserNotFound is returned when a user row cannot be found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when registering with an email that is already
// taken.  Handlers translate it into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrCharacterNotFound is returned when a people row cannot be found.
var ErrCharacterNotFound = errors.New("character not found")

// ErrPlanetNotFound is returned when a planet row cannot be found.
var ErrPlanetNotFound = errors.New("planet not found")

// ErrVehicleNotFound is returned when a vehicle row cannot be found.
var ErrVehicleNotFound = errors.New("vehicle not found")

// ErrFavoriteNotFound is returned when removing a favorite pair that does
// not exist.
var ErrFavoriteNotFound = errors.New("favorite not found")

// ErrFavoriteExists is returned when inserting a favorite pair that already
// exists.  Handlers translate it into an HTTP 409 response.
var ErrFavoriteExists = errors.New("favorite already exists")

// isDuplicate reports whether err is a unique-constraint violation.  MySQL
// surfaces these as error 1062; sqlite (used by the test suite) reports a
// "UNIQUE constraint failed" message.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "1062") || strings.Contains(msg, "unique constraint")
}
