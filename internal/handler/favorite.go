package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/holocron/catalog-api/internal/repository"
)

// FavoriteHandler bundles every store the favorites endpoints touch: the
// join store itself plus the credential and catalog stores used for the
// referential checks.
type FavoriteHandler struct {
	Favorites *repository.FavoriteRepo
	Users     *repository.UserRepo
	People    *repository.PeopleRepo
	Planets   *repository.PlanetRepo
	Vehicles  *repository.VehicleRepo
}

func NewFavoriteHandler(f *repository.FavoriteRepo, u *repository.UserRepo, p *repository.PeopleRepo, pl *repository.PlanetRepo, v *repository.VehicleRepo) *FavoriteHandler {
	if f == nil || u == nil || p == nil || pl == nil || v == nil {
		panic("nil repository passed to NewFavoriteHandler")
	}
	return &FavoriteHandler{Favorites: f, Users: u, People: p, Planets: pl, Vehicles: v}
}

type favPeopleReq struct {
	UserID   *uint64 `json:"user_id"`
	PeopleID *uint64 `json:"people_id"`
}

type favPlanetReq struct {
	UserID   *uint64 `json:"user_id"`
	PlanetID *uint64 `json:"planet_id"`
}

type favVehicleReq struct {
	UserID    *uint64 `json:"user_id"`
	VehicleID *uint64 `json:"vehicle_id"`
}

// AddPeople handles POST /favorite/people.  The check order is part of the
// API contract: the character is verified first, then the user, then the
// duplicate pair.  The unique index still backs the duplicate check if two
// adds race; the insert maps that loss to the same 409.
func (h *FavoriteHandler) AddPeople(c echo.Context) error {
	var req favPeopleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	switch {
	case req.UserID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("user_id"))
	case req.PeopleID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("people_id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	character, err := h.People.GetByID(ctx, *req.PeopleID)
	if err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		logger.Error().Err(err).Msg("get people failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	user, err := h.Users.GetByID(ctx, *req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		logger.Error().Err(err).Msg("get user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	exists, err := h.Favorites.HasPeople(ctx, user.ID, character.ID)
	if err != nil {
		logger.Error().Err(err).Msg("favorite lookup failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if exists {
		return c.JSON(http.StatusConflict, echo.Map{"error": "The user has already added it to favorites"})
	}
	if _, err := h.Favorites.AddPeople(ctx, user.ID, character.ID); err != nil {
		if errors.Is(err, repository.ErrFavoriteExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "The user has already added it to favorites"})
		}
		logger.Error().Err(err).Msg("add favorite people failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"people_name": character.Name, "user": user.Name})
}

// RemovePeople handles DELETE /favorite/people.
func (h *FavoriteHandler) RemovePeople(c echo.Context) error {
	var req favPeopleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	switch {
	case req.UserID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("user_id"))
	case req.PeopleID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("people_id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Favorites.RemovePeople(ctx, *req.UserID, *req.PeopleID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Favorite people not found"})
		}
		logger.Error().Err(err).Msg("remove favorite people failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Favorite people removed successfully"})
}

// AddPlanet handles POST /favorite/planet with the same check order as
// AddPeople: entity, then user, then duplicate.
func (h *FavoriteHandler) AddPlanet(c echo.Context) error {
	var req favPlanetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	switch {
	case req.UserID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("user_id"))
	case req.PlanetID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("planet_id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	planet, err := h.Planets.GetByID(ctx, *req.PlanetID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanetNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Planet not found"})
		}
		logger.Error().Err(err).Msg("get planet failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	user, err := h.Users.GetByID(ctx, *req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		logger.Error().Err(err).Msg("get user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	exists, err := h.Favorites.HasPlanet(ctx, user.ID, planet.ID)
	if err != nil {
		logger.Error().Err(err).Msg("favorite lookup failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if exists {
		return c.JSON(http.StatusConflict, echo.Map{"error": "The user has already added it to favorites"})
	}
	if _, err := h.Favorites.AddPlanet(ctx, user.ID, planet.ID); err != nil {
		if errors.Is(err, repository.ErrFavoriteExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "The user has already added it to favorites"})
		}
		logger.Error().Err(err).Msg("add favorite planet failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"planet_name": planet.Name, "user": user.Name})
}

// RemovePlanet handles DELETE /favorite/planet.
func (h *FavoriteHandler) RemovePlanet(c echo.Context) error {
	var req favPlanetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	switch {
	case req.UserID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("user_id"))
	case req.PlanetID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("planet_id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Favorites.RemovePlanet(ctx, *req.UserID, *req.PlanetID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Favorite planet not found"})
		}
		logger.Error().Err(err).Msg("remove favorite planet failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Favorite planet removed successfully"})
}

// AddVehicle handles POST /favorite/vehicle with the same check order.
func (h *FavoriteHandler) AddVehicle(c echo.Context) error {
	var req favVehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	switch {
	case req.UserID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("user_id"))
	case req.VehicleID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("vehicle_id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	vehicle, err := h.Vehicles.GetByID(ctx, *req.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Vehicle not found"})
		}
		logger.Error().Err(err).Msg("get vehicle failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	user, err := h.Users.GetByID(ctx, *req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		logger.Error().Err(err).Msg("get user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	exists, err := h.Favorites.HasVehicle(ctx, user.ID, vehicle.ID)
	if err != nil {
		logger.Error().Err(err).Msg("favorite lookup failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if exists {
		return c.JSON(http.StatusConflict, echo.Map{"error": "The user has already added it to favorites"})
	}
	if _, err := h.Favorites.AddVehicle(ctx, user.ID, vehicle.ID); err != nil {
		if errors.Is(err, repository.ErrFavoriteExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "The user has already added it to favorites"})
		}
		logger.Error().Err(err).Msg("add favorite vehicle failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"vehicle_name": vehicle.Name, "user": user.Name})
}

// RemoveVehicle handles DELETE /favorite/vehicle.
func (h *FavoriteHandler) RemoveVehicle(c echo.Context) error {
	var req favVehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	switch {
	case req.UserID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("user_id"))
	case req.VehicleID == nil:
		return c.JSON(http.StatusBadRequest, missingFieldMsg("vehicle_id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Favorites.RemoveVehicle(ctx, *req.UserID, *req.VehicleID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Favorite vehicle not found"})
		}
		logger.Error().Err(err).Msg("remove favorite vehicle failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Favorite vehicle removed successfully"})
}

// ListWithPost handles POST /favorites, the unauthenticated payload-addressed
// aggregate listing.  People favorites come first, then planets, then
// vehicles.
func (h *FavoriteHandler) ListWithPost(c echo.Context) error {
	var req struct {
		UserID *uint64 `json:"user_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.UserID == nil {
		return c.JSON(http.StatusBadRequest, missingFieldMsg("user_id"))
	}
	return h.respondFavorites(c, *req.UserID)
}

// ListForUser handles GET /favorites/:user_id.  The route is authenticated
// and a user may only read their own favorites: the path id must match the
// token's subject claim.
func (h *FavoriteHandler) ListForUser(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	pathID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_id"})
	}
	if pathID != uid {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}
	return h.respondFavorites(c, pathID)
}

func (h *FavoriteHandler) respondFavorites(c echo.Context, userID uint64) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		logger.Error().Err(err).Msg("get user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items, err := h.Favorites.ListAllByUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msg("list favorites failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "ok", "all_favorites": items})
}
