package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/holocron/catalog-api/internal/model"
	"github.com/holocron/catalog-api/internal/repository"
)

// VehicleHandler exposes CRUD endpoints for the vehicles catalog.
type VehicleHandler struct {
	Vehicles *repository.VehicleRepo
}

func NewVehicleHandler(v *repository.VehicleRepo) *VehicleHandler {
	if v == nil {
		panic("nil repository passed to NewVehicleHandler")
	}
	return &VehicleHandler{Vehicles: v}
}

type vehicleReq struct {
	ID            *uint64 `json:"id"` // only consulted by Update
	Name          *string `json:"name"`
	Model         *string `json:"model"`
	Length        *string `json:"length"`
	MaxSpeed      *string `json:"max_speed"`
	CargoCapacity *string `json:"cargo_capacity"`
	Manufacturer  *string `json:"manufacturer"`
}

func (r *vehicleReq) firstMissing() string {
	switch {
	case r.Name == nil:
		return "name"
	case r.Model == nil:
		return "model"
	case r.Length == nil:
		return "length"
	case r.MaxSpeed == nil:
		return "max_speed"
	case r.CargoCapacity == nil:
		return "cargo_capacity"
	case r.Manufacturer == nil:
		return "manufacturer"
	}
	return ""
}

func (r *vehicleReq) toModel() *model.Vehicle {
	return &model.Vehicle{
		Name:          *r.Name,
		Model:         *r.Model,
		Length:        *r.Length,
		MaxSpeed:      *r.MaxSpeed,
		CargoCapacity: *r.CargoCapacity,
		Manufacturer:  *r.Manufacturer,
	}
}

// List handles GET /vehicles.
func (h *VehicleHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	vehicles, err := h.Vehicles.ListAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list vehicles failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "ok", "vehicles": vehicles})
}

// Create handles POST /vehicles.
func (h *VehicleHandler) Create(c echo.Context) error {
	var req vehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if f := req.firstMissing(); f != "" {
		return c.JSON(http.StatusBadRequest, missingFieldMsg(f))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v := req.toModel()
	if err := h.Vehicles.Create(ctx, v); err != nil {
		logger.Error().Err(err).Msg("create vehicle failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, v)
}

// GetByID handles GET /vehicles/:id.
func (h *VehicleHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	return h.respondVehicle(c, id)
}

// GetWithPost handles POST /vehicles-with-post, the payload-addressed lookup.
func (h *VehicleHandler) GetWithPost(c echo.Context) error {
	var req struct {
		ID *uint64 `json:"id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == nil {
		return c.JSON(http.StatusBadRequest, missingFieldMsg("id"))
	}
	return h.respondVehicle(c, *req.ID)
}

func (h *VehicleHandler) respondVehicle(c echo.Context, id uint64) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.Vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Vehicle not found"})
		}
		logger.Error().Err(err).Msg("get vehicle failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, v)
}

// Update handles PUT /vehicles with the id in the payload and every declared
// attribute present.
func (h *VehicleHandler) Update(c echo.Context) error {
	var req vehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == nil {
		return c.JSON(http.StatusBadRequest, missingFieldMsg("id"))
	}
	if f := req.firstMissing(); f != "" {
		return c.JSON(http.StatusBadRequest, missingFieldMsg(f))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v := req.toModel()
	v.ID = *req.ID
	if err := h.Vehicles.Update(ctx, v); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Vehicle not found"})
		}
		logger.Error().Err(err).Msg("update vehicle failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, v)
}

// Delete handles DELETE /vehicles with the id in the payload.
func (h *VehicleHandler) Delete(c echo.Context) error {
	var req struct {
		ID *uint64 `json:"id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == nil {
		return c.JSON(http.StatusBadRequest, missingFieldMsg("id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Vehicles.Delete(ctx, *req.ID); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Vehicle not found"})
		}
		logger.Error().Err(err).Msg("delete vehicle failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Vehicle deleted"})
}
