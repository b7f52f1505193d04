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

// PlanetHandler exposes CRUD endpoints for the planets catalog.
type PlanetHandler struct {
	Planets *repository.PlanetRepo
}

func NewPlanetHandler(p *repository.PlanetRepo) *PlanetHandler {
	if p == nil {
		panic("nil repository passed to NewPlanetHandler")
	}
	return &PlanetHandler{Planets: p}
}

type planetReq struct {
	ID            *uint64 `json:"id"` // only consulted by Update
	Name          *string `json:"name"`
	Gravity       *string `json:"gravity"`
	Terrain       *string `json:"terrain"`
	Climate       *string `json:"climate"`
	OrbitalPeriod *string `json:"orbital_period"`
	Population    *string `json:"population"`
	Diameter      *string `json:"diameter"`
}

func (r *planetReq) firstMissing() string {
	switch {
	case r.Name == nil:
		return "name"
	case r.Gravity == nil:
		return "gravity"
	case r.Terrain == nil:
		return "terrain"
	case r.Climate == nil:
		return "climate"
	case r.OrbitalPeriod == nil:
		return "orbital_period"
	case r.Population == nil:
		return "population"
	case r.Diameter == nil:
		return "diameter"
	}
	return ""
}

func (r *planetReq) toModel() *model.Planet {
	return &model.Planet{
		Name:          *r.Name,
		Gravity:       *r.Gravity,
		Terrain:       *r.Terrain,
		Climate:       *r.Climate,
		OrbitalPeriod: *r.OrbitalPeriod,
		Population:    *r.Population,
		Diameter:      *r.Diameter,
	}
}

// List handles GET /planets.
func (h *PlanetHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	planets, err := h.Planets.ListAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list planets failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "ok", "planets": planets})
}

// Create handles POST /planets.
func (h *PlanetHandler) Create(c echo.Context) error {
	var req planetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if f := req.firstMissing(); f != "" {
		return c.JSON(http.StatusBadRequest, missingFieldMsg(f))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p := req.toModel()
	if err := h.Planets.Create(ctx, p); err != nil {
		logger.Error().Err(err).Msg("create planet failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, p)
}

// GetByID handles GET /planets/:id.
func (h *PlanetHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	return h.respondPlanet(c, id)
}

// GetWithPost handles POST /planet-with-post, the payload-addressed lookup.
func (h *PlanetHandler) GetWithPost(c echo.Context) error {
	var req struct {
		ID *uint64 `json:"id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == nil {
		return c.JSON(http.StatusBadRequest, missingFieldMsg("id"))
	}
	return h.respondPlanet(c, *req.ID)
}

func (h *PlanetHandler) respondPlanet(c echo.Context, id uint64) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Planets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanetNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Planet not found"})
		}
		logger.Error().Err(err).Msg("get planet failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PUT /planets with the id in the payload and every declared
// attribute present.
func (h *PlanetHandler) Update(c echo.Context) error {
	var req planetReq
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

	p := req.toModel()
	p.ID = *req.ID
	if err := h.Planets.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrPlanetNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Planet not found"})
		}
		logger.Error().Err(err).Msg("update planet failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /planets with the id in the payload.
func (h *PlanetHandler) Delete(c echo.Context) error {
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

	if err := h.Planets.Delete(ctx, *req.ID); err != nil {
		if errors.Is(err, repository.ErrPlanetNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Planet not found"})
		}
		logger.Error().Err(err).Msg("delete planet failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Planet deleted"})
}
