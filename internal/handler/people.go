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

// PeopleHandler exposes CRUD endpoints for the people catalog.
type PeopleHandler struct {
	People *repository.PeopleRepo
}

func NewPeopleHandler(p *repository.PeopleRepo) *PeopleHandler {
	if p == nil {
		panic("nil repository passed to NewPeopleHandler")
	}
	return &PeopleHandler{People: p}
}

// peopleReq carries every declared attribute as a pointer so an absent key
// is distinguishable from a zero value.  firstMissing checks the fields in
// declared order, which fixes which field a 400 reports when several are
// absent.
type peopleReq struct {
	ID        *uint64  `json:"id"` // only consulted by Update
	Name      *string  `json:"name"`
	Birthdate *string  `json:"birthdate"`
	Gender    *string  `json:"gender"`
	Eyes      *string  `json:"eyes"`
	Skin      *string  `json:"skin"`
	Height    *float64 `json:"height"`
}

func (r *peopleReq) firstMissing() string {
	switch {
	case r.Name == nil:
		return "name"
	case r.Birthdate == nil:
		return "birthdate"
	case r.Gender == nil:
		return "gender"
	case r.Eyes == nil:
		return "eyes"
	case r.Skin == nil:
		return "skin"
	case r.Height == nil:
		return "height"
	}
	return ""
}

func (r *peopleReq) toModel() *model.People {
	return &model.People{
		Name:      *r.Name,
		Birthdate: *r.Birthdate,
		Gender:    *r.Gender,
		Eyes:      *r.Eyes,
		Skin:      *r.Skin,
		Height:    *r.Height,
	}
}

// List handles GET /people.
func (h *PeopleHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	people, err := h.People.ListAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list people failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "ok", "people": people})
}

// Create handles POST /people.  Validation runs before any store mutation.
func (h *PeopleHandler) Create(c echo.Context) error {
	var req peopleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if f := req.firstMissing(); f != "" {
		return c.JSON(http.StatusBadRequest, missingFieldMsg(f))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p := req.toModel()
	if err := h.People.Create(ctx, p); err != nil {
		logger.Error().Err(err).Msg("create people failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, p)
}

// GetByID handles GET /people/:id.
func (h *PeopleHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	return h.respondPeople(c, id)
}

// GetWithPost handles POST /people-with-post, the payload-addressed lookup.
func (h *PeopleHandler) GetWithPost(c echo.Context) error {
	var req struct {
		ID *uint64 `json:"id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == nil {
		return c.JSON(http.StatusBadRequest, missingFieldMsg("id"))
	}
	return h.respondPeople(c, *req.ID)
}

func (h *PeopleHandler) respondPeople(c echo.Context, id uint64) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.People.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		logger.Error().Err(err).Msg("get people failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PUT /people.  The target id comes from the payload and
// every declared attribute must be present; partial edits are rejected.
func (h *PeopleHandler) Update(c echo.Context) error {
	var req peopleReq
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
	if err := h.People.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		logger.Error().Err(err).Msg("update people failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /people with the id in the payload.
func (h *PeopleHandler) Delete(c echo.Context) error {
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

	if err := h.People.Delete(ctx, *req.ID); err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		logger.Error().Err(err).Msg("delete people failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Deleted character"})
}
