package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/holocron/catalog-api/internal/model"
)

// PlanetRepo encapsulates all database queries related to the planets catalog.
type PlanetRepo struct{ DB *sql.DB }

func NewPlanetRepo(db *sql.DB) *PlanetRepo { return &PlanetRepo{DB: db} }

// Create inserts a new planet and populates its ID.
func (r *PlanetRepo) Create(ctx context.Context, p *model.Planet) error {
	const q = "INSERT INTO planets (name, gravity, terrain, climate, orbital_period, population, diameter) VALUES (?,?,?,?,?,?,?)"
	res, err := r.DB.ExecContext(ctx, q, p.Name, p.Gravity, p.Terrain, p.Climate, p.OrbitalPeriod, p.Population, p.Diameter)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// GetByID fetches a planet by id.  It returns ErrPlanetNotFound if no row
// is found.
func (r *PlanetRepo) GetByID(ctx context.Context, id uint64) (*model.Planet, error) {
	const q = "SELECT id, name, gravity, terrain, climate, orbital_period, population, diameter FROM planets WHERE id=? LIMIT 1"
	var p model.Planet
	err := r.DB.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Gravity, &p.Terrain, &p.Climate, &p.OrbitalPeriod, &p.Population, &p.Diameter)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces every attribute of the planet identified by p.ID.
func (r *PlanetRepo) Update(ctx context.Context, p *model.Planet) error {
	const q = "UPDATE planets SET name=?, gravity=?, terrain=?, climate=?, orbital_period=?, population=?, diameter=? WHERE id=?"
	res, err := r.DB.ExecContext(ctx, q, p.Name, p.Gravity, p.Terrain, p.Climate, p.OrbitalPeriod, p.Population, p.Diameter, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a planet along with any favorite rows via the cascading
// foreign key.
func (r *PlanetRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM planets WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPlanetNotFound
	}
	return nil
}

// ListAll returns every planet ordered by id.
func (r *PlanetRepo) ListAll(ctx context.Context) ([]*model.Planet, error) {
	const q = "SELECT id, name, gravity, terrain, climate, orbital_period, population, diameter FROM planets ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Planet
	for rows.Next() {
		p := new(model.Planet)
		if err := rows.Scan(&p.ID, &p.Name, &p.Gravity, &p.Terrain, &p.Climate, &p.OrbitalPeriod, &p.Population, &p.Diameter); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
