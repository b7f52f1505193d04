package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/holocron/catalog-api/internal/model"
)

// VehicleRepo encapsulates all database queries related to the vehicles
// catalog.
type VehicleRepo struct{ DB *sql.DB }

func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{DB: db} }

// Create inserts a new vehicle and populates its ID.
func (r *VehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	const q = "INSERT INTO vehicles (name, model, length, max_speed, cargo_capacity, manufacturer) VALUES (?,?,?,?,?,?)"
	res, err := r.DB.ExecContext(ctx, q, v.Name, v.Model, v.Length, v.MaxSpeed, v.CargoCapacity, v.Manufacturer)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID fetches a vehicle by id.  It returns ErrVehicleNotFound if no row
// is found.
func (r *VehicleRepo) GetByID(ctx context.Context, id uint64) (*model.Vehicle, error) {
	const q = "SELECT id, name, model, length, max_speed, cargo_capacity, manufacturer FROM vehicles WHERE id=? LIMIT 1"
	var v model.Vehicle
	err := r.DB.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.Name, &v.Model, &v.Length, &v.MaxSpeed, &v.CargoCapacity, &v.Manufacturer)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Update replaces every attribute of the vehicle identified by v.ID.
func (r *VehicleRepo) Update(ctx context.Context, v *model.Vehicle) error {
	const q = "UPDATE vehicles SET name=?, model=?, length=?, max_speed=?, cargo_capacity=?, manufacturer=? WHERE id=?"
	res, err := r.DB.ExecContext(ctx, q, v.Name, v.Model, v.Length, v.MaxSpeed, v.CargoCapacity, v.Manufacturer, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, v.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a vehicle along with any favorite rows via the cascading
// foreign key.
func (r *VehicleRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM vehicles WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVehicleNotFound
	}
	return nil
}

// ListAll returns every vehicle ordered by id.
func (r *VehicleRepo) ListAll(ctx context.Context) ([]*model.Vehicle, error) {
	const q = "SELECT id, name, model, length, max_speed, cargo_capacity, manufacturer FROM vehicles ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Vehicle
	for rows.Next() {
		v := new(model.Vehicle)
		if err := rows.Scan(&v.ID, &v.Name, &v.Model, &v.Length, &v.MaxSpeed, &v.CargoCapacity, &v.Manufacturer); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
