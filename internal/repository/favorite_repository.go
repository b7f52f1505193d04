package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/holocron/catalog-api/internal/model"
)

// FavoriteRepo encapsulates the three favorite join tables.  All three share
// the same shape (one row per (user, entity) pair, guarded by a unique
// index), so the SQL is built from a per-kind descriptor and exposed through
// explicit per-kind methods.
type FavoriteRepo struct{ DB *sql.DB }

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{DB: db} }

// favKind describes one join table: where rows live, which column references
// the catalog entity, which catalog table holds the display name and which
// category tag listings should carry.
type favKind struct {
	table    string // join table name
	idCol    string // entity foreign key column in the join table
	refTable string // referenced catalog table
	category string // derived category tag for listings
}

var (
	favPeople   = favKind{table: "favorite_people", idCol: "people_id", refTable: "people", category: "people"}
	favPlanets  = favKind{table: "favorite_planets", idCol: "planet_id", refTable: "planets", category: "planets"}
	favVehicles = favKind{table: "favorite_vehicles", idCol: "vehicle_id", refTable: "vehicles", category: "vehicles"}
)

// add inserts a join row and returns its id.  A duplicate pair is reported
// as ErrFavoriteExists; the unique index makes this reliable even when the
// handler's read-then-write duplicate check loses a race.
func (r *FavoriteRepo) add(ctx context.Context, k favKind, userID, entityID uint64) (uint64, error) {
	q := fmt.Sprintf("INSERT INTO %s (user_id, %s) VALUES (?,?)", k.table, k.idCol)
	res, err := r.DB.ExecContext(ctx, q, userID, entityID)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrFavoriteExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// has reports whether a join row exists for the pair.
func (r *FavoriteRepo) has(ctx context.Context, k favKind, userID, entityID uint64) (bool, error) {
	q := fmt.Sprintf("SELECT 1 FROM %s WHERE user_id=? AND %s=? LIMIT 1", k.table, k.idCol)
	var one int
	err := r.DB.QueryRowContext(ctx, q, userID, entityID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// remove deletes the join row for the pair, reporting ErrFavoriteNotFound
// when nothing was deleted.
func (r *FavoriteRepo) remove(ctx context.Context, k favKind, userID, entityID uint64) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE user_id=? AND %s=?", k.table, k.idCol)
	res, err := r.DB.ExecContext(ctx, q, userID, entityID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// listByUser returns the user's favorites of one kind joined with the
// catalog table for the display name.  The category tag is derived here,
// never stored.
func (r *FavoriteRepo) listByUser(ctx context.Context, k favKind, userID uint64) ([]model.FavoriteItem, error) {
	q := fmt.Sprintf(`SELECT e.name, f.%s FROM %s f
	                  JOIN %s e ON e.id = f.%s
	                  WHERE f.user_id = ? ORDER BY f.id`,
		k.idCol, k.table, k.refTable, k.idCol)
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.FavoriteItem
	for rows.Next() {
		item := model.FavoriteItem{Category: k.category}
		if err := rows.Scan(&item.Name, &item.EntityID); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddPeople creates a favorite-character row for the pair.
func (r *FavoriteRepo) AddPeople(ctx context.Context, userID, peopleID uint64) (*model.FavoritePeople, error) {
	id, err := r.add(ctx, favPeople, userID, peopleID)
	if err != nil {
		return nil, err
	}
	return &model.FavoritePeople{ID: id, UserID: userID, PeopleID: peopleID}, nil
}

// HasPeople reports whether the user already favorited the character.
func (r *FavoriteRepo) HasPeople(ctx context.Context, userID, peopleID uint64) (bool, error) {
	return r.has(ctx, favPeople, userID, peopleID)
}

// RemovePeople deletes a favorite-character row.
func (r *FavoriteRepo) RemovePeople(ctx context.Context, userID, peopleID uint64) error {
	return r.remove(ctx, favPeople, userID, peopleID)
}

// AddPlanet creates a favorite-planet row for the pair.
func (r *FavoriteRepo) AddPlanet(ctx context.Context, userID, planetID uint64) (*model.FavoritePlanet, error) {
	id, err := r.add(ctx, favPlanets, userID, planetID)
	if err != nil {
		return nil, err
	}
	return &model.FavoritePlanet{ID: id, UserID: userID, PlanetID: planetID}, nil
}

// HasPlanet reports whether the user already favorited the planet.
func (r *FavoriteRepo) HasPlanet(ctx context.Context, userID, planetID uint64) (bool, error) {
	return r.has(ctx, favPlanets, userID, planetID)
}

// RemovePlanet deletes a favorite-planet row.
func (r *FavoriteRepo) RemovePlanet(ctx context.Context, userID, planetID uint64) error {
	return r.remove(ctx, favPlanets, userID, planetID)
}

// AddVehicle creates a favorite-vehicle row for the pair.
func (r *FavoriteRepo) AddVehicle(ctx context.Context, userID, vehicleID uint64) (*model.FavoriteVehicle, error) {
	id, err := r.add(ctx, favVehicles, userID, vehicleID)
	if err != nil {
		return nil, err
	}
	return &model.FavoriteVehicle{ID: id, UserID: userID, VehicleID: vehicleID}, nil
}

// HasVehicle reports whether the user already favorited the vehicle.
func (r *FavoriteRepo) HasVehicle(ctx context.Context, userID, vehicleID uint64) (bool, error) {
	return r.has(ctx, favVehicles, userID, vehicleID)
}

// RemoveVehicle deletes a favorite-vehicle row.
func (r *FavoriteRepo) RemoveVehicle(ctx context.Context, userID, vehicleID uint64) error {
	return r.remove(ctx, favVehicles, userID, vehicleID)
}

// ListAllByUser aggregates the user's favorites across all three catalogs.
// Concatenation order is fixed (people, then planets, then vehicles) so the
// output is deterministic.
func (r *FavoriteRepo) ListAllByUser(ctx context.Context, userID uint64) ([]model.FavoriteItem, error) {
	out := []model.FavoriteItem{}
	for _, k := range []favKind{favPeople, favPlanets, favVehicles} {
		items, err := r.listByUser(ctx, k, userID)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}
