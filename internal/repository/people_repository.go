package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/holocron/catalog-api/internal/model"
)

// PeopleRepo encapsulates all database queries related to the people
// catalog.  It depends on a sql.DB connection which is configured at
// startup and injected here, allowing tests to substitute their own handle.
type PeopleRepo struct{ DB *sql.DB }

func NewPeopleRepo(db *sql.DB) *PeopleRepo { return &PeopleRepo{DB: db} }

// Create inserts a new character.  On success the ID field is populated
// with the auto-generated value.
func (r *PeopleRepo) Create(ctx context.Context, p *model.People) error {
	const q = "INSERT INTO people (name, height, birthdate, gender, eyes, skin) VALUES (?,?,?,?,?,?)"
	res, err := r.DB.ExecContext(ctx, q, p.Name, p.Height, p.Birthdate, p.Gender, p.Eyes, p.Skin)
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

// GetByID fetches a character by id.  It returns ErrCharacterNotFound if no
// row is found.
func (r *PeopleRepo) GetByID(ctx context.Context, id uint64) (*model.People, error) {
	const q = "SELECT id, name, height, birthdate, gender, eyes, skin FROM people WHERE id=? LIMIT 1"
	var p model.People
	err := r.DB.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Height, &p.Birthdate, &p.Gender, &p.Eyes, &p.Skin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCharacterNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces every attribute of the character identified by p.ID.
// Partial updates are not supported; the handler validates that all fields
// are present before this is called.
func (r *PeopleRepo) Update(ctx context.Context, p *model.People) error {
	const q = "UPDATE people SET name=?, height=?, birthdate=?, gender=?, eyes=?, skin=? WHERE id=?"
	res, err := r.DB.ExecContext(ctx, q, p.Name, p.Height, p.Birthdate, p.Gender, p.Eyes, p.Skin, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows can also mean the values were identical; confirm the row
		// exists before reporting not found.
		if _, err := r.GetByID(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a character.  Favorite rows referencing it are removed by
// the cascading foreign key.
func (r *PeopleRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM people WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCharacterNotFound
	}
	return nil
}

// ListAll returns every character ordered by id.
func (r *PeopleRepo) ListAll(ctx context.Context) ([]*model.People, error) {
	const q = "SELECT id, name, height, birthdate, gender, eyes, skin FROM people ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.People
	for rows.Next() {
		p := new(model.People)
		if err := rows.Scan(&p.ID, &p.Name, &p.Height, &p.Birthdate, &p.Gender, &p.Eyes, &p.Skin); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
