package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/holocron/catalog-api/internal/model"
)

// UserRepo encapsulates all database queries related to users.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns the stored record.  The email is checked
// for uniqueness before the insert so callers get ErrEmailExists instead of a
// raw driver error; the unique index on users.email still backs the check if
// two registrations race.
func (r *UserRepo) Create(ctx context.Context, email, name, passwordHash string, isActive bool) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var exists uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM users WHERE email=? LIMIT 1", email).Scan(&exists)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, is_active) VALUES (?,?,?,?)",
		name, email, passwordHash, isActive)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.User{ID: uint64(id), Name: name, Email: email, PasswordHash: passwordHash, IsActive: isActive}, nil
}

// GetByEmail fetches a user by normalized email.  Returns ErrUserNotFound
// when no row matches.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, is_active FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID fetches a user by id.  Returns ErrUserNotFound when no row matches.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, is_active FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateName replaces the display name of a user.  Editing is a
// full-field-replace of the single mutable attribute; email, password and
// active flag are managed by their own flows.
func (r *UserRepo) UpdateName(ctx context.Context, id uint64, name string) (*model.User, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name=? WHERE id=?", name, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 when the name is unchanged, so confirm the
		// row actually exists before reporting not found.
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user by id.  Favorite rows referencing the user are
// removed by the ON DELETE CASCADE foreign keys.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListAll returns every user ordered by id.
func (r *UserRepo) ListAll(ctx context.Context) ([]*model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, email, password_hash, is_active FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.User
	for rows.Next() {
		u := new(model.User)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsActive); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
