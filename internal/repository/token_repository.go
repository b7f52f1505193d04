package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// TokenRepo persists the revocation ledger (`token_blocked_list`).  The
// ledger is append-only: rows are inserted on logout and never updated or
// deleted.  A token whose jti appears here must be rejected even though its
// signature and expiry still verify.
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// Revoke appends a ledger row for the given token identifier.  A duplicate
// insert (logging out twice with the same token) is treated as success so
// logout stays idempotent; the unique index on the token column keeps the
// ledger at one row per identifier either way.
func (r *TokenRepo) Revoke(ctx context.Context, jti, email string, now time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO token_blocked_list (token, created_at, email) VALUES (?,?,?)",
		jti, now.UTC(), email)
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}

// IsRevoked reports whether the token identifier appears in the ledger.
func (r *TokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM token_blocked_list WHERE token=? LIMIT 1", jti).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
