package model

import "time"

// RevokedToken models an entry in the `token_blocked_list` table.  Each row
// records the unique identifier (jti) of a JWT that was invalidated by
// logout, the wall-clock time of the revocation and the email of the acting
// user.  Rows are immutable once created and are never deleted, which makes
// the table an append-only revocation ledger.
//
// Fields:
//  ID        – primary key identifier.
//  Token     – jti claim of the revoked JWT (unique).
//  CreatedAt – when the token was revoked.
//  Email     – email of the user that logged out.
type RevokedToken struct {
	ID        uint64    `json:"id"`      // token_blocked_list.id
	Token     string    `json:"token"`   // token_blocked_list.token (jti)
	CreatedAt time.Time `json:"created"` // token_blocked_list.created_at
	Email     string    `json:"email"`   // token_blocked_list.email
}
