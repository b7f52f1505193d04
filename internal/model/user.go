package model

// User represents an application user record as stored in the `users`
// table.  The password hash is tagged with `json:"-"` so it can never be
// serialized into a response, no matter which handler returns the struct.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name (not unique).
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  IsActive     – whether the account is active.
type User struct {
	ID           uint64 `json:"id"`        // users.id
	Name         string `json:"name"`      // users.name
	Email        string `json:"email"`     // users.email
	PasswordHash string `json:"-"`         // users.password_hash (never serialized)
	IsActive     bool   `json:"is_active"` // users.is_active
}
