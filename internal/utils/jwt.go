package utils // package utils provides helper functions for token creation and hashing

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
	"github.com/google/uuid"       // uuid generates the unique token identifier (jti)
)

// AccessToken represents a signed JWT access token along with its expiry and
// unique identifier.  The Token field contains the JWT string.  JTI is the
// token's unique identifier; it is what the revocation ledger stores on
// logout, so a token can be invalidated server-side while it is still
// cryptographically valid.  Exp stores the expiration timestamp.
type AccessToken struct {
	Token string    // the serialized JWT string
	JTI   string    // unique token identifier embedded in the jti claim
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID and a TTL in minutes.  The JWT includes
// standard claims: subject (sub, the user id), a unique identifier (jti),
// expiration (exp) and issued at (iat).
func NewAccessToken(secret string, userID uint64, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"sub": userID,
		"jti": jti,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, JTI: jti, Exp: exp}, nil
}
