package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the JWT session marker issued to an authenticated admin.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be stored in the session cookie.
//
// AdminID is a cached, parsed copy of the "sub" claim converted to int64,
// populated during token construction or parsing to avoid repeated
// string-to-int conversion.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// AdminID is the operator identifier extracted from the "sub" claim.
	AdminID int64 `json:"-"`
}

// GetAdminID extracts the operator identifier from the token's "sub"
// (subject) claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetAdminID() (int64, error) {
	adminIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting AdminID from token: %w", err)
	}

	adminID, err := strconv.ParseInt(adminIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting AdminID from token to int64: %w", err)
	}

	return adminID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
