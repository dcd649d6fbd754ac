package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims is the token payload issued by the external identity
// provider. The messaging core only consumes the opaque user id.
type IdentityClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
