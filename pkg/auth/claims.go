package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID uuid.UUID
}

// AccessTokenClaims represents the typed JWT presented by clients. Token
// issuance lives with the identity provider; this service only mints tokens
// in tests and verifies them in middleware.
type AccessTokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}
