package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, access token'ın payload'ı.
//
// Birden fazla katman (services, middleware) kullandığı için models'te durur,
// böylece circular dependency oluşmaz.
type TokenClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
