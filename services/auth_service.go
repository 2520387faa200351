// Package services, business logic katmanını barındırır.
//
// Handler (HTTP) ile Repository (DB) arasında oturur. Service http.Request
// bilmez, doğrudan SQL çalıştırmaz. Sadece domain modelleri alır ve verir.
package services

import (
	"fmt"
	"time"

	"github.com/akinalp/serverdir/models"
	"github.com/akinalp/serverdir/pkg"
	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "serverdir"

// AuthService, access token doğrulama ve üretme interface'i.
//
// Login/kayıt akışı bu serviste yoktur. IssueAccessToken seed ve test
// araçları için vardır, HTTP'ye açılmaz.
type AuthService interface {
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
	IssueAccessToken(user *models.User) (string, error)
}

type authService struct {
	jwtSecret []byte
	accessExp time.Duration
	now       func() time.Time
}

// NewAuthService, constructor. accessExpMinutes token ömrüdür.
func NewAuthService(jwtSecret string, accessExpMinutes int) AuthService {
	return &authService{
		jwtSecret: []byte(jwtSecret),
		accessExp: time.Duration(accessExpMinutes) * time.Minute,
		now:       time.Now,
	}
}

// ValidateAccessToken, HS256 imzalı access token'ı doğrular ve claims'i döner.
// İmza, süre veya algoritma hatalarının hepsi ErrUnauthorized olur.
func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}

	return claims, nil
}

// IssueAccessToken, kullanıcı için imzalı bir access token üretir.
func (s *authService) IssueAccessToken(user *models.User) (string, error) {
	now := s.now()
	claims := &models.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}
