// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware bir func(next http.Handler) http.Handler'dır. İşini yapar,
// sonra next'i çağırır. Hata varsa next çağrılmaz ve request burada durur.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/akinalp/serverdir/handlers"
	"github.com/akinalp/serverdir/models"
	"github.com/akinalp/serverdir/pkg"
	"github.com/akinalp/serverdir/repository"
	"github.com/akinalp/serverdir/services"
)

// AuthMiddleware, JWT access token'dan çağıranın kimliğini çözer.
type AuthMiddleware struct {
	authService services.AuthService
	userRepo    repository.UserRepository
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		userRepo:    userRepo,
	}
}

// Optional, Authorization header varsa token'ı doğrulayıp kullanıcıyı
// context'e koyar. Header yoksa istek anonim devam eder. Header var ama
// geçersizse 401 döner; bozuk token sessizce anonime düşmez.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.authenticate(r)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(handlers.WithUser(r.Context(), user)))
	})
}

// Require, geçerli token zorunlu kılar. Token yoksa veya geçersizse 401.
//
// HTTP header formatı: Authorization: Bearer <token>
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		user, err := m.authenticate(r)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(handlers.WithUser(r.Context(), user)))
	})
}

// authenticate, header'daki token'ı doğrular ve kullanıcıyı DB'den getirir.
// Token geçerli olsa da kullanıcı silinmiş olabilir; o durumda da 401.
func (m *AuthMiddleware) authenticate(r *http.Request) (*models.User, error) {
	authHeader := r.Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenString == "" {
		return nil, fmt.Errorf("%w: invalid authorization format, use: Bearer <token>", pkg.ErrUnauthorized)
	}

	claims, err := m.authService.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	return user, nil
}
