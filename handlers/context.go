// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler ince olmalı: request'i parse et, service'i çağır, sonucu
// pkg.JSON / pkg.Error ile yaz. İş mantığı ve SQL handler'da yaşamaz.
package handlers

import (
	"context"

	"github.com/akinalp/serverdir/models"
)

type contextKey string

// UserContextKey, AuthMiddleware'ın doğrulanmış *models.User'ı koyduğu context key'i.
const UserContextKey contextKey = "user"

// WithUser, kullanıcıyı context'e ekler.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// IdentityFromContext, request context'indeki kimliği döner.
// Context'te kullanıcı yoksa çağıran anonimdir.
func IdentityFromContext(ctx context.Context) models.Identity {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok || user == nil {
		return models.AnonymousIdentity()
	}
	return models.AuthenticatedIdentity(user)
}
