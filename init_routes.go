// Package main: HTTP route registration.
//
// initRoutes, API endpoint'lerini mux'a bağlar. Middleware chain helper'ları:
//   - optional: token varsa doğrula, yoksa anonim devam et
//   - auth: token zorunlu
package main

import (
	"net/http"

	"github.com/akinalp/serverdir/middleware"
	"github.com/akinalp/serverdir/pkg"
	"github.com/akinalp/serverdir/repository"
	"github.com/akinalp/serverdir/services"
)

// initRoutes, middleware chain'i kurar ve endpoint'leri mux'a bağlar.
//
// Literal path'ler tek seviyeli olduğu için sıralama kuralı yok;
// "/api/server/select" ve "/api/server/category" ayrı pattern'lerdir.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	userRepo repository.UserRepository,
) {
	authMw := middleware.NewAuthMiddleware(authService, userRepo)

	optional := func(handler http.HandlerFunc) http.Handler {
		return authMw.Optional(handler)
	}
	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(handler)
	}

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.JSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "serverdir"})
	})

	// Listeleme: anonim erişime açık; by_user filtresi kimliği service'te ister.
	mux.Handle("GET /api/server/select", optional(h.Server.List))
	mux.Handle("GET /api/server/category", optional(h.Category.List))

	mux.Handle("GET /api/users/me", auth(h.User.Me))
}
