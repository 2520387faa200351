package handlers

import (
	"net/http"

	"github.com/akinalp/serverdir/models"
	"github.com/akinalp/serverdir/pkg"
)

// UserHandler, kimliği doğrulanmış kullanıcının kendi kaydını döner.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me godoc
// GET /api/users/me
// AuthMiddleware.Require arkasında çalışır; kullanıcı context'ten okunur.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok || user == nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	pkg.JSON(w, http.StatusOK, user)
}
