package handlers

import (
	"net/http"
	"net/url"

	"github.com/akinalp/serverdir/models"
	"github.com/akinalp/serverdir/pkg"
	"github.com/akinalp/serverdir/services"
)

// ServerHandler, sunucu listeleme endpoint'ini yönetir.
type ServerHandler struct {
	serverService services.ServerService
}

func NewServerHandler(serverService services.ServerService) *ServerHandler {
	return &ServerHandler{serverService: serverService}
}

// List godoc
// GET /api/server/select?category=&qty=&by_user=&by_serverid=&with_num_members=
func (h *ServerHandler) List(w http.ResponseWriter, r *http.Request) {
	params := parseServerListParams(r.URL.Query())

	servers, err := h.serverService.List(r.Context(), params, IdentityFromContext(r.Context()))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, servers)
}

// parseServerListParams, query string'i ServerListParams'a çevirir.
// Boş değer parametre hiç gönderilmemiş sayılır; boolean'lar sadece
// tam olarak "true" ise açıktır. Sayısal değerler burada doğrulanmaz.
func parseServerListParams(query url.Values) models.ServerListParams {
	optional := func(key string) *string {
		v := query.Get(key)
		if v == "" {
			return nil
		}
		return &v
	}

	return models.ServerListParams{
		Category:       optional("category"),
		Qty:            optional("qty"),
		ByUser:         query.Get("by_user") == "true",
		ByServerID:     optional("by_serverid"),
		WithNumMembers: query.Get("with_num_members") == "true",
	}
}
