package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/akinalp/serverdir/pkg/logger"
	"go.uber.org/zap"
)

// APIResponse, tüm API yanıtları için standart format.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON, başarılı bir yanıt gönderir.
func JSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
	})
}

// Error, hata yanıtı gönderir.
// Domain error'ları otomatik olarak uygun HTTP status code'a çevrilir.
//
// Sentinel prefix'i ("bad request: ...") client'a gösterilmez, sadece
// wrap sırasında eklenen mesaj döner. 500 durumunda iç hata detayı
// sızdırılmaz: loglanır ve genel bir mesaj döner.
func Error(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)

	message := publicMessage(err)
	if status == http.StatusInternalServerError {
		logger.L.Error("request failed", zap.Error(err))
		message = "internal server error"
	}

	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
	})
}

// ErrorWithMessage, özel mesajlı hata yanıtı gönderir.
func ErrorWithMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
	})
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.L.Warn("failed to encode response", zap.Error(err))
	}
}

// mapErrorToStatus, domain error'ları HTTP status code'larına eşler.
// errors.Is() wrap edilmiş error'ları da doğru match eder.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage, "bad request: qty must be ..." gibi bir error'dan
// sentinel prefix'ini çıkarır. Wrap'lenmemiş sentinel ise olduğu gibi döner.
func publicMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrNotFound, ErrUnauthorized, ErrForbidden, ErrAlreadyExists, ErrBadRequest} {
		if prefix := sentinel.Error() + ": "; strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
