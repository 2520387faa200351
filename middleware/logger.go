package middleware

import (
	"net/http"
	"time"

	"github.com/akinalp/serverdir/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader, her yanıta eklenen request id header'ı.
// Client kendi id'sini gönderirse o kullanılır.
const RequestIDHeader = "X-Request-ID"

// statusRecorder, handler'ın yazdığı status code'u yakalar.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger, her isteği zap ile loglar. Seviye status sınıfına göre seçilir:
// 5xx → Error, 4xx → Warn, diğerleri → Info.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.Int("status", rec.status),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("ip", r.RemoteAddr),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_agent", r.UserAgent()),
		}
		if r.URL.RawQuery != "" {
			fields = append(fields, zap.String("query", r.URL.RawQuery))
		}

		log := logger.L
		switch {
		case rec.status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case rec.status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	})
}
