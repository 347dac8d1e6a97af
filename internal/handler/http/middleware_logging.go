package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-edge-daemon/internal/logger"
)

// responseWriter records the status and body size written by the next
// handler so the logging middleware can report them.
type responseWriter struct {
	http.ResponseWriter

	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (h *Handler[T]) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// attach the handler's logger so downstream code can use
		// logger.FromRequest
		r = r.WithContext(h.logger.WithContext(r.Context()))
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
