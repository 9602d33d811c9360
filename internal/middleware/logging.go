package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	log "github.com/sirupsen/logrus"
)

// LogRequest logs every request with its final status code and duration.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			entry := log.WithFields(log.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   m.Code,
				"duration": m.Duration.String(),
				"ua":       r.Header.Get("User-Agent"),
			})
			if m.Code >= http.StatusInternalServerError {
				entry.Warn("request failed")
				return
			}
			entry.Trace("request")
		})
	}
}
