package middleware

import (
	"net/http"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8080",
}

// Cors answers preflight requests and rejects cross origin requests from
// origins that are not allowed.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = DefaultAllowedOrigins
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization",
			"X-CSRF-Token", "X-MCP-Secret", "MCP-Protocol-Version", "MCP-Session-Id",
		},
		AllowCredentials: true,
	})

	return func(next http.Handler) http.Handler {
		corsHandler := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && !c.OriginAllowed(r) {
				log.Tracef("cors: origin [%s] not allowed for %s", origin, r.URL.Path)
				http.Error(w, "origin not allowed", http.StatusForbidden)
				return
			}
			corsHandler.ServeHTTP(w, r)
		})
	}
}
