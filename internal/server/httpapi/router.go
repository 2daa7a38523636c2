// Package httpapi exposes the REST surface of the adventure tracker: the
// adventures collection and the image endpoints, with permissive CORS and
// the admin allow-list enforced at this boundary.
package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/adventures/internal/logging"
	"github.com/dmitrijs2005/adventures/internal/server/auth"
)

// NewRouter wires the handler into a mux with CORS, request logging and the
// admin check on mutating routes. An empty allow-list disables the check.
func NewRouter(h *Handler, secretKey []byte, adminEmails []string, log logging.Logger) http.Handler {
	admin := requireAdmin(secretKey, adminEmails)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.healthz)
	mux.HandleFunc("GET /adventures", h.getAdventures)
	mux.Handle("POST /adventures", admin(http.HandlerFunc(h.saveAdventure)))
	mux.Handle("POST /images", admin(http.HandlerFunc(h.uploadImage)))
	mux.Handle("DELETE /images", admin(http.HandlerFunc(h.deleteImage)))

	return withRequestLogging(log, withCORS(mux))
}

// withCORS sets permissive cross-origin headers and answers OPTIONS
// preflights before they reach the mux.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func withRequestLogging(log logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rec.status,
			"duration", time.Since(start).Truncate(time.Millisecond).String(),
		)
	})
}

// requireAdmin checks the bearer token's email claim against the
// allow-list. The original app only checked this client-side; here it sits
// at the request boundary. An empty allow-list keeps the endpoints open.
func requireAdmin(secretKey []byte, adminEmails []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(adminEmails) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, http.StatusUnauthorized, "Authorization required")
				return
			}

			email, err := auth.EmailFromToken(token, secretKey)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Authorization required")
				return
			}

			for _, allowed := range adminEmails {
				if strings.EqualFold(allowed, email) {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeError(w, http.StatusForbidden, "Not allowed")
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
