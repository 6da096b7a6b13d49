package handler

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// requireAPIKey checks the bearer token against the configured bcrypt hash.
// With no hash configured the API is open.
func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.config.APIKeyHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(h.config.APIKeyHash), []byte(token)); err != nil {
			h.logger.Warn("rejected API key", "remote", r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, "invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
