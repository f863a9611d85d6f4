package rest

import (
	"net/http"
	"strings"

	apperrors "github.com/duongpm13/cat-battle/internal/platform/errors"
)

// requireSession verifies the bearer token and stores its claims on the
// request context. Requests without a token are rejected before any
// handler runs.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			h.writeError(w, r, apperrors.New(apperrors.CodeSessionMissing, "bearer token is required"))
			return
		}

		claims, err := h.sessions.Verify(token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}
