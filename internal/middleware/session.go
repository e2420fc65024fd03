package middleware

import (
	"net/http"

	"github.com/pr-poehali-dev/online-shop-network/internal/model"
)

type sessionSource interface {
	Current() (model.Session, bool)
}

// SessionGate keeps everything except the auth surface locked until a
// session exists. While unauthenticated, the renderer sees only 401s and
// falls back to the auth page.
type SessionGate struct {
	sessions sessionSource
}

func NewSessionGate(sessions sessionSource) *SessionGate {
	return &SessionGate{sessions: sessions}
}

func (g *SessionGate) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := g.sessions.Current(); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = jsonEncode(w, model.APIResponse{
				Success: false,
				Error: &model.APIError{
					Code:    "UNAUTHORIZED",
					Message: "Authentication required",
				},
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
