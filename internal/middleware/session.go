package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

type contextKey string

const cartIDKey contextKey = "cart_id"

const sessionName = "session"

// SessionMiddleware binds each browser to a stable cart id via a cookie
// session. The id is minted lazily on first cart interaction and is the sole
// scoping key for cart isolation.
type SessionMiddleware struct {
	store sessions.Store
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store sessions.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// EnsureCartID loads the caller's session, mints a cart id if the session has
// none yet, and puts the id in the request context.
func (m *SessionMiddleware) EnsureCartID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, sessionName)
		if err != nil {
			// A corrupt cookie gets a fresh session rather than an error.
			session.Options.MaxAge = 0
		}

		cartID, ok := session.Values[string(cartIDKey)].(string)
		if !ok || cartID == "" {
			cartID = uuid.New().String()
			session.Values[string(cartIDKey)] = cartID
			if err := session.Save(r, w); err != nil {
				http.Error(w, "Failed to save session", http.StatusInternalServerError)
				return
			}
		}

		ctx := context.WithValue(r.Context(), cartIDKey, cartID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CartIDFromContext returns the cart id established by EnsureCartID, or ""
func CartIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(cartIDKey).(string); ok {
		return id
	}
	return ""
}

// WithCartID returns a context carrying the given cart id
func WithCartID(ctx context.Context, cartID string) context.Context {
	return context.WithValue(ctx, cartIDKey, cartID)
}
