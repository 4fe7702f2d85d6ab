package middlewares

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/envisioned/nft-marketplace/internal/logger"
	"github.com/envisioned/nft-marketplace/internal/sessions"
	"github.com/google/uuid"
)

// ErrNotAuthenticated is returned by RequireUserID when the request carries
// no identity. The message is part of the API contract.
var ErrNotAuthenticated = errors.New("Not authenticated to perform the requested action.")

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (string, error)
	Generate(ctx context.Context, sessionID string) (string, error)
}

// SessionStore resolves a session id to the user bound to it.
type SessionStore interface {
	Get(ctx context.Context, sid string) (uuid.UUID, error)
}

// contextKey is an unexported type for keys in context
type contextKey int

const (
	sessionIDKey contextKey = iota
	userIDKey
)

// SessionMiddleware resolves the request identity. Every request leaves the
// middleware with a session id on its context: an existing one when the
// request carries a valid token, a freshly issued one (with a Set-Cookie)
// otherwise. When the session store has a user bound to the session id, the
// user id is placed on the context too.
func SessionMiddleware(tokener Tokener, store SessionStore, cookieName string, cookieTTL time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sid := ""
			if tokenString, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
				if parsed, err := tokener.GetSessionID(ctx, tokenString); err == nil {
					sid = parsed
				} else {
					logger.Log.Infow("invalid session token", "err", err)
				}
			}

			if sid == "" {
				sid = uuid.New().String()
				tokenString, err := tokener.Generate(ctx, sid)
				if err != nil {
					logger.Log.Errorw("failed to sign session token", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    tokenString,
					Path:     "/",
					Expires:  time.Now().Add(cookieTTL),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx = WithSessionID(ctx, sid)

			if userID, err := store.Get(ctx, sid); err == nil {
				ctx = WithUserID(ctx, userID)
			} else if !errors.Is(err, sessions.ErrSessionNotFound) {
				logger.Log.Errorw("session lookup failed", "err", err)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSessionID stores the session id in the context.
func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sid)
}

// GetSessionIDFromContext retrieves the session id from the context.
// Returns "" if not present.
func GetSessionIDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(sessionIDKey).(string)
	return sid
}

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the context.
// The second return value reports whether an identity is present.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

// RequireUserID is the authentication gate: it returns the caller's user id
// or ErrNotAuthenticated when the request has no identity. Protected
// operations call it before touching storage.
func RequireUserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, ErrNotAuthenticated
	}
	return userID, nil
}
