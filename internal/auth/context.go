package auth

import (
	"context"

	"github.com/davydav/userstats/internal/session"
)

type contextKey struct{}

// WithSession attaches the request's session to the context. The session
// middleware calls this for every request.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// SessionFrom returns the request's session, or nil when the session
// middleware did not run.
func SessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(contextKey{}).(*session.Session)
	return sess
}

// IsLoggedIn reports whether the request carries an authenticated session.
func IsLoggedIn(ctx context.Context) bool {
	sess := SessionFrom(ctx)
	return sess != nil && sess.IsLoggedIn()
}

// UserID returns the authenticated user's id, or 0 when anonymous.
func UserID(ctx context.Context) int64 {
	sess := SessionFrom(ctx)
	if sess == nil {
		return 0
	}
	return sess.UserID()
}
