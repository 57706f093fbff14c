package middleware

import (
	"context"
	"net/http"

	"github.com/AhmedFathyMohamed10/crm-system/pkg/session"
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID     uint
	Name       string
	Role       string
	CustomerID uint // zero for admins
}

// PrincipalLoader resolves a session user ID into a Principal.
// Returning false means the user no longer exists and the session is stale.
type PrincipalLoader func(userID uint) (Principal, bool)

type principalKey struct{}

const sessionUserKey = "user_id"

// Authenticate resolves the session's user into a Principal and stores it in
// the request context. It never blocks a request on its own; the rbac guards
// decide what an anonymous request may reach.
func Authenticate(load PrincipalLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.FromCtx(r)

			if id, ok := sess.GetUint(sessionUserKey); ok {
				if p, ok := load(id); ok {
					r = r.WithContext(WithPrincipal(r.Context(), p))
				} else {
					// User was deleted since login; drop the stale session.
					sess.Invalidate()
					_ = sess.Save(w)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Login records the user on the session. The caller must Save the session.
func Login(sess *session.Session, userID uint) {
	sess.Set(sessionUserKey, userID)
}

// Logout clears the session.
func Logout(sess *session.Session) {
	sess.Invalidate()
}

// WithPrincipal returns a context carrying p. Authenticate uses it
// internally; tests use it to fabricate a signed-in request.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromCtx returns the authenticated principal, if any.
func PrincipalFromCtx(r *http.Request) (Principal, bool) {
	p, ok := r.Context().Value(principalKey{}).(Principal)
	return p, ok
}
