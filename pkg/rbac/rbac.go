// Package rbac provides the request guards that gate every view.
//
// The three guards mirror the access model of the application: pages for
// anonymous visitors only (login, register), pages for any signed-in user,
// and pages restricted to a role. A failed gate always redirects, it never
// renders an error, so the only observable effect is the Location header.
//
// Guard order matters: Authenticate middleware must run first so the role is
// known, and Role implies Auth (an anonymous request is sent to the login
// page, not to a role landing).
package rbac

import (
	"net/http"

	"github.com/AhmedFathyMohamed10/crm-system/pkg/middleware"
)

// LoginPath is where unauthenticated requests are redirected.
const LoginPath = "/login/"

// landings maps a role to its home view.
var landings = map[string]string{
	"admin":    "/",
	"customer": "/user/",
}

// Landing returns the home view for a role, falling back to the login page
// for unknown roles.
func Landing(role string) string {
	if path, ok := landings[role]; ok {
		return path
	}
	return LoginPath
}

// Guest allows only anonymous requests; signed-in users are sent to their
// role's landing page. Used for /login/ and /register/.
func Guest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := middleware.PrincipalFromCtx(r); ok {
			http.Redirect(w, r, Landing(p.Role), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Auth allows only authenticated requests; anonymous ones go to the login
// page.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.PrincipalFromCtx(r); !ok {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Role allows only users whose role is in the given set. Anonymous requests
// go to the login page; authenticated users with the wrong role are sent to
// their own landing page.
func Role(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := middleware.PrincipalFromCtx(r)
			if !ok {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}
			if !allowed[p.Role] {
				http.Redirect(w, r, Landing(p.Role), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
