package rbac_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AhmedFathyMohamed10/crm-system/pkg/middleware"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/rbac"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func request(p *middleware.Principal) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	if p != nil {
		r = r.WithContext(middleware.WithPrincipal(r.Context(), *p))
	}
	return r
}

func serve(h http.Handler, p *middleware.Principal) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, request(p))
	return rec
}

func admin() *middleware.Principal {
	return &middleware.Principal{UserID: 1, Name: "admin", Role: "admin"}
}

func customer() *middleware.Principal {
	return &middleware.Principal{UserID: 2, Name: "jane", Role: "customer", CustomerID: 7}
}

func TestGuestAllowsAnonymous(t *testing.T) {
	rec := serve(rbac.Guest(okHandler), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous should pass Guest, got %d", rec.Code)
	}
}

func TestGuestRedirectsSignedInToLanding(t *testing.T) {
	rec := serve(rbac.Guest(okHandler), admin())
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("admin should land on /, got %q", loc)
	}

	rec = serve(rbac.Guest(okHandler), customer())
	if loc := rec.Header().Get("Location"); loc != "/user/" {
		t.Errorf("customer should land on /user/, got %q", loc)
	}
}

func TestAuthRedirectsAnonymousToLogin(t *testing.T) {
	rec := serve(rbac.Auth(okHandler), nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != rbac.LoginPath {
		t.Errorf("expected redirect to login, got %q", loc)
	}
}

func TestAuthAllowsAnyRole(t *testing.T) {
	for _, p := range []*middleware.Principal{admin(), customer()} {
		if rec := serve(rbac.Auth(okHandler), p); rec.Code != http.StatusOK {
			t.Errorf("role %s should pass Auth, got %d", p.Role, rec.Code)
		}
	}
}

func TestRoleMatrix(t *testing.T) {
	adminOnly := rbac.Role("admin")(okHandler)

	// Anonymous goes to login, never to a landing page.
	rec := serve(adminOnly, nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != rbac.LoginPath {
		t.Errorf("anonymous: got %d -> %q", rec.Code, rec.Header().Get("Location"))
	}

	// Right role passes.
	if rec := serve(adminOnly, admin()); rec.Code != http.StatusOK {
		t.Errorf("admin should pass, got %d", rec.Code)
	}

	// Wrong role bounces to its own landing, not the resource's.
	rec = serve(adminOnly, customer())
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/user/" {
		t.Errorf("customer: got %d -> %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestRoleAcceptsMultipleRoles(t *testing.T) {
	either := rbac.Role("admin", "customer")(okHandler)
	for _, p := range []*middleware.Principal{admin(), customer()} {
		if rec := serve(either, p); rec.Code != http.StatusOK {
			t.Errorf("role %s should pass, got %d", p.Role, rec.Code)
		}
	}
}

func TestGuardFailureNeverRendersBody(t *testing.T) {
	rec := serve(rbac.Role("admin")(okHandler), customer())
	if rec.Body.Len() > 0 && rec.Code == http.StatusOK {
		t.Error("denied request must not reach the handler")
	}
}

func TestLandingUnknownRoleFallsBackToLogin(t *testing.T) {
	if got := rbac.Landing("ghost"); got != rbac.LoginPath {
		t.Errorf("unknown role should land on login, got %q", got)
	}
}
