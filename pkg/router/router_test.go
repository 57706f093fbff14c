package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AhmedFathyMohamed10/crm-system/pkg/router"
)

func ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestTrailingSlashRoutesMatchExactly(t *testing.T) {
	r := router.New()
	r.Get("/login/", "login", ok)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/login/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /login/ got %d", resp.StatusCode)
	}
}

func TestNamedRouteReversal(t *testing.T) {
	r := router.New()
	r.Get("/customer/{id}/", "customer", ok)

	url, err := r.URL("customer", map[string]string{"id": "7"})
	if err != nil {
		t.Fatal(err)
	}
	if url != "/customer/7/" {
		t.Errorf("got %q", url)
	}

	if _, err := r.URL("customer", nil); err == nil {
		t.Error("missing params should error")
	}
	if _, err := r.URL("ghost", nil); err == nil {
		t.Error("unknown route should error")
	}
}

func TestPackageLevelURLIsPositional(t *testing.T) {
	r := router.New()
	r.Get("/update_order/{id}/", "order.update", ok)
	router.SetDefault(r)

	if got := router.URL("order.update", 12); got != "/update_order/12/" {
		t.Errorf("got %q", got)
	}
	if got := router.URL("order.update"); got != "#" {
		t.Errorf("missing param should degrade to #, got %q", got)
	}
	if got := router.URL("ghost"); got != "#" {
		t.Errorf("unknown route should degrade to #, got %q", got)
	}
}

func TestGroupMiddlewareApplies(t *testing.T) {
	r := router.New()

	var sawHeader bool
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			sawHeader = true
			next.ServeHTTP(w, req)
		})
	}

	g := r.Group("/admin", mw)
	g.Get("/stats/", "admin.stats", ok)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/admin/stats/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got %d", resp.StatusCode)
	}
	if !sawHeader {
		t.Error("group middleware did not run")
	}
}

func TestRoutesListingIsSorted(t *testing.T) {
	r := router.New()
	r.Get("/b/", "b", ok)
	r.Get("/a/", "a", ok)

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("got %d routes", len(infos))
	}
	if infos[0].Path != "/a/" || infos[1].Path != "/b/" {
		t.Errorf("routes not sorted: %+v", infos)
	}
}
