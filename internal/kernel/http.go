// Package kernel assembles the HTTP stack: the global middleware chain, the
// web routes, and the operational endpoints.
package kernel

import (
	"net/http"
	"time"

	"github.com/AhmedFathyMohamed10/crm-system/app/routes"
	"github.com/AhmedFathyMohamed10/crm-system/app/services"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/metrics"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/middleware"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/reqid"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/router"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/session"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/storage"
)

// NewHTTPKernel builds the application router with its full middleware chain.
// Order matters: metrics and recovery wrap everything, the session must be
// loaded before authentication, and authentication before the route guards.
func NewHTTPKernel() *router.Router {
	r := router.New()

	auth := services.NewAuthService()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.RateLimit(300, time.Minute),
		session.Middleware(session.DefaultOptions()),
		middleware.Authenticate(auth.LoadPrincipal),
	)

	routes.Register(r)

	// Operational endpoints.
	r.Handle("/metrics", metrics.Handler())
	if root := storage.LocalRoot(); root != "" {
		r.Handle("/storage/*", http.StripPrefix("/storage/",
			http.FileServer(http.Dir(root))))
	}

	router.SetDefault(r)
	return r
}
