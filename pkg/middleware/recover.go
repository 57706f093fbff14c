package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/AhmedFathyMohamed10/crm-system/pkg/logger"
)

const errorPage = `<!DOCTYPE html>
<html><head><title>Server Error</title></head>
<body><h1>500 Something went wrong</h1>
<p>The error has been logged. Please try again.</p></body></html>`

// Recovery catches any panic in downstream handlers, logs the stack trace,
// and renders a plain 500 page. Wire it outside the session middleware so a
// panic inside session handling is caught too.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(errorPage))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
