// Package view renders embedded html/template pages inside a shared layout.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/AhmedFathyMohamed10/crm-system/config"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/logger"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/router"
	"github.com/AhmedFathyMohamed10/crm-system/resources/views"
)

// Data is the bag of values handed to a template.
type Data map[string]interface{}

var (
	cacheMu sync.RWMutex
	cache   = map[string]*template.Template{}
)

var funcs = template.FuncMap{
	// url reverses a named route, e.g. {{url "order.update" .Order.ID}}.
	"url": func(name string, params ...interface{}) string {
		return router.URL(name, params...)
	},
	"add": func(a, b int) int { return a + b },
}

func parse(name string) (*template.Template, error) {
	// Cache parsed templates outside local development.
	if config.AppEnv() != "local" {
		cacheMu.RLock()
		t, ok := cache[name]
		cacheMu.RUnlock()
		if ok {
			return t, nil
		}
	}

	t, err := template.New("layout.html").Funcs(funcs).
		ParseFS(views.FS, "layout.html", name+".html")
	if err != nil {
		return nil, fmt.Errorf("view: parse %s: %w", name, err)
	}

	cacheMu.Lock()
	cache[name] = t
	cacheMu.Unlock()
	return t, nil
}

// Render writes the named page wrapped in the layout. Pages are rendered to a
// buffer first so a template failure produces a clean 500 instead of a
// half-written body.
func Render(w http.ResponseWriter, status int, name string, data Data) {
	if data == nil {
		data = Data{}
	}

	t, err := parse(name)
	if err != nil {
		fail(w, err)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		fail(w, fmt.Errorf("view: render %s: %w", name, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFound renders the shared 404 page.
func NotFound(w http.ResponseWriter) {
	Render(w, http.StatusNotFound, "error", Data{
		"Title":   "Not found",
		"Code":    404,
		"Message": "The page you requested does not exist.",
	})
}

func fail(w http.ResponseWriter, err error) {
	logger.Error("view: render failed", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
