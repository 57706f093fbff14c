// Package controllers holds the HTTP handlers. Controllers bind and validate
// form input, call services, and render templates or redirect.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AhmedFathyMohamed10/crm-system/pkg/middleware"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/session"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/view"
)

// flashKey is the session flash slot holding queued messages.
const flashKey = "messages"

// FlashMessage is one queued notice. Level is a Bootstrap alert class.
type FlashMessage struct {
	Level   string
	Message string
}

// addFlash queues a message for the next rendered page.
func addFlash(sess *session.Session, level, message string) {
	var msgs []interface{}
	if v, ok := sess.Get("_flash_" + flashKey); ok {
		if existing, ok := v.([]interface{}); ok {
			msgs = existing
		}
	}
	msgs = append(msgs, map[string]interface{}{"level": level, "message": message})
	sess.Flash(flashKey, msgs)
}

// takeFlashes drains queued messages. Values that round-tripped through the
// Redis store come back as JSON maps.
func takeFlashes(sess *session.Session) []FlashMessage {
	v, ok := sess.GetFlash(flashKey)
	if !ok {
		return nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}

	msgs := make([]FlashMessage, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			level, _ := m["level"].(string)
			message, _ := m["message"].(string)
			msgs = append(msgs, FlashMessage{Level: level, Message: message})
		}
	}
	return msgs
}

// render wraps view.Render, injecting the principal and draining flashes.
// The session is saved first so the flash removal and cookie land before the
// body is written.
func render(w http.ResponseWriter, r *http.Request, status int, name string, data view.Data) {
	if data == nil {
		data = view.Data{}
	}

	sess := session.FromCtx(r)
	data["Flashes"] = takeFlashes(sess)
	if p, ok := middleware.PrincipalFromCtx(r); ok {
		data["Principal"] = &p
	}
	_ = sess.Save(w)

	view.Render(w, status, name, data)
}

// paramUint reads a numeric chi URL parameter. ok is false for anything that
// is not a positive integer.
func paramUint(r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// formUint reads a numeric POST field, returning 0 when absent or malformed.
func formUint(r *http.Request, name string) uint {
	n, err := strconv.ParseUint(r.PostFormValue(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusFound)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, "error", view.Data{
		"Title":   "Not found",
		"Code":    404,
		"Message": "The page you requested does not exist.",
	})
}
