package controllers

import (
	"errors"
	"net/http"

	"github.com/AhmedFathyMohamed10/crm-system/app/services"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/bind"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/middleware"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/rbac"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/session"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/validate"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/view"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{auth: services.NewAuthService()}
}

// ShowRegister renders the registration form.
func (c *AuthController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "register", view.Data{
		"Title":  "Register",
		"Form":   services.RegisterInput{},
		"Errors": map[string]string{},
	})
}

// Register creates a customer account and sends the user to the login page.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	errs, err := bind.Form(r, &in)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if validate.HasErrors(errs) {
		render(w, r, http.StatusUnprocessableEntity, "register", view.Data{
			"Title":  "Register",
			"Form":   in,
			"Errors": errs,
		})
		return
	}

	user, err := c.auth.Register(in)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			render(w, r, http.StatusUnprocessableEntity, "register", view.Data{
				"Title":  "Register",
				"Form":   in,
				"Errors": map[string]string{"username": "This username is already taken."},
			})
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sess := session.FromCtx(r)
	addFlash(sess, "success", "Account was created for "+user.Username)
	_ = sess.Save(w)
	redirect(w, r, rbac.LoginPath)
}

// ShowLogin renders the login form.
func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "login", view.Data{"Title": "Login"})
}

// Login verifies credentials, rotates the session user, and redirects to the
// role landing page. Failures flash a single generic message.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	sess := session.FromCtx(r)

	user, err := c.auth.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			addFlash(sess, "info", "Username OR password is incorrect")
			_ = sess.Save(w)
			redirect(w, r, rbac.LoginPath)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	middleware.Login(sess, user.ID)
	_ = sess.Save(w)
	redirect(w, r, rbac.Landing(user.Role))
}

// Logout clears the session and returns to the login page.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	middleware.Logout(sess)
	_ = sess.Save(w)
	redirect(w, r, rbac.LoginPath)
}
