package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/AhmedFathyMohamed10/crm-system/app/services"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/bind"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/middleware"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/session"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/storage"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/validate"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/view"
)

type CustomerController struct {
	customers *services.CustomerService
}

func NewCustomerController() *CustomerController {
	return &CustomerController{customers: services.NewCustomerService()}
}

// Show renders one customer's page with their order history. A POSTed
// "product" field narrows the orders to product names containing the
// fragment; the GET renders the full list.
func (c *CustomerController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		notFound(w, r)
		return
	}

	query := ""
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err == nil {
			query = r.PostFormValue("product")
		}
	}

	detail, err := c.customers.Detail(id, query)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(w, r, http.StatusOK, "customer", view.Data{
		"Title":      detail.Customer.Name,
		"Customer":   detail.Customer,
		"Orders":     detail.Orders,
		"OrderCount": detail.OrderCount,
		"Query":      query,
	})
}

// Account renders the authenticated customer's account settings form.
func (c *CustomerController) Account(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromCtx(r)
	if !ok || p.CustomerID == 0 {
		notFound(w, r)
		return
	}

	customer, err := c.customers.Find(p.CustomerID)
	if err != nil {
		notFound(w, r)
		return
	}

	render(w, r, http.StatusOK, "account_settings", view.Data{
		"Title":         "Account Settings",
		"Customer":      customer,
		"ProfilePicURL": profilePicURL(customer.ProfilePic),
		"Errors":        map[string]string{},
	})
}

// UpdateAccount applies the settings form, storing an uploaded profile
// picture when present.
func (c *CustomerController) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromCtx(r)
	if !ok || p.CustomerID == 0 {
		notFound(w, r)
		return
	}

	var in services.AccountInput
	errs, err := bind.Form(r, &in)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if validate.HasErrors(errs) {
		customer, findErr := c.customers.Find(p.CustomerID)
		if findErr != nil {
			notFound(w, r)
			return
		}
		render(w, r, http.StatusUnprocessableEntity, "account_settings", view.Data{
			"Title":         "Account Settings",
			"Customer":      customer,
			"ProfilePicURL": profilePicURL(customer.ProfilePic),
			"Errors":        errs,
		})
		return
	}

	var pic *multipart.FileHeader
	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["profile_pic"]; len(files) > 0 {
			pic = files[0]
		}
	}

	if err := c.customers.UpdateAccount(p.CustomerID, in, pic); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sess := session.FromCtx(r)
	addFlash(sess, "success", "Account settings updated")
	_ = sess.Save(w)
	redirect(w, r, "/account/")
}

func profilePicURL(path string) string {
	if path == "" {
		return ""
	}
	return storage.URL(path)
}
