// Package routes declares the web route table.
package routes

import (
	"github.com/AhmedFathyMohamed10/crm-system/app/controllers"
	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/rbac"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/router"
)

// Register mounts every web route with its access guard. The guards encode
// the whole access model: Guest pages bounce signed-in users to their landing
// page, Role pages bounce the wrong role, and everything redirects rather
// than erroring.
func Register(r *router.Router) {
	auth := controllers.NewAuthController()
	dashboard := controllers.NewDashboardController()
	customer := controllers.NewCustomerController()
	product := controllers.NewProductController()
	order := controllers.NewOrderController()

	admin := rbac.Role(models.RoleAdmin)
	customerOnly := rbac.Role(models.RoleCustomer)

	// Anonymous-only pages.
	r.Get("/register/", "register", auth.ShowRegister, rbac.Guest)
	r.Post("/register/", "", auth.Register, rbac.Guest)
	r.Get("/login/", "login", auth.ShowLogin, rbac.Guest)
	r.Post("/login/", "", auth.Login, rbac.Guest)

	r.Get("/logout/", "logout", auth.Logout, rbac.Auth)

	// Role landing pages.
	r.Get("/", "home", dashboard.Home, admin)
	r.Get("/user/", "user-page", dashboard.UserPage, customerOnly)

	// Any signed-in user may manage their account; admins without a customer
	// profile get a 404 from the controller.
	r.Get("/account/", "account", customer.Account, rbac.Auth)
	r.Post("/account/", "", customer.UpdateAccount, rbac.Auth)

	// Admin-only management pages.
	r.Get("/products/", "products", product.Index, admin)
	r.Get("/search/", "search", product.Search, admin)
	r.Post("/search/", "", product.Search, admin)
	r.Get("/customer/{id}/", "customer", customer.Show, admin)
	r.Post("/customer/{id}/", "", customer.Show, admin)

	r.Get("/create_order/{id}/", "order.create", order.CreateForm, admin)
	r.Post("/create_order/{id}/", "", order.Create, admin)
	r.Get("/update_order/{id}/", "order.update", order.UpdateForm, admin)
	r.Post("/update_order/{id}/", "", order.Update, admin)
	r.Get("/delete_order/{id}/", "order.delete", order.DeleteConfirm, admin)
	r.Post("/delete_order/{id}/", "", order.Delete, admin)
}
