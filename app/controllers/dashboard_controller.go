package controllers

import (
	"net/http"

	"github.com/AhmedFathyMohamed10/crm-system/app/services"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/middleware"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/view"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController() *DashboardController {
	return &DashboardController{dashboard: services.NewDashboardService()}
}

// Home renders the admin dashboard: every customer, every product, the full
// order history, and status counts.
func (c *DashboardController) Home(w http.ResponseWriter, r *http.Request) {
	data, err := c.dashboard.Admin()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(w, r, http.StatusOK, "dashboard", view.Data{
		"Title":          "Dashboard",
		"Customers":      data.Customers,
		"Products":       data.Products,
		"Orders":         data.Orders,
		"TotalOrders":    data.TotalOrders,
		"TotalCustomers": data.TotalCustomers,
		"TotalProducts":  data.TotalProducts,
		"Delivered":      data.Delivered,
		"Pending":        data.Pending,
	})
}

// UserPage renders a customer's own dashboard. It only ever shows the
// authenticated customer's orders.
func (c *DashboardController) UserPage(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromCtx(r)
	if !ok || p.CustomerID == 0 {
		notFound(w, r)
		return
	}

	data, err := c.dashboard.Customer(p.CustomerID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(w, r, http.StatusOK, "user", view.Data{
		"Title":       "My Orders",
		"Orders":      data.Orders,
		"TotalOrders": data.TotalOrders,
		"Delivered":   data.Delivered,
		"Pending":     data.Pending,
	})
}
