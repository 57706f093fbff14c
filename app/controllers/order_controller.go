package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/app/services"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/session"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/view"
)

type OrderController struct {
	orders    *services.OrderService
	products  *services.ProductService
	customers *services.CustomerService
}

func NewOrderController() *OrderController {
	return &OrderController{
		orders:    services.NewOrderService(),
		products:  services.NewProductService(),
		customers: services.NewCustomerService(),
	}
}

// formRow mirrors one row of the batch order form back to the template.
type formRow struct {
	ProductID uint
	Status    string
}

// CreateForm renders the batch order form for one customer: a fixed number
// of blank product/status rows.
func (c *OrderController) CreateForm(w http.ResponseWriter, r *http.Request) {
	customerID, ok := paramUint(r, "id")
	if !ok {
		notFound(w, r)
		return
	}

	customer, err := c.customers.Find(customerID)
	if err != nil {
		notFound(w, r)
		return
	}

	c.renderCreateForm(w, r, customer.Name, make([]formRow, services.BatchFormRows), "")
}

// Create submits the batch form. All valid rows commit together; one bad row
// rejects the whole batch and re-renders the form with what was typed.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	customerID, ok := paramUint(r, "id")
	if !ok {
		notFound(w, r)
		return
	}
	customer, err := c.customers.Find(customerID)
	if err != nil {
		notFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	rows := make([]services.OrderRow, services.BatchFormRows)
	formRows := make([]formRow, services.BatchFormRows)
	for i := range rows {
		rows[i] = services.OrderRow{
			ProductID: formUint(r, fmt.Sprintf("product_%d", i)),
			Status:    r.PostFormValue(fmt.Sprintf("status_%d", i)),
		}
		formRows[i] = formRow{ProductID: rows[i].ProductID, Status: rows[i].Status}
	}

	created, err := c.orders.CreateBatch(customerID, rows)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProduct) || errors.Is(err, services.ErrInvalidStatus) {
			c.renderCreateForm(w, r, customer.Name, formRows, err.Error())
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			notFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sess := session.FromCtx(r)
	if created > 0 {
		addFlash(sess, "success", fmt.Sprintf("%d order(s) placed for %s", created, customer.Name))
	}
	_ = sess.Save(w)
	redirect(w, r, "/")
}

// UpdateForm renders the single-order edit form with current values selected.
func (c *OrderController) UpdateForm(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		notFound(w, r)
		return
	}

	order, err := c.orders.Get(id)
	if err != nil {
		notFound(w, r)
		return
	}

	c.renderUpdateForm(w, r, order, "")
}

// Update applies the edit form to an existing order.
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		notFound(w, r)
		return
	}

	order, err := c.orders.Get(id)
	if err != nil {
		notFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	productID := formUint(r, "product")
	status := r.PostFormValue("status")

	if err := c.orders.Update(id, productID, status); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			notFound(w, r)
		case errors.Is(err, services.ErrInvalidProduct), errors.Is(err, services.ErrInvalidStatus):
			order.ProductID = productID
			order.Status = status
			c.renderUpdateForm(w, r, order, err.Error())
		default:
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	redirect(w, r, "/")
}

// DeleteConfirm renders the delete confirmation page.
func (c *OrderController) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		notFound(w, r)
		return
	}

	order, err := c.orders.Get(id)
	if err != nil {
		notFound(w, r)
		return
	}

	render(w, r, http.StatusOK, "delete_order", view.Data{
		"Title": "Delete Order",
		"Order": order,
	})
}

// Delete removes the order after confirmation.
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		notFound(w, r)
		return
	}

	if err := c.orders.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	redirect(w, r, "/")
}

func (c *OrderController) renderCreateForm(w http.ResponseWriter, r *http.Request, customerName string, rows []formRow, errMsg string) {
	products, err := c.products.List()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusUnprocessableEntity
	}

	render(w, r, status, "order_form", view.Data{
		"Title":    "Place Order",
		"Heading":  "Place orders for " + customerName,
		"Rows":     rows,
		"Products": products,
		"Statuses": models.OrderStatuses,
		"Error":    errMsg,
	})
}

func (c *OrderController) renderUpdateForm(w http.ResponseWriter, r *http.Request, order models.Order, errMsg string) {
	products, err := c.products.List()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusUnprocessableEntity
	}

	render(w, r, status, "order_form", view.Data{
		"Title":    "Update Order",
		"Heading":  "Update order",
		"Order":    order,
		"Products": products,
		"Statuses": models.OrderStatuses,
		"Error":    errMsg,
	})
}
