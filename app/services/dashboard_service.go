package services

import (
	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/app/repositories"
)

// DashboardData carries the aggregates for the admin and customer dashboards.
// Counts are computed fresh on every request, never cached.
type DashboardData struct {
	Customers      []models.Customer
	Products       []models.Product
	Orders         []models.Order
	TotalOrders    int64
	TotalCustomers int64
	TotalProducts  int64
	Delivered      int64
	Pending        int64
}

type DashboardService struct {
	customers *repositories.CustomerRepository
	products  *repositories.ProductRepository
	orders    *repositories.OrderRepository
}

func NewDashboardService() *DashboardService {
	return &DashboardService{
		customers: repositories.NewCustomerRepository(),
		products:  repositories.NewProductRepository(),
		orders:    repositories.NewOrderRepository(),
	}
}

// Admin builds the administrator dashboard: every customer, every product,
// every order newest first, and totals broken down by order status.
func (s *DashboardService) Admin() (DashboardData, error) {
	var data DashboardData
	var err error

	if data.Customers, err = s.customers.All(); err != nil {
		return data, err
	}
	if data.Products, err = s.products.All(); err != nil {
		return data, err
	}
	if data.Orders, err = s.orders.All(); err != nil {
		return data, err
	}
	if data.TotalOrders, err = s.orders.CountAll(); err != nil {
		return data, err
	}
	if data.TotalCustomers, err = s.customers.Count(); err != nil {
		return data, err
	}
	if data.TotalProducts, err = s.products.Count(); err != nil {
		return data, err
	}
	if data.Delivered, err = s.orders.CountByStatus(models.StatusDelivered); err != nil {
		return data, err
	}
	data.Pending, err = s.orders.CountByStatus(models.StatusPending)
	return data, err
}

// Customer builds the self-service dashboard for one customer: their own
// orders and their own counts only.
func (s *DashboardService) Customer(customerID uint) (DashboardData, error) {
	var data DashboardData
	var err error

	if data.Orders, err = s.orders.ForCustomer(customerID); err != nil {
		return data, err
	}
	if data.TotalOrders, err = s.orders.CountForCustomer(customerID); err != nil {
		return data, err
	}
	if data.Delivered, err = s.orders.CountForCustomerByStatus(customerID, models.StatusDelivered); err != nil {
		return data, err
	}
	data.Pending, err = s.orders.CountForCustomerByStatus(customerID, models.StatusPending)
	return data, err
}
