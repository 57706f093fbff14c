package repositories

import (
	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/orm"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// FindByID looks up an order with its product and customer loaded.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var o models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Product").
		Preload("Customer").
		Where("id = ?", id).
		First(&o)
	return o, err
}

// ForCustomer returns a customer's orders, newest first.
func (r *OrderRepository) ForCustomer(customerID uint) ([]models.Order, error) {
	var os []models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Product").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Get(&os)
	return os, err
}

// All returns every order across all customers, newest first.
func (r *OrderRepository) All() ([]models.Order, error) {
	var os []models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Product").
		Preload("Customer").
		Order("created_at desc").
		Get(&os)
	return os, err
}

// CountAll returns the total number of orders.
func (r *OrderRepository) CountAll() (int64, error) {
	return orm.DB().Model(&models.Order{}).Count()
}

// CountByStatus returns the number of orders with the given status.
func (r *OrderRepository) CountByStatus(status string) (int64, error) {
	return orm.DB().Model(&models.Order{}).Where("status = ?", status).Count()
}

// CountForCustomer returns a customer's total order count.
func (r *OrderRepository) CountForCustomer(customerID uint) (int64, error) {
	return orm.DB().Model(&models.Order{}).Where("customer_id = ?", customerID).Count()
}

// CountForCustomerByStatus returns a customer's order count for one status.
func (r *OrderRepository) CountForCustomerByStatus(customerID uint, status string) (int64, error) {
	return orm.DB().Model(&models.Order{}).
		Where("customer_id = ? AND status = ?", customerID, status).
		Count()
}

// Save persists changes to an existing order.
func (r *OrderRepository) Save(o *models.Order) error {
	return orm.DB().Save(o)
}

// Delete removes an order by primary key.
func (r *OrderRepository) Delete(o *models.Order) error {
	return orm.DB().Delete(o)
}
