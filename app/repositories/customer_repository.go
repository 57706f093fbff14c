package repositories

import (
	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/orm"
)

// CustomerRepository handles database operations for Customer.
type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// FindByID looks up a customer by primary key.
func (r *CustomerRepository) FindByID(id uint) (models.Customer, error) {
	var c models.Customer
	err := orm.DB().Model(&models.Customer{}).Where("id = ?", id).First(&c)
	return c, err
}

// FindByUserID looks up the customer profile belonging to a user account.
func (r *CustomerRepository) FindByUserID(userID uint) (models.Customer, error) {
	var c models.Customer
	err := orm.DB().Model(&models.Customer{}).Where("user_id = ?", userID).First(&c)
	return c, err
}

// All returns every customer ordered by name.
func (r *CustomerRepository) All() ([]models.Customer, error) {
	var cs []models.Customer
	err := orm.DB().Model(&models.Customer{}).Order("name asc").Get(&cs)
	return cs, err
}

// Count returns the total number of customers.
func (r *CustomerRepository) Count() (int64, error) {
	return orm.DB().Model(&models.Customer{}).Count()
}

// Update persists changes to an existing customer.
func (r *CustomerRepository) Update(c *models.Customer) error {
	return orm.DB().Save(c)
}
