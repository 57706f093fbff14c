package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/app/repositories"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/logger"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/orm"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/storage"
)

// AccountInput is the validated account settings form.
type AccountInput struct {
	Name    string `form:"name" validate:"required,max=255"`
	Phone   string `form:"phone" validate:"nullable,max=50"`
	Email   string `form:"email" validate:"nullable,email"`
	Address string `form:"address" validate:"nullable,max=500"`
}

// CustomerDetail is the customer page payload: the profile, its orders
// (optionally narrowed by product name), and the unfiltered order count.
type CustomerDetail struct {
	Customer   models.Customer
	Orders     []models.Order
	OrderCount int64
}

type CustomerService struct {
	customers *repositories.CustomerRepository
	orders    *repositories.OrderRepository
}

func NewCustomerService() *CustomerService {
	return &CustomerService{
		customers: repositories.NewCustomerRepository(),
		orders:    repositories.NewOrderRepository(),
	}
}

// Find returns one customer profile.
func (s *CustomerService) Find(id uint) (models.Customer, error) {
	c, err := s.customers.FindByID(id)
	if orm.IsNotFound(err) {
		return c, ErrNotFound
	}
	return c, err
}

// Detail loads the customer page. A non-empty productQuery narrows the order
// list to orders whose product name contains the fragment, matched
// case-sensitively. The order count always reflects the full set.
func (s *CustomerService) Detail(id uint, productQuery string) (CustomerDetail, error) {
	var d CustomerDetail
	var err error

	if d.Customer, err = s.customers.FindByID(id); err != nil {
		if orm.IsNotFound(err) {
			return d, ErrNotFound
		}
		return d, err
	}

	orders, err := s.orders.ForCustomer(id)
	if err != nil {
		return d, err
	}
	if d.OrderCount, err = s.orders.CountForCustomer(id); err != nil {
		return d, err
	}

	if productQuery == "" {
		d.Orders = orders
		return d, nil
	}

	d.Orders = make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(o.Product.Name, productQuery) {
			d.Orders = append(d.Orders, o)
		}
	}
	return d, nil
}

// UpdateAccount applies the account settings form to a customer profile and,
// when a picture was uploaded, stores it and records its path.
func (s *CustomerService) UpdateAccount(customerID uint, in AccountInput, pic *multipart.FileHeader) error {
	c, err := s.customers.FindByID(customerID)
	if err != nil {
		if orm.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	c.Name = in.Name
	c.Phone = in.Phone
	c.Email = in.Email
	c.Address = in.Address

	if pic != nil {
		path, err := s.storeProfilePic(customerID, pic)
		if err != nil {
			return err
		}
		c.ProfilePic = path
	}

	if err := s.customers.Update(&c); err != nil {
		return err
	}

	logger.Info("customer: account updated", "customer_id", customerID)
	return nil
}

func (s *CustomerService) storeProfilePic(customerID uint, pic *multipart.FileHeader) (string, error) {
	f, err := pic.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(pic.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	path := fmt.Sprintf("profiles/%d/%d%s", customerID, time.Now().UnixNano(), ext)
	if err := storage.PutStream(path, f); err != nil {
		return "", err
	}
	return path, nil
}
