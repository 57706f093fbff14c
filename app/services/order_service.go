package services

import (
	"fmt"

	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/app/repositories"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/logger"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/orm"
)

// BatchFormRows is how many blank rows the batch order form presents.
const BatchFormRows = 10

// OrderRow is one submitted row of the batch order form.
type OrderRow struct {
	ProductID uint
	Status    string
}

type OrderService struct {
	orders    *repositories.OrderRepository
	products  *repositories.ProductRepository
	customers *repositories.CustomerRepository
}

func NewOrderService() *OrderService {
	return &OrderService{
		orders:    repositories.NewOrderRepository(),
		products:  repositories.NewProductRepository(),
		customers: repositories.NewCustomerRepository(),
	}
}

// Get returns one order with its product and customer loaded.
func (s *OrderService) Get(id uint) (models.Order, error) {
	o, err := s.orders.FindByID(id)
	if orm.IsNotFound(err) {
		return o, ErrNotFound
	}
	return o, err
}

// CreateBatch creates orders for one customer from the submitted form rows.
// Rows with no product selected are skipped; a row naming an unknown product
// or a bad status rejects the whole batch, so either every valid row is
// committed or none are. Returns how many orders were created.
func (s *OrderService) CreateBatch(customerID uint, rows []OrderRow) (int, error) {
	if _, err := s.customers.FindByID(customerID); err != nil {
		if orm.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	// Validate every row before touching the orders table.
	var toCreate []models.Order
	for i, row := range rows {
		if row.ProductID == 0 {
			continue // blank row
		}
		if _, err := s.products.FindByID(row.ProductID); err != nil {
			if orm.IsNotFound(err) {
				return 0, fmt.Errorf("row %d: %w", i+1, ErrInvalidProduct)
			}
			return 0, err
		}

		status := row.Status
		if status == "" {
			status = models.StatusPending
		}
		if !models.ValidStatus(status) {
			return 0, fmt.Errorf("row %d: %w", i+1, ErrInvalidStatus)
		}

		toCreate = append(toCreate, models.Order{
			CustomerID: customerID,
			ProductID:  row.ProductID,
			Status:     status,
		})
	}

	if len(toCreate) == 0 {
		return 0, nil
	}

	err := orm.Transaction(func(tx *orm.Query) error {
		for i := range toCreate {
			if err := tx.Create(&toCreate[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("order: batch created", "customer_id", customerID, "count", len(toCreate))
	return len(toCreate), nil
}

// Update changes an order's product and status in place. The order keeps its
// identity and its customer.
func (s *OrderService) Update(id, productID uint, status string) error {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	if productID == 0 {
		return ErrInvalidProduct
	}
	if _, err := s.products.FindByID(productID); err != nil {
		if orm.IsNotFound(err) {
			return ErrInvalidProduct
		}
		return err
	}
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}

	order.ProductID = productID
	order.Status = status
	// Clear the preloaded associations so Save does not write them back.
	order.Product = models.Product{}
	order.Customer = models.Customer{}

	if err := s.orders.Save(&order); err != nil {
		return err
	}

	logger.Info("order: updated", "order_id", order.ID, "status", status)
	return nil
}

// Delete removes an order. Deleted orders disappear from every listing and
// count, and further operations on the id return ErrNotFound.
func (s *OrderService) Delete(id uint) error {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	if err := s.orders.Delete(&order); err != nil {
		return err
	}

	logger.Info("order: deleted", "order_id", id)
	return nil
}
