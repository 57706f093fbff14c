package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/app/services"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/database"
)

func countOrders(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, database.DB.Model(&models.Order{}).Count(&n).Error)
	return n
}

func TestCreateBatchSkipsBlankRows(t *testing.T) {
	setupDB(t)
	svc := services.NewOrderService()

	customer := createCustomer(t, "Jane")
	ball := createProduct(t, "Ball")
	grill := createProduct(t, "Grill")

	rows := make([]services.OrderRow, 10)
	rows[0] = services.OrderRow{ProductID: ball.ID, Status: models.StatusPending}
	rows[3] = services.OrderRow{ProductID: grill.ID, Status: models.StatusDelivered}

	created, err := svc.CreateBatch(customer.ID, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.EqualValues(t, 2, countOrders(t))
}

func TestCreateBatchIsAllOrNothing(t *testing.T) {
	setupDB(t)
	svc := services.NewOrderService()

	customer := createCustomer(t, "Jane")
	ball := createProduct(t, "Ball")

	rows := []services.OrderRow{
		{ProductID: ball.ID, Status: models.StatusPending},
		{ProductID: 9999, Status: models.StatusPending}, // unknown product
	}

	_, err := svc.CreateBatch(customer.ID, rows)
	assert.ErrorIs(t, err, services.ErrInvalidProduct)
	assert.EqualValues(t, 0, countOrders(t), "no partial batch may be committed")
}

func TestCreateBatchRejectsBadStatus(t *testing.T) {
	setupDB(t)
	svc := services.NewOrderService()

	customer := createCustomer(t, "Jane")
	ball := createProduct(t, "Ball")

	rows := []services.OrderRow{{ProductID: ball.ID, Status: "Shipped"}}
	_, err := svc.CreateBatch(customer.ID, rows)
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
	assert.EqualValues(t, 0, countOrders(t))
}

func TestCreateBatchDefaultsToPending(t *testing.T) {
	setupDB(t)
	svc := services.NewOrderService()

	customer := createCustomer(t, "Jane")
	ball := createProduct(t, "Ball")

	created, err := svc.CreateBatch(customer.ID, []services.OrderRow{{ProductID: ball.ID}})
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	var order models.Order
	require.NoError(t, database.DB.First(&order).Error)
	assert.Equal(t, models.StatusPending, order.Status)
}

func TestCreateBatchEmptySelectionCreatesNothing(t *testing.T) {
	setupDB(t)
	svc := services.NewOrderService()

	customer := createCustomer(t, "Jane")

	created, err := svc.CreateBatch(customer.ID, make([]services.OrderRow, 10))
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.EqualValues(t, 0, countOrders(t))
}

func TestCreateBatchUnknownCustomer(t *testing.T) {
	setupDB(t)
	svc := services.NewOrderService()

	_, err := svc.CreateBatch(9999, []services.OrderRow{{ProductID: 1}})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdatePreservesIdentityAndCustomer(t *testing.T) {
	setupDB(t)
	svc := services.NewOrderService()

	customer := createCustomer(t, "Jane")
	ball := createProduct(t, "Ball")
	grill := createProduct(t, "Grill")
	order := createOrder(t, customer.ID, ball.ID, models.StatusPending)

	require.NoError(t, svc.Update(order.ID, grill.ID, models.StatusDelivered))

	updated, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, updated.ID, "edit must not create a new order")
	assert.Equal(t, customer.ID, updated.CustomerID, "edit must not move the order")
	assert.Equal(t, grill.ID, updated.ProductID)
	assert.Equal(t, models.StatusDelivered, updated.Status)
	assert.EqualValues(t, 1, countOrders(t))
}

func TestUpdateValidation(t *testing.T) {
	setupDB(t)
	svc := services.NewOrderService()

	customer := createCustomer(t, "Jane")
	ball := createProduct(t, "Ball")
	order := createOrder(t, customer.ID, ball.ID, models.StatusPending)

	assert.ErrorIs(t, svc.Update(order.ID, 9999, models.StatusPending), services.ErrInvalidProduct)
	assert.ErrorIs(t, svc.Update(order.ID, ball.ID, "Shipped"), services.ErrInvalidStatus)
	assert.ErrorIs(t, svc.Update(9999, ball.ID, models.StatusPending), services.ErrNotFound)

	// Failed updates leave the order untouched.
	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	setupDB(t)
	svc := services.NewOrderService()

	customer := createCustomer(t, "Jane")
	ball := createProduct(t, "Ball")
	order := createOrder(t, customer.ID, ball.ID, models.StatusPending)

	require.NoError(t, svc.Delete(order.ID))

	_, err := svc.Get(order.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(order.ID), services.ErrNotFound)
}
