package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/app/services"
)

func TestAdminDashboardCounts(t *testing.T) {
	setupDB(t)
	svc := services.NewDashboardService()

	jane := createCustomer(t, "Jane")
	bob := createCustomer(t, "Bob")
	ball := createProduct(t, "Ball")

	createOrder(t, jane.ID, ball.ID, models.StatusPending)
	createOrder(t, jane.ID, ball.ID, models.StatusDelivered)
	createOrder(t, bob.ID, ball.ID, models.StatusOut)
	createOrder(t, bob.ID, ball.ID, models.StatusDelivered)

	data, err := svc.Admin()
	require.NoError(t, err)

	assert.EqualValues(t, 4, data.TotalOrders)
	assert.EqualValues(t, 2, data.TotalCustomers)
	assert.EqualValues(t, 1, data.TotalProducts)
	assert.EqualValues(t, 2, data.Delivered)
	assert.EqualValues(t, 1, data.Pending)
	assert.Len(t, data.Customers, 2)
	assert.Len(t, data.Products, 1)

	// The total always covers every status, including out-for-delivery
	// orders the tiles do not break out.
	out := data.TotalOrders - data.Delivered - data.Pending
	assert.EqualValues(t, 1, out)
}

func TestAdminDashboardListsEveryOrder(t *testing.T) {
	setupDB(t)
	svc := services.NewDashboardService()

	jane := createCustomer(t, "Jane")
	ball := createProduct(t, "Ball")
	for i := 0; i < 7; i++ {
		createOrder(t, jane.ID, ball.ID, models.StatusPending)
	}

	// The order table is never truncated.
	data, err := svc.Admin()
	require.NoError(t, err)
	assert.Len(t, data.Orders, 7)
}

func TestCustomerDashboardIsScopedToOneCustomer(t *testing.T) {
	setupDB(t)
	svc := services.NewDashboardService()

	jane := createCustomer(t, "Jane")
	bob := createCustomer(t, "Bob")
	ball := createProduct(t, "Ball")

	createOrder(t, jane.ID, ball.ID, models.StatusPending)
	createOrder(t, jane.ID, ball.ID, models.StatusDelivered)
	createOrder(t, bob.ID, ball.ID, models.StatusPending)

	data, err := svc.Customer(jane.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 2, data.TotalOrders)
	assert.EqualValues(t, 1, data.Delivered)
	assert.EqualValues(t, 1, data.Pending)
	for _, o := range data.Orders {
		assert.Equal(t, jane.ID, o.CustomerID)
	}
}

func TestDashboardCountsAreFresh(t *testing.T) {
	setupDB(t)
	svc := services.NewDashboardService()

	jane := createCustomer(t, "Jane")
	ball := createProduct(t, "Ball")

	before, err := svc.Admin()
	require.NoError(t, err)
	assert.EqualValues(t, 0, before.TotalOrders)

	createOrder(t, jane.ID, ball.ID, models.StatusPending)

	after, err := svc.Admin()
	require.NoError(t, err)
	assert.EqualValues(t, 1, after.TotalOrders, "a new order is visible immediately")
}
