package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/app/services"
)

func TestDetailFiltersOrdersByProductName(t *testing.T) {
	setupDB(t)
	svc := services.NewCustomerService()

	customer := createCustomer(t, "Jane")
	ball := createProduct(t, "Beach Ball")
	grill := createProduct(t, "Grill")
	createOrder(t, customer.ID, ball.ID, models.StatusPending)
	createOrder(t, customer.ID, grill.ID, models.StatusDelivered)

	d, err := svc.Detail(customer.ID, "Ball")
	require.NoError(t, err)
	require.Len(t, d.Orders, 1)
	assert.Equal(t, "Beach Ball", d.Orders[0].Product.Name)
	assert.EqualValues(t, 2, d.OrderCount, "count ignores the filter")

	// Case matters here too.
	d, err = svc.Detail(customer.ID, "ball")
	require.NoError(t, err)
	assert.Empty(t, d.Orders)
}

func TestDetailUnknownCustomer(t *testing.T) {
	setupDB(t)
	svc := services.NewCustomerService()

	_, err := svc.Detail(9999, "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateAccount(t *testing.T) {
	setupDB(t)
	svc := services.NewCustomerService()

	customer := createCustomer(t, "Jane")

	in := services.AccountInput{Name: "Jane Doe", Phone: "555-0100", Email: "jane@new.example", Address: "2 Elm St"}
	require.NoError(t, svc.UpdateAccount(customer.ID, in, nil))

	got, err := svc.Find(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "555-0100", got.Phone)
	assert.Equal(t, "jane@new.example", got.Email)
	assert.Equal(t, "2 Elm St", got.Address)

	assert.ErrorIs(t, svc.UpdateAccount(9999, in, nil), services.ErrNotFound)
}
