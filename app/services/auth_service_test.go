package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/app/services"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/database"
)

func registerInput(username string) services.RegisterInput {
	return services.RegisterInput{
		Username:             username,
		Name:                 "Jane Doe",
		Email:                username + "@example.com",
		Phone:                "555-0100",
		Address:              "1 Main St",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}
}

func TestRegisterCreatesUserAndCustomerProfile(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()

	user, err := svc.Register(registerInput("jane"))
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	// The customer profile exists, is linked one-to-one, and carries the
	// posted profile fields rather than copies of the account fields.
	var customer models.Customer
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&customer).Error)
	assert.Equal(t, "Jane Doe", customer.Name)
	assert.Equal(t, "555-0100", customer.Phone)
	assert.Equal(t, "1 Main St", customer.Address)
	assert.Equal(t, user.Email, customer.Email)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()

	_, err := svc.Register(registerInput("jane"))
	require.NoError(t, err)

	_, err = svc.Register(registerInput("jane"))
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	// No second user row was written.
	var n int64
	require.NoError(t, database.DB.Model(&models.User{}).Where("username = ?", "jane").Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestAuthenticate(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()

	_, err := svc.Register(registerInput("jane"))
	require.NoError(t, err)

	user, err := svc.Authenticate("jane", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "jane", user.Username)

	// Wrong password and unknown user fail identically.
	_, err = svc.Authenticate("jane", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, err = svc.Authenticate("ghost", "secret123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoadPrincipal(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()

	user, err := svc.Register(registerInput("jane"))
	require.NoError(t, err)

	p, ok := svc.LoadPrincipal(user.ID)
	require.True(t, ok)
	assert.Equal(t, user.ID, p.UserID)
	assert.Equal(t, models.RoleCustomer, p.Role)
	assert.NotZero(t, p.CustomerID, "customer accounts carry their profile id")

	_, ok = svc.LoadPrincipal(9999)
	assert.False(t, ok, "deleted users must not resolve")
}
