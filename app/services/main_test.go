package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/database"
)

// setupDB points the shared handle at a fresh in-memory database named after
// the test, so tests stay isolated from each other.
func setupDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Tag{},
		&models.Product{},
		&models.Order{},
	))

	database.DB = db
}

func createCustomer(t *testing.T, name string) models.Customer {
	t.Helper()

	user := models.User{
		Username: strings.ToLower(strings.ReplaceAll(name, " ", "_")),
		Email:    name + "@example.com",
		Password: "x",
		Role:     models.RoleCustomer,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	c := models.Customer{UserID: user.ID, Name: name, Email: user.Email}
	require.NoError(t, database.DB.Create(&c).Error)
	return c
}

func createProduct(t *testing.T, name string) models.Product {
	t.Helper()

	p := models.Product{Name: name, Price: 10, Category: models.CategoryIndoor}
	require.NoError(t, database.DB.Create(&p).Error)
	return p
}

func createOrder(t *testing.T, customerID, productID uint, status string) models.Order {
	t.Helper()

	o := models.Order{CustomerID: customerID, ProductID: productID, Status: status}
	require.NoError(t, database.DB.Create(&o).Error)
	return o
}
