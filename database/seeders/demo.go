package seeders

import (
	"gorm.io/gorm"

	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/auth"
)

func init() {
	Register("admin", SeedAdmin)
	Register("products", SeedProducts)
	Register("demo-customer", SeedDemoCustomer)
}

// SeedAdmin creates the default administrator account. Idempotent: an
// existing admin user is left alone.
func SeedAdmin(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hashed, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: hashed,
		Role:     models.RoleAdmin,
	}).Error
}

// SeedProducts inserts a small catalogue with tags.
func SeedProducts(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.Product{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	sports := models.Tag{Name: "Sports"}
	outdoors := models.Tag{Name: "Outdoors"}
	if err := db.Create(&sports).Error; err != nil {
		return err
	}
	if err := db.Create(&outdoors).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Name: "Ball", Price: 19.99, Category: models.CategoryOutdoor, Description: "Standard size football", Tags: []models.Tag{sports, outdoors}},
		{Name: "BBQ Grill", Price: 149.99, Category: models.CategoryOutdoor, Description: "Charcoal grill", Tags: []models.Tag{outdoors}},
		{Name: "Watch", Price: 89.50, Category: models.CategoryIndoor, Description: "Water resistant sports watch", Tags: []models.Tag{sports}},
		{Name: "Headphones", Price: 59.00, Category: models.CategoryIndoor, Description: "Over-ear wireless headphones"},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoCustomer creates a demo customer account with one pending order.
func SeedDemoCustomer(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.User{}).Where("username = ?", "demo").Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hashed, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	user := models.User{
		Username: "demo",
		Email:    "demo@example.com",
		Password: hashed,
		Role:     models.RoleCustomer,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	customer := models.Customer{
		UserID:  user.ID,
		Name:    "Demo Customer",
		Phone:   "555-0100",
		Email:   user.Email,
		Address: "1 Demo Street",
	}
	if err := db.Create(&customer).Error; err != nil {
		return err
	}

	var product models.Product
	if err := db.Where("name = ?", "Ball").First(&product).Error; err != nil {
		// No catalogue, skip the sample order.
		return nil
	}

	return db.Create(&models.Order{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Status:     models.StatusPending,
	}).Error
}
