package repositories

import (
	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/orm"
)

// UserRepository handles database operations for User.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByUsername looks up a user by their login name.
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("username = ?", username).First(&user)
	return user, err
}

// FindByID looks up a user by primary key, with the customer profile loaded.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Preload("Customer").Where("id = ?", id).First(&user)
	return user, err
}

// UsernameTaken reports whether a user with the given username exists.
func (r *UserRepository) UsernameTaken(username string) (bool, error) {
	n, err := orm.DB().Model(&models.User{}).Where("username = ?", username).Count()
	return n > 0, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return orm.DB().Create(user)
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(user *models.User) error {
	return orm.DB().Save(user)
}
