package services

import (
	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/app/repositories"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/auth"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/logger"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/middleware"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/orm"
)

// RegisterInput is the validated registration form. The profile fields feed
// the customer row created alongside the user account.
type RegisterInput struct {
	Username             string `form:"username" validate:"required,min=3,max=150"`
	Name                 string `form:"name" validate:"required,max=255"`
	Email                string `form:"email" validate:"required,email"`
	Phone                string `form:"phone" validate:"nullable,max=50"`
	Address              string `form:"address" validate:"nullable,max=500"`
	Password             string `form:"password" validate:"required,min=8"`
	PasswordConfirmation string `form:"password_confirmation" validate:"required,confirmed"`
}

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register creates a customer account: the user row and its customer profile
// are written in one transaction so a half-created account can never exist.
func (s *AuthService) Register(in RegisterInput) (models.User, error) {
	taken, err := s.users.UsernameTaken(in.Username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrUsernameTaken
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: hashed,
		Role:     models.RoleCustomer,
	}

	err = orm.Transaction(func(tx *orm.Query) error {
		if err := tx.Create(&user); err != nil {
			return err
		}
		customer := models.Customer{
			UserID:  user.ID,
			Name:    in.Name,
			Phone:   in.Phone,
			Email:   in.Email,
			Address: in.Address,
		}
		return tx.Create(&customer)
	})
	if err != nil {
		return models.User{}, err
	}

	logger.Info("auth: account registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate verifies a username/password pair. Both unknown usernames and
// wrong passwords come back as ErrInvalidCredentials.
func (s *AuthService) Authenticate(username, password string) (models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if orm.IsNotFound(err) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// LoadPrincipal resolves a session user id to the request principal. It backs
// the authentication middleware; a false return invalidates the session.
func (s *AuthService) LoadPrincipal(userID uint) (middleware.Principal, bool) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return middleware.Principal{}, false
	}

	p := middleware.Principal{
		UserID: user.ID,
		Name:   user.Username,
		Role:   user.Role,
	}
	if user.Customer != nil {
		p.CustomerID = user.Customer.ID
	}
	return p, true
}
