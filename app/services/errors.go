// Package services holds the application's business logic between the HTTP
// controllers and the repositories.
package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so login failures do not reveal which part was wrong.
	ErrInvalidCredentials = errors.New("username or password is incorrect")

	// ErrUsernameTaken is returned when registering a duplicate username.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidStatus is returned for an order status outside the allowed set.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidProduct is returned when an order references a product that
	// does not exist.
	ErrInvalidProduct = errors.New("invalid product")
)
