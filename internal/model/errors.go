package model

import "errors"

var (
	// Session related errors
	ErrNoSession        = errors.New("no active session")
	ErrMalformedSession = errors.New("malformed session data")

	// Account related errors
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")

	// Navigation related errors
	ErrNavigationRefused = errors.New("navigation refused")
	ErrNoSelectedProduct = errors.New("no product selected")
	ErrProductNotFound   = errors.New("product not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)
