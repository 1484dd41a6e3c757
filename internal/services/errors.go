package services

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidAdminPin    = errors.New("invalid admin pin")
	ErrUnknownCollection  = errors.New("unknown collection")
)
