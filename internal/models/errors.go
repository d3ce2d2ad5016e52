package models

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrBundleNotFound      = errors.New("bundle not found")
	ErrInvalidConfig       = errors.New("invalid pricing configuration")
	ErrInvalidProduct      = errors.New("invalid product")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrStateNotFound       = errors.New("workspace state not found")
	ErrUnsupportedFormat   = errors.New("unsupported file format")
	ErrConfirmationMissing = errors.New("destructive operation requires confirmation")
	ErrNotEnoughProducts   = errors.New("a bundle needs at least two products")
	ErrStorageDisabled     = errors.New("object storage is not configured")
)
