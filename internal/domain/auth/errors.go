package auth

import "errors"

var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrUserRequired        = errors.New("user id and role id are required")
)
