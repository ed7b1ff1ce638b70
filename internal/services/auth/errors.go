package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and contain special characters")
	ErrInvalidToken       = errors.New("invalid refresh token")
)
