package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrProductNotFound = errors.New("product not found")
	ErrSessionNotFound = errors.New("session not found")
)
