package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("incorrect password")
	ErrInvalidSecretAnswer = errors.New("incorrect secret answer")
	ErrMissingFields       = errors.New("secret answer and new password are required")
)
