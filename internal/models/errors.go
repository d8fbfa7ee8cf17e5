package models

import "errors"

// Sentinel errors shared between services and controllers; controllers
// branch on these with errors.Is to pick the response status.
var (
	ErrEmailTaken      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)
