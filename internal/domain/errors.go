package domain

import "errors"

var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigInvalid   = errors.New("invalid config")
	ErrBrowserNotFound = errors.New("chrome executable not found")
	ErrUnknownDriver   = errors.New("unknown browser driver")
)

var (
	ErrProfileExists   = errors.New("profile already configured")
	ErrProfileNotFound = errors.New("profile not configured")
)
