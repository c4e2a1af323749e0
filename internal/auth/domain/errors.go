package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrPasswordMismatch   = errors.New("password_confirmation_mismatch")
	ErrPasswordTooShort   = errors.New("password_too_short")
	ErrUserExists         = errors.New("user_already_exists")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrSessionNotFound    = errors.New("session_not_found")
	ErrSessionExpired     = errors.New("session_expired")
	ErrSessionRevoked     = errors.New("session_revoked")
	ErrInvalidSession     = errors.New("invalid_session")
)
