package utils

import "errors"

var (
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrQuizMisconfigured    = errors.New("quiz configuration invalid")
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrFeatureLocked        = errors.New("feature locked")
	ErrForbidden            = errors.New("forbidden")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
	ErrDatabaseError        = errors.New("database error")
)
