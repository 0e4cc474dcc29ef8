package store

import "errors"

// Authentication failures
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("account is locked")
)

// Validation failures
var (
	ErrOversizeFile         = errors.New("file exceeds the 150 MiB limit")
	ErrUnsupportedExtension = errors.New("file extension is not allowed")
	ErrOversizeImage        = errors.New("image exceeds the 3 MiB limit")
	ErrEmptyMessage         = errors.New("message has no text and no image")
	ErrInvalidSemester      = errors.New("semester is out of range")
)

// Structural failures
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrProtectedAccount  = errors.New("the primary administrator account cannot be modified")
)
