package storage

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrConflict  = errors.New("record already exists")
	ErrNoUpdates = errors.New("no fields to update")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

var (
	ErrGalleryExpired  = errors.New("gallery expired")
	ErrInvalidPassword = errors.New("invalid password")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
