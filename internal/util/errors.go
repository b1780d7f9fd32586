package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrPermissionDenied = errors.New("permission denied")
	ErrPostNotFound     = errors.New("post not found")
	ErrContentNotFound  = errors.New("content not found")
	ErrAlreadyLiked     = errors.New("already liked")
	ErrInvalidWeek      = errors.New("invalid week number")
)
