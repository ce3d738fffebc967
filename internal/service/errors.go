package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("invalid parameters")
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrPasswordIncorrect = errors.New("incorrect password")
	ErrPostNotFound      = errors.New("post not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryExists    = errors.New("category already exists")
	ErrLocationNotFound  = errors.New("location not found")
	ErrFileNotSupported  = errors.New("unsupported file type")
	UnExpectedError      = errors.New("unexpected error, try again later")

	// ErrOwnerMismatch never reaches the error renderer: handlers turn it
	// into a redirect to the resource's detail route.
	ErrOwnerMismatch = errors.New("viewer is not the owner")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUsernameTaken:     BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrCategoryNotFound:  NotFound,
	ErrCategoryExists:    BadRequest,
	ErrLocationNotFound:  BadRequest,
	ErrFileNotSupported:  BadRequest,
	UnExpectedError:      InternalServerError,
}
