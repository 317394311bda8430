package domain

import "errors"

var (
	ErrStorage         = errors.New("storage failure")
	ErrUserNotFound    = errors.New("user not found")
	ErrTodoNotFound    = errors.New("todo not found")
	ErrDuplicateLogin  = errors.New("login already exists")
	ErrDuplicateTitle  = errors.New("todo title already exists for this user")
	ErrMissingArgument = errors.New("missing required argument")
)
