package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrToDoNotFound = errors.New("todo not found")
var ErrForbidden = errors.New("access forbidden")
