package errors

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("the requested resource was not found")
	ErrMissingCredentials = errors.New("missing basic credentials")
	ErrInvalidCredentials = errors.New("invalid basic credentials")
	ErrRefererForbidden   = errors.New("request referer is not the api documentation ui")
)
