package client

import "errors"

var (
	ErrUsage         = errors.New("usage error")
	ErrUnknownEntity = errors.New("unknown entity")
	ErrInvalidInput  = errors.New("invalid input")
)
