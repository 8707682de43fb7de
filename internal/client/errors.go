package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoCommand      = errors.New("no command given")
	ErrMissingToken   = errors.New("token is required: pass -token or set LOST_FOUND_TOKEN")
)
