package service

import "errors"

var (
	ErrCreateExchanger     = errors.New("error creating token exchanger")
	ErrInvalidIntegration  = errors.New("invalid integration configuration")
	ErrTokenExchangeFailed = errors.New("token exchange failed")
)
