// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyHost is returned by [NewIMSExchanger] when no identity provider
	// host is configured.
	ErrEmptyHost = errors.New("client lib must have a target host defined")

	// ErrNoAccessToken is wrapped by [MalformedResponseError] when a success
	// response carries no access_token.
	ErrNoAccessToken = errors.New("response has no access_token")
)

// Names reported by [MissingFieldError].
const (
	FieldIssuer                = "issuer"
	FieldSubject               = "subject"
	FieldExpirationTimeSeconds = "expiration_time_seconds"
	FieldMetascope             = "metascope"
	FieldClientID              = "client_id"
	FieldClientSecret          = "client_secret"
	FieldPrivateKey            = "privateKey"
)

// MissingFieldError reports the first required request field that is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is a required option", e.Field)
}

// SigningError reports that the assertion could not be signed with the
// configured private key. No request was sent.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("sign jwt assertion: %v", e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

// TransportError reports that the exchange request did not get a response
// (DNS, connection, TLS, cancellation).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("token exchange request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ExchangeRejectedError reports a non-200 answer of the token endpoint.
type ExchangeRejectedError struct {
	StatusCode int
	Body       string
}

func (e *ExchangeRejectedError) Error() string {
	return fmt.Sprintf("failed to exchange jwt: http %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError reports a 200 answer whose body is not JSON or has
// no access_token.
type MalformedResponseError struct {
	Body string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed token exchange response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
