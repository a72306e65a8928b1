// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the identity provider's token endpoint.
//
// The primary abstraction is [TokenExchanger], which trades a signed
// JWT-bearer assertion plus client credentials for an access token. The
// package ships an HTTP implementation ([NewIMSExchanger]) built on resty.
//
// Every failure is one of the typed errors defined in errors.go so callers
// can tell them apart with [errors.As] (e.g. [*ExchangeRejectedError] carries
// the status code and body of a rejected exchange).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ims-exchange/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_exchanger_mock.go -package=mock

// TokenExchanger exchanges a JWT-bearer assertion for an access token at a
// single identity provider host fixed at construction.
type TokenExchanger interface {
	// Host returns the identity provider host the exchanger is bound to.
	Host() string

	// Exchange validates req, signs a fresh assertion and posts it to the
	// token endpoint. It returns the access token on success. Every call
	// performs a new round trip; nothing is cached or retried.
	Exchange(ctx context.Context, req models.ExchangeRequest) (string, error)
}
