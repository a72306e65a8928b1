// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service composes configuration validation and the token exchange
// into the single operation used by the CLI.
package service

import (
	"context"

	"github.com/MKhiriev/go-ims-exchange/internal/adapter"
	"github.com/MKhiriev/go-ims-exchange/models"
)

// ExchangeService turns an integration configuration into an access token.
type ExchangeService interface {
	// Exchange binds an exchanger to cfg's imsEndpoint, validates cfg and
	// performs one token exchange. Errors of the validators and adapter
	// packages are wrapped with %w and stay reachable via errors.As.
	Exchange(ctx context.Context, cfg models.IntegrationConfig) (string, error)
}

// ExchangerFactory builds a [adapter.TokenExchanger] bound to host.
type ExchangerFactory func(host string) (adapter.TokenExchanger, error)
