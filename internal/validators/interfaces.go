// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks integration configuration before a token
// exchange is attempted.
//
// A ConfigValidator turns a complete configuration into a
// [models.ExchangeRequest]. Missing fields are reported all at once through
// [ConfigurationError] so that a caller can show every problem in a single
// pass.
package validators

import (
	"context"

	"github.com/MKhiriev/go-ims-exchange/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_validator_mock.go -package=mock

// ConfigValidator validates an integration configuration and builds the
// request consumed by the token exchanger.
type ConfigValidator interface {
	// BuildExchangeRequest checks every required field of cfg. If any are
	// missing it returns a *ConfigurationError listing all of them in check
	// order. Otherwise it returns a request whose expiration is computed from
	// the current wall clock.
	BuildExchangeRequest(ctx context.Context, cfg models.IntegrationConfig) (models.ExchangeRequest, error)
}
