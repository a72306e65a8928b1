// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-ims-exchange/models"
)

// Dotted paths of the integration file fields that must be present before an
// exchange. They are also the values reported in [ConfigurationError.Missing].
const (
	FieldOrg          = "integration.org"
	FieldID           = "integration.id"
	FieldClientID     = "integration.technicalAccount.clientId"
	FieldClientSecret = "integration.technicalAccount.clientSecret"
	FieldMetascopes   = "integration.metascopes"
	FieldPrivateKey   = "integration.privateKey"
)

// DefaultExpirationWindow is how long a built assertion stays valid.
const DefaultExpirationWindow = 24 * time.Hour

type requiredField struct {
	path    string
	present func(models.Integration) bool
}

// requiredFields is ordered; the order is the order of reported paths.
var requiredFields = []requiredField{
	{FieldOrg, func(i models.Integration) bool { return notBlank(i.Org) }},
	{FieldID, func(i models.Integration) bool { return notBlank(i.ID) }},
	{FieldClientID, func(i models.Integration) bool { return notBlank(i.TechnicalAccount.ClientID) }},
	{FieldClientSecret, func(i models.Integration) bool { return notBlank(i.TechnicalAccount.ClientSecret) }},
	{FieldMetascopes, func(i models.Integration) bool { return len(SplitMetascopes(i.Metascopes)) > 0 }},
	{FieldPrivateKey, func(i models.Integration) bool { return notBlank(i.PrivateKey) }},
}

// IntegrationValidator implements [ConfigValidator] for
// [models.IntegrationConfig].
type IntegrationValidator struct {
	window time.Duration
	now    func() time.Time
}

// NewIntegrationValidator returns a [ConfigValidator] that stamps requests
// with an expiration window ahead of the validation time. A non-positive
// window falls back to [DefaultExpirationWindow].
func NewIntegrationValidator(window time.Duration) ConfigValidator {
	if window <= 0 {
		window = DefaultExpirationWindow
	}
	return &IntegrationValidator{window: window, now: time.Now}
}

// BuildExchangeRequest implements [ConfigValidator].
func (v *IntegrationValidator) BuildExchangeRequest(ctx context.Context, cfg models.IntegrationConfig) (models.ExchangeRequest, error) {
	if err := v.validateIntegration(ctx, cfg.Integration); err != nil {
		return models.ExchangeRequest{}, err
	}

	in := cfg.Integration
	return models.ExchangeRequest{
		Issuer:                in.Org,
		Subject:               in.ID,
		ExpirationTimeSeconds: v.now().Add(v.window).Unix(),
		Metascopes:            SplitMetascopes(in.Metascopes),
		ClientID:              in.TechnicalAccount.ClientID,
		ClientSecret:          in.TechnicalAccount.ClientSecret,
		PrivateKey:            in.PrivateKey,
	}, nil
}

func (v *IntegrationValidator) validateIntegration(_ context.Context, in models.Integration) error {
	var missing []string
	for _, rf := range requiredFields {
		if !rf.present(in) {
			missing = append(missing, rf.path)
		}
	}

	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

// SplitMetascopes splits a comma-separated metascope list into trimmed,
// non-empty names, keeping their order.
func SplitMetascopes(raw string) []string {
	parts := strings.Split(raw, ",")
	scopes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			scopes = append(scopes, p)
		}
	}
	return scopes
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
