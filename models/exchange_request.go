// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExchangeRequest carries everything needed for one JWT-bearer token exchange.
//
// Values are produced by the config validator (or assembled by a caller that
// talks to the exchanger directly) and are treated as immutable: the exchanger
// only reads them. ClientSecret and PrivateKey are sensitive and must never be
// logged.
type ExchangeRequest struct {
	// Issuer is the organization identity ("iss").
	Issuer string

	// Subject is the technical account identifier ("sub").
	Subject string

	// ExpirationTimeSeconds is the absolute unix time at which the assertion
	// expires ("exp").
	ExpirationTimeSeconds int64

	// Metascopes lists the requested metascopes in order. Each one becomes a
	// boolean claim in the assertion.
	Metascopes []string

	ClientID     string
	ClientSecret string

	// PrivateKey is the PEM-encoded RSA private key.
	PrivateKey string
}

// ExchangeResponse is the success body returned by the token endpoint.
// Only AccessToken is consumed; the remaining fields are informational.
type ExchangeResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}
