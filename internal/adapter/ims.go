// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-ims-exchange/internal/config"
	"github.com/MKhiriev/go-ims-exchange/internal/logger"
	"github.com/MKhiriev/go-ims-exchange/internal/utils"
	"github.com/MKhiriev/go-ims-exchange/models"
	"github.com/rs/zerolog"
)

const exchangePath = "/ims/exchange/jwt"

type imsExchanger struct {
	host   string
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewIMSExchanger constructs the HTTP implementation of [TokenExchanger]
// bound to host (a bare domain such as "ims-na1.example.com"). Requests are
// bounded by adapterCfg.RequestTimeout when it is positive. A nil logger
// discards output.
//
// Returns [ErrEmptyHost] if host is empty or blank.
func NewIMSExchanger(host string, adapterCfg config.Adapter, log *logger.Logger) (TokenExchanger, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, ErrEmptyHost
	}
	if log == nil {
		log = logger.Nop()
	}

	return &imsExchanger{
		host:   host,
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout),
		logger: log,
	}, nil
}

// Host implements [TokenExchanger].
func (e *imsExchanger) Host() string {
	return e.host
}

// Exchange implements [TokenExchanger]. It POSTs client_id, client_secret and
// jwt_token as a urlencoded form to https://{host}/ims/exchange/jwt.
//
// Errors: [*MissingFieldError] for an incomplete request, [*SigningError]
// when the private key is unusable (no request is sent), [*TransportError]
// when no response arrives, [*ExchangeRejectedError] for a non-200 status and
// [*MalformedResponseError] for a 200 without a usable access_token.
func (e *imsExchanger) Exchange(ctx context.Context, req models.ExchangeRequest) (string, error) {
	if err := checkRequired(req); err != nil {
		return "", err
	}

	log := e.requestLogger(ctx)

	claims := utils.BuildAssertionClaims(e.host, req)
	assertion, err := utils.SignAssertion(claims, req.PrivateKey)
	if err != nil {
		log.Error().Err(err).Msg("sign jwt assertion")
		return "", &SigningError{Err: err}
	}

	log.Debug().
		Int("claims", len(claims)).
		Int64("exp", req.ExpirationTimeSeconds).
		Msg("posting jwt assertion")

	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"client_id":     req.ClientID,
			"client_secret": req.ClientSecret,
			"jwt_token":     assertion,
		}).
		Post(e.endpoint())
	if err != nil {
		log.Error().Err(err).Msg("token exchange request failed")
		return "", &TransportError{Err: err}
	}

	body := strings.TrimSpace(string(resp.Body()))
	if resp.StatusCode() != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode()).Msg("token exchange rejected")
		return "", &ExchangeRejectedError{StatusCode: resp.StatusCode(), Body: body}
	}

	var exchangeResp models.ExchangeResponse
	if err = json.Unmarshal(resp.Body(), &exchangeResp); err != nil {
		return "", &MalformedResponseError{Body: body, Err: err}
	}
	if exchangeResp.AccessToken == "" {
		return "", &MalformedResponseError{Body: body, Err: ErrNoAccessToken}
	}

	log.Info().Int64("expires_in", exchangeResp.ExpiresIn).Msg("access token issued")
	return exchangeResp.AccessToken, nil
}

func (e *imsExchanger) endpoint() string {
	return "https://" + e.host + exchangePath
}

// requestLogger prefers the logger attached to ctx by the caller, which
// already carries the trace id.
func (e *imsExchanger) requestLogger(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l.WithStr("host", e.host)
	}

	l := e.logger.WithStr("host", e.host)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		l = l.WithStr("trace_id", traceID)
	}
	return l
}

// checkRequired reports the first missing field in declaration order.
// Blank strings count as missing.
func checkRequired(req models.ExchangeRequest) error {
	switch {
	case blank(req.Issuer):
		return &MissingFieldError{Field: FieldIssuer}
	case blank(req.Subject):
		return &MissingFieldError{Field: FieldSubject}
	case req.ExpirationTimeSeconds == 0:
		return &MissingFieldError{Field: FieldExpirationTimeSeconds}
	case !hasMetascope(req.Metascopes):
		return &MissingFieldError{Field: FieldMetascope}
	case blank(req.ClientID):
		return &MissingFieldError{Field: FieldClientID}
	case blank(req.ClientSecret):
		return &MissingFieldError{Field: FieldClientSecret}
	case blank(req.PrivateKey):
		return &MissingFieldError{Field: FieldPrivateKey}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func hasMetascope(scopes []string) bool {
	for _, s := range scopes {
		if !blank(s) {
			return true
		}
	}
	return false
}
