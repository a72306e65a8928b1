// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ims-exchange/internal/logger"
	"github.com/MKhiriev/go-ims-exchange/internal/utils"
	"github.com/MKhiriev/go-ims-exchange/internal/validators"
	"github.com/MKhiriev/go-ims-exchange/models"
)

type exchangeService struct {
	validator    validators.ConfigValidator
	newExchanger ExchangerFactory
	traceIDs     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewExchangeService(validator validators.ConfigValidator, newExchanger ExchangerFactory, logger *logger.Logger) ExchangeService {
	return &exchangeService{
		validator:    validator,
		newExchanger: newExchanger,
		traceIDs:     utils.NewUUIDGenerator(),
		logger:       logger,
	}
}

func (s *exchangeService) Exchange(ctx context.Context, cfg models.IntegrationConfig) (string, error) {
	traceID := s.traceIDs.Generate()
	ctx = utils.WithTraceID(ctx, traceID)
	log := s.logger.WithStr("trace_id", traceID)
	ctx = log.WithContext(ctx)

	// the host is required before anything else is checked
	exchanger, err := s.newExchanger(cfg.Integration.IMSEndpoint)
	if err != nil {
		log.Error().Err(err).Msg("create token exchanger")
		return "", fmt.Errorf("%w: %w", ErrCreateExchanger, err)
	}

	req, err := s.validator.BuildExchangeRequest(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("integration validation failed")
		return "", fmt.Errorf("%w: %w", ErrInvalidIntegration, err)
	}

	log.Info().
		Str("host", exchanger.Host()).
		Strs("metascopes", req.Metascopes).
		Msg("exchanging jwt")

	token, err := exchanger.Exchange(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExchangeFailed, err)
	}

	return token, nil
}
