package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-ims-exchange/internal/adapter"
	"github.com/MKhiriev/go-ims-exchange/internal/config"
	"github.com/MKhiriev/go-ims-exchange/internal/logger"
	"github.com/MKhiriev/go-ims-exchange/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices_WiresValidatorAndExchanger(t *testing.T) {
	cfg := &config.StructuredConfig{
		App:     config.App{TokenDuration: config.DefaultTokenDuration},
		Adapter: config.Adapter{RequestTimeout: config.DefaultRequestTimeout},
	}

	svcs := NewServices(cfg, logger.Nop())
	require.NotNil(t, svcs.ExchangeService)

	integration := testIntegration()
	integration.Integration.Metascopes = ""

	// validation fails before any request is sent
	_, err := svcs.ExchangeService.Exchange(context.Background(), integration)
	var cfgErr *validators.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{validators.FieldMetascopes}, cfgErr.Missing)

	integration.Integration.IMSEndpoint = " "
	_, err = svcs.ExchangeService.Exchange(context.Background(), integration)
	assert.ErrorIs(t, err, adapter.ErrEmptyHost)
}
