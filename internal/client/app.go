package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ims-exchange/internal/config"
	"github.com/MKhiriev/go-ims-exchange/internal/logger"
	"github.com/MKhiriev/go-ims-exchange/internal/service"
)

type App struct {
	services *service.Services
	cfg      *config.StructuredConfig
	out      io.Writer

	logger *logger.Logger
}

// NewApp builds the CLI runtime. The access token is written to out.
func NewApp(services *service.Services, cfg *config.StructuredConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.ExchangeService == nil {
		return nil, errors.New("exchange service is not configured")
	}
	if cfg == nil {
		return nil, errors.New("runtime config is not set")
	}

	return &App{services: services, cfg: cfg, out: out, logger: logger}, nil
}

// Run loads the integration file, exchanges it for an access token and
// prints the token followed by a newline. Failures are returned, not printed.
func (a *App) Run(ctx context.Context) error {
	integration, err := config.LoadIntegration(a.cfg.PayloadPath)
	if err != nil {
		return fmt.Errorf("load integration: %w", err)
	}

	token, err := a.services.ExchangeService.Exchange(ctx, integration)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(a.out, token); err != nil {
		return fmt.Errorf("write access token: %w", err)
	}

	a.logger.Debug().Msg("access token written")
	return nil
}
