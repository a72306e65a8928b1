package service

import (
	"github.com/MKhiriev/go-ims-exchange/internal/adapter"
	"github.com/MKhiriev/go-ims-exchange/internal/config"
	"github.com/MKhiriev/go-ims-exchange/internal/logger"
	"github.com/MKhiriev/go-ims-exchange/internal/validators"
)

type Services struct {
	ExchangeService ExchangeService
}

// NewServices wires the production validator and the HTTP exchanger using
// the runtime configuration.
func NewServices(cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewIntegrationValidator(cfg.App.TokenDuration)
	newExchanger := func(host string) (adapter.TokenExchanger, error) {
		return adapter.NewIMSExchanger(host, cfg.Adapter, logger)
	}

	return &Services{
		ExchangeService: NewExchangeService(validator, newExchanger, logger),
	}
}
