package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.PayloadPath = "integration.json"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"no payload", func(c *StructuredConfig) { c.PayloadPath = "" }, ErrNoPayload},
		{"version without payload", func(c *StructuredConfig) { c.PayloadPath = ""; c.ShowVersion = true }, nil},
		{"negative timeout", func(c *StructuredConfig) { c.Adapter.RequestTimeout = -time.Second }, ErrInvalidAdapterConfigs},
		{"zero token duration", func(c *StructuredConfig) { c.App.TokenDuration = 0 }, ErrInvalidAppConfigs},
		{"unknown log level", func(c *StructuredConfig) { c.App.LogLevel = "loud" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
