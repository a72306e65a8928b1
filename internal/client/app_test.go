package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ims-exchange/internal/config"
	"github.com/MKhiriev/go-ims-exchange/internal/logger"
	"github.com/MKhiriev/go-ims-exchange/internal/service"
	"github.com/MKhiriev/go-ims-exchange/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExchangeService struct {
	got   models.IntegrationConfig
	token string
	err   error
}

func (s *stubExchangeService) Exchange(_ context.Context, cfg models.IntegrationConfig) (string, error) {
	s.got = cfg
	return s.token, s.err
}

func writeIntegration(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "integration.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func newTestApp(t *testing.T, stub *stubExchangeService, payload string, out *bytes.Buffer) *App {
	t.Helper()
	cfg := &config.StructuredConfig{PayloadPath: payload}
	app, err := NewApp(&service.Services{ExchangeService: stub}, cfg, out, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(&service.Services{}, &config.StructuredConfig{}, &bytes.Buffer{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.Services{ExchangeService: &stubExchangeService{}}, nil, &bytes.Buffer{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_PrintsToken(t *testing.T) {
	stub := &stubExchangeService{token: "xyz"}
	payload := writeIntegration(t, `{"integration":{"org":"ORG","imsEndpoint":"ims-na1.example.com"}}`)
	var out bytes.Buffer

	err := newTestApp(t, stub, payload, &out).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "xyz\n", out.String())
	assert.Equal(t, "ORG", stub.got.Integration.Org)
	assert.Equal(t, "ims-na1.example.com", stub.got.Integration.IMSEndpoint)
}

func TestApp_Run_FileNotFound(t *testing.T) {
	var out bytes.Buffer

	err := newTestApp(t, &stubExchangeService{}, filepath.Join(t.TempDir(), "nope.json"), &out).Run(context.Background())

	assert.ErrorIs(t, err, config.ErrIntegrationFileNotFound)
	assert.Empty(t, out.String())
}

func TestApp_Run_MalformedFile(t *testing.T) {
	var out bytes.Buffer

	err := newTestApp(t, &stubExchangeService{}, writeIntegration(t, `{ nope`), &out).Run(context.Background())

	assert.ErrorIs(t, err, config.ErrIntegrationFileMalformed)
	assert.Empty(t, out.String())
}

func TestApp_Run_ExchangeError(t *testing.T) {
	stub := &stubExchangeService{err: errors.New("rejected")}
	var out bytes.Buffer

	err := newTestApp(t, stub, writeIntegration(t, `{}`), &out).Run(context.Background())

	assert.EqualError(t, err, "rejected")
	assert.Empty(t, out.String())
}
