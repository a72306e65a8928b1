package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-ims-exchange/internal/client"
	"github.com/MKhiriev/go-ims-exchange/internal/config"
	"github.com/MKhiriev/go-ims-exchange/internal/logger"
	"github.com/MKhiriev/go-ims-exchange/internal/service"
	"github.com/MKhiriev/go-ims-exchange/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewLogger("ims-exchange", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services := service.NewServices(cfg, log)

	app, err := client.NewApp(services, cfg, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init exchange app error")
	}

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("jwt exchange failed")
	}
}
