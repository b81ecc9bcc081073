// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/yuhu-campus/internal/adapter"
	"github.com/MKhiriev/yuhu-campus/internal/client"
	"github.com/MKhiriev/yuhu-campus/internal/config"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/service"
	"github.com/MKhiriev/yuhu-campus/internal/store"
	"github.com/MKhiriev/yuhu-campus/internal/tui"
	"github.com/MKhiriev/yuhu-campus/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	log := logger.NewClientLogger("yuhu-client", cfg.App.LogFile)
	logger.SetLevel(cfg.App.LogLevel)
	log.Info().Strs("build", buildInfo.Lines()).Msg("starting client")

	if err = run(context.Background(), cfg, buildInfo, log); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create client storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close client storages")
		}
	}()

	verifier, err := adapter.NewVerifier(cfg, log)
	if err != nil {
		return fmt.Errorf("create credential verifier: %w", err)
	}
	remote, _ := verifier.(adapter.RemoteVerifier)

	services := service.NewClientServices(verifier, storages, log)
	ui := tui.New(services.SessionStore, remote, buildInfo, log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}
