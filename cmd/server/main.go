// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"time"

	"github.com/MKhiriev/yuhu-campus/internal/config"
	"github.com/MKhiriev/yuhu-campus/internal/handler"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/server"
	"github.com/MKhiriev/yuhu-campus/internal/service"
	"github.com/MKhiriev/yuhu-campus/internal/store"
	"github.com/MKhiriev/yuhu-campus/internal/telemetry"
	"github.com/MKhiriev/yuhu-campus/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const telemetryFlushTimeout = 5 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("yuhu-server")
	log.Info().Strs("build", buildInfo.Lines()).Msg("starting server")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up telemetry")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Err(err).Msg("telemetry shutdown")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("close storages")
		}
	}()

	services, err := service.NewServices(ctx, storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}
