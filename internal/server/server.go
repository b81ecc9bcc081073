// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/yuhu-campus/internal/config"
	"github.com/MKhiriev/yuhu-campus/internal/handler"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

// NewServer binds the listeners of every configured transport.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	var err error
	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		if servers.httpServer, err = newHTTPServer(handlers.HTTP.Init(), cfg, logger); err != nil {
			return nil, err
		}
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		if servers.gRPCServer, err = newGRPCServer(handlers.GRPC, cfg, logger); err != nil {
			servers.Shutdown()
			return nil, err
		}
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.Addr()).Msg("Launching HTTP server")
		go func() { errCh <- s.httpServer.RunServer() }()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.Addr()).Msg("Launching GRPC server")
		go func() { errCh <- s.gRPCServer.RunServer() }()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
		if err != nil {
			s.logger.Err(err).Msg("server stopped unexpectedly")
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}
