// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the gRPC side of the auth server: the standard
// grpc.health.v1 service and the interceptors shared by every method.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/yuhu-campus/internal/logger"
)

// ServiceName is the health-check name reported for the auth API.
const ServiceName = "yuhu.auth"

// Handler is the root gRPC transport handler.
//
// Health starts as NOT_SERVING for both the overall server and
// [ServiceName]; the server flips it with SetServing once storage is ready.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		health: h,
		logger: logger,
	}
}

// Register attaches every service of the handler to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Health returns the health service implementation.
func (h *Handler) Health() healthpb.HealthServer {
	return h.health
}

// SetServing reports the server as SERVING or NOT_SERVING.
func (h *Handler) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(ServiceName, st)
}

// Shutdown marks every service NOT_SERVING and ends active watches.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLoggingInterceptor logs method, status code and duration of every
// unary call, and attaches the logger to the call context.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(h.logger.WithContext(ctx), req)

	event := h.logger.Info()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
