// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the transport servers of the auth service.
//
// It owns HTTP and gRPC listener lifecycles, including startup, signal
// handling and graceful shutdown of all enabled transports.
package server
