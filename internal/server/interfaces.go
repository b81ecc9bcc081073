// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// Run serves requests until ctx is done or a transport fails, then shuts
	// every transport down.
	Run(ctx context.Context) error

	// RunServer is Run bound to SIGINT, SIGTERM and SIGQUIT.
	RunServer() error

	// Shutdown gracefully stops all transports.
	Shutdown()
}
