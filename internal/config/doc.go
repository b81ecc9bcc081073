// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges, and validates configuration for the yuhu
// client and auth server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetServerConfig] and [GetClientConfig], each
// projecting the merged [StructuredConfig] onto the fields its binary uses.
package config
