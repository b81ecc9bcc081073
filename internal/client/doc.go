// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns the process lifecycle of the terminal client: the UI runs until
// the user quits or the process receives a termination signal.
package client
