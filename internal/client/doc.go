// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the lost-and-found
// service.
//
// Each subcommand maps to one call of [adapter.ServerAdapter] and prints the
// server's answer as indented JSON.
package client
