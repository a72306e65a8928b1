// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line runtime of the exchange tool.
//
// It loads the integration file named by the runtime configuration, runs a
// single token exchange and writes the access token to the configured output.
package client
