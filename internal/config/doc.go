// Package config provides configuration loading, merging, and validation
// facilities for the exchange CLI.
//
// Runtime settings are assembled from multiple sources in the following
// priority order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. Built-in defaults
//
// The integration file itself (credentials, private key, metascopes) is read
// by [LoadIntegration]; its contents are validated by the validators package.
package config
