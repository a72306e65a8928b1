// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-ims-exchange/models"
)

// LoadIntegration reads and decodes the integration JSON file at path.
//
// Returns [ErrIntegrationFileNotFound] (wrapped) when the file does not
// exist and [ErrIntegrationFileMalformed] (wrapped) when it cannot be decoded.
// Field presence is not checked here.
func LoadIntegration(path string) (models.IntegrationConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.IntegrationConfig{}, fmt.Errorf("%w: %s", ErrIntegrationFileNotFound, path)
		}
		return models.IntegrationConfig{}, fmt.Errorf("error reading integration file: %w", err)
	}
	defer file.Close()

	var cfg models.IntegrationConfig
	if err = json.NewDecoder(file).Decode(&cfg); err != nil {
		return models.IntegrationConfig{}, fmt.Errorf("%w: %w", ErrIntegrationFileMalformed, err)
	}

	return cfg, nil
}
