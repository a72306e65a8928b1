// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "strings"

// ConfigurationError reports every required configuration path that was
// absent or empty. Missing keeps the check order.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "the following configuration elements are missing: " + strings.Join(e.Missing, ", ")
}
