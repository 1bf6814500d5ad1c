// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// bcrypt accepts costs in [4, 31]; zero selects its default.
const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the merged [StructuredConfig] is usable by the server.
// Zero values are accepted where a default applies downstream.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "", "sqlite3", "pgx":
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.App.SessionDuration < 0 || cfg.App.APITokenDuration < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidAppConfigs)
	}

	cost := cfg.App.PasswordHashCost
	if cost != 0 && (cost < minPasswordHashCost || cost > maxPasswordHashCost) {
		return fmt.Errorf("%w: password hash cost %d is out of range", ErrInvalidAppConfigs, cost)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.TokenRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
