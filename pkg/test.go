/*
 * Nuts provider registry
 * Copyright (C) 2020. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package pkg

import (
	"path"

	"github.com/nuts-foundation/nuts-provider-registry/logging"
)

// NewTestRegistryInstance creates a configured registry storing its data in the given directory and makes it the
// singleton instance.
func NewTestRegistryInstance(testDirectory string) *Registry {
	newInstance := NewRegistryInstance(NewTestRegistryConfig(testDirectory))
	if err := newInstance.Configure(); err != nil {
		logging.Log().Fatal(err)
	}
	instance = newInstance
	return newInstance
}

// NewTestRegistryConfig returns the default config with the data directory set inside the given directory.
func NewTestRegistryConfig(testDirectory string) RegistryConfig {
	config := DefaultRegistryConfig()
	config.Datadir = path.Join(testDirectory, "registry")
	config.RootURL = "http://localhost/api"
	return config
}
