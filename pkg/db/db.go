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

package db

import (
	"github.com/nuts-foundation/nuts-provider-registry/pkg/types"
)

type constError string

func (err constError) Error() string {
	return string(err)
}

const (
	// ErrProviderNotFound is returned when a provider doesn't exist or is owned by another customer.
	ErrProviderNotFound = constError("provider not found")
	// ErrUnknownProviderType is returned when a provider code is not in the provider type table.
	ErrUnknownProviderType = constError("unknown provider type")
	// ErrInvalidProvider is returned when a provider is missing required fields.
	ErrInvalidProvider = constError("invalid provider")
	// ErrInvalidProperty is returned when a property is missing required fields.
	ErrInvalidProperty = constError("invalid property")
	// ErrPropertyNotFound is returned when a property doesn't exist.
	ErrPropertyNotFound = constError("property not found")
)

// ProvidersFile is the name of the file in the data directory holding the providers.
const ProvidersFile = "providers.json"

// PropertiesFile is the name of the file in the data directory holding the properties.
const PropertiesFile = "properties.json"

// Provider defines a provider instance configured by a customer.
type Provider struct {
	UUID         string             `json:"uuid"`
	CustomerUUID string             `json:"customerUUID"`
	Code         types.ProviderCode `json:"code"`
	Name         string             `json:"name"`
	Config       map[string]string  `json:"config,omitempty"`
}

// PropertyType defines whether a property is maintained externally or by the system.
type PropertyType string

const (
	// ConfigProperty is an externally specified configuration property, e.g. supported machine types.
	ConfigProperty PropertyType = "Config"
	// SystemProperty is maintained by the system, e.g. stats on instance provision time.
	SystemProperty PropertyType = "System"
)

// Property is a name-value pair holding configuration data.
type Property struct {
	Name        string       `json:"name"`
	Type        PropertyType `json:"type"`
	Value       string       `json:"value"`
	Description string       `json:"description,omitempty"`
}

// Db stores the providers of all customers.
type Db interface {
	RegisterProvider(customerUUID string, code types.ProviderCode, name string, config map[string]string) (*Provider, error)
	ProviderByID(customerUUID string, providerUUID string) (*Provider, error)
	ProvidersByCustomer(customerUUID string) []Provider
	RemoveProvider(customerUUID string, providerUUID string) error
	// PutProvider stores the provider as-is, keeping its UUID. Used to restore a removed provider.
	PutProvider(provider Provider) error
	// Count returns the number of providers of all customers.
	Count() int
	Load(location string) error
	Save(location string) error
}

// PropertyStore stores the properties.
type PropertyStore interface {
	// AddConfigProperty adds a config property. When a property with the same name exists, it's left untouched and
	// false is returned.
	AddConfigProperty(name string, value string, description string) (bool, error)
	SetSystemProperty(name string, value string, description string) error
	Property(name string) (*Property, error)
	Properties() []Property
	RemoveProperty(name string) error
	Load(location string) error
	Save(location string) error
}
