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
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/types"
	errors2 "github.com/pkg/errors"
)

// MemoryDb keeps all providers in memory, indexed by UUID. It's persisted as a whole to the data directory.
type MemoryDb struct {
	mutex     sync.RWMutex
	providers map[string]Provider
}

// New creates an empty MemoryDb
func New() *MemoryDb {
	return &MemoryDb{providers: make(map[string]Provider)}
}

func (p Provider) validate() error {
	if !p.Code.IsValid() {
		return errors2.Wrapf(ErrUnknownProviderType, "code=%s", p.Code)
	}
	if p.Name == "" {
		return errors2.Wrap(ErrInvalidProvider, "missing name")
	}
	if p.CustomerUUID == "" {
		return errors2.Wrap(ErrInvalidProvider, "missing customer")
	}
	return nil
}

func (p Provider) copy() Provider {
	if p.Config != nil {
		config := make(map[string]string, len(p.Config))
		for k, v := range p.Config {
			config[k] = v
		}
		p.Config = config
	}
	return p
}

// RegisterProvider adds a provider for the given customer and assigns it a new UUID.
func (db *MemoryDb) RegisterProvider(customerUUID string, code types.ProviderCode, name string, config map[string]string) (*Provider, error) {
	provider := Provider{
		UUID:         uuid.New().String(),
		CustomerUUID: customerUUID,
		Code:         code,
		Name:         name,
		Config:       config,
	}.copy()
	if err := provider.validate(); err != nil {
		return nil, err
	}

	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.providers[provider.UUID] = provider

	result := provider.copy()
	return &result, nil
}

// ProviderByID returns the provider or ErrProviderNotFound when it doesn't exist for the given customer.
func (db *MemoryDb) ProviderByID(customerUUID string, providerUUID string) (*Provider, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	provider, ok := db.providers[providerUUID]
	if !ok || provider.CustomerUUID != customerUUID {
		return nil, ErrProviderNotFound
	}
	result := provider.copy()
	return &result, nil
}

// ProvidersByCustomer returns the providers of a customer ordered by name.
func (db *MemoryDb) ProvidersByCustomer(customerUUID string) []Provider {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	result := make([]Provider, 0)
	for _, p := range db.providers {
		if p.CustomerUUID == customerUUID {
			result = append(result, p.copy())
		}
	}
	sortProviders(result)
	return result
}

// RemoveProvider removes a provider of a customer.
func (db *MemoryDb) RemoveProvider(customerUUID string, providerUUID string) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	provider, ok := db.providers[providerUUID]
	if !ok || provider.CustomerUUID != customerUUID {
		return ErrProviderNotFound
	}
	delete(db.providers, providerUUID)
	return nil
}

// PutProvider adds or replaces the provider under its own UUID.
func (db *MemoryDb) PutProvider(provider Provider) error {
	if _, err := uuid.Parse(provider.UUID); err != nil {
		return errors2.Wrapf(ErrInvalidProvider, "invalid uuid %q", provider.UUID)
	}
	if err := provider.validate(); err != nil {
		return err
	}

	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.providers[provider.UUID] = provider.copy()
	return nil
}

// Count returns the number of providers of all customers.
func (db *MemoryDb) Count() int {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return len(db.providers)
}

// Load replaces the contents of the db with the providers file in the given location.
func (db *MemoryDb) Load(location string) error {
	if err := validateLocation(location); err != nil {
		return err
	}
	data, err := ReadFile(location, ProvidersFile)
	if err != nil {
		return err
	}

	var providers []Provider
	if len(data) > 0 {
		if err := json.Unmarshal(data, &providers); err != nil {
			return errors2.Wrapf(err, "unable to parse %s", ProvidersFile)
		}
	}

	index := make(map[string]Provider, len(providers))
	for _, p := range providers {
		if _, err := uuid.Parse(p.UUID); err != nil {
			return errors2.Wrapf(ErrInvalidProvider, "%s: invalid uuid %q", ProvidersFile, p.UUID)
		}
		if err := p.validate(); err != nil {
			return errors2.Wrapf(err, "%s: provider %s", ProvidersFile, p.UUID)
		}
		index[p.UUID] = p
	}

	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.providers = index
	return nil
}

// Save writes all providers to the providers file in the given location.
func (db *MemoryDb) Save(location string) error {
	if err := validateLocation(location); err != nil {
		return err
	}

	db.mutex.RLock()
	providers := make([]Provider, 0, len(db.providers))
	for _, p := range db.providers {
		providers = append(providers, p)
	}
	db.mutex.RUnlock()

	sortProviders(providers)
	data, err := json.MarshalIndent(providers, "", "  ")
	if err != nil {
		return err
	}
	return WriteFile(location, ProvidersFile, data)
}

func sortProviders(providers []Provider) {
	sort.Slice(providers, func(i, j int) bool {
		if providers[i].Name != providers[j].Name {
			return providers[i].Name < providers[j].Name
		}
		return providers[i].UUID < providers[j].UUID
	})
}
