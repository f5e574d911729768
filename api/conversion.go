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

package api

import (
	"github.com/nuts-foundation/nuts-provider-registry/pkg/db"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/types"
)

func (p Provider) fromDb(provider db.Provider) Provider {
	p.Uuid = provider.UUID
	p.CustomerUUID = provider.CustomerUUID
	p.Code = provider.Code.String()
	p.Name = provider.Name
	if len(provider.Config) > 0 {
		config := provider.Config
		p.Config = &config
	}
	return p
}

func (p Provider) toDb() db.Provider {
	provider := db.Provider{
		UUID:         p.Uuid,
		CustomerUUID: p.CustomerUUID,
		Code:         types.ProviderCode(p.Code),
		Name:         p.Name,
	}
	if p.Config != nil {
		provider.Config = *p.Config
	}
	return provider
}

func providersFromDb(providers []db.Provider) []Provider {
	result := make([]Provider, len(providers))
	for i, p := range providers {
		result[i] = Provider{}.fromDb(p)
	}
	return result
}

func providersToDb(providers []Provider) []db.Provider {
	result := make([]db.Provider, len(providers))
	for i, p := range providers {
		result[i] = p.toDb()
	}
	return result
}

func (p ProviderType) fromModel(providerType types.ProviderType) ProviderType {
	p.Code = providerType.Code.String()
	p.Name = providerType.Name
	return p
}

func (p ProviderType) toModel() types.ProviderType {
	return types.ProviderType{Code: types.ProviderCode(p.Code), Name: p.Name}
}

func (p Property) fromDb(property db.Property) Property {
	p.Name = property.Name
	p.Type = string(property.Type)
	p.Value = property.Value
	if property.Description != "" {
		description := property.Description
		p.Description = &description
	}
	return p
}

func (p Property) toDb() db.Property {
	property := db.Property{
		Name:  p.Name,
		Type:  db.PropertyType(p.Type),
		Value: p.Value,
	}
	if p.Description != nil {
		property.Description = *p.Description
	}
	return property
}

func propertiesFromDb(properties []db.Property) []Property {
	result := make([]Property, len(properties))
	for i, p := range properties {
		result[i] = Property{}.fromDb(p)
	}
	return result
}
