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

	"github.com/nuts-foundation/nuts-provider-registry/logging"
	errors2 "github.com/pkg/errors"
)

// MemoryPropertyStore keeps all properties in memory, indexed by name.
type MemoryPropertyStore struct {
	mutex      sync.RWMutex
	properties map[string]Property
}

// NewPropertyStore creates an empty MemoryPropertyStore
func NewPropertyStore() *MemoryPropertyStore {
	return &MemoryPropertyStore{properties: make(map[string]Property)}
}

func (p Property) validate() error {
	if p.Name == "" {
		return errors2.Wrap(ErrInvalidProperty, "missing name")
	}
	if p.Value == "" {
		return errors2.Wrapf(ErrInvalidProperty, "missing value (name=%s)", p.Name)
	}
	if p.Type != ConfigProperty && p.Type != SystemProperty {
		return errors2.Wrapf(ErrInvalidProperty, "unknown type %q (name=%s)", p.Type, p.Name)
	}
	return nil
}

// AddConfigProperty adds an externally specified property. These aren't updated by the system; an existing
// property with the same name is never overwritten.
func (s *MemoryPropertyStore) AddConfigProperty(name string, value string, description string) (bool, error) {
	property := Property{Name: name, Type: ConfigProperty, Value: value, Description: description}
	if err := property.validate(); err != nil {
		return false, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, exists := s.properties[name]; exists {
		logging.Log().Warnf("Property %s already present, skipping.", name)
		return false, nil
	}
	s.properties[name] = property
	return true, nil
}

// SetSystemProperty adds or replaces a system maintained property.
func (s *MemoryPropertyStore) SetSystemProperty(name string, value string, description string) error {
	property := Property{Name: name, Type: SystemProperty, Value: value, Description: description}
	if err := property.validate(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if current, exists := s.properties[name]; exists && current.Type == ConfigProperty {
		return errors2.Wrapf(ErrInvalidProperty, "%s is a config property", name)
	}
	s.properties[name] = property
	return nil
}

// Property returns the property with the given name or ErrPropertyNotFound.
func (s *MemoryPropertyStore) Property(name string) (*Property, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	property, ok := s.properties[name]
	if !ok {
		return nil, ErrPropertyNotFound
	}
	return &property, nil
}

// Properties returns all properties ordered by name.
func (s *MemoryPropertyStore) Properties() []Property {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make([]Property, 0, len(s.properties))
	for _, p := range s.properties {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// RemoveProperty removes the property with the given name or returns ErrPropertyNotFound.
func (s *MemoryPropertyStore) RemoveProperty(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.properties[name]; !ok {
		return ErrPropertyNotFound
	}
	delete(s.properties, name)
	return nil
}

// Load replaces the contents of the store with the properties file in the given location.
func (s *MemoryPropertyStore) Load(location string) error {
	if err := validateLocation(location); err != nil {
		return err
	}
	data, err := ReadFile(location, PropertiesFile)
	if err != nil {
		return err
	}

	var properties []Property
	if len(data) > 0 {
		if err := json.Unmarshal(data, &properties); err != nil {
			return errors2.Wrapf(err, "unable to parse %s", PropertiesFile)
		}
	}

	index := make(map[string]Property, len(properties))
	for _, p := range properties {
		if err := p.validate(); err != nil {
			return errors2.Wrap(err, PropertiesFile)
		}
		index[p.Name] = p
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.properties = index
	return nil
}

// Save writes all properties to the properties file in the given location.
func (s *MemoryPropertyStore) Save(location string) error {
	if err := validateLocation(location); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Properties(), "", "  ")
	if err != nil {
		return err
	}
	return WriteFile(location, PropertiesFile, data)
}
