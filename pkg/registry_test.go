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
	"errors"
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/nuts-foundation/nuts-provider-registry/pkg/db"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/endpoints"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/types"
	"github.com/nuts-foundation/nuts-provider-registry/test"
	"github.com/stretchr/testify/assert"
)

var customerID = test.CustomerID("1")

func TestRegistry_Instance(t *testing.T) {
	NewTestRegistryInstance(test.NewTestRepo(t).Directory)
	registry1 := RegistryInstance()
	registry2 := RegistryInstance()
	assert.Same(t, registry1, registry2)
}

func TestRegistryConfig(t *testing.T) {
	t.Run("root URL derived from address", func(t *testing.T) {
		config := DefaultRegistryConfig()
		assert.Equal(t, "http://localhost:1323/api", config.GetRootURL())
	})

	t.Run("explicit root URL", func(t *testing.T) {
		config := DefaultRegistryConfig()
		config.RootURL = "https://yw.example.com/api"
		assert.Equal(t, "https://yw.example.com/api", config.GetRootURL())
	})

	t.Run("client timeout", func(t *testing.T) {
		assert.Equal(t, 10*time.Second, DefaultRegistryConfig().GetClientTimeout())
	})
}

func TestRegistry_Configure(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		registry := NewRegistryInstance(NewTestRegistryConfig(test.NewTestRepo(t).Directory))
		assert.NoError(t, registry.Configure())
		assert.NotNil(t, registry.Session)
	})

	t.Run("invalid providers file", func(t *testing.T) {
		repo := test.NewTestRepo(t)
		repo.WriteFile(t, "registry/"+db.ProvidersFile, "{")
		registry := NewRegistryInstance(NewTestRegistryConfig(repo.Directory))
		assert.Error(t, registry.Configure())
		// error is remembered
		assert.Error(t, registry.Configure())
	})

	t.Run("invalid datadir", func(t *testing.T) {
		repo := test.NewTestRepo(t)
		file := repo.WriteFile(t, "file", "")
		config := DefaultRegistryConfig()
		config.Datadir = file
		registry := NewRegistryInstance(config)
		err := registry.Configure()
		assert.True(t, errors.Is(err, db.ErrInvalidLocation))
	})
}

func TestRegistry_StartShutdown(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		registry := NewRegistryInstance(DefaultRegistryConfig())
		assert.Equal(t, ErrNotConfigured, registry.Start())
		assert.NoError(t, registry.Shutdown())
	})

	t.Run("ok", func(t *testing.T) {
		registry := NewTestRegistryInstance(test.NewTestRepo(t).Directory)
		if assert.NoError(t, registry.Start()) {
			assert.NoError(t, registry.Shutdown())
		}
	})
}

func TestRegistry_Providers(t *testing.T) {
	repo := test.NewTestRepo(t)
	registry := NewTestRegistryInstance(repo.Directory)
	changes := 0
	registry.OnChange = func(*Registry) {
		changes++
	}

	var registered *db.Provider
	t.Run("register", func(t *testing.T) {
		p, err := registry.RegisterProvider(customerID, types.GCP, "Google", map[string]string{"project": "yw"})
		if !assert.NoError(t, err) {
			return
		}
		registered = p
		assert.Equal(t, 1, changes)
	})

	t.Run("register with unknown code", func(t *testing.T) {
		_, err := registry.RegisterProvider(customerID, "azu", "Azure", nil)
		assert.True(t, errors.Is(err, db.ErrUnknownProviderType))
		assert.Equal(t, 1, changes)
	})

	t.Run("persisted", func(t *testing.T) {
		reloaded := NewRegistryInstance(registry.Config)
		if !assert.NoError(t, reloaded.Configure()) {
			return
		}
		providers, err := reloaded.ProvidersByCustomer(customerID)
		if assert.NoError(t, err) && assert.Len(t, providers, 1) {
			assert.Equal(t, registered.UUID, providers[0].UUID)
		}
	})

	t.Run("by id", func(t *testing.T) {
		p, err := registry.ProviderByID(customerID, registered.UUID)
		if assert.NoError(t, err) {
			assert.Equal(t, "Google", p.Name)
		}
	})

	t.Run("remove", func(t *testing.T) {
		assert.NoError(t, registry.RemoveProvider(customerID, registered.UUID))
		assert.Equal(t, db.ErrProviderNotFound, registry.RemoveProvider(customerID, registered.UUID))
		assert.Equal(t, 2, changes)
	})

	t.Run("provider types", func(t *testing.T) {
		result, err := registry.ProviderTypes()
		assert.NoError(t, err)
		assert.Equal(t, types.ProviderTypes(), result)
	})
}

func TestRegistry_AddConfigProperty(t *testing.T) {
	repo := test.NewTestRepo(t)
	registry := NewTestRegistryInstance(repo.Directory)

	added, err := registry.AddConfigProperty("ybVersion", "1.0", "stable release")
	assert.NoError(t, err)
	assert.True(t, added)

	added, err = registry.AddConfigProperty("ybVersion", "2.0", "")
	assert.NoError(t, err)
	assert.False(t, added)

	reloaded := NewRegistryInstance(registry.Config)
	if assert.NoError(t, reloaded.Configure()) {
		property, err := reloaded.Property("ybVersion")
		if assert.NoError(t, err) {
			assert.Equal(t, "1.0", property.Value)
			assert.Equal(t, db.ConfigProperty, property.Type)
		}
		_, err = reloaded.Property("unknown")
		assert.Equal(t, db.ErrPropertyNotFound, err)
	}
}

func TestRegistry_ProviderCount(t *testing.T) {
	repo := test.NewTestRepo(t)
	registry := NewTestRegistryInstance(repo.Directory)

	count := func(r *Registry) string {
		property, err := r.Property(ProviderCountProperty)
		if !assert.NoError(t, err) {
			return ""
		}
		assert.Equal(t, db.SystemProperty, property.Type)
		return property.Value
	}

	assert.Equal(t, "0", count(registry))
	p, _ := registry.RegisterProvider(customerID, types.AWS, "a", nil)
	registry.RegisterProvider(test.CustomerID("2"), types.GCP, "b", nil)
	assert.Equal(t, "2", count(registry))
	registry.RemoveProvider(customerID, p.UUID)
	assert.Equal(t, "1", count(registry))

	reloaded := NewRegistryInstance(registry.Config)
	if assert.NoError(t, reloaded.Configure()) {
		assert.Equal(t, "1", count(reloaded))
	}
}

// breakDatadir replaces the data directory by a file, so saving fails until the returned func restores it.
func breakDatadir(t *testing.T, datadir string) func() {
	backup := datadir + ".bak"
	if err := os.Rename(datadir, backup); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(datadir, []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
	return func() {
		if err := os.Remove(datadir); err != nil {
			t.Fatal(err)
		}
		if err := os.Rename(backup, datadir); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRegistry_FailedSave(t *testing.T) {
	t.Run("register provider is rolled back", func(t *testing.T) {
		registry := NewTestRegistryInstance(test.NewTestRepo(t).Directory)
		restore := breakDatadir(t, registry.Config.Datadir)

		_, err := registry.RegisterProvider(customerID, types.AWS, "a", nil)
		restore()

		assert.True(t, errors.Is(err, db.ErrInvalidLocation))
		providers, _ := registry.ProvidersByCustomer(customerID)
		assert.Empty(t, providers)
	})

	t.Run("remove provider is rolled back", func(t *testing.T) {
		registry := NewTestRegistryInstance(test.NewTestRepo(t).Directory)
		p, err := registry.RegisterProvider(customerID, types.AWS, "a", map[string]string{"region": "eu"})
		if !assert.NoError(t, err) {
			return
		}
		restore := breakDatadir(t, registry.Config.Datadir)

		err = registry.RemoveProvider(customerID, p.UUID)
		restore()

		assert.Error(t, err)
		kept, err := registry.ProviderByID(customerID, p.UUID)
		if assert.NoError(t, err) {
			assert.Equal(t, *p, *kept)
		}
		// retry succeeds and is persisted
		assert.NoError(t, registry.RemoveProvider(customerID, p.UUID))
		reloaded := NewRegistryInstance(registry.Config)
		if assert.NoError(t, reloaded.Configure()) {
			providers, _ := reloaded.ProvidersByCustomer(customerID)
			assert.Empty(t, providers)
		}
	})

	t.Run("add config property is rolled back", func(t *testing.T) {
		registry := NewTestRegistryInstance(test.NewTestRepo(t).Directory)
		restore := breakDatadir(t, registry.Config.Datadir)

		added, err := registry.AddConfigProperty("ybVersion", "1.0", "")
		restore()

		assert.Error(t, err)
		assert.False(t, added)
		_, err = registry.Property("ybVersion")
		assert.Equal(t, db.ErrPropertyNotFound, err)

		// retry adds the property instead of skipping it
		added, err = registry.AddConfigProperty("ybVersion", "1.0", "")
		assert.NoError(t, err)
		assert.True(t, added)
		reloaded := NewRegistryInstance(registry.Config)
		if assert.NoError(t, reloaded.Configure()) {
			_, err := reloaded.Property("ybVersion")
			assert.NoError(t, err)
		}
	})
}

func TestRegistry_ProviderEndpoint(t *testing.T) {
	repo := test.NewTestRepo(t)
	registry := NewTestRegistryInstance(repo.Directory)
	providerID := test.ProviderID("1")

	t.Run("not logged in", func(t *testing.T) {
		assert.Equal(t, "http://localhost/api/customers/null/providers/"+providerID, registry.ProviderEndpoint(providerID))
	})

	t.Run("logged in", func(t *testing.T) {
		if !assert.NoError(t, registry.Login(customerID)) {
			return
		}
		assert.Equal(t, "http://localhost/api/customers/"+customerID+"/providers/"+providerID, registry.ProviderEndpoint(providerID))
	})

	t.Run("logged out", func(t *testing.T) {
		assert.NoError(t, registry.Logout())
		assert.Equal(t, endpoints.MissingValue, registry.CurrentCustomer())
	})

	t.Run("invalid customer id", func(t *testing.T) {
		err := registry.Login("not-a-uuid")
		assert.True(t, errors.Is(err, ErrInvalidCustomerID))
	})

	t.Run("not configured", func(t *testing.T) {
		r := NewRegistryInstance(DefaultRegistryConfig())
		assert.Equal(t, ErrNotConfigured, r.Login(customerID))
		assert.Equal(t, ErrNotConfigured, r.Logout())
		assert.Equal(t, endpoints.MissingValue, r.CurrentCustomer())
	})
}
