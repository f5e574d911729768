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
	"errors"
	"testing"

	"github.com/nuts-foundation/nuts-provider-registry/pkg/types"
	"github.com/nuts-foundation/nuts-provider-registry/test"
	"github.com/stretchr/testify/assert"
)

var customer1 = test.CustomerID("c1")
var customer2 = test.CustomerID("c2")

func TestNew(t *testing.T) {
	emptyDb := New()
	assert.Len(t, emptyDb.providers, 0)
}

func TestMemoryDb_RegisterProvider(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db := New()
		p, err := db.RegisterProvider(customer1, types.AWS, "Amazon prod", map[string]string{"region": "eu-west-1"})
		if !assert.NoError(t, err) {
			return
		}
		assert.NotEmpty(t, p.UUID)
		assert.Equal(t, customer1, p.CustomerUUID)
		assert.Equal(t, types.AWS, p.Code)
		assert.Len(t, db.providers, 1)
	})

	t.Run("unknown provider type", func(t *testing.T) {
		_, err := New().RegisterProvider(customer1, "azu", "Azure", nil)
		assert.True(t, errors.Is(err, ErrUnknownProviderType))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := New().RegisterProvider(customer1, types.GCP, "", nil)
		assert.True(t, errors.Is(err, ErrInvalidProvider))
	})

	t.Run("missing customer", func(t *testing.T) {
		_, err := New().RegisterProvider("", types.GCP, "Google", nil)
		assert.True(t, errors.Is(err, ErrInvalidProvider))
	})

	t.Run("config is copied", func(t *testing.T) {
		db := New()
		config := map[string]string{"region": "eu-west-1"}
		p, _ := db.RegisterProvider(customer1, types.AWS, "Amazon", config)
		config["region"] = "us-east-1"
		p.Config["region"] = "ap-south-1"
		stored, _ := db.ProviderByID(customer1, p.UUID)
		assert.Equal(t, "eu-west-1", stored.Config["region"])
	})
}

func TestMemoryDb_ProviderByID(t *testing.T) {
	db := New()
	p, _ := db.RegisterProvider(customer1, types.Docker, "Local", nil)

	t.Run("ok", func(t *testing.T) {
		result, err := db.ProviderByID(customer1, p.UUID)
		if assert.NoError(t, err) {
			assert.Equal(t, *p, *result)
		}
	})

	t.Run("other customer", func(t *testing.T) {
		_, err := db.ProviderByID(customer2, p.UUID)
		assert.Equal(t, ErrProviderNotFound, err)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := db.ProviderByID(customer1, test.ProviderID("unknown"))
		assert.Equal(t, ErrProviderNotFound, err)
	})
}

func TestMemoryDb_ProvidersByCustomer(t *testing.T) {
	db := New()
	db.RegisterProvider(customer1, types.GCP, "b", nil)
	db.RegisterProvider(customer1, types.AWS, "a", nil)
	db.RegisterProvider(customer2, types.Docker, "c", nil)

	t.Run("sorted by name", func(t *testing.T) {
		result := db.ProvidersByCustomer(customer1)
		if assert.Len(t, result, 2) {
			assert.Equal(t, "a", result[0].Name)
			assert.Equal(t, "b", result[1].Name)
		}
	})

	t.Run("unknown customer gives empty slice", func(t *testing.T) {
		result := db.ProvidersByCustomer(test.CustomerID("unknown"))
		assert.NotNil(t, result)
		assert.Len(t, result, 0)
	})
}

func TestMemoryDb_RemoveProvider(t *testing.T) {
	db := New()
	p, _ := db.RegisterProvider(customer1, types.AWS, "a", nil)

	t.Run("other customer", func(t *testing.T) {
		err := db.RemoveProvider(customer2, p.UUID)
		assert.Equal(t, ErrProviderNotFound, err)
		assert.Len(t, db.providers, 1)
	})

	t.Run("ok", func(t *testing.T) {
		err := db.RemoveProvider(customer1, p.UUID)
		assert.NoError(t, err)
		assert.Len(t, db.providers, 0)
	})

	t.Run("already removed", func(t *testing.T) {
		err := db.RemoveProvider(customer1, p.UUID)
		assert.Equal(t, ErrProviderNotFound, err)
	})
}

func TestMemoryDb_PutProvider(t *testing.T) {
	t.Run("restores removed provider", func(t *testing.T) {
		db := New()
		p, _ := db.RegisterProvider(customer1, types.Docker, "local", map[string]string{"socket": "/var/run/docker.sock"})
		db.RemoveProvider(customer1, p.UUID)

		if !assert.NoError(t, db.PutProvider(*p)) {
			return
		}
		restored, err := db.ProviderByID(customer1, p.UUID)
		if assert.NoError(t, err) {
			assert.Equal(t, *p, *restored)
		}
		assert.Equal(t, 1, db.Count())
	})

	t.Run("invalid uuid", func(t *testing.T) {
		err := New().PutProvider(Provider{UUID: "1", CustomerUUID: customer1, Code: types.AWS, Name: "a"})
		assert.True(t, errors.Is(err, ErrInvalidProvider))
	})

	t.Run("unknown code", func(t *testing.T) {
		err := New().PutProvider(Provider{UUID: test.ProviderID("1"), CustomerUUID: customer1, Code: "azu", Name: "a"})
		assert.True(t, errors.Is(err, ErrUnknownProviderType))
	})
}

func TestMemoryDb_Count(t *testing.T) {
	db := New()
	assert.Equal(t, 0, db.Count())
	db.RegisterProvider(customer1, types.AWS, "a", nil)
	db.RegisterProvider(customer2, types.GCP, "b", nil)
	assert.Equal(t, 2, db.Count())
}

func TestMemoryDb_LoadSave(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		repo := test.NewTestRepo(t)
		db := New()
		p, _ := db.RegisterProvider(customer1, types.AWS, "a", map[string]string{"key": "value"})
		if !assert.NoError(t, db.Save(repo.Directory)) {
			return
		}

		loaded := New()
		if !assert.NoError(t, loaded.Load(repo.Directory)) {
			return
		}
		result, err := loaded.ProviderByID(customer1, p.UUID)
		if assert.NoError(t, err) {
			assert.Equal(t, *p, *result)
		}
	})

	t.Run("missing file gives empty db", func(t *testing.T) {
		repo := test.NewTestRepo(t)
		db := New()
		assert.NoError(t, db.Load(repo.Directory))
		assert.Len(t, db.providers, 0)
	})

	t.Run("missing directory is created", func(t *testing.T) {
		repo := test.NewTestRepo(t)
		db := New()
		assert.NoError(t, db.Load(repo.Directory+"/nested/data"))
	})

	t.Run("invalid json", func(t *testing.T) {
		repo := test.NewTestRepo(t)
		repo.WriteFile(t, ProvidersFile, "{")
		assert.Error(t, New().Load(repo.Directory))
	})

	t.Run("unknown provider code", func(t *testing.T) {
		repo := test.NewTestRepo(t)
		repo.WriteFile(t, ProvidersFile, `[{"uuid":"`+test.ProviderID("p")+`","customerUUID":"c","code":"azu","name":"x"}]`)
		err := New().Load(repo.Directory)
		assert.True(t, errors.Is(err, ErrUnknownProviderType))
	})

	t.Run("invalid uuid", func(t *testing.T) {
		repo := test.NewTestRepo(t)
		repo.WriteFile(t, ProvidersFile, `[{"uuid":"p1","customerUUID":"c","code":"aws","name":"x"}]`)
		err := New().Load(repo.Directory)
		assert.True(t, errors.Is(err, ErrInvalidProvider))
	})
}
