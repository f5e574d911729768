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

	"github.com/nuts-foundation/nuts-provider-registry/test"
	"github.com/stretchr/testify/assert"
)

func TestValidateLocation(t *testing.T) {
	t.Run("empty location", func(t *testing.T) {
		err := validateLocation("")
		assert.True(t, errors.Is(err, ErrInvalidLocation))
	})

	t.Run("location is a file", func(t *testing.T) {
		repo := test.NewTestRepo(t)
		file := repo.WriteFile(t, "file", "")
		err := validateLocation(file)
		assert.True(t, errors.Is(err, ErrInvalidLocation))
	})

	t.Run("with trailing slash", func(t *testing.T) {
		repo := test.NewTestRepo(t)
		assert.NoError(t, validateLocation(repo.Directory+"/"))
	})
}

func TestReadFile(t *testing.T) {
	repo := test.NewTestRepo(t)

	t.Run("ok", func(t *testing.T) {
		repo.WriteFile(t, "providers.json", "[]")
		data, err := ReadFile(repo.Directory, "providers.json")
		if assert.NoError(t, err) {
			assert.Equal(t, "[]", string(data))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		data, err := ReadFile(repo.Directory, "missing.json")
		assert.NoError(t, err)
		assert.Nil(t, data)
	})
}

func TestWriteFile(t *testing.T) {
	repo := test.NewTestRepo(t)
	if assert.NoError(t, WriteFile(repo.Directory, "a.json", []byte("1"))) {
		assert.NoError(t, WriteFile(repo.Directory, "a.json", []byte("2")))
		assert.Equal(t, "2", repo.ReadFile(t, "a.json"))
	}
}
