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
	"errors"

	"github.com/google/uuid"
)

func (r ProviderRequest) validate() error {
	if err := nonEmptyString(r.Code, "code"); err != nil {
		return err
	}
	if err := nonEmptyString(r.Name, "name"); err != nil {
		return err
	}
	return nil
}

func (r PropertyRequest) validate() error {
	if err := nonEmptyString(r.Name, "name"); err != nil {
		return err
	}
	if err := nonEmptyString(r.Value, "value"); err != nil {
		return err
	}
	return nil
}

func validUUID(value string, name string) error {
	if _, err := uuid.Parse(value); err != nil {
		return errors.New("invalid " + name + ": " + value)
	}
	return nil
}

func nonEmptyString(value string, name string) error {
	if len(value) == 0 {
		return errors.New("missing " + name)
	}
	return nil
}
