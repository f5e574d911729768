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
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/nuts-foundation/nuts-provider-registry/logging"
	errors2 "github.com/pkg/errors"
)

// ErrInvalidLocation is returned when the data directory can't be used.
var ErrInvalidLocation = constError("invalid data directory")

// validateLocation makes sure the data directory exists, creating it when missing.
func validateLocation(location string) error {
	if location == "" {
		return ErrInvalidLocation
	}
	sLocation := sanitizeLocation(location)

	info, err := os.Stat(sLocation)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(sLocation, os.ModePerm); err != nil {
			return errors2.Wrapf(ErrInvalidLocation, "unable to create %s: %v", sLocation, err)
		}
		return nil
	}
	if err != nil {
		return errors2.Wrapf(ErrInvalidLocation, "%s: %v", sLocation, err)
	}
	if !info.IsDir() {
		return errors2.Wrapf(ErrInvalidLocation, "%s is not a directory", sLocation)
	}
	return nil
}

// ReadFile reads a file relative to datadir. A missing file returns nil data and no error.
func ReadFile(location string, file string) ([]byte, error) {
	finalLocation := fmt.Sprintf("%s/%s", sanitizeLocation(location), file)
	logging.Log().Debugf("Reading file from %s", finalLocation)

	data, err := ioutil.ReadFile(finalLocation)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

// WriteFile replaces a file relative to datadir. The data is written to a temporary file first, so readers never
// see a partially written file.
func WriteFile(location string, file string, data []byte) error {
	sLocation := sanitizeLocation(location)
	finalLocation := filepath.Join(sLocation, file)
	logging.Log().Debugf("Writing file to %s", finalLocation)

	tmp, err := ioutil.TempFile(sLocation, file+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), finalLocation)
}

func sanitizeLocation(dirty string) string {
	iLast := len(dirty) - 1
	if iLast > 0 && dirty[iLast:] == "/" {
		return dirty[:iLast]
	}
	return dirty
}
