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
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/nuts-provider-registry/logging"
	"github.com/nuts-foundation/nuts-provider-registry/pkg"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/db"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/types"
)

// ErrNoSession is returned by the endpoint route when the registry has no session.
var ErrNoSession = errors.New("registry has no session")

// ApiWrapper is needed to connect the implementation to the echo ServiceWrapper
type ApiWrapper struct {
	R pkg.RegistryClient
	S pkg.SessionClient
}

// ListProviderTypes is the Api implementation for listing the provider type table.
func (apiResource ApiWrapper) ListProviderTypes(ctx echo.Context) error {
	providerTypes, err := apiResource.R.ProviderTypes()
	if err != nil {
		return err
	}
	result := make([]ProviderType, len(providerTypes))
	for i, t := range providerTypes {
		result[i] = ProviderType{}.fromModel(t)
	}
	return ctx.JSON(http.StatusOK, result)
}

// ListProviders is the Api implementation for listing the providers of a customer.
func (apiResource ApiWrapper) ListProviders(ctx echo.Context, customerUUID string) error {
	if err := validUUID(customerUUID, "customerUUID"); err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}
	providers, err := apiResource.R.ProvidersByCustomer(customerUUID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, providersFromDb(providers))
}

// RegisterProvider is the Api implementation for registering a provider for a customer.
func (apiResource ApiWrapper) RegisterProvider(ctx echo.Context, customerUUID string) error {
	if err := validUUID(customerUUID, "customerUUID"); err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}
	request := ProviderRequest{}
	if err := unmarshalRequestBody(ctx, &request); err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}
	if err := request.validate(); err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}
	var config map[string]string
	if request.Config != nil {
		config = *request.Config
	}
	provider, err := apiResource.R.RegisterProvider(customerUUID, types.ProviderCode(request.Code), request.Name, config)
	if errors.Is(err, db.ErrUnknownProviderType) || errors.Is(err, db.ErrInvalidProvider) {
		return ctx.String(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, Provider{}.fromDb(*provider))
}

// GetProvider is the Api implementation for getting a provider of a customer. The response carries an ETag;
// a matching If-None-Match results in 304.
func (apiResource ApiWrapper) GetProvider(ctx echo.Context, customerUUID string, providerUUID string) error {
	provider, err := apiResource.R.ProviderByID(customerUUID, providerUUID)
	if errors.Is(err, db.ErrProviderNotFound) {
		return ctx.String(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}

	result := Provider{}.fromDb(*provider)
	tag, err := etag(result)
	if err != nil {
		return err
	}
	ctx.Response().Header().Set("ETag", tag)
	if etagMatches(ctx.Request().Header.Get("If-None-Match"), tag) {
		return ctx.NoContent(http.StatusNotModified)
	}
	return ctx.JSON(http.StatusOK, result)
}

// RemoveProvider is the Api implementation for removing a provider of a customer.
func (apiResource ApiWrapper) RemoveProvider(ctx echo.Context, customerUUID string, providerUUID string) error {
	err := apiResource.R.RemoveProvider(customerUUID, providerUUID)
	if errors.Is(err, db.ErrProviderNotFound) {
		return ctx.String(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListProperties is the Api implementation for listing all properties.
func (apiResource ApiWrapper) ListProperties(ctx echo.Context) error {
	properties, err := apiResource.R.Properties()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, propertiesFromDb(properties))
}

// GetProperty is the Api implementation for getting a single property.
func (apiResource ApiWrapper) GetProperty(ctx echo.Context, name string) error {
	property, err := apiResource.R.Property(name)
	if errors.Is(err, db.ErrPropertyNotFound) {
		return ctx.String(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Property{}.fromDb(*property))
}

// GetProviderEndpoint is the Api implementation for composing the endpoint of a provider of the customer stored in
// the session of the server. Without a stored customer the endpoint holds the placeholder.
func (apiResource ApiWrapper) GetProviderEndpoint(ctx echo.Context, providerUUID string) error {
	if apiResource.S == nil {
		return ctx.String(http.StatusNotFound, ErrNoSession.Error())
	}
	return ctx.JSON(http.StatusOK, ProviderEndpoint{
		CustomerUUID: apiResource.S.CurrentCustomer(),
		Endpoint:     apiResource.S.ProviderEndpoint(providerUUID),
	})
}

// AddConfigProperty is the Api implementation for adding a config property. Responds 201 when it's added and 204
// when a property with the same name was already present.
func (apiResource ApiWrapper) AddConfigProperty(ctx echo.Context) error {
	request := PropertyRequest{}
	if err := unmarshalRequestBody(ctx, &request); err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}
	if err := request.validate(); err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}
	var description string
	if request.Description != nil {
		description = *request.Description
	}
	added, err := apiResource.R.AddConfigProperty(request.Name, request.Value, description)
	if errors.Is(err, db.ErrInvalidProperty) {
		return ctx.String(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}
	if !added {
		logging.Log().Debugf("Property %s not added, already present", request.Name)
		return ctx.NoContent(http.StatusNoContent)
	}
	return ctx.NoContent(http.StatusCreated)
}

func unmarshalRequestBody(ctx echo.Context, target interface{}) error {
	if bodyAsBytes, err := ioutil.ReadAll(ctx.Request().Body); err != nil {
		return err
	} else if err := json.Unmarshal(bodyAsBytes, target); err != nil {
		return err
	}
	return nil
}
