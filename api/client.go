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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nuts-foundation/nuts-provider-registry/logging"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/db"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/endpoints"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/types"
	errors2 "github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// HttpClient holds the server address and other basic settings for the http client
type HttpClient struct {
	ServerAddress string
	Timeout       time.Duration
	customClient  *http.Client
}

// ResponseError is returned when the registry responds with an unexpected status code.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e ResponseError) Error() string {
	return fmt.Sprintf("registry returned %d, reason: %s", e.StatusCode, e.Body)
}

func (hb HttpClient) client() *http.Client {
	if hb.customClient != nil {
		return hb.customClient
	}
	return http.DefaultClient
}

// rootURL returns the root URL all endpoints are composed with
func (hb HttpClient) rootURL() string {
	address := strings.TrimSuffix(hb.ServerAddress, "/")
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}
	return address + "/api"
}

// do executes the request and returns the body and status code when the response has one of the expected status codes.
func (hb HttpClient) do(method string, requestURL string, body interface{}, expectedStatus ...int) ([]byte, int, error) {
	timeout := hb.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		bodyReader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := hb.client().Do(req)
	if err != nil {
		logging.Log().Errorf("error while calling registry (%s %s): %v", method, requestURL, err)
		return nil, 0, err
	}
	defer res.Body.Close()

	responseBody, err := ioutil.ReadAll(res.Body)
	if err != nil {
		logging.Log().Errorf("error while reading response body: %v", err)
		return nil, 0, err
	}

	for _, status := range expectedStatus {
		if res.StatusCode == status {
			return responseBody, res.StatusCode, nil
		}
	}
	err = ResponseError{StatusCode: res.StatusCode, Body: string(responseBody)}
	logging.Log().Error(err.Error())
	return nil, 0, err
}

func (hb HttpClient) doProvider(method string, customerUUID string, providerUUID string, expectedStatus int) ([]byte, error) {
	providerURL := endpoints.ProviderEndpoint(hb.rootURL(), customerUUID, providerUUID)
	data, _, err := hb.do(method, providerURL, nil, expectedStatus)
	var responseErr ResponseError
	if errors2.As(err, &responseErr) && responseErr.StatusCode == http.StatusNotFound {
		return nil, errors2.Wrapf(db.ErrProviderNotFound, "customer=%s, provider=%s", customerUUID, providerUUID)
	}
	return data, err
}

// ProviderTypes is the client Api implementation for getting the provider type table
func (hb HttpClient) ProviderTypes() ([]types.ProviderType, error) {
	data, _, err := hb.do(http.MethodGet, hb.rootURL()+"/provider-types", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var providerTypes []ProviderType
	if err := json.Unmarshal(data, &providerTypes); err != nil {
		logging.Log().Error("could not unmarshal response body")
		return nil, err
	}
	result := make([]types.ProviderType, len(providerTypes))
	for i, t := range providerTypes {
		result[i] = t.toModel()
	}
	return result, nil
}

// ProvidersByCustomer is the client Api implementation for listing the providers of a customer
func (hb HttpClient) ProvidersByCustomer(customerUUID string) ([]db.Provider, error) {
	data, _, err := hb.do(http.MethodGet, endpoints.ProvidersEndpoint(hb.rootURL(), customerUUID), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var providers []Provider
	if err := json.Unmarshal(data, &providers); err != nil {
		logging.Log().Error("could not unmarshal response body")
		return nil, err
	}
	return providersToDb(providers), nil
}

// ProviderByID is the client Api implementation for getting a provider of a customer
func (hb HttpClient) ProviderByID(customerUUID string, providerUUID string) (*db.Provider, error) {
	data, err := hb.doProvider(http.MethodGet, customerUUID, providerUUID, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var provider Provider
	if err := json.Unmarshal(data, &provider); err != nil {
		logging.Log().Error("could not unmarshal response body")
		return nil, err
	}
	result := provider.toDb()
	return &result, nil
}

// RegisterProvider is the client Api implementation for registering a provider for a customer
func (hb HttpClient) RegisterProvider(customerUUID string, code types.ProviderCode, name string, config map[string]string) (*db.Provider, error) {
	request := RegisterProviderJSONRequestBody{Code: code.String(), Name: name}
	if len(config) > 0 {
		request.Config = &config
	}
	data, _, err := hb.do(http.MethodPost, endpoints.ProvidersEndpoint(hb.rootURL(), customerUUID), request, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	var provider Provider
	if err := json.Unmarshal(data, &provider); err != nil {
		logging.Log().Error("could not unmarshal response body")
		return nil, err
	}
	result := provider.toDb()
	return &result, nil
}

// RemoveProvider is the client Api implementation for removing a provider of a customer
func (hb HttpClient) RemoveProvider(customerUUID string, providerUUID string) error {
	_, err := hb.doProvider(http.MethodDelete, customerUUID, providerUUID, http.StatusNoContent)
	return err
}

// Properties is the client Api implementation for listing all properties
func (hb HttpClient) Properties() ([]db.Property, error) {
	data, _, err := hb.do(http.MethodGet, hb.rootURL()+"/properties", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var properties []Property
	if err := json.Unmarshal(data, &properties); err != nil {
		logging.Log().Error("could not unmarshal response body")
		return nil, err
	}
	result := make([]db.Property, len(properties))
	for i, p := range properties {
		result[i] = p.toDb()
	}
	return result, nil
}

// Property is the client Api implementation for getting a single property
func (hb HttpClient) Property(name string) (*db.Property, error) {
	data, _, err := hb.do(http.MethodGet, hb.rootURL()+"/properties/"+url.PathEscape(name), nil, http.StatusOK)
	var responseErr ResponseError
	if errors2.As(err, &responseErr) && responseErr.StatusCode == http.StatusNotFound {
		return nil, errors2.Wrapf(db.ErrPropertyNotFound, "name=%s", name)
	}
	if err != nil {
		return nil, err
	}
	var property Property
	if err := json.Unmarshal(data, &property); err != nil {
		logging.Log().Error("could not unmarshal response body")
		return nil, err
	}
	result := property.toDb()
	return &result, nil
}

// AddConfigProperty is the client Api implementation for adding a config property
func (hb HttpClient) AddConfigProperty(name string, value string, description string) (bool, error) {
	request := AddConfigPropertyJSONRequestBody{Name: name, Value: value}
	if description != "" {
		request.Description = &description
	}
	_, status, err := hb.do(http.MethodPost, hb.rootURL()+"/properties", request, http.StatusCreated, http.StatusNoContent)
	if err != nil {
		return false, err
	}
	return status == http.StatusCreated, nil
}
