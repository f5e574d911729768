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
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nuts-foundation/nuts-provider-registry/logging"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/db"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/endpoints"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/session"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/types"
	errors2 "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type constError string

func (err constError) Error() string {
	return string(err)
}

const (
	// ErrNotConfigured is returned when the registry is used before Configure() was called.
	ErrNotConfigured = constError("registry is not configured, please call Configure()")
	// ErrInvalidCustomerID is returned when logging in with an identifier which isn't a UUID.
	ErrInvalidCustomerID = constError("invalid customer id")
)

// ConfDataDir is the config name for specifiying the data location of the requiredFiles
const ConfDataDir = "datadir"

// ConfMode is the config name for the engine mode, server or client
const ConfMode = "mode"

// ConfAddress is the config name for the http server/client address
const ConfAddress = "address"

// ConfRootURL is the config name for the root URL provider endpoints are composed with
const ConfRootURL = "rootURL"

// ConfClientTimeout is the time-out for the client in seconds (e.g. when using the CLI).
const ConfClientTimeout = "clientTimeout"

// ServerMode runs the registry locally, ClientMode talks to a remote registry over HTTP.
const (
	ServerMode = "server"
	ClientMode = "client"
)

// ProviderCountProperty is the system property holding the number of registered providers.
const ProviderCountProperty = "providerCount"

// ModuleName == ProviderRegistry
const ModuleName = "ProviderRegistry"

// RegistryConfig holds the config
type RegistryConfig struct {
	Mode          string
	Datadir       string
	Address       string
	RootURL       string
	ClientTimeout int
}

// DefaultRegistryConfig returns the config used when nothing is configured.
func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{
		Mode:          ServerMode,
		Datadir:       "./data",
		Address:       "localhost:1323",
		ClientTimeout: 10,
	}
}

// GetRootURL returns the configured root URL or the one derived from the address.
func (c RegistryConfig) GetRootURL() string {
	if c.RootURL != "" {
		return c.RootURL
	}
	return "http://" + c.Address + "/api"
}

// GetClientTimeout returns the client timeout as duration.
func (c RegistryConfig) GetClientTimeout() time.Duration {
	return time.Duration(c.ClientTimeout) * time.Second
}

// Registry holds the config and Db reference
type Registry struct {
	Config     RegistryConfig
	Db         db.Db
	PropertyDb db.PropertyStore
	Session    *session.Store
	OnChange   func(registry *Registry)
	configOnce sync.Once
	configErr  error
	mutex      sync.Mutex
	_logger    *logrus.Entry
}

var instance *Registry
var oneRegistry sync.Once

// RegistryInstance returns the singleton Registry
func RegistryInstance() *Registry {
	if instance != nil {
		return instance
	}
	oneRegistry.Do(func() {
		instance = NewRegistryInstance(DefaultRegistryConfig())
	})

	return instance
}

// NewRegistryInstance creates a registry which still needs to be configured.
func NewRegistryInstance(config RegistryConfig) *Registry {
	return &Registry{
		Config:     config,
		Db:         db.New(),
		PropertyDb: db.NewPropertyStore(),
		_logger:    logging.Log(),
	}
}

// Configure loads the data directory and opens the session, but only once.
func (r *Registry) Configure() error {
	r.configOnce.Do(func() {
		r.logger().Debugf("Loading data from %s", r.Config.Datadir)
		if err := r.Db.Load(r.Config.Datadir); err != nil {
			r.configErr = errors2.Wrap(err, "unable to load providers")
			return
		}
		if err := r.PropertyDb.Load(r.Config.Datadir); err != nil {
			r.configErr = errors2.Wrap(err, "unable to load properties")
			return
		}
		s, err := session.Open(r.Config.Datadir)
		if err != nil {
			r.configErr = err
			return
		}
		r.Session = s
		r.updateProviderCount()
	})
	return r.configErr
}

// Start initiates the routine for picking up session changes made by other processes
func (r *Registry) Start() error {
	if r.Session == nil {
		return ErrNotConfigured
	}
	return r.Session.Watch()
}

// Shutdown cleans up any leftover go routines
func (r *Registry) Shutdown() error {
	if r.Session == nil {
		return nil
	}
	r.logger().Debug("Stopping session watcher")
	return r.Session.Close()
}

func (r *Registry) logger() *logrus.Entry {
	if r._logger == nil {
		r._logger = logging.Log()
	}
	return r._logger
}

// ProviderTypes returns the provider type table
func (r *Registry) ProviderTypes() ([]types.ProviderType, error) {
	return types.ProviderTypes(), nil
}

// ProvidersByCustomer returns all providers of a customer
func (r *Registry) ProvidersByCustomer(customerUUID string) ([]db.Provider, error) {
	r.logger().Debugf("ProvidersByCustomer called (customer: %s)", customerUUID)
	return r.Db.ProvidersByCustomer(customerUUID), nil
}

// ProviderByID returns a single provider of a customer
func (r *Registry) ProviderByID(customerUUID string, providerUUID string) (*db.Provider, error) {
	r.logger().Debugf("ProviderByID called (customer: %s, provider: %s)", customerUUID, providerUUID)
	return r.Db.ProviderByID(customerUUID, providerUUID)
}

// RegisterProvider registers a provider and persists the providers
func (r *Registry) RegisterProvider(customerUUID string, code types.ProviderCode, name string, config map[string]string) (*db.Provider, error) {
	r.logger().Infof("Registering provider, customer=%s, code=%s, name=%s", customerUUID, code, name)
	r.mutex.Lock()
	defer r.mutex.Unlock()

	provider, err := r.Db.RegisterProvider(customerUUID, code, name, config)
	if err != nil {
		return nil, err
	}
	if err := r.Db.Save(r.Config.Datadir); err != nil {
		if rbErr := r.Db.RemoveProvider(customerUUID, provider.UUID); rbErr != nil {
			r.logger().Errorf("Unable to roll back registration of provider %s: %v", provider.UUID, rbErr)
		}
		return nil, errors2.Wrap(err, "unable to save providers")
	}
	r.providersChanged()
	return provider, nil
}

// RemoveProvider removes a provider and persists the providers
func (r *Registry) RemoveProvider(customerUUID string, providerUUID string) error {
	r.logger().Infof("Removing provider, customer=%s, provider=%s", customerUUID, providerUUID)
	r.mutex.Lock()
	defer r.mutex.Unlock()

	provider, err := r.Db.ProviderByID(customerUUID, providerUUID)
	if err != nil {
		return err
	}
	if err := r.Db.RemoveProvider(customerUUID, providerUUID); err != nil {
		return err
	}
	if err := r.Db.Save(r.Config.Datadir); err != nil {
		if rbErr := r.Db.PutProvider(*provider); rbErr != nil {
			r.logger().Errorf("Unable to roll back removal of provider %s: %v", providerUUID, rbErr)
		}
		return errors2.Wrap(err, "unable to save providers")
	}
	r.providersChanged()
	return nil
}

// must be called with the mutex held
func (r *Registry) providersChanged() {
	if r.updateProviderCount() {
		if err := r.PropertyDb.Save(r.Config.Datadir); err != nil {
			r.logger().Warnf("Unable to save %s: %v", ProviderCountProperty, err)
		}
	}
	r.changed()
}

// updateProviderCount sets the ProviderCountProperty system property, returning whether it was set.
func (r *Registry) updateProviderCount() bool {
	count := strconv.Itoa(r.Db.Count())
	if err := r.PropertyDb.SetSystemProperty(ProviderCountProperty, count, "Number of registered providers"); err != nil {
		r.logger().Warnf("Unable to update %s: %v", ProviderCountProperty, err)
		return false
	}
	return true
}

// Properties returns all properties
func (r *Registry) Properties() ([]db.Property, error) {
	return r.PropertyDb.Properties(), nil
}

// Property returns a single property or db.ErrPropertyNotFound
func (r *Registry) Property(name string) (*db.Property, error) {
	return r.PropertyDb.Property(name)
}

// AddConfigProperty adds a config property and persists the properties
func (r *Registry) AddConfigProperty(name string, value string, description string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	added, err := r.PropertyDb.AddConfigProperty(name, value, description)
	if err != nil || !added {
		return added, err
	}
	if err := r.PropertyDb.Save(r.Config.Datadir); err != nil {
		if rbErr := r.PropertyDb.RemoveProperty(name); rbErr != nil {
			r.logger().Errorf("Unable to roll back config property %s: %v", name, rbErr)
		}
		return false, errors2.Wrap(err, "unable to save properties")
	}
	r.logger().Infof("Added config property %s", name)
	r.changed()
	return true, nil
}

// Login stores the customer the client acts on behalf of.
func (r *Registry) Login(customerUUID string) error {
	if r.Session == nil {
		return ErrNotConfigured
	}
	if _, err := uuid.Parse(customerUUID); err != nil {
		return errors2.Wrapf(ErrInvalidCustomerID, "%s: %v", customerUUID, err)
	}
	return r.Session.Set(endpoints.CustomerIDKey, customerUUID)
}

// Logout forgets the current customer.
func (r *Registry) Logout() error {
	if r.Session == nil {
		return ErrNotConfigured
	}
	return r.Session.Remove(endpoints.CustomerIDKey)
}

// CurrentCustomer returns the customer stored in the session, or endpoints.MissingValue.
func (r *Registry) CurrentCustomer() string {
	if r.Session == nil {
		return endpoints.MissingValue
	}
	return endpoints.CustomerID(r.Session)
}

// ProviderEndpoint returns the REST endpoint of a provider of the current customer.
func (r *Registry) ProviderEndpoint(providerUUID string) string {
	return endpoints.ProviderEndpoint(r.Config.GetRootURL(), r.CurrentCustomer(), providerUUID)
}

func (r *Registry) changed() {
	if r.OnChange != nil {
		r.OnChange(r)
	}
}
