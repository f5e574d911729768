package pkg

import (
	"github.com/nuts-foundation/nuts-provider-registry/pkg/db"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/types"
)

// ProviderClient defines the operations on the providers of a customer.
type ProviderClient interface {
	// ProviderTypes returns the provider types a provider can be registered with.
	ProviderTypes() ([]types.ProviderType, error)
	// ProvidersByCustomer returns all providers of the customer, ordered by name.
	ProvidersByCustomer(customerUUID string) ([]db.Provider, error)
	// ProviderByID returns the provider of the customer or db.ErrProviderNotFound.
	ProviderByID(customerUUID string, providerUUID string) (*db.Provider, error)
	// RegisterProvider registers a new provider for the customer and returns it.
	RegisterProvider(customerUUID string, code types.ProviderCode, name string, config map[string]string) (*db.Provider, error)
	// RemoveProvider removes the provider of the customer.
	RemoveProvider(customerUUID string, providerUUID string) error
}

// PropertyClient defines the operations on the configuration properties.
type PropertyClient interface {
	// Properties returns all properties ordered by name.
	Properties() ([]db.Property, error)
	// Property returns the property with the given name or db.ErrPropertyNotFound.
	Property(name string) (*db.Property, error)
	// AddConfigProperty adds a config property unless one with the same name exists, in which case false is returned.
	AddConfigProperty(name string, value string, description string) (bool, error)
}

// RegistryClient is the interface of the registry, implemented by the local Registry and the HttpClient.
type RegistryClient interface {
	ProviderClient
	PropertyClient
}

// SessionClient exposes the customer stored in the session of the registry.
type SessionClient interface {
	// CurrentCustomer returns the stored customer or endpoints.MissingValue.
	CurrentCustomer() string
	// ProviderEndpoint returns the REST endpoint of a provider of the stored customer.
	ProviderEndpoint(providerUUID string) string
}
