package client

import (
	"github.com/nuts-foundation/nuts-provider-registry/api"
	"github.com/nuts-foundation/nuts-provider-registry/logging"
	"github.com/nuts-foundation/nuts-provider-registry/pkg"
)

// NewRegistryClient creates a new Local- or RemoteClient for the provider registry
func NewRegistryClient() pkg.RegistryClient {
	registry := pkg.RegistryInstance()

	if registry.Config.Mode == pkg.ServerMode {
		if err := registry.Configure(); err != nil {
			logging.Log().Panic(err)
		}

		return registry
	}
	return api.HttpClient{
		ServerAddress: registry.Config.Address,
		Timeout:       registry.Config.GetClientTimeout(),
	}
}
