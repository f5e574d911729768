package engine

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nuts-foundation/nuts-provider-registry/api"
	"github.com/nuts-foundation/nuts-provider-registry/client"
	"github.com/nuts-foundation/nuts-provider-registry/logging"
	"github.com/nuts-foundation/nuts-provider-registry/pkg"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/db"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/endpoints"
	"github.com/nuts-foundation/nuts-provider-registry/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrNotLoggedIn is returned by commands which act on behalf of a customer when no customer is stored.
var ErrNotLoggedIn = errors.New("no customer stored, please run login first")

var registryClientCreator = client.NewRegistryClient

// Engine describes the provider registry: its commands, config, lifecycle and HTTP routes.
type Engine struct {
	Cmd       *cobra.Command
	Config    *pkg.RegistryConfig
	FlagSet   *pflag.FlagSet
	Configure func() error
	Start     func() error
	Shutdown  func() error
	Routes    func(router api.EchoRouter)
}

// NewProviderEngine returns the engine definition for the provider registry
func NewProviderEngine() *Engine {
	e := newEngine(pkg.RegistryInstance())
	e.Cmd = cmd()
	e.FlagSet = flagSet()
	return e
}

// newEngine binds the lifecycle and routes to the given registry.
func newEngine(r *pkg.Registry) *Engine {
	return &Engine{
		Config:    &r.Config,
		Configure: r.Configure,
		Start:     r.Start,
		Shutdown:  r.Shutdown,
		Routes: func(router api.EchoRouter) {
			api.RegisterHandlers(router, &api.ApiWrapper{R: r, S: r})
		},
	}
}

func flagSet() *pflag.FlagSet {
	defaults := pkg.DefaultRegistryConfig()
	flagSet := pflag.NewFlagSet("providers", pflag.ContinueOnError)

	flagSet.String(pkg.ConfDataDir, defaults.Datadir, "Location of data files")
	flagSet.String(pkg.ConfMode, defaults.Mode, "server or client, when client it uses the HttpClient")
	flagSet.String(pkg.ConfAddress, defaults.Address, "Interface and port for http server to bind to")
	flagSet.String(pkg.ConfRootURL, "", "Root URL provider endpoints are composed with, defaults to http://{address}/api")
	flagSet.Int(pkg.ConfClientTimeout, defaults.ClientTimeout, "Time-out for the client in seconds (e.g. when using the CLI)")

	return flagSet
}

// configuredRegistry returns the registry instance holding the session, configured.
func configuredRegistry() (*pkg.Registry, error) {
	r := pkg.RegistryInstance()
	if err := r.Configure(); err != nil {
		return nil, err
	}
	return r, nil
}

// currentCustomer returns the customer stored in the session, or ErrNotLoggedIn.
func currentCustomer() (string, error) {
	r, err := configuredRegistry()
	if err != nil {
		return "", err
	}
	customerUUID := r.CurrentCustomer()
	if customerUUID == endpoints.MissingValue {
		return "", ErrNotLoggedIn
	}
	return customerUUID, nil
}

func parseProperties(args []string) (map[string]string, error) {
	properties := make(map[string]string, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid config entry, expected key=value: %s", arg)
		}
		properties[parts[0]] = parts[1]
	}
	return properties, nil
}

func printProviders(writer io.Writer, providers []db.Provider) {
	w := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "UUID\tCODE\tNAME")
	for _, p := range providers {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.UUID, p.Code, p.Name)
	}
	w.Flush()
}

func cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "providers",
		Short:        "provider registry commands",
		SilenceUsage: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "provider-types",
		Short: "List the provider types a provider can be registered with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			providerTypes, err := registryClientCreator().ProviderTypes()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME")
			for _, t := range providerTypes {
				fmt.Fprintf(w, "%s\t%s\n", t.Code, t.Name)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "login [customerUUID]",
		Short: "Store the customer subsequent commands act on behalf of",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := configuredRegistry()
			if err != nil {
				return err
			}
			if err := r.Login(args[0]); err != nil {
				return err
			}
			logging.Log().Infof("Logged in as customer %s", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Forget the stored customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := configuredRegistry()
			if err != nil {
				return err
			}
			return r.Logout()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "endpoint [providerUUID]",
		Short: "Print the REST endpoint of a provider of the stored customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := configuredRegistry()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.ProviderEndpoint(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "providers",
		Short: "List the providers of the stored customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			customerUUID, err := currentCustomer()
			if err != nil {
				return err
			}
			providers, err := registryClientCreator().ProvidersByCustomer(customerUUID)
			if err != nil {
				return err
			}
			printProviders(cmd.OutOrStdout(), providers)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "register-provider [code] [name] [key=value...]",
		Short: "Register a provider for the stored customer",
		Long: fmt.Sprintf("Register a provider for the stored customer. Code is one of: %s. "+
			"Additional key=value arguments are stored as provider config.", providerCodes()),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerUUID, err := currentCustomer()
			if err != nil {
				return err
			}
			config, err := parseProperties(args[2:])
			if err != nil {
				return err
			}
			provider, err := registryClientCreator().RegisterProvider(customerUUID, types.ProviderCode(args[0]), args[1], config)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), provider.UUID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove-provider [providerUUID]",
		Short: "Remove a provider of the stored customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerUUID, err := currentCustomer()
			if err != nil {
				return err
			}
			return registryClientCreator().RemoveProvider(customerUUID, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "properties",
		Short: "List all properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			properties, err := registryClientCreator().Properties()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tVALUE\tDESCRIPTION")
			for _, p := range properties {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Type, p.Value, p.Description)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "property [name]",
		Short: "Print the value of a single property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			property, err := registryClientCreator().Property(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), property.Value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add-property [name] [value] [description]",
		Short: "Add a config property, an existing property with the same name is left untouched",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var description string
			if len(args) == 3 {
				description = args[2]
			}
			added, err := registryClientCreator().AddConfigProperty(args[0], args[1], description)
			if err != nil {
				return err
			}
			if !added {
				logging.Log().Warnf("Property %s already present, skipped", args[0])
			}
			return nil
		},
	})

	cmd.AddCommand(serverCmd())

	return cmd
}

func providerCodes() string {
	var codes []string
	for _, t := range types.ProviderTypes() {
		codes = append(codes, t.Code.String())
	}
	return strings.Join(codes, ", ")
}
