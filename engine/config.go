package engine

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nuts-foundation/nuts-provider-registry/pkg"
	errors2 "github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of the environment variables overriding flags, e.g. NUTS_PROVIDERS_DATADIR.
const EnvPrefix = "NUTS_PROVIDERS_"

// EnvFile is loaded into the environment when present.
const EnvFile = ".env"

// EnvKey returns the name of the environment variable for the given flag.
func EnvKey(flagName string) string {
	return EnvPrefix + strings.ToUpper(flagName)
}

// LoadConfig fills the config from the flag set. Flags not given on the command line are taken from the
// environment, after loading the .env file in the working directory when it exists.
func LoadConfig(flags *pflag.FlagSet, config *pkg.RegistryConfig) error {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return errors2.Wrapf(err, "unable to load %s", EnvFile)
	}

	var err error
	flags.VisitAll(func(flag *pflag.Flag) {
		if err != nil || flag.Changed {
			return
		}
		if value, ok := os.LookupEnv(EnvKey(flag.Name)); ok {
			if setErr := flag.Value.Set(value); setErr != nil {
				err = errors2.Wrapf(setErr, "invalid value for %s", EnvKey(flag.Name))
			}
		}
	})
	if err != nil {
		return err
	}

	if config.Mode, err = flags.GetString(pkg.ConfMode); err != nil {
		return err
	}
	if config.Datadir, err = flags.GetString(pkg.ConfDataDir); err != nil {
		return err
	}
	if config.Address, err = flags.GetString(pkg.ConfAddress); err != nil {
		return err
	}
	if config.RootURL, err = flags.GetString(pkg.ConfRootURL); err != nil {
		return err
	}
	if config.ClientTimeout, err = flags.GetInt(pkg.ConfClientTimeout); err != nil {
		return err
	}
	if config.Mode != pkg.ServerMode && config.Mode != pkg.ClientMode {
		return errors2.Errorf("invalid %s: %s, expected %s or %s", pkg.ConfMode, config.Mode, pkg.ServerMode, pkg.ClientMode)
	}
	return nil
}
