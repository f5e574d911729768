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

package cmd

import (
	"os"

	"github.com/nuts-foundation/nuts-provider-registry/engine"
	"github.com/nuts-foundation/nuts-provider-registry/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command: the engine commands, the version command and the engine flags.
func NewRootCmd() *cobra.Command {
	e := engine.NewProviderEngine()

	rootCmd := e.Cmd
	rootCmd.Use = "nuts-provider-registry"
	rootCmd.Short = "The Nuts provider registry"
	rootCmd.Long = "The Nuts provider registry, containing the infrastructure providers of customers and their REST endpoints"
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().AddFlagSet(e.FlagSet)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return engine.LoadConfig(cmd.Flags(), e.Config)
	}
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits with a non-zero code on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logging.Log().Error(err)
		os.Exit(1)
	}
}
