package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/nuts-foundation/nuts-provider-registry/engine"
	"github.com/nuts-foundation/nuts-provider-registry/logging"
	"github.com/spf13/pflag"
)

const optionsFile = "README_options.rst"

func main() {
	if err := ioutil.WriteFile(optionsFile, []byte(configOptions(engine.NewProviderEngine().FlagSet)), 0644); err != nil {
		logging.Log().Fatal(err)
	}
}

// configOptions renders the flags as an rst table, including the environment variable of each flag.
func configOptions(flags *pflag.FlagSet) string {
	var rows [][3]string
	flags.VisitAll(func(flag *pflag.Flag) {
		rows = append(rows, [3]string{flag.Name, engine.EnvKey(flag.Name), fmt.Sprintf("%s (default: %q)", flag.Usage, flag.DefValue)})
	})

	headers := [3]string{"Key", "Environment", "Description"}
	widths := [3]int{}
	for _, row := range append(rows, headers) {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(row [3]string) string {
		var cells []string
		for i, cell := range row {
			cells = append(cells, cell+strings.Repeat(" ", widths[i]-len(cell)))
		}
		return strings.TrimRight(strings.Join(cells, "  "), " ") + "\n"
	}
	border := line([3]string{strings.Repeat("=", widths[0]), strings.Repeat("=", widths[1]), strings.Repeat("=", widths[2])})

	var sb strings.Builder
	sb.WriteString(".. table:: Provider registry config options\n    :widths: 20 30 50\n    :class: options-table\n\n")
	sb.WriteString(border)
	sb.WriteString(line(headers))
	sb.WriteString(border)
	for _, row := range rows {
		sb.WriteString(line(row))
	}
	sb.WriteString(border)
	return sb.String()
}
