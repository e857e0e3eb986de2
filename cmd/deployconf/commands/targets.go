// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/deployconf/cmd/deployconf/cli"
	"github.com/bureau-foundation/deployconf/lib/deploydoc"
	"github.com/bureau-foundation/deployconf/lib/resolve"
)

type targetsParams struct {
	component  string
	outputJSON bool
}

func (p *targetsParams) flags() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("targets", pflag.ContinueOnError)
	flagSet.StringVar(&p.component, "component", "", "list targets for a single component")
	flagSet.BoolVar(&p.outputJSON, "json", false, "output as a JSON array")
	return flagSet
}

// targetsCommand returns the "targets" subcommand.
func targetsCommand() *cli.Command {
	var params targetsParams

	return &cli.Command{
		Name:    "targets",
		Summary: "List every resolvable env[-region] target",
		Description: `List the target identifiers that resolve without unresolved
required fields, one per line: the bare environment name where the
environment level resolves, and env-shortcode entries for each valid
region. The output feeds directly into "deployconf resolve --target"
or a pipeline's deployment matrix.`,
		Usage: "deployconf targets [flags] <file>",
		Examples: []cli.Example{
			{
				Description: "Build a deployment matrix for the db component",
				Command:     "deployconf targets --component db deploy.jsonc",
			},
		},
		Flags: params.flags,
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: deployconf targets [flags] <file>")
			}

			document, err := deploydoc.ReadFile(args[0])
			if err != nil {
				return err
			}

			targets := resolve.CheckAvailability(document, params.component).Targets()

			if params.outputJSON {
				return cli.WriteJSON(os.Stdout, targets)
			}
			for _, target := range targets {
				fmt.Println(target)
			}
			return nil
		},
	}
}
