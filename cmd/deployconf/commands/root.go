// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the deployconf CLI command tree.
package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/bureau-foundation/deployconf/cmd/deployconf/cli"
)

// Root builds and returns the complete deployconf command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "deployconf",
		Description: `deployconf: hierarchical deployment-configuration resolution.

Resolve a deployment document (defaults, environment, and region
override levels) into one concrete configuration for a target, or
scan every environment and region for component availability.`,
		Subcommands: []*cli.Command{
			resolveCommand(),
			checkCommand(),
			targetsCommand(),
			validateCommand(),
			regionsCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("deployconf %s\n", buildVersion())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Resolve the dev environment in us-west-2",
				Command:     "deployconf resolve --target dev-usw2 deploy.jsonc",
			},
			{
				Description: "Check where the db component can deploy",
				Command:     "deployconf check --component db deploy.jsonc",
			},
			{
				Description: "List every resolvable target",
				Command:     "deployconf targets deploy.jsonc",
			},
		},
	}
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
