// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/deployconf/cmd/deployconf/cli"
	"github.com/bureau-foundation/deployconf/lib/deploydoc"
	"github.com/bureau-foundation/deployconf/lib/resolve"
)

// validateCommand returns the "validate" subcommand.
func validateCommand() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Summary: "Validate a deployment document's structure",
		Description: `Validate a deployment document: the JSONC or YAML must be
well-formed, environment and region entries must be mappings,
declared region names must be canonical full names from the region
table, and "_"-prefixed component keys must be recognized behavior
flags.

This is a purely structural check — it does not judge whether any
component resolves. Use "deployconf check" for that.`,
		Usage: "deployconf validate <file>",
		Examples: []cli.Example{
			{
				Description: "Validate a document before committing it",
				Command:     "deployconf validate deploy.jsonc",
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: deployconf validate <file>")
			}

			path := args[0]
			document, err := deploydoc.ReadFile(path)
			if err != nil {
				return err
			}

			issues := resolve.Lint(document)
			if len(issues) > 0 {
				for _, issue := range issues {
					fmt.Fprintf(os.Stderr, "  - %s\n", issue)
				}
				return fmt.Errorf("%s: %d validation issue(s) found", path, len(issues))
			}

			fmt.Fprintf(os.Stdout, "%s: valid\n", path)
			return nil
		},
	}
}
