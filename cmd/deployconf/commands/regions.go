// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bureau-foundation/deployconf/cmd/deployconf/cli"
	"github.com/bureau-foundation/deployconf/lib/regioncode"
)

// regionsCommand returns the "regions" subcommand.
func regionsCommand() *cli.Command {
	return &cli.Command{
		Name:    "regions",
		Summary: "List the known region codes and names",
		Description: `List the static region table: every short code and the canonical
full name it maps to. Documents declare regions by full name; target
shorthands may use either form.`,
		Usage: "deployconf regions",
		Run: func(args []string) error {
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "CODE\tREGION\n")
			for _, code := range regioncode.ShortCodes() {
				fmt.Fprintf(tw, "%s\t%s\n", code, regioncode.ToFullName(code))
			}
			return tw.Flush()
		},
	}
}
