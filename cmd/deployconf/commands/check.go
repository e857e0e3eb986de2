// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/deployconf/cmd/deployconf/cli"
	"github.com/bureau-foundation/deployconf/lib/deploydoc"
	"github.com/bureau-foundation/deployconf/lib/resolve"
)

var (
	availableStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	unavailableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type checkParams struct {
	component  string
	outputJSON bool
}

func (p *checkParams) flags() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
	flagSet.StringVar(&p.component, "component", "", "check a single component (default: all discovered components)")
	flagSet.BoolVar(&p.outputJSON, "json", false, "output the report as JSON")
	return flagSet
}

// checkCommand returns the "check" subcommand.
func checkCommand() *cli.Command {
	var params checkParams

	return &cli.Command{
		Name:    "check",
		Summary: "Report component availability across environments and regions",
		Description: `Scan every declared environment and region and report whether a
component (or every discovered component) resolves without leaving a
required field unset. A missing component is reported per
environment, never an error.

Each invalid entry carries a machine-readable reason:
"component_not_found" when no level defines the component, or
"null_value_at_<path>" naming the first unresolved required field.
Valid entries carry the target identifier to feed back into
"deployconf resolve --target".

Exits 1 when no environment is available for the query.`,
		Usage: "deployconf check [flags] <file>",
		Examples: []cli.Example{
			{
				Description: "Check one component everywhere",
				Command:     "deployconf check --component db deploy.jsonc",
			},
			{
				Description: "Full availability report as JSON",
				Command:     "deployconf check --json deploy.jsonc",
			},
		},
		Flags: params.flags,
		Run: func(args []string) error {
			return runCheck(&params, args)
		},
	}
}

func runCheck(params *checkParams, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: deployconf check [flags] <file>")
	}

	document, err := deploydoc.ReadFile(args[0])
	if err != nil {
		return err
	}

	report := resolve.CheckAvailability(document, params.component)

	if params.outputJSON {
		if err := cli.WriteJSON(os.Stdout, report); err != nil {
			return err
		}
		return checkExitCode(report)
	}

	printReport(report)
	return checkExitCode(report)
}

// checkExitCode maps the report onto the process exit code: 0 when
// at least one environment is available, 1 otherwise (output has
// already been written).
func checkExitCode(report *resolve.Report) error {
	for _, env := range report.Environments {
		if env.Available {
			return nil
		}
	}
	return &cli.ExitError{Code: 1}
}

func printReport(report *resolve.Report) {
	styled := cli.StdoutIsTerminal()

	status := func(valid bool) string {
		if valid {
			return render(styled, availableStyle, "ok")
		}
		return render(styled, unavailableStyle, "unavailable")
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	for _, env := range report.Environments {
		fmt.Fprintf(tw, "%s\t%s\t\t\n", env.Environment, status(env.Available))

		for _, component := range env.Components {
			detail := component.Env.Reason
			if component.Env.Valid {
				detail = component.Env.Target
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t\n",
				component.Component, status(component.Env.Valid), render(styled, dimStyle, detail))

			for _, region := range component.Regions {
				detail := region.Reason
				if region.Valid {
					detail = region.Target
				}
				fmt.Fprintf(tw, "    %s\t%s\t%s\t\n",
					region.Region, status(region.Valid), render(styled, dimStyle, detail))
			}
		}
	}
	tw.Flush()
}

// render applies style only when stdout is a terminal, keeping piped
// output free of escape sequences.
func render(styled bool, style lipgloss.Style, text string) string {
	if !styled || text == "" {
		return text
	}
	return style.Render(text)
}
