// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/deployconf/cmd/deployconf/cli"
	"github.com/bureau-foundation/deployconf/lib/deploydoc"
	"github.com/bureau-foundation/deployconf/lib/envresolve"
	"github.com/bureau-foundation/deployconf/lib/mergemap"
	"github.com/bureau-foundation/deployconf/lib/resolve"
)

// Output modes for the resolve command.
const (
	outputNested    = "nested"
	outputFlat      = "flat"
	outputDotenv    = "dotenv"
	outputTerraform = "terraform"
)

type resolveParams struct {
	env             string
	target          string
	region          string
	component       string
	branch          string
	ephemeralPrefix string
	noBranchCheck   bool
	output          string
	delimiter       string
	verbose         bool
}

func (p *resolveParams) flags() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("resolve", pflag.ContinueOnError)
	flagSet.StringVar(&p.env, "env", "", "environment to resolve")
	flagSet.StringVar(&p.target, "target", "", "combined env[-region] shorthand (alternative to --env/--region)")
	flagSet.StringVar(&p.region, "region", "", "region short code or full name")
	flagSet.StringVar(&p.component, "component", "", "resolve a single component, hoisted to the output root")
	flagSet.StringVar(&p.branch, "branch", "", "current branch name, for ephemeral environments")
	flagSet.StringVar(&p.ephemeralPrefix, "ephemeral-prefix", "ephemeral/", "branch prefix for ephemeral environments (empty disables)")
	flagSet.BoolVar(&p.noBranchCheck, "no-branch-check", false, "trust the requested env name without branch validation")
	flagSet.StringVar(&p.output, "output", outputNested, "output mode: nested, flat, dotenv, or terraform")
	flagSet.StringVar(&p.delimiter, "delimiter", ".", "key delimiter for flat and dotenv output")
	flagSet.BoolVar(&p.verbose, "verbose", false, "log resolution details")
	return flagSet
}

// resolveCommand returns the "resolve" subcommand.
func resolveCommand() *cli.Command {
	var params resolveParams

	return &cli.Command{
		Name:    "resolve",
		Summary: "Resolve one environment/region into concrete configuration",
		Description: `Resolve a deployment document into the concrete configuration for
one environment/region pair. The three override levels merge in
order (defaults, then the environment entry, then the region entry);
a null anywhere marks a required field that a more specific level
must supply, and resolution fails if any null survives.

Ephemeral environments resolve through the branch name: a branch
"ephemeral/feature-x" backs environment "feature-x" with the shared
"ephemeral" config entry.

Output goes to stdout as nested JSON by default. "flat" collapses
nesting into delimiter-joined keys, "dotenv" prints KEY=value lines
for pipeline step outputs, and "terraform" wraps the JSON in a
string-typed {"mergedConfig": ...} object for consumers that
re-parse a string attribute.`,
		Usage: "deployconf resolve [flags] <file>",
		Examples: []cli.Example{
			{
				Description: "Resolve a single component for Terraform",
				Command:     "deployconf resolve --target prod-usw2 --component network --output terraform deploy.jsonc",
			},
			{
				Description: "Resolve an ephemeral branch environment",
				Command:     "deployconf resolve --env feature-x --branch ephemeral/feature-x deploy.jsonc",
			},
		},
		Flags: params.flags,
		Run: func(args []string) error {
			return runResolve(&params, args)
		},
	}
}

func runResolve(params *resolveParams, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: deployconf resolve [flags] <file>")
	}
	path := args[0]

	env, region := params.env, params.region
	if params.target != "" {
		if env != "" || region != "" {
			return fmt.Errorf("--target cannot be combined with --env or --region")
		}
		env, region = envresolve.SplitTarget(params.target)
	}
	if env == "" {
		return fmt.Errorf("an environment is required (--env or --target)")
	}

	switch params.output {
	case outputNested, outputFlat, outputDotenv, outputTerraform:
	default:
		return fmt.Errorf("unknown output mode %q (expected nested, flat, dotenv, or terraform)", params.output)
	}

	document, err := deploydoc.ReadFile(path)
	if err != nil {
		return err
	}

	result, err := resolve.Resolve(document, resolve.Options{
		Environment: env,
		Region:      region,
		Component:   params.component,
		Ephemeral: envresolve.Options{
			EphemeralPrefix:    params.ephemeralPrefix,
			Branch:             params.branch,
			DisableBranchCheck: params.noBranchCheck,
		},
	})
	if err != nil {
		return err
	}

	logger := cli.NewLogger(params.verbose)
	logger.Debug("resolved configuration",
		"file", path,
		"env", result[resolve.KeyEnvName],
		"env_config", result[resolve.KeyEnvConfigName],
		"region", result[resolve.KeyRegion],
		"ephemeral", result[resolve.KeyIsEphemeral],
	)

	switch params.output {
	case outputFlat:
		return cli.WriteJSON(os.Stdout, mergemap.Flatten(result, params.delimiter))
	case outputDotenv:
		return writeDotenv(os.Stdout, mergemap.Flatten(result, params.delimiter))
	case outputTerraform:
		return writeTerraform(os.Stdout, result)
	default:
		return cli.WriteJSON(os.Stdout, result)
	}
}

// writeDotenv prints a flattened mapping as KEY=value lines, sorted
// by key. Strings print bare; every other value prints as JSON so
// consumers can re-parse arrays and booleans unambiguously.
func writeDotenv(w io.Writer, flattened map[string]any) error {
	keys := make([]string, 0, len(flattened))
	for key := range flattened {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := flattened[key]
		if text, isString := value.(string); isString {
			fmt.Fprintf(w, "%s=%s\n", key, text)
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", key, err)
		}
		fmt.Fprintf(w, "%s=%s\n", key, encoded)
	}
	return nil
}

// writeTerraform wraps the resolved configuration as a string-typed
// attribute. The downstream external data source requires every
// value to be a string it re-parses, so the nested JSON is encoded
// once and embedded.
func writeTerraform(w io.Writer, result map[string]any) error {
	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding resolved config: %w", err)
	}
	return cli.WriteJSON(w, map[string]string{"mergedConfig": string(encoded)})
}
