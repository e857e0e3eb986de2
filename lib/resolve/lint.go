// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/deployconf/lib/deploydoc"
	"github.com/bureau-foundation/deployconf/lib/regioncode"
)

// Lint checks a parsed document for structural issues that parsing
// alone does not catch. Returns a list of human-readable issue
// descriptions; an empty list means the document is structurally
// sound. Lint never judges whether components resolve — that is what
// [CheckAvailability] answers.
//
// Structural checks:
//   - environment entries must be mappings
//   - an environment's "regions" value must be a mapping, and each
//     region entry must be a mapping
//   - declared region names must be canonical full names from the
//     region table (short codes and unknown names cannot be
//     addressed by target shorthands)
//   - "_"-prefixed component keys must be recognized behavior flags,
//     and _regionAgnostic must be a boolean
func Lint(document *deploydoc.Document) []string {
	var issues []string

	issues = append(issues, lintComponentFlags("defaults", document.Defaults())...)

	for _, envName := range document.EnvironmentNames() {
		raw, _ := document.RawEnvironment(envName)
		if _, isMap := raw.(map[string]any); !isMap {
			issues = append(issues, fmt.Sprintf(
				"environment %q: entry must be a mapping, got %T", envName, raw))
			continue
		}

		envLevel := document.Environment(envName)
		issues = append(issues, lintComponentFlags("environment "+envName, envLevel)...)

		rawRegions, present := envLevel[deploydoc.ReservedRegionsKey]
		if !present {
			continue
		}
		regions, isMap := rawRegions.(map[string]any)
		if !isMap {
			issues = append(issues, fmt.Sprintf(
				"environment %q: regions must be a mapping, got %T", envName, rawRegions))
			continue
		}

		for _, regionName := range document.RegionNames(envName) {
			where := fmt.Sprintf("environment %q region %q", envName, regionName)

			if _, isMap := regions[regionName].(map[string]any); !isMap {
				issues = append(issues, where+": entry must be a mapping")
				continue
			}
			if regioncode.ToFullName(regionName) != regionName {
				issues = append(issues, where+": use the full region name, not the short code")
			} else if !regioncode.IsKnown(regionName) {
				issues = append(issues, where+": not a known canonical region name")
			}

			issues = append(issues, lintComponentFlags(where, document.Region(envName, regionName))...)
		}
	}

	return issues
}

// lintComponentFlags checks the "_"-prefixed keys of every component
// at one configuration level.
func lintComponentFlags(where string, level map[string]any) []string {
	var issues []string

	for _, name := range deploydoc.ComponentNames(level) {
		component := deploydoc.Component(level, name)
		for key, value := range component {
			if !strings.HasPrefix(key, "_") {
				continue
			}
			if key != regionAgnosticFlag {
				issues = append(issues, fmt.Sprintf(
					"%s: component %q: unrecognized behavior flag %q", where, name, key))
				continue
			}
			if _, isBool := value.(bool); !isBool {
				issues = append(issues, fmt.Sprintf(
					"%s: component %q: %s must be a boolean, got %T", where, name, key, value))
			}
		}
	}

	return issues
}
