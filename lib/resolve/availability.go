// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"github.com/bureau-foundation/deployconf/lib/deploydoc"
	"github.com/bureau-foundation/deployconf/lib/mergemap"
	"github.com/bureau-foundation/deployconf/lib/regioncode"
)

// Machine-readable reasons attached to invalid availability checks.
const (
	// ReasonComponentNotFound means no level (defaults, environment,
	// region) defines the component at all.
	ReasonComponentNotFound = "component_not_found"

	// reasonNullValuePrefix prefixes the dot path of the first null
	// found in the merge, e.g. "null_value_at_db.host".
	reasonNullValuePrefix = "null_value_at_"
)

// Check is the outcome of one availability probe: a component merged
// at the bare environment level or at one region of it.
type Check struct {
	// Valid means the merge contains no null and the component is
	// defined at at least one contributing level.
	Valid bool `json:"valid"`

	// HasConfig means this specific level (environment or region)
	// declares a non-empty mapping for the component, independent of
	// defaults.
	HasConfig bool `json:"has_config"`

	// Reason is set on invalid checks: ReasonComponentNotFound, or
	// "null_value_at_<dot.path>" naming the first unresolved field.
	Reason string `json:"reason,omitempty"`

	// Target is set on valid checks: the "env" or "env-shortcode"
	// identifier a caller can feed back into resolution.
	Target string `json:"target,omitempty"`
}

// RegionCheck is a Check at one declared region.
type RegionCheck struct {
	// Region is the canonical full region name.
	Region string `json:"region"`

	// RegionShort is the short code for Region.
	RegionShort string `json:"region_short"`

	Check
}

// ComponentAvailability reports one component across one environment.
type ComponentAvailability struct {
	// Component is the component name.
	Component string `json:"component"`

	// Available means the bare-environment check is valid or at
	// least one region check is.
	Available bool `json:"available"`

	// RegionAgnostic means the component is exempt from regions;
	// when set, Regions is empty and only Env is meaningful.
	RegionAgnostic bool `json:"region_agnostic,omitempty"`

	// Env is the bare environment-level check (no region layer).
	Env Check `json:"env"`

	// Regions holds one check per declared region, sorted by name.
	Regions []RegionCheck `json:"regions,omitempty"`
}

// EnvironmentAvailability reports one environment across the queried
// components.
type EnvironmentAvailability struct {
	// Environment is the declared environment name.
	Environment string `json:"environment"`

	// Available means at least one queried component is available
	// in this environment.
	Available bool `json:"available"`

	// Components holds the per-component results, sorted by name.
	Components []ComponentAvailability `json:"components"`
}

// Report is the result of an availability scan.
type Report struct {
	// Component is the requested component filter; empty means the
	// scan covered every discovered component.
	Component string `json:"component,omitempty"`

	// Environments holds one entry per declared environment, sorted
	// by name. Never nil.
	Environments []EnvironmentAvailability `json:"environments"`
}

// Targets returns every valid target identifier in the report,
// deduplicated, in environment order: the bare environment targets
// first, then its region targets.
func (r *Report) Targets() []string {
	seen := map[string]bool{}
	var targets []string
	appendTarget := func(target string) {
		if target != "" && !seen[target] {
			seen[target] = true
			targets = append(targets, target)
		}
	}

	for _, env := range r.Environments {
		for _, component := range env.Components {
			appendTarget(component.Env.Target)
		}
		for _, component := range env.Components {
			for _, region := range component.Regions {
				appendTarget(region.Target)
			}
		}
	}
	return targets
}

// CheckAvailability scans every declared environment and region and
// reports whether component (or, when component is empty, each
// discovered component) merges without unresolved null sentinels.
//
// Unlike [Resolve], a missing component is never an error here: it is
// reported per environment with ReasonComponentNotFound. The scan
// never mutates the document and does not involve environment
// resolution — ephemeral environments are backed by the declared
// "ephemeral" entry and appear under that name.
func CheckAvailability(document *deploydoc.Document, component string) *Report {
	report := &Report{
		Component:    component,
		Environments: []EnvironmentAvailability{},
	}

	for _, envName := range document.EnvironmentNames() {
		envLevel := document.Environment(envName)

		names := []string{component}
		if component == "" {
			names = discoverComponents(document, envName)
		}

		envReport := EnvironmentAvailability{
			Environment: envName,
			Components:  make([]ComponentAvailability, 0, len(names)),
		}
		for _, name := range names {
			result := checkComponent(document, envName, envLevel, name)
			envReport.Available = envReport.Available || result.Available
			envReport.Components = append(envReport.Components, result)
		}

		report.Environments = append(report.Environments, envReport)
	}

	return report
}

// discoverComponents returns the component universe for one
// environment: mapping-valued keys at defaults, at the environment
// level, and at each of its declared regions.
func discoverComponents(document *deploydoc.Document, envName string) []string {
	levels := []map[string]any{document.Defaults(), document.Environment(envName)}
	for _, regionName := range document.RegionNames(envName) {
		levels = append(levels, document.Region(envName, regionName))
	}
	return deploydoc.ComponentNames(levels...)
}

// checkComponent evaluates one component against one environment:
// the bare environment-level merge, then each declared region —
// unless the component is region-agnostic, in which case region
// checks are skipped entirely.
func checkComponent(document *deploydoc.Document, envName string, envLevel map[string]any, name string) ComponentAvailability {
	defaults := document.Defaults()

	result := ComponentAvailability{
		Component:      name,
		RegionAgnostic: isRegionAgnostic(defaults, envLevel, name),
	}

	result.Env = probe(
		[]map[string]any{defaults, envLevel},
		deploydoc.Component(envLevel, name),
		name, envName,
	)
	result.Available = result.Env.Valid

	if result.RegionAgnostic {
		return result
	}

	for _, regionName := range document.RegionNames(envName) {
		regionLevel := document.Region(envName, regionName)
		shortCode := regioncode.ToShortCode(regionName)

		check := probe(
			[]map[string]any{defaults, envLevel, regionLevel},
			deploydoc.Component(regionLevel, name),
			name, envName+"-"+shortCode,
		)
		result.Available = result.Available || check.Valid

		result.Regions = append(result.Regions, RegionCheck{
			Region:      regionName,
			RegionShort: shortCode,
			Check:       check,
		})
	}

	return result
}

// probe merges one component across the given levels and classifies
// the outcome. levelConfig is the component's partial config at the
// specific level being probed (environment or region), which alone
// determines HasConfig.
func probe(levels []map[string]any, levelConfig map[string]any, name, target string) Check {
	exists := false
	layers := make([]map[string]any, 0, len(levels))
	for _, level := range levels {
		if _, isMap := level[name].(map[string]any); isMap {
			exists = true
		}
		layers = append(layers, deploydoc.Component(level, name))
	}

	check := Check{HasConfig: len(levelConfig) > 0}

	if !exists {
		check.Reason = ReasonComponentNotFound
		return check
	}

	merged := mergemap.Merge(layers...)
	if path, found := mergemap.NullPath(merged); found {
		check.Reason = reasonNullValuePrefix + path
		return check
	}

	check.Valid = true
	check.Target = target
	return check
}
