// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"strings"

	"github.com/bureau-foundation/deployconf/lib/deploydoc"
	"github.com/bureau-foundation/deployconf/lib/envresolve"
	"github.com/bureau-foundation/deployconf/lib/mergemap"
	"github.com/bureau-foundation/deployconf/lib/regioncode"
)

// Injected metadata keys. These names are a wire contract: downstream
// consumers (IaC data sources, pipeline step outputs) key off them.
const (
	KeyEnvName       = "env_name"
	KeyEnvConfigName = "env_config_name"
	KeyRegion        = "region"
	KeyRegionShort   = "region_short"
	KeyIsEphemeral   = "is_ephemeral"
)

// regionAgnosticFlag marks a component whose required values do not
// vary by region, exempting it from the region requirement. It is the
// single recognized behavior flag; like every "_"-prefixed component
// key it participates in the merge but never appears in output.
const regionAgnosticFlag = "_regionAgnostic"

// Options selects what to resolve.
type Options struct {
	// Environment is the requested environment identifier. Required.
	Environment string

	// Region is a short code or full region name. Optional unless the
	// environment declares regions and a region-dependent component
	// is requested.
	Region string

	// Component restricts resolution to one component, hoisting its
	// fields to the root of the output. Empty resolves all valid
	// components, nested under their names.
	Component string

	// Ephemeral configures ephemeral-environment handling.
	Ephemeral envresolve.Options
}

// Resolve produces the concrete configuration for opts against a
// parsed document: environment resolution, region normalization,
// three-level component merging, global metadata assembly, metadata
// injection, and the final required-field scan, in that order. On
// success the returned mapping contains no nulls anywhere.
func Resolve(document *deploydoc.Document, opts Options) (map[string]any, error) {
	resolution, err := envresolve.Resolve(
		opts.Environment, opts.Ephemeral,
		document.HasEnvironment, document.EnvironmentNames(),
	)
	if err != nil {
		return nil, err
	}

	fullRegion, shortRegion := "", ""
	if opts.Region != "" {
		if !regioncode.IsKnown(opts.Region) {
			return nil, &InvalidRegionError{Region: opts.Region}
		}
		fullRegion = regioncode.ToFullName(opts.Region)
		shortRegion = regioncode.ToShortCode(fullRegion)
	}

	defaults := document.Defaults()
	envLevel := document.Environment(resolution.ConfigName)
	declaredRegions := document.RegionNames(resolution.ConfigName)

	// A codec-valid region missing from the declared regions mapping
	// falls back to an empty region level: environment values win.
	regionLevel := map[string]any{}
	if fullRegion != "" {
		regionLevel = document.Region(resolution.ConfigName, fullRegion)
	}

	levels := []map[string]any{defaults, envLevel}
	if fullRegion != "" {
		levels = append(levels, regionLevel)
	}
	discovered := deploydoc.ComponentNames(levels...)

	result := mergemap.Merge(
		deploydoc.GlobalMetadata(defaults),
		deploydoc.GlobalMetadata(envLevel),
		deploydoc.GlobalMetadata(regionLevel),
	)

	if opts.Component != "" {
		merged, err := resolveComponent(document, resolution, opts.Component, discovered, declaredRegions, fullRegion)
		if err != nil {
			return nil, err
		}
		// Hoist: the component's fields replace per-component nesting
		// at the root. Global metadata stays; on a key collision the
		// component value wins (it is the more specific request).
		for key, value := range merged {
			result[key] = value
		}
	} else {
		components := resolveAllComponents(document, resolution, discovered, declaredRegions, fullRegion)
		if len(discovered) > 0 && len(components) == 0 {
			return nil, &NoValidComponentsError{
				Environment: resolution.EnvName,
				Region:      fullRegion,
				Discovered:  discovered,
			}
		}
		for name, merged := range components {
			result[name] = merged
		}
	}

	result[KeyEnvName] = resolution.EnvName
	result[KeyEnvConfigName] = resolution.ConfigName
	result[KeyRegion] = fullRegion
	result[KeyRegionShort] = shortRegion
	result[KeyIsEphemeral] = resolution.Ephemeral

	if path, found := mergemap.NullPath(result); found {
		return nil, &RequiredFieldError{Path: path}
	}
	return result, nil
}

// resolveComponent merges one requested component across the three
// levels, enforcing membership and the region requirement.
func resolveComponent(
	document *deploydoc.Document,
	resolution envresolve.Resolution,
	name string,
	discovered, declaredRegions []string,
	fullRegion string,
) (map[string]any, error) {
	if !contains(discovered, name) {
		return nil, &ComponentNotFoundError{Component: name, Available: discovered}
	}

	defaults := document.Defaults()
	envLevel := document.Environment(resolution.ConfigName)

	if len(declaredRegions) > 0 && fullRegion == "" && !isRegionAgnostic(defaults, envLevel, name) {
		return nil, &RegionRequiredError{
			Component:   name,
			Environment: resolution.EnvName,
			Regions:     declaredRegions,
		}
	}

	merged := mergeComponent(document, resolution.ConfigName, name, fullRegion)
	return stripBehaviorFlags(merged), nil
}

// resolveAllComponents merges every discovered component, silently
// dropping the ones that require an unsupplied region and the ones
// whose merge still carries a null sentinel.
func resolveAllComponents(
	document *deploydoc.Document,
	resolution envresolve.Resolution,
	discovered, declaredRegions []string,
	fullRegion string,
) map[string]any {
	defaults := document.Defaults()
	envLevel := document.Environment(resolution.ConfigName)

	components := map[string]any{}
	for _, name := range discovered {
		if len(declaredRegions) > 0 && fullRegion == "" && !isRegionAgnostic(defaults, envLevel, name) {
			continue
		}
		merged := mergeComponent(document, resolution.ConfigName, name, fullRegion)
		if _, found := mergemap.NullPath(merged); found {
			continue
		}
		components[name] = stripBehaviorFlags(merged)
	}
	return components
}

// mergeComponent performs the defaults → environment → region merge
// for one component. Absent levels contribute empty mappings.
func mergeComponent(document *deploydoc.Document, configName, component, fullRegion string) map[string]any {
	layers := []map[string]any{
		deploydoc.Component(document.Defaults(), component),
		deploydoc.Component(document.Environment(configName), component),
	}
	if fullRegion != "" {
		layers = append(layers, deploydoc.Component(document.Region(configName, fullRegion), component))
	}
	return mergemap.Merge(layers...)
}

// isRegionAgnostic reports whether a component carries the
// _regionAgnostic flag, merged from the defaults and environment
// levels only — region levels cannot grant the exemption.
func isRegionAgnostic(defaults, envLevel map[string]any, component string) bool {
	merged := mergemap.Merge(
		deploydoc.Component(defaults, component),
		deploydoc.Component(envLevel, component),
	)
	flag, isBool := merged[regionAgnosticFlag].(bool)
	return isBool && flag
}

// stripBehaviorFlags removes "_"-prefixed keys from the top level of
// a merged component. They steer resolution but are not values.
func stripBehaviorFlags(merged map[string]any) map[string]any {
	stripped := make(map[string]any, len(merged))
	for key, value := range merged {
		if strings.HasPrefix(key, "_") {
			continue
		}
		stripped[key] = value
	}
	return stripped
}

func contains(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}
