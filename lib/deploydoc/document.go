// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package deploydoc

import (
	"fmt"
	"sort"
)

// ReservedRegionsKey is the environment-level key that holds the
// per-region override mappings. It is never a component name.
const ReservedRegionsKey = "regions"

// Document is a parsed deployment-configuration document. It is
// read-only: resolution and scanning never modify it, so one Document
// may serve any number of concurrent calls.
type Document struct {
	defaults     map[string]any
	environments map[string]any
}

// newDocument validates the top-level shape of a parsed root mapping.
// Both sections are optional; when present they must be mappings.
func newDocument(root map[string]any) (*Document, error) {
	document := &Document{
		defaults:     map[string]any{},
		environments: map[string]any{},
	}

	if raw, present := root["defaults"]; present && raw != nil {
		mapping, isMap := raw.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("defaults section must be a mapping, got %T", raw)
		}
		document.defaults = mapping
	}

	if raw, present := root["environments"]; present && raw != nil {
		mapping, isMap := raw.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("environments section must be a mapping, got %T", raw)
		}
		document.environments = mapping
	}

	return document, nil
}

// Defaults returns the defaults section (empty mapping when absent).
func (d *Document) Defaults() map[string]any {
	return d.defaults
}

// RawEnvironment returns the unconverted value declared for an
// environment name, for callers that need to distinguish a
// non-mapping entry from an absent one (structural linting).
func (d *Document) RawEnvironment(name string) (any, bool) {
	value, present := d.environments[name]
	return value, present
}

// HasEnvironment reports whether name is a declared environment.
func (d *Document) HasEnvironment(name string) bool {
	_, present := d.environments[name]
	return present
}

// EnvironmentNames returns all declared environment names, sorted.
func (d *Document) EnvironmentNames() []string {
	names := make([]string, 0, len(d.environments))
	for name := range d.environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Environment returns the configuration mapping for a declared
// environment, or an empty mapping when the environment is absent or
// not mapping-shaped (a scalar environment entry contributes nothing).
func (d *Document) Environment(name string) map[string]any {
	if mapping, isMap := d.environments[name].(map[string]any); isMap {
		return mapping
	}
	return map[string]any{}
}

// Regions returns the regions mapping declared by an environment, or
// an empty mapping when the environment declares none.
func (d *Document) Regions(env string) map[string]any {
	if mapping, isMap := d.Environment(env)[ReservedRegionsKey].(map[string]any); isMap {
		return mapping
	}
	return map[string]any{}
}

// RegionNames returns the full region names declared by an
// environment, sorted.
func (d *Document) RegionNames(env string) []string {
	regions := d.Regions(env)
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Region returns the override mapping an environment declares for a
// full region name, or an empty mapping when absent.
func (d *Document) Region(env, fullName string) map[string]any {
	if mapping, isMap := d.Regions(env)[fullName].(map[string]any); isMap {
		return mapping
	}
	return map[string]any{}
}

// ComponentNames returns the union of component names across the
// given configuration levels, sorted. A component is a mapping-valued
// key; the reserved "regions" key and scalar/array metadata keys are
// skipped.
func ComponentNames(levels ...map[string]any) []string {
	seen := map[string]bool{}
	for _, level := range levels {
		for key, value := range level {
			if key == ReservedRegionsKey {
				continue
			}
			if _, isMap := value.(map[string]any); isMap {
				seen[key] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Component returns the mapping a level declares for a component
// name, or an empty mapping when the level does not declare it (or
// declares it as a non-mapping, which makes it metadata, not a
// component).
func Component(level map[string]any, name string) map[string]any {
	if mapping, isMap := level[name].(map[string]any); isMap {
		return mapping
	}
	return map[string]any{}
}

// GlobalMetadata returns the non-component keys of a level: every key
// whose value is not a mapping, excluding the reserved "regions" key.
func GlobalMetadata(level map[string]any) map[string]any {
	metadata := map[string]any{}
	for key, value := range level {
		if key == ReservedRegionsKey {
			continue
		}
		if _, isMap := value.(map[string]any); isMap {
			continue
		}
		metadata[key] = value
	}
	return metadata
}
