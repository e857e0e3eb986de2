// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"fmt"
	"strings"
)

// InvalidRegionError reports a supplied region that is neither a
// known short code nor a known canonical full name.
type InvalidRegionError struct {
	Region string
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("region %q is not a known region code or name", e.Region)
}

// RegionRequiredError reports a resolution that needs a region: the
// environment declares regions, none was supplied, and the component
// is not region-agnostic.
type RegionRequiredError struct {
	Component   string
	Environment string
	Regions     []string
}

func (e *RegionRequiredError) Error() string {
	return fmt.Sprintf("component %q in environment %q requires a region (declared regions: %s)",
		e.Component, e.Environment, strings.Join(e.Regions, ", "))
}

// ComponentNotFoundError reports a requested component absent from
// the discovered component universe.
type ComponentNotFoundError struct {
	Component string
	Available []string
}

func (e *ComponentNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("component %q not found (document defines no components at the resolved levels)", e.Component)
	}
	return fmt.Sprintf("component %q not found (available components: %s)",
		e.Component, strings.Join(e.Available, ", "))
}

// NoValidComponentsError reports that every discovered component was
// excluded, either for unresolved null sentinels or for requiring a
// region when none was supplied.
type NoValidComponentsError struct {
	Environment string
	Region      string
	Discovered  []string
}

func (e *NoValidComponentsError) Error() string {
	where := fmt.Sprintf("environment %q", e.Environment)
	if e.Region != "" {
		where += fmt.Sprintf(" region %q", e.Region)
	}
	return fmt.Sprintf("no valid components for %s (discovered: %s)",
		where, strings.Join(e.Discovered, ", "))
}

// RequiredFieldError reports a null sentinel that survived the merge:
// a field marked required in the document was never supplied by a
// more specific level.
type RequiredFieldError struct {
	Path string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("required field %q is not set (null after merging all levels)", e.Path)
}
