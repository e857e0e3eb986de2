// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package deploydoc

import (
	"reflect"
	"testing"
)

func TestComponentNames(t *testing.T) {
	defaults := map[string]any{
		"db":      map[string]any{"host": nil},
		"network": map[string]any{"cidr": "10.0.0.0/16"},
		"owner":   "platform",      // scalar metadata, not a component
		"tags":    []any{"a", "b"}, // array metadata, not a component
	}
	env := map[string]any{
		"regions": map[string]any{"us-west-2": map[string]any{}}, // reserved
		"cache":   map[string]any{"size": 100},
	}

	names := ComponentNames(defaults, env)

	expected := []string{"cache", "db", "network"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("expected %v, got %v", expected, names)
	}
}

func TestComponent_NonMappingIsEmpty(t *testing.T) {
	level := map[string]any{"db": "not-a-mapping"}
	if got := Component(level, "db"); len(got) != 0 {
		t.Errorf("expected empty mapping for non-mapping value, got %v", got)
	}
	if got := Component(level, "absent"); len(got) != 0 {
		t.Errorf("expected empty mapping for absent component, got %v", got)
	}
}

func TestGlobalMetadata(t *testing.T) {
	level := map[string]any{
		"db":      map[string]any{"host": "x"},
		"regions": map[string]any{},
		"owner":   "platform",
		"tags":    []any{"a"},
		"flag":    nil,
	}

	metadata := GlobalMetadata(level)

	expected := map[string]any{"owner": "platform", "tags": []any{"a"}, "flag": nil}
	if !reflect.DeepEqual(metadata, expected) {
		t.Errorf("expected %v, got %v", expected, metadata)
	}
}

func TestRegionAccessors(t *testing.T) {
	document, err := Parse([]byte(`{
		"environments": {
			"prod": {
				"regions": {
					"us-west-2": {"db": {"host": "a"}},
					"eu-west-1": {}
				}
			},
			"dev": {}
		}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := document.RegionNames("prod")
	expected := []string{"eu-west-1", "us-west-2"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("expected %v, got %v", expected, names)
	}

	if len(document.RegionNames("dev")) != 0 {
		t.Error("expected no regions for dev")
	}
	if len(document.Region("prod", "ap-south-1")) != 0 {
		t.Error("expected empty mapping for undeclared region")
	}

	envNames := document.EnvironmentNames()
	if !reflect.DeepEqual(envNames, []string{"dev", "prod"}) {
		t.Errorf("expected sorted environment names, got %v", envNames)
	}
}
