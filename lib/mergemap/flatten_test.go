// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mergemap

import (
	"reflect"
	"testing"
)

func TestFlatten(t *testing.T) {
	nested := map[string]any{
		"db": map[string]any{
			"host": "localhost",
			"pool": map[string]any{"size": 10},
		},
		"replicas": []any{1, 2},
		"name":     "svc",
	}

	flattened := Flatten(nested, ".")

	expected := map[string]any{
		"db.host":      "localhost",
		"db.pool.size": 10,
		"replicas":     []any{1, 2},
		"name":         "svc",
	}
	if !reflect.DeepEqual(flattened, expected) {
		t.Errorf("expected %v, got %v", expected, flattened)
	}
}

func TestFlatten_CustomDelimiter(t *testing.T) {
	flattened := Flatten(map[string]any{"a": map[string]any{"b": 1}}, "__")

	if flattened["a__b"] != 1 {
		t.Errorf("expected a__b=1, got %v", flattened)
	}
}

func TestFlatten_EmptyNestedMappingContributesNothing(t *testing.T) {
	flattened := Flatten(map[string]any{"a": map[string]any{}, "b": 1}, ".")

	expected := map[string]any{"b": 1}
	if !reflect.DeepEqual(flattened, expected) {
		t.Errorf("expected %v, got %v", expected, flattened)
	}
}
