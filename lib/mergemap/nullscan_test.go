// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mergemap

import "testing"

func TestNullPath(t *testing.T) {
	tests := []struct {
		name    string
		mapping map[string]any
		path    string
		found   bool
	}{
		{
			name:    "no nulls",
			mapping: map[string]any{"a": 1, "b": map[string]any{"c": "x"}},
		},
		{
			name:    "top level null",
			mapping: map[string]any{"host": nil},
			path:    "host",
			found:   true,
		},
		{
			name: "nested null",
			mapping: map[string]any{
				"db": map[string]any{"conn": map[string]any{"host": nil}},
			},
			path:  "db.conn.host",
			found: true,
		},
		{
			name: "lexicographic first wins",
			mapping: map[string]any{
				"zeta":  nil,
				"alpha": map[string]any{"beta": nil},
			},
			path:  "alpha.beta",
			found: true,
		},
		{
			name:    "nil inside array is opaque",
			mapping: map[string]any{"list": []any{nil, "x"}},
		},
		{
			name:    "empty mapping",
			mapping: map[string]any{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path, found := NullPath(test.mapping)
			if found != test.found {
				t.Fatalf("expected found=%v, got %v (path %q)", test.found, found, path)
			}
			if path != test.path {
				t.Errorf("expected path %q, got %q", test.path, path)
			}
		})
	}
}
