// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mergemap

import "sort"

// Flatten collapses a nested mapping into a single-level mapping
// whose keys are the nested paths joined with delimiter. Values that
// are not mappings (scalars, arrays, nil) become leaves under their
// joined key. An empty nested mapping contributes nothing.
//
// Keys are visited lexicographically at every level, so iterating a
// flattened map after sorting its keys reproduces the scan order.
func Flatten(mapping map[string]any, delimiter string) map[string]any {
	flattened := map[string]any{}
	flatten(mapping, "", delimiter, flattened)
	return flattened
}

func flatten(mapping map[string]any, prefix, delimiter string, into map[string]any) {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		joined := key
		if prefix != "" {
			joined = prefix + delimiter + key
		}
		if nested, isMap := mapping[key].(map[string]any); isMap {
			flatten(nested, joined, delimiter, into)
			continue
		}
		into[joined] = mapping[key]
	}
}
