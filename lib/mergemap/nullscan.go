// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mergemap

import (
	"sort"
	"strings"
)

// NullPath walks mapping depth-first in lexicographic key order and
// returns the dot-delimited path of the first nil leaf it finds. The
// second return is false when the mapping contains no nil anywhere.
//
// Arrays are opaque leaves: their elements are never scanned, so a
// nil inside an array does not count as a missing required field.
// The lexicographic order makes the reported path deterministic,
// which keeps error messages stable across runs.
func NullPath(mapping map[string]any) (string, bool) {
	return nullPath(mapping, nil)
}

func nullPath(mapping map[string]any, prefix []string) (string, bool) {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch value := mapping[key].(type) {
		case nil:
			return strings.Join(append(prefix, key), "."), true
		case map[string]any:
			if path, found := nullPath(value, append(prefix, key)); found {
				return path, true
			}
		}
	}
	return "", false
}
