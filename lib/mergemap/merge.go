// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mergemap

// Merge folds an ordered sequence of partial mappings into a single
// mapping. Earlier layers have the lowest priority; each later layer
// overrides the accumulated result key by key. When both the
// accumulated value and the incoming value are mappings, they merge
// recursively. Any other combination — scalar over mapping, mapping
// over scalar, array over array, nil over anything, anything over
// nil — replaces the accumulated value wholesale.
//
// Arrays are values, not containers: a later array replaces an
// earlier one entirely, never merging element-wise. nil is a value
// too: a later nil wins over an earlier concrete value (reinstating
// a required-but-unset marker), and a later concrete value wins over
// an earlier nil (satisfying it).
//
// Nil layers are skipped. Input mappings are never mutated; the
// result shares no mapping structure with any input.
func Merge(layers ...map[string]any) map[string]any {
	result := map[string]any{}
	for _, layer := range layers {
		for key, incoming := range layer {
			accumulated, exists := result[key]
			if exists {
				accumulatedMap, accumulatedIsMap := accumulated.(map[string]any)
				incomingMap, incomingIsMap := incoming.(map[string]any)
				if accumulatedIsMap && incomingIsMap {
					result[key] = Merge(accumulatedMap, incomingMap)
					continue
				}
			}
			result[key] = copyValue(incoming)
		}
	}
	return result
}

// copyValue deep-copies mappings and arrays so that the merge result
// never aliases input structure. Scalars and nil pass through.
func copyValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(typed))
		for key, element := range typed {
			copied[key] = copyValue(element)
		}
		return copied
	case []any:
		copied := make([]any, len(typed))
		for index, element := range typed {
			copied[index] = copyValue(element)
		}
		return copied
	default:
		return typed
	}
}
