// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mergemap provides pure structural operations over JSON-like
// nested mappings (map[string]any with scalar, array, mapping, and nil
// leaves): ordered deep merge, null-leaf scanning, and flattening.
//
// These are the value-plumbing primitives of the deployment-config
// resolver. All functions are pure: inputs are never mutated, and
// every call builds fresh result mappings. Walks that need a stable
// order (null scanning, flattening) visit keys lexicographically, so
// error messages and flattened output are reproducible across runs.
//
// Merge semantics, briefly:
//
//   - later layers override earlier layers
//   - two mappings merge recursively
//   - everything else replaces wholesale, including arrays (never
//     concatenated) and nil (a later nil reinstates a requirement,
//     a later concrete value satisfies an earlier nil)
//
// Key exports:
//
//   - [Merge] -- fold an ordered list of partial mappings into one
//   - [NullPath] -- first dot-delimited path to a nil leaf
//   - [Flatten] -- collapse nesting into delimiter-joined keys
package mergemap
