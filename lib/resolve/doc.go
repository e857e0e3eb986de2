// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package resolve is the deployment-configuration resolution engine.
//
// [Resolve] collapses the three-level override hierarchy of a parsed
// document (defaults, then the resolved environment, then the
// requested region) into one concrete configuration mapping for an
// environment/region pair, validating on the way out that no required
// field (null sentinel) is left unset. [CheckAvailability] answers
// the discovery question: across every environment and region, does a
// named component (or any component) resolve without nulls.
//
// Resolution is single-shot and pure: the document is read-only
// input, every call builds fresh mappings, and a failure never leaves
// partial results. Calls are independently safe to run concurrently
// over the same document.
//
// Failures are typed ([InvalidRegionError], [RegionRequiredError],
// [ComponentNotFoundError], [NoValidComponentsError],
// [RequiredFieldError], plus the environment errors from
// lib/envresolve) and carry path- or name-qualified messages; callers
// branch with errors.As.
//
// One deliberate contract: a region that is valid per the region
// table but absent from the environment's declared regions mapping
// resolves against environment-level values alone, without error.
// Downstream integrations rely on this silent fallback.
package resolve
