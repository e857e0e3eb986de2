// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package envresolve decides how a requested environment identifier
// maps onto the declared environments of a deployment document, and
// splits combined env-region target shorthands.
//
// Environments resolve in one of two ways: a direct match against a
// declared environment name, or an ephemeral resolution where the
// environment is dynamically named (typically one per feature branch)
// but backed by the shared "ephemeral" config entry. The precedence
// between these, and the branch-name validation rules, are encoded as
// an ordered sequence of guards in [Resolve] — the first terminal
// state wins, and the order is part of the contract.
//
// Key exports:
//
//   - [Resolve] -- the environment-resolution state machine
//   - [SplitTarget] -- split "env-usw2" style shorthands
//   - [Options] -- ephemeral-mode inputs (prefix, branch, trust flag)
package envresolve
