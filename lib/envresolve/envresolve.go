// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envresolve

import (
	"fmt"
	"regexp"
	"strings"
)

// EphemeralName is the reserved environment identifier that always
// resolves through the ephemeral path, and the name of the shared
// config entry that backs every ephemeral environment.
const EphemeralName = "ephemeral"

// Options carries the ephemeral-mode inputs for [Resolve].
type Options struct {
	// EphemeralPrefix is the required branch-name prefix for
	// branch-derived environments (e.g. "ephemeral/"). A blank
	// prefix disables ephemeral handling entirely.
	EphemeralPrefix string

	// Branch is the current branch name, when known. Empty means no
	// branch information is available.
	Branch string

	// DisableBranchCheck skips branch validation: the requested
	// environment is trusted as the ephemeral name as-is. Used by
	// callers that already validated the name out of band.
	DisableBranchCheck bool
}

// Resolution is the terminal state of the environment state machine.
type Resolution struct {
	// EnvName is the display name of the environment (the dynamic
	// name for ephemeral environments).
	EnvName string

	// ConfigName is the declared environment entry whose values back
	// the resolution ("ephemeral" for all ephemeral environments).
	ConfigName string

	// Ephemeral reports whether the resolution went through the
	// ephemeral path.
	Ephemeral bool
}

// EnvironmentNotFoundError reports a requested environment with no
// direct or ephemeral-derived match.
type EnvironmentNotFoundError struct {
	Requested string
	Declared  []string
}

func (e *EnvironmentNotFoundError) Error() string {
	if len(e.Declared) == 0 {
		return fmt.Sprintf("environment %q not found (document declares no environments)", e.Requested)
	}
	return fmt.Sprintf("environment %q not found (declared environments: %s)",
		e.Requested, strings.Join(e.Declared, ", "))
}

// InvalidBranchFormatError reports a branch name that does not match
// the required prefix-plus-charset pattern for ephemeral branches.
type InvalidBranchFormatError struct {
	Branch string
	Prefix string
}

func (e *InvalidBranchFormatError) Error() string {
	return fmt.Sprintf("branch %q is not a valid ephemeral branch: expected %s<name> where <name> uses only [a-z0-9_-]",
		e.Branch, e.Prefix)
}

// BranchNameMismatchError reports a requested environment name that
// conflicts with the name derived from the current branch.
type BranchNameMismatchError struct {
	Requested string
	Derived   string
	Branch    string
}

func (e *BranchNameMismatchError) Error() string {
	return fmt.Sprintf("requested environment %q does not match branch %q (derived environment name %q)",
		e.Requested, e.Branch, e.Derived)
}

// Resolve runs the environment-resolution state machine. declared
// reports whether a name is a declared environment in the document;
// declaredNames supplies the full list for error messages.
//
// The guards run in a fixed order, and the first terminal state wins:
//
//  1. Direct match: requested is a declared environment (and not the
//     reserved "ephemeral" identifier, which always takes the
//     ephemeral path even when an environment named "ephemeral" is
//     declared — its entry then backs the resolution as ConfigName).
//  2. Ephemeral handling disabled (blank prefix): not found.
//  3. Trusted ephemeral: branch validation disabled, requested name
//     accepted as the ephemeral environment name.
//  4. Branch-derived: the branch must carry the prefix and a
//     [a-z0-9_-]+ name; the requested environment must be
//     "ephemeral", the derived name, or the full branch name.
//  5. Bare "ephemeral" with no branch information.
//  6. Not found.
func Resolve(requested string, opts Options, declared func(string) bool, declaredNames []string) (Resolution, error) {
	enabled := strings.TrimSpace(opts.EphemeralPrefix) != ""

	// State 1: direct match against a declared environment.
	if requested != EphemeralName && declared(requested) {
		return Resolution{EnvName: requested, ConfigName: requested, Ephemeral: false}, nil
	}

	// State 2: ephemeral handling disabled.
	if !enabled && requested != EphemeralName {
		return Resolution{}, &EnvironmentNotFoundError{Requested: requested, Declared: declaredNames}
	}

	// State 3: trusted ephemeral, no branch validation.
	if enabled && opts.DisableBranchCheck {
		return Resolution{EnvName: requested, ConfigName: EphemeralName, Ephemeral: true}, nil
	}

	// State 4: derive the environment name from the branch.
	if opts.Branch != "" {
		pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(opts.EphemeralPrefix) + `[a-z0-9_-]+$`)
		if !pattern.MatchString(opts.Branch) {
			return Resolution{}, &InvalidBranchFormatError{Branch: opts.Branch, Prefix: opts.EphemeralPrefix}
		}

		derived := strings.TrimPrefix(opts.Branch, opts.EphemeralPrefix)
		if requested != EphemeralName && requested != derived && requested != opts.Branch {
			return Resolution{}, &BranchNameMismatchError{Requested: requested, Derived: derived, Branch: opts.Branch}
		}
		return Resolution{EnvName: derived, ConfigName: EphemeralName, Ephemeral: true}, nil
	}

	// State 5: bare "ephemeral" request with no branch information.
	if requested == EphemeralName {
		return Resolution{EnvName: EphemeralName, ConfigName: EphemeralName, Ephemeral: true}, nil
	}

	// State 6: nothing matched.
	return Resolution{}, &EnvironmentNotFoundError{Requested: requested, Declared: declaredNames}
}
