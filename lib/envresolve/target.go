// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envresolve

import (
	"sort"
	"strings"

	"github.com/bureau-foundation/deployconf/lib/regioncode"
)

// SplitTarget splits an "env[-region]" target shorthand into its
// environment and region parts, returning the region as a canonical
// full name. Matching is anchored on the known-region table: full
// region names are tried as suffixes before short codes, longest
// candidate first, so environment names containing hyphens survive
// intact ("my-env-name-usw2" splits into "my-env-name" and
// "us-west-2"). When no known region suffix matches, the whole
// target is the environment name and region is empty.
func SplitTarget(target string) (env, region string) {
	for _, candidate := range suffixCandidates() {
		suffix := "-" + candidate
		if strings.HasSuffix(target, suffix) && len(target) > len(suffix) {
			return strings.TrimSuffix(target, suffix), regioncode.ToFullName(candidate)
		}
	}
	return target, ""
}

// suffixCandidates returns every known full region name followed by
// every known short code, each group ordered longest first so the
// most specific suffix wins.
func suffixCandidates() []string {
	fullNames := regioncode.FullNames()
	shortCodes := regioncode.ShortCodes()

	sort.SliceStable(fullNames, func(i, j int) bool {
		return len(fullNames[i]) > len(fullNames[j])
	})
	sort.SliceStable(shortCodes, func(i, j int) bool {
		return len(shortCodes[i]) > len(shortCodes[j])
	})

	return append(fullNames, shortCodes...)
}
