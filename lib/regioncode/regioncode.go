// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package regioncode provides the static bidirectional mapping between
// short region codes (usw2) and canonical full region names (us-west-2).
//
// The table is the single source of truth for region identifiers in
// deployment documents and target shorthands. It is a fixed,
// versionable constant — there is no network or cloud-provider lookup,
// and no runtime mutation, so lookups are safe from any goroutine.
package regioncode

import "sort"

// fullNameByCode maps short region codes to canonical full names.
// The reverse table is derived from it at init.
var fullNameByCode = map[string]string{
	"use1": "us-east-1",
	"use2": "us-east-2",
	"usw1": "us-west-1",
	"usw2": "us-west-2",

	"cac1": "ca-central-1",
	"sae1": "sa-east-1",

	"euw1": "eu-west-1",
	"euw2": "eu-west-2",
	"euw3": "eu-west-3",
	"euc1": "eu-central-1",
	"eun1": "eu-north-1",

	"aps1":  "ap-south-1",
	"apse1": "ap-southeast-1",
	"apse2": "ap-southeast-2",
	"apne1": "ap-northeast-1",
	"apne2": "ap-northeast-2",
	"apne3": "ap-northeast-3",

	"mes1": "me-south-1",
	"afs1": "af-south-1",
}

var codeByFullName = func() map[string]string {
	reverse := make(map[string]string, len(fullNameByCode))
	for code, name := range fullNameByCode {
		reverse[name] = code
	}
	return reverse
}()

// ToFullName maps a short region code to its canonical full name.
// Values that are not known short codes pass through unchanged, so
// already-canonical full names survive a round through this function.
func ToFullName(region string) string {
	if full, known := fullNameByCode[region]; known {
		return full
	}
	return region
}

// ToShortCode maps a canonical full region name to its short code.
// Values that are not known full names pass through unchanged.
func ToShortCode(region string) string {
	if code, known := codeByFullName[region]; known {
		return code
	}
	return region
}

// IsKnown reports whether region is a known short code or a known
// canonical full name.
func IsKnown(region string) bool {
	if _, known := fullNameByCode[region]; known {
		return true
	}
	_, known := codeByFullName[region]
	return known
}

// ShortCodes returns all known short codes, sorted.
func ShortCodes() []string {
	codes := make([]string, 0, len(fullNameByCode))
	for code := range fullNameByCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// FullNames returns all known canonical full names, sorted.
func FullNames() []string {
	names := make([]string, 0, len(codeByFullName))
	for name := range codeByFullName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
