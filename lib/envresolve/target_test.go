// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envresolve

import "testing"

func TestSplitTarget(t *testing.T) {
	tests := []struct {
		target string
		env    string
		region string
	}{
		{"dev-usw2", "dev", "us-west-2"},
		{"dev-us-west-2", "dev", "us-west-2"},
		{"my-env-name-usw2", "my-env-name", "us-west-2"},
		{"my-env-name-eu-central-1", "my-env-name", "eu-central-1"},
		{"prod-apse2", "prod", "ap-southeast-2"},
		{"justenv", "justenv", ""},
		{"dev-unknownregion", "dev-unknownregion", ""},
		// Full names win before short codes even for single-letter envs.
		{"x-ap-southeast-1", "x", "ap-southeast-1"},
	}

	for _, test := range tests {
		env, region := SplitTarget(test.target)
		if env != test.env || region != test.region {
			t.Errorf("SplitTarget(%q) = (%q, %q), expected (%q, %q)",
				test.target, env, region, test.env, test.region)
		}
	}
}

func TestSplitTarget_RegionAloneIsEnvironment(t *testing.T) {
	// A bare region string has no "-region" suffix beyond itself; the
	// split requires a non-empty environment part.
	env, region := SplitTarget("usw2")
	if env != "usw2" || region != "" {
		t.Errorf("expected bare code to stay an env name, got (%q, %q)", env, region)
	}
}
