// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/deployconf/lib/resolve"
)

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

const testDocument = `{
	// deployment configuration
	"defaults": {
		"db": {"host": null, "port": 5432},
		"dns": {"_regionAgnostic": true, "zone": "example.com"},
	},
	"environments": {
		"dev": {"db": {"host": "localhost"}},
		"prod": {
			"regions": {
				"us-west-2": {"db": {"host": "prod-db"}},
			},
		},
	},
}`

func TestRunResolve_Target(t *testing.T) {
	path := writeDocument(t, "deploy.jsonc", testDocument)

	params := resolveParams{target: "prod-usw2", output: outputNested, delimiter: "."}
	if err := runResolve(&params, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunResolve_TargetConflictsWithEnv(t *testing.T) {
	path := writeDocument(t, "deploy.jsonc", testDocument)

	params := resolveParams{target: "dev", env: "dev", output: outputNested}
	err := runResolve(&params, []string{path})
	if err == nil || !strings.Contains(err.Error(), "--target cannot be combined") {
		t.Errorf("expected mutual-exclusion error, got %v", err)
	}
}

func TestRunResolve_RequiresEnvironment(t *testing.T) {
	path := writeDocument(t, "deploy.jsonc", testDocument)

	params := resolveParams{output: outputNested}
	err := runResolve(&params, []string{path})
	if err == nil || !strings.Contains(err.Error(), "environment is required") {
		t.Errorf("expected missing-environment error, got %v", err)
	}
}

func TestRunResolve_UnknownOutputMode(t *testing.T) {
	path := writeDocument(t, "deploy.jsonc", testDocument)

	params := resolveParams{env: "dev", output: "xml"}
	err := runResolve(&params, []string{path})
	if err == nil || !strings.Contains(err.Error(), "unknown output mode") {
		t.Errorf("expected output-mode error, got %v", err)
	}
}

func TestRunResolve_TypedErrorsReachTheCaller(t *testing.T) {
	path := writeDocument(t, "deploy.jsonc", testDocument)

	params := resolveParams{env: "prod", component: "db", output: outputNested}
	err := runResolve(&params, []string{path})

	var regionRequired *resolve.RegionRequiredError
	if !errors.As(err, &regionRequired) {
		t.Fatalf("expected RegionRequiredError to propagate, got %v", err)
	}
}

func TestWriteDotenv(t *testing.T) {
	var out strings.Builder
	err := writeDotenv(&out, map[string]any{
		"db.host":  "localhost",
		"db.port":  float64(5432),
		"is_debug": true,
		"tags":     []any{"a", "b"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "db.host=localhost\ndb.port=5432\nis_debug=true\ntags=[\"a\",\"b\"]\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}

func TestWriteTerraform(t *testing.T) {
	var out strings.Builder
	err := writeTerraform(&out, map[string]any{"env_name": "dev"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The payload is a string-typed attribute holding JSON, not a
	// nested object.
	if !strings.Contains(out.String(), `"mergedConfig": "{\"env_name\":\"dev\"}"`) {
		t.Errorf("expected string-wrapped config, got %q", out.String())
	}
}
