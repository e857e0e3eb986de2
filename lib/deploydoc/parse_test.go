// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package deploydoc

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse_JSONCWithCommentsAndTrailingCommas(t *testing.T) {
	document, err := Parse([]byte(`{
		// deployment defaults
		"defaults": {
			"db": {
				"host": null, /* required */
				"port": 5432,
			},
			"owner": "platform",
		},
		"environments": {
			"dev": {
				"db": { "host": "localhost" },
			},
		},
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if document.Defaults()["owner"] != "platform" {
		t.Errorf("expected owner metadata, got %v", document.Defaults()["owner"])
	}
	if !document.HasEnvironment("dev") {
		t.Error("expected dev environment to be declared")
	}

	db := Component(document.Defaults(), "db")
	if value, present := db["host"]; !present || value != nil {
		t.Errorf("expected db.host to be a null sentinel, got %v (present=%v)", value, present)
	}
	if db["port"] != float64(5432) {
		t.Errorf("expected db.port=5432, got %v", db["port"])
	}
}

func TestParse_RejectsNonMappingSections(t *testing.T) {
	if _, err := Parse([]byte(`{"defaults": ["not", "a", "mapping"]}`)); err == nil {
		t.Error("expected error for array-valued defaults section")
	}
	if _, err := Parse([]byte(`{"environments": "nope"}`)); err == nil {
		t.Error("expected error for scalar environments section")
	}
	if _, err := Parse([]byte(`not json at all`)); err == nil {
		t.Error("expected error for malformed document")
	}
}

func TestParseYAML(t *testing.T) {
	document, err := ParseYAML([]byte(`
defaults:
  db:
    host: null
    replicas: [1, 2]
environments:
  prod:
    regions:
      us-west-2:
        db:
          host: prod-db
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	region := document.Region("prod", "us-west-2")
	expected := map[string]any{"db": map[string]any{"host": "prod-db"}}
	if !reflect.DeepEqual(region, expected) {
		t.Errorf("expected %v, got %v", expected, region)
	}
}

func TestReadFile_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	jsoncPath := filepath.Join(dir, "deploy.jsonc")
	if err := os.WriteFile(jsoncPath, []byte(`{"environments": {"dev": {}}} // ok`), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "deploy.yaml")
	if err := os.WriteFile(yamlPath, []byte("environments:\n  dev: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsoncPath, yamlPath} {
		document, err := ReadFile(path)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", path, err)
		}
		if !document.HasEnvironment("dev") {
			t.Errorf("%s: expected dev environment", path)
		}
	}
}

func TestReadFile_WrapsPathIntoErrors(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.jsonc"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
