// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"testing"

	"github.com/bureau-foundation/deployconf/cmd/deployconf/cli"
)

func TestRunCheck_AvailableExitsZero(t *testing.T) {
	path := writeDocument(t, "deploy.jsonc", testDocument)

	params := checkParams{component: "db"}
	if err := runCheck(&params, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCheck_NothingAvailableExitsOne(t *testing.T) {
	path := writeDocument(t, "deploy.jsonc", `{
		"defaults": {"db": {"host": null}},
		"environments": {"dev": {}}
	}`)

	params := checkParams{component: "db"}
	err := runCheck(&params, []string{path})

	var exit *cli.ExitError
	if !errors.As(err, &exit) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if exit.Code != 1 {
		t.Errorf("expected exit code 1, got %d", exit.Code)
	}
}

func TestRunCheck_JSONModeKeepsExitProtocol(t *testing.T) {
	path := writeDocument(t, "deploy.jsonc", `{
		"defaults": {"db": {"host": null}},
		"environments": {"dev": {}}
	}`)

	params := checkParams{component: "db", outputJSON: true}
	err := runCheck(&params, []string{path})

	var exit *cli.ExitError
	if !errors.As(err, &exit) {
		t.Fatalf("expected ExitError in JSON mode too, got %v", err)
	}
}

func TestTargetsCommand_EndToEnd(t *testing.T) {
	path := writeDocument(t, "deploy.jsonc", testDocument)

	command := targetsCommand()
	if err := command.Execute([]string{"--component", "db", path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCommand_ReportsIssues(t *testing.T) {
	clean := writeDocument(t, "clean.jsonc", testDocument)
	if err := validateCommand().Execute([]string{clean}); err != nil {
		t.Fatalf("expected clean document to validate, got %v", err)
	}

	dirty := writeDocument(t, "dirty.jsonc", `{
		"environments": {"prod": {"regions": {"usw2": {}}}}
	}`)
	if err := validateCommand().Execute([]string{dirty}); err == nil {
		t.Error("expected validation issues for short-code region name")
	}
}

func TestRootCommandTree(t *testing.T) {
	root := Root()

	expected := map[string]bool{
		"resolve": false, "check": false, "targets": false,
		"validate": false, "regions": false, "version": false,
	}
	for _, sub := range root.Subcommands {
		if _, wanted := expected[sub.Name]; wanted {
			expected[sub.Name] = true
		}
	}
	for name, present := range expected {
		if !present {
			t.Errorf("expected %s in the command tree", name)
		}
	}
}
