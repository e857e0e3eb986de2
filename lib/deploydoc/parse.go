// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package deploydoc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result into a Document. This is the native authoring
// format: plain JSON is a valid subset.
func Parse(data []byte) (*Document, error) {
	stripped := jsonc.ToJSON(data)

	var root map[string]any
	if err := json.Unmarshal(stripped, &root); err != nil {
		return nil, fmt.Errorf("parsing deployment config: %w", err)
	}

	return newDocument(root)
}

// ParseYAML unmarshals a YAML-authored document. YAML mappings with
// non-string keys are rejected: the resolver's value domain is
// JSON-like, keyed by strings only.
func ParseYAML(data []byte) (*Document, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing deployment config: %w", err)
	}

	normalized, err := normalizeYAML(root)
	if err != nil {
		return nil, err
	}

	return newDocument(normalized.(map[string]any))
}

// ReadFile reads a deployment-configuration file and parses it. The
// format is chosen by extension: .yaml and .yml parse as YAML, every
// other extension parses as JSONC.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var document *Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		document, err = ParseYAML(data)
	default:
		document, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return document, nil
}

// normalizeYAML rewrites the mapping types produced by the YAML
// decoder into the JSON-like value domain (map[string]any, []any,
// scalars, nil). yaml.v3 already decodes string-keyed mappings as
// map[string]any, but nested mappings under sequences can surface as
// map[any]any; those are converted, and non-string keys rejected.
func normalizeYAML(value any) (any, error) {
	switch typed := value.(type) {
	case map[string]any:
		normalized := make(map[string]any, len(typed))
		for key, element := range typed {
			converted, err := normalizeYAML(element)
			if err != nil {
				return nil, err
			}
			normalized[key] = converted
		}
		return normalized, nil
	case map[any]any:
		normalized := make(map[string]any, len(typed))
		for key, element := range typed {
			name, isString := key.(string)
			if !isString {
				return nil, fmt.Errorf("mapping key %v is not a string", key)
			}
			converted, err := normalizeYAML(element)
			if err != nil {
				return nil, err
			}
			normalized[name] = converted
		}
		return normalized, nil
	case []any:
		normalized := make([]any, len(typed))
		for index, element := range typed {
			converted, err := normalizeYAML(element)
			if err != nil {
				return nil, err
			}
			normalized[index] = converted
		}
		return normalized, nil
	default:
		return typed, nil
	}
}
