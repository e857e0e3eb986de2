// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package deploydoc parses deployment-configuration documents and
// exposes their structure to the resolver.
//
// Documents are authored as JSONC (JSON extended with // line
// comments, /* block comments */, and trailing commas) or as YAML;
// both parse into the same plain nested mapping. The document shape:
//
//	{
//	  "defaults":     { <component>: {...}, <global metadata>: ... },
//	  "environments": {
//	    <env name>: {
//	      "regions": { <full region name>: {...} },
//	      <component>: {...},
//	      <global metadata>: ...
//	    }
//	  }
//	}
//
// A component is any mapping-valued direct child of defaults, of an
// environment, or of a region — except the reserved "regions" key.
// Scalar and array children are global metadata, merged at every
// level but never treated as components. A nil leaf anywhere inside
// a component marks a required field that a more specific level must
// supply.
//
// The parsed [Document] is read-only input for the resolver and the
// availability scanner; neither mutates it.
package deploydoc
