// Package tables holds the declarative, embedded data sources for the
// SAUCE media and font registries (spec §9: "generate them from a single
// declarative source"). Nothing here is runtime-mutable; the sauce package
// parses each file once, on the first lookup that needs it.
package tables

import (
	_ "embed"
)

//go:embed fonts.yaml
var FontsYAML []byte

//go:embed media.yaml
var MediaYAML []byte
