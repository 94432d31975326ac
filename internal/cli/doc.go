// Package cli implements the figwind command-line interface.
//
// The commands share one loaded theme and its indices:
//   - translate: CSS declarations to utility classes
//   - sort: order a class list the way authors write it
//   - responsive: merge per-breakpoint class lists into prefixed overrides
//   - classes, index, theme: inspect the generated catalog
//   - serve: run the HTTP API
//   - interactive: translate as you type
//   - cache: manage the index and translation cache
//
// The theme comes from --config, $FIGWIND_CONFIG, or a figwind.toml,
// figwind.yaml, figwind.yml or figwind.json in the working directory, and
// falls back to the built-in default theme.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// also attached to each command's context.
package cli
