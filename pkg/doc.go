// Package pkg provides the core libraries of figwind, a translator from CSS
// declarations to Tailwind-style utility classes.
//
// # Overview
//
// Figwind enumerates every utility class a theme can generate, indexes the
// classes by their canonical declarations and inverts CSS written by hand
// (or exported from a design tool) back into class lists.
//
//	figwind.toml / built-in theme
//	         ↓
//	    [theme] (resolve scales, plugins, custom utilities)
//	         ↓
//	    [plugin] catalog → [index] (forward and reverse indices)
//	         ↓
//	    [translate] (declarations → classes)
//	         ↓
//	    [order] (authoring order) · [responsive] (breakpoint overrides)
//
// # Quick Start
//
//	th := theme.Default()
//	idx, _ := index.Build(th, index.DefaultOptions())
//	classes, ok := translate.Translate("display: flex; margin-top: 8px", idx.Reverse, translate.DefaultOptions())
//	// classes == "flex mt-2", ok == true
//
//	rank, _ := order.Build(th)
//	order.Sort("md:flex-row p-4 flex", rank) // "flex md:flex-row p-4"
//
// # Main Packages
//
// [decl] - Declaration blocks, parsing of raw CSS text and canonical keys.
//
// [theme] - Theme model, built-in defaults and TOML/YAML/JSON configuration.
//
// [plugin] - The catalog of utility generators, one per CSS concern.
//
// [index] - Forward (class → key) and reverse (key → class) indices.
//
// [translate] - The translation engine: normalization, shorthand
// decomposition and the composite search.
//
// [order] - Class ranks and sorting by authoring order.
//
// [responsive] - Merging per-breakpoint class lists.
//
// ## Infrastructure
//
// [pipeline] - Loads and caches indices for a theme and runs every operation
// with validation. Used by the CLI and the HTTP server.
//
// [cache] - Cache backends (file, Redis, MongoDB, null) and key derivation.
//
// [server] - The HTTP API. [httputil] holds its JSON helpers.
//
// [observability] - Hooks for metrics and tracing.
//
// [errors] - Coded errors and input validation.
//
// [buildinfo] - Version information.
//
// # Testing
//
//	go test ./...                                      # All tests
//	go test -run Example ./pkg/...                     # Examples only
//	FIGWIND_TEST_REDIS=localhost:6379 go test ./pkg/cache  # Redis backend
//
// [decl]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/decl
// [theme]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/theme
// [plugin]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/plugin
// [index]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/index
// [translate]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/translate
// [order]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/order
// [responsive]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/responsive
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/server
// [httputil]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/figwind/pkg/buildinfo
package pkg
