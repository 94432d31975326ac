// Package responsive merges the classnames translated at several
// breakpoints into one list of responsive overrides.
//
// Classnames are grouped by the CSS property they control. For every
// property whose classname changes between breakpoints, the base classname
// is kept bare and each change is prefixed with its breakpoint:
//
//	responsive.DiffStrings("text-sm h-16", "text-xl h-10", fwd, "md")
//	// "text-sm md:text-xl h-16 md:h-10"
//
// Properties that do not change produce nothing.
package responsive

import (
	"strings"

	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/index"
)

type group struct {
	tokens []string // per input, "" when absent
}

// Diff compares inputs, where inputs[0] is the base breakpoint and inputs[i]
// applies from breakpoints[i-1] on. Inputs without a breakpoint are
// ignored.
func Diff(inputs [][]string, fwd index.Forward, breakpoints []string) string {
	if len(inputs) > len(breakpoints)+1 {
		inputs = inputs[:len(breakpoints)+1]
	}

	var order []string
	groups := make(map[string]*group)
	for i, tokens := range inputs {
		for _, tok := range tokens {
			key := Property(tok, fwd)
			g, ok := groups[key]
			if !ok {
				g = &group{tokens: make([]string, len(inputs))}
				groups[key] = g
				order = append(order, key)
			}
			g.tokens[i] = tok
		}
	}

	var out []string
	for _, key := range order {
		g := groups[key]
		if distinct(g.tokens) < 2 {
			continue
		}
		prev := ""
		for i, tok := range g.tokens {
			if tok == "" || tok == prev {
				continue
			}
			if i == 0 {
				out = append(out, tok)
			} else {
				out = append(out, breakpoints[i-1]+":"+tok)
			}
			prev = tok
		}
	}
	return strings.Join(out, " ")
}

// DiffStrings diffs two whitespace-separated classname lists, the second
// applying from breakpoint bp on.
func DiffStrings(base, other string, fwd index.Forward, bp string) string {
	return Diff([][]string{strings.Fields(base), strings.Fields(other)}, fwd, []string{bp})
}

// Property returns the grouping key of token: the first non-variable
// property its utility sets. Opacity suffixes are ignored, arbitrary values
// resolve through the zero utility of their prefix and unknown tokens are
// their own group.
func Property(token string, fwd index.Forward) string {
	if key, ok := fwd[token]; ok {
		return property(key)
	}
	if i := strings.IndexByte(token, '['); i > 0 && strings.HasSuffix(token, "]") {
		if key, ok := fwd[token[:i]+"0"]; ok {
			return property(key)
		}
		return token[:i]
	}
	if i := strings.LastIndexByte(token, '/'); i > 0 {
		if key, ok := fwd[token[:i]]; ok {
			return property(key)
		}
	}
	return token
}

func property(key decl.Key) string {
	names := key.Properties()
	for _, n := range names {
		if !strings.HasPrefix(n, "--") {
			return n
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return string(key)
}

func distinct(tokens []string) int {
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if t != "" {
			seen[t] = struct{}{}
		}
	}
	return len(seen)
}
