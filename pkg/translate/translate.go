// Package translate maps CSS declarations to utility classnames.
//
// # Overview
//
// [Translate] takes a declaration list as reported by a design tool
// inspector and returns the smallest set of classnames from a
// [index.Reverse] that reproduces it:
//
//	rev, _ := index.BuildReverse(th)
//	classes, ok := translate.Translate("border: 1px solid rgba(121,134,148,0.65)", rev, translate.DefaultOptions())
//	// classes == "border border-neutrals-l40/65"
//
// A translation runs in stages. Declarations are parsed and normalized
// (px to rem, hex to rgba, percentages to fractions for line-height).
// Colors and the border shorthand are then decomposed into a color class
// and an opacity class, fused as "color/alpha" in shorthand mode. The
// remaining declarations are matched by trying subsets of decreasing size
// against the reverse index, so a utility covering several declarations
// wins over narrower ones. Widths and heights without a match fall back
// to arbitrary values such as "w-[18.5625rem]".
//
// The engine holds no state between calls. All fixed tables live in
// [Config].
package translate

import (
	"slices"
	"sort"
	"strings"

	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/index"
	"github.com/matzehuels/figwind/pkg/plugin"
)

// Options toggle translation behavior per call.
type Options struct {
	// OmitDefaults drops classes that restate a property's initial value,
	// such as "not-italic" or an opacity of 1.
	OmitDefaults bool `json:"omit_defaults"`
	// OpacityShorthand fuses color and opacity as "bg-red-500/50".
	OpacityShorthand bool `json:"opacity_shorthand"`
	// SnapToNearest accepts an opacity within the configured tolerance
	// when there is no exact match.
	SnapToNearest bool `json:"snap_to_nearest"`
}

// DefaultOptions enables every option.
func DefaultOptions() Options {
	return Options{OmitDefaults: true, OpacityShorthand: true, SnapToNearest: true}
}

// Config is the fixed data the engine works with.
type Config struct {
	// Defaults maps a property to the classname restating its default.
	Defaults map[string]string
	// DefaultAlpha maps an opacity variable to its default value.
	DefaultAlpha map[string]string
	// SnapProperties lists the opacity variables eligible for snapping.
	SnapProperties []string
	// SnapTolerance is the snapping distance in hundredths.
	SnapTolerance int
	// BaseFontSize is the number of pixels in one rem.
	BaseFontSize float64
	// Arbitrary lists properties that fall back to arbitrary values.
	Arbitrary []string
}

// DefaultConfig returns the built-in engine configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: map[string]string{
			"border-style": "border-solid",
			"font-size":    "text-base",
			"font-style":   "not-italic",
			"font-weight":  "font-normal",
			"box-sizing":   "box-border",
			"line-height":  "leading-normal",
		},
		DefaultAlpha: map[string]string{
			plugin.TextOpacityVar:   "1",
			plugin.BgOpacityVar:     "1",
			plugin.BorderOpacityVar: "1",
		},
		SnapProperties: []string{plugin.BorderOpacityVar, plugin.BgOpacityVar},
		SnapTolerance:  3,
		BaseFontSize:   16,
		Arbitrary:      []string{"width", "height"},
	}
}

// Engine translates declarations with a fixed configuration.
type Engine struct {
	cfg Config
}

// New returns an engine using cfg.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

var defaultEngine = New(DefaultConfig())

// Translate translates text with the default configuration. ok is false
// when no classname matched.
func Translate(text string, rev index.Reverse, opts Options) (string, bool) {
	return defaultEngine.Translate(text, rev, opts)
}

// token is an emitted classname and the position of the declaration it
// came from.
type token struct {
	class string
	pos   int
}

// property is a normalized declaration awaiting lookup.
type property struct {
	name  string
	value string
	pos   int
}

// translation is the state of one Translate call.
type translation struct {
	*Engine
	rev    index.Reverse
	opts   Options
	tokens []token
}

// Translate translates text against rev. ok is false when no classname
// matched.
func (e *Engine) Translate(text string, rev index.Reverse, opts Options) (string, bool) {
	block, _ := decl.Parse(text)
	t := &translation{Engine: e, rev: rev, opts: opts}

	var rest []property
	for pos, d := range block {
		p := e.normalize(property{name: d.Name, value: d.Value, pos: pos})
		if t.decompose(p) {
			continue
		}
		rest = append(rest, p)
	}
	t.search(rest)

	if len(t.tokens) == 0 {
		return "", false
	}
	sort.SliceStable(t.tokens, func(i, j int) bool { return t.tokens[i].pos < t.tokens[j].pos })
	classes := make([]string, 0, len(t.tokens))
	for _, tok := range t.tokens {
		classes = append(classes, tok.class)
	}
	return strings.Join(classes, " "), true
}

func (t *translation) emit(class string, pos int) {
	t.tokens = append(t.tokens, token{class: class, pos: pos})
}

// lookup returns the classname of the exact declaration set.
func (t *translation) lookup(kv ...string) (string, bool) {
	class, ok := t.rev[decl.Canonicalize(decl.Pairs(kv...))]
	return class, ok
}

// isDefault reports whether class restates the default of property.
func (t *translation) isDefault(property, class string) bool {
	return t.opts.OmitDefaults && t.cfg.Defaults[property] == class
}

func (t *translation) arbitrary(name string) bool {
	return slices.Contains(t.cfg.Arbitrary, name)
}
