// Package order sorts utility classnames into authoring order.
//
// The authoring order is a fixed plugin order that reads the way people
// write markup: positioning and layout first, then sizing and flex or grid
// placement, spacing, typography, backgrounds, borders and effects. Every
// classname gets a rank, followed by its breakpoint variants in breakpoint
// order, so "flex sm:flex-row" keeps the bare class before its responsive
// override:
//
//	r, _ := order.Build(th)
//	order.Sort("sm:flex-row flex flex-col", r) // "flex flex-col sm:flex-row"
package order

import (
	"math"
	"sort"
	"strings"

	"github.com/matzehuels/figwind/pkg/index"
	"github.com/matzehuels/figwind/pkg/theme"
)

// Rank maps classnames, with and without breakpoint prefix, to their
// position in authoring order.
type Rank map[string]int

var authoringOrder = []string{
	"position", "inset", "zIndex",
	"display", "visibility", "float", "clear", "overflow", "boxSizing", "objectFit",
	"width", "minWidth", "maxWidth", "height", "minHeight", "maxHeight",
	"flex", "flexGrow", "flexShrink", "flexDirection", "flexWrap", "order",
	"gridTemplateColumns", "gridColumn", "gridTemplateRows", "gridRow", "gridAutoFlow", "gap",
	"justifyContent", "justifyItems", "alignContent", "alignItems", "alignSelf",
	"space", "margin", "padding",
	"fontFamily", "fontSize", "fontWeight", "fontStyle", "fontSmoothing",
	"textColor", "textOpacity", "lineHeight", "letterSpacing", "textAlign",
	"textDecoration", "textTransform", "textOverflow", "verticalAlign", "whitespace", "wordBreak", "listStyleType",
	"backgroundColor", "backgroundOpacity", "backgroundImage", "backgroundPosition",
	"backgroundRepeat", "backgroundSize", "backgroundAttachment",
	"borderWidth", "borderStyle", "borderColor", "borderOpacity", "borderRadius", "borderCollapse", "tableLayout",
	"boxShadow", "opacity",
	"transitionProperty", "transitionDuration", "transitionTimingFunction", "transitionDelay", "animation",
	"appearance", "cursor", "outline", "pointerEvents", "resize", "userSelect",
	"utilities",
}

var authoringOverrides = map[string][]theme.Override{
	"display":       {{Rule: "hidden", PlaceBefore: "block"}},
	"flexDirection": {{Rule: "flex-col", PlaceBefore: "flex-row"}},
}

// DefaultOrder returns the authoring plugin order.
func DefaultOrder() []theme.PluginSpec {
	specs := theme.Plugins(authoringOrder...)
	for i := range specs {
		specs[i].Overrides = authoringOverrides[specs[i].Name]
	}
	return specs
}

// Build ranks th's utilities in authoring order.
func Build(th *theme.Theme) (Rank, error) {
	return BuildWith(th, DefaultOrder(), index.Options{Ignore: index.DefaultOptions().Ignore})
}

// BuildWith ranks th's utilities in the order of specs.
func BuildWith(th *theme.Theme, specs []theme.PluginSpec, opts index.Options) (Rank, error) {
	breakpoints := th.Breakpoints()
	r := make(Rank)
	i := 0
	err := index.Enumerate(th, specs, opts, func(u index.Utility) {
		r[u.Class] = i
		i++
		for _, bp := range breakpoints {
			r[bp+":"+u.Class] = i
			i++
		}
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Sort orders the whitespace-separated tokens by rank. The sort is stable
// and tokens without a rank go last.
func Sort(tokens string, r Rank) string {
	fields := strings.Fields(tokens)
	ranks := make([]int, len(fields))
	for i, f := range fields {
		ranks[i] = r.Of(f)
	}
	idx := make([]int, len(fields))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return ranks[idx[a]] < ranks[idx[b]] })

	out := make([]string, len(fields))
	for i, j := range idx {
		out[i] = fields[j]
	}
	return strings.Join(out, " ")
}

// Of returns the rank of token. An opacity suffix ("bg-red-500/50") is
// ignored and an arbitrary value ("w-[18rem]") ranks as the zero value of
// its prefix ("w-0"). Unknown tokens rank last.
func (r Rank) Of(token string) int {
	if n, ok := r[token]; ok {
		return n
	}
	variant, base := "", token
	if i := strings.LastIndexByte(token, ':'); i >= 0 {
		variant, base = token[:i+1], token[i+1:]
	}
	if i := strings.IndexByte(base, '['); i > 0 && strings.HasSuffix(base, "]") {
		if n, ok := r[variant+base[:i]+"0"]; ok {
			return n
		}
	}
	if i := strings.LastIndexByte(base, '/'); i > 0 {
		if n, ok := r[variant+base[:i]]; ok {
			return n
		}
	}
	return math.MaxInt
}
