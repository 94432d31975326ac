package plugin

import (
	"fmt"

	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/theme"
)

var sides = []struct {
	suffix     string
	properties []string
}{
	{"", nil},
	{"y", []string{"top", "bottom"}},
	{"x", []string{"left", "right"}},
	{"t", []string{"top"}},
	{"r", []string{"right"}},
	{"b", []string{"bottom"}},
	{"l", []string{"left"}},
}

// boxRules expands a box property (padding, margin) into its side variants:
// "p", "py", "px", "pt", ...
func boxRules(prefix, base string, s theme.Scale) []Rule {
	rules := make([]Rule, 0, len(sides))
	for _, side := range sides {
		if side.properties == nil {
			rules = append(rules, templated(prefix, s, base))
			continue
		}
		props := make([]string, len(side.properties))
		for i, p := range side.properties {
			props[i] = base + "-" + p
		}
		rules = append(rules, templated(prefix+side.suffix, s, props...))
	}
	return rules
}

func padding(api *API) []Rule {
	return boxRules("p", "padding", api.Theme("padding"))
}

func margin(api *API) []Rule {
	return boxRules("m", "margin", api.Theme("margin"))
}

const spaceCombinator = " > :not([hidden]) ~ :not([hidden])"

func space(api *API) []Rule {
	s := api.Theme("space")
	axis := func(prefix, start, end, variable string) TemplatedRule {
		return TemplatedRule{
			Prefix:     prefix,
			Scale:      s,
			Combinator: spaceCombinator,
			Template: func(e theme.Entry) decl.Block {
				return decl.Pairs(
					variable, "0",
					start, fmt.Sprintf("calc(%s * calc(1 - var(%s)))", e.Value, variable),
					end, fmt.Sprintf("calc(%s * var(%s))", e.Value, variable),
				)
			},
		}
	}
	return []Rule{
		axis("space-y", "margin-top", "margin-bottom", "--tw-space-y-reverse"),
		axis("space-x", "margin-left", "margin-right", "--tw-space-x-reverse"),
		Static(
			Entry{Selector: ".space-y-reverse" + spaceCombinator, Block: decl.Pairs("--tw-space-y-reverse", "1")},
			Entry{Selector: ".space-x-reverse" + spaceCombinator, Block: decl.Pairs("--tw-space-x-reverse", "1")},
		),
	}
}

func width(api *API) []Rule {
	return []Rule{templated("w", api.Theme("width"), "width")}
}

func minWidth(api *API) []Rule {
	return []Rule{templated("min-w", api.Theme("minWidth"), "min-width")}
}

func maxWidth(api *API) []Rule {
	return []Rule{templated("max-w", api.Theme("maxWidth"), "max-width")}
}

func height(api *API) []Rule {
	return []Rule{templated("h", api.Theme("height"), "height")}
}

func minHeight(api *API) []Rule {
	return []Rule{templated("min-h", api.Theme("minHeight"), "min-height")}
}

func maxHeight(api *API) []Rule {
	return []Rule{templated("max-h", api.Theme("maxHeight"), "max-height")}
}
