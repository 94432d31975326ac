package plugin

import (
	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/theme"
)

func backgroundAttachment(*API) []Rule {
	return []Rule{Values("bg", "background-attachment", "fixed", "fixed", "local", "local", "scroll", "scroll")}
}

func backgroundColor(api *API) []Rule {
	return []Rule{colorRule("bg", "background-color", BgOpacityVar, api.Theme("backgroundColor"))}
}

func backgroundOpacity(api *API) []Rule {
	return []Rule{opacityRule("bg-opacity", BgOpacityVar, api.Theme("backgroundOpacity"))}
}

func backgroundImage(api *API) []Rule {
	return []Rule{templated("bg", api.Theme("backgroundImage"), "background-image")}
}

func backgroundPosition(*API) []Rule {
	return []Rule{Values("bg", "background-position",
		"bottom", "bottom", "center", "center", "left", "left", "left-bottom", "left bottom",
		"left-top", "left top", "right", "right", "right-bottom", "right bottom",
		"right-top", "right top", "top", "top")}
}

func backgroundRepeat(*API) []Rule {
	return []Rule{Values("bg", "background-repeat",
		"repeat", "repeat", "no-repeat", "no-repeat", "repeat-x", "repeat-x",
		"repeat-y", "repeat-y", "repeat-round", "round", "repeat-space", "space")}
}

func backgroundSize(*API) []Rule {
	return []Rule{Values("bg", "background-size", "auto", "auto", "cover", "cover", "contain", "contain")}
}

var corners = []struct {
	suffix     string
	properties []string
}{
	{"", []string{"border-radius"}},
	{"t", []string{"border-top-left-radius", "border-top-right-radius"}},
	{"r", []string{"border-top-right-radius", "border-bottom-right-radius"}},
	{"b", []string{"border-bottom-right-radius", "border-bottom-left-radius"}},
	{"l", []string{"border-top-left-radius", "border-bottom-left-radius"}},
	{"tl", []string{"border-top-left-radius"}},
	{"tr", []string{"border-top-right-radius"}},
	{"br", []string{"border-bottom-right-radius"}},
	{"bl", []string{"border-bottom-left-radius"}},
}

func borderRadius(api *API) []Rule {
	s := api.Theme("borderRadius")
	rules := make([]Rule, 0, len(corners))
	for _, c := range corners {
		prefix := "rounded"
		if c.suffix != "" {
			prefix += "-" + c.suffix
		}
		rules = append(rules, templated(prefix, s, c.properties...))
	}
	return rules
}

func borderWidth(api *API) []Rule {
	s := api.Theme("borderWidth")
	rules := []Rule{templated("border", s, "border-width")}
	for _, side := range []struct{ suffix, name string }{{"t", "top"}, {"r", "right"}, {"b", "bottom"}, {"l", "left"}} {
		rules = append(rules, templated("border-"+side.suffix, s, "border-"+side.name+"-width"))
	}
	return rules
}

// borderColor skips DEFAULT: the default border color belongs to the base
// styles and a "border" class would shadow the border width utility.
func borderColor(api *API) []Rule {
	return []Rule{colorRule("border", "border-color", BorderOpacityVar, api.Theme("borderColor"))}
}

func borderOpacity(api *API) []Rule {
	return []Rule{opacityRule("border-opacity", BorderOpacityVar, api.Theme("borderOpacity"))}
}

func borderStyle(*API) []Rule {
	return []Rule{Values("border", "border-style",
		"solid", "solid", "dashed", "dashed", "dotted", "dotted", "double", "double", "none", "none")}
}

func borderCollapse(*API) []Rule {
	return []Rule{Values("border", "border-collapse", "collapse", "collapse", "separate", "separate")}
}

func tableLayout(*API) []Rule {
	return []Rule{Values("table", "table-layout", "auto", "auto", "fixed", "fixed")}
}

func boxShadow(api *API) []Rule {
	return []Rule{templated("shadow", api.Theme("boxShadow"), "box-shadow")}
}

func opacity(api *API) []Rule {
	return []Rule{templated("opacity", api.Theme("opacity"), "opacity")}
}

func transitionProperty(api *API) []Rule {
	timing, _ := api.Theme("transitionTimingFunction").Get(theme.DefaultKey)
	return []Rule{TemplatedRule{
		Prefix: "transition",
		Scale:  api.Theme("transitionProperty"),
		Template: func(e theme.Entry) decl.Block {
			if e.Value == "none" {
				return decl.Pairs("transition-property", "none")
			}
			return decl.Pairs(
				"transition-property", e.Value,
				"transition-timing-function", timing,
				"transition-duration", "150ms",
			)
		},
	}}
}

func transitionDuration(api *API) []Rule {
	return []Rule{templated("duration", withoutDefault(api.Theme("transitionDuration")), "transition-duration")}
}

func transitionTimingFunction(api *API) []Rule {
	return []Rule{templated("ease", withoutDefault(api.Theme("transitionTimingFunction")), "transition-timing-function")}
}

func transitionDelay(api *API) []Rule {
	return []Rule{templated("delay", api.Theme("transitionDelay"), "transition-delay")}
}

// animation is registered for completeness; keyframe utilities are not
// invertible and the index skips the "animate" prefix.
func animation(api *API) []Rule {
	return []Rule{templated("animate", api.Theme("animation"), "animation")}
}

func appearance(*API) []Rule {
	return []Rule{Static(Class("appearance-none", "appearance", "none"))}
}

func cursor(api *API) []Rule {
	return []Rule{templated("cursor", api.Theme("cursor"), "cursor")}
}

func outline(*API) []Rule {
	return []Rule{Static(
		Class("outline-none", "outline", "2px solid transparent", "outline-offset", "2px"),
		Class("outline-white", "outline", "2px dotted white", "outline-offset", "2px"),
		Class("outline-black", "outline", "2px dotted black", "outline-offset", "2px"),
	)}
}

func pointerEvents(*API) []Rule {
	return []Rule{Values("pointer-events", "pointer-events", "none", "none", "auto", "auto")}
}

func resize(*API) []Rule {
	return []Rule{Values("resize", "resize", "none", "none", "y", "vertical", "x", "horizontal", "", "both")}
}

func userSelect(*API) []Rule {
	return []Rule{Values("select", "user-select", "none", "none", "text", "text", "all", "all", "auto", "auto")}
}

// utilities exposes the theme's custom utilities as one static table.
// Property names may be camelCase; the index kebab-cases them.
func utilities(api *API) []Rule {
	var t Table
	for _, u := range api.Utilities() {
		t = append(t, Entry{Selector: u.Selector, Block: u.Declarations.Clone()})
	}
	if len(t) == 0 {
		return nil
	}
	return []Rule{StaticRuleTable{Tables: []Table{t}}}
}
