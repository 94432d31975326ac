package plugin

import (
	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/theme"
)

func fontFamily(api *API) []Rule {
	return []Rule{templated("font", api.Theme("fontFamily"), "font-family")}
}

// fontSize sets the line height too when the scale entry carries one.
func fontSize(api *API) []Rule {
	return []Rule{TemplatedRule{
		Prefix: "text",
		Scale:  api.Theme("fontSize"),
		Template: func(e theme.Entry) decl.Block {
			b := decl.Pairs("font-size", e.Value)
			if len(e.Extra) > 0 {
				b = b.Set("line-height", e.Extra[0])
			}
			return b
		},
	}}
}

func fontSmoothing(*API) []Rule {
	return []Rule{Static(
		Class("antialiased", "-webkit-font-smoothing", "antialiased", "-moz-osx-font-smoothing", "grayscale"),
		Class("subpixel-antialiased", "-webkit-font-smoothing", "auto", "-moz-osx-font-smoothing", "auto"),
	)}
}

func fontStyle(*API) []Rule {
	return []Rule{Static(
		Class("italic", "font-style", "italic"),
		Class("not-italic", "font-style", "normal"),
	)}
}

func fontWeight(api *API) []Rule {
	return []Rule{templated("font", api.Theme("fontWeight"), "font-weight")}
}

func letterSpacing(api *API) []Rule {
	return []Rule{templated("tracking", api.Theme("letterSpacing"), "letter-spacing")}
}

func lineHeight(api *API) []Rule {
	return []Rule{templated("leading", api.Theme("lineHeight"), "line-height")}
}

func listStyleType(*API) []Rule {
	return []Rule{Values("list", "list-style-type", "none", "none", "disc", "disc", "decimal", "decimal")}
}

func textAlign(*API) []Rule {
	return []Rule{Values("text", "text-align", "left", "left", "center", "center", "right", "right", "justify", "justify")}
}

func textColor(api *API) []Rule {
	return []Rule{colorRule("text", "color", TextOpacityVar, api.Theme("textColor"))}
}

func textOpacity(api *API) []Rule {
	return []Rule{opacityRule("text-opacity", TextOpacityVar, api.Theme("textOpacity"))}
}

func textDecoration(*API) []Rule {
	return []Rule{Static(
		Class("underline", "text-decoration", "underline"),
		Class("line-through", "text-decoration", "line-through"),
		Class("no-underline", "text-decoration", "none"),
	)}
}

func textTransform(*API) []Rule {
	return []Rule{Static(
		Class("uppercase", "text-transform", "uppercase"),
		Class("lowercase", "text-transform", "lowercase"),
		Class("capitalize", "text-transform", "capitalize"),
		Class("normal-case", "text-transform", "none"),
	)}
}

func textOverflow(*API) []Rule {
	return []Rule{Static(
		Class("truncate", "overflow", "hidden", "text-overflow", "ellipsis", "white-space", "nowrap"),
		Class("overflow-ellipsis", "text-overflow", "ellipsis"),
		Class("overflow-clip", "text-overflow", "clip"),
	)}
}

func verticalAlign(*API) []Rule {
	return []Rule{Values("align", "vertical-align",
		"baseline", "baseline", "top", "top", "middle", "middle", "bottom", "bottom",
		"text-top", "text-top", "text-bottom", "text-bottom")}
}

func whitespace(*API) []Rule {
	return []Rule{Values("whitespace", "white-space",
		"normal", "normal", "nowrap", "nowrap", "pre", "pre", "pre-line", "pre-line", "pre-wrap", "pre-wrap")}
}

func wordBreak(*API) []Rule {
	return []Rule{Static(
		Class("break-normal", "overflow-wrap", "normal", "word-break", "normal"),
		Class("break-words", "overflow-wrap", "break-word"),
		Class("break-all", "word-break", "break-all"),
	)}
}
