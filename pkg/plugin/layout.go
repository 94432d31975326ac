package plugin

import (
	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/theme"
)

// property returns a template setting every named property to the entry
// value.
func property(names ...string) func(theme.Entry) decl.Block {
	return func(e theme.Entry) decl.Block {
		b := make(decl.Block, 0, len(names))
		for _, n := range names {
			b = append(b, decl.Declaration{Name: n, Value: e.Value})
		}
		return b
	}
}

// templated is a TemplatedRule over scale with a plain property template.
func templated(prefix string, s theme.Scale, properties ...string) TemplatedRule {
	return TemplatedRule{Prefix: prefix, Scale: s, Template: property(properties...)}
}

func preflight(*API) []Rule {
	return []Rule{Static(
		Entry{Selector: "*, ::before, ::after", Block: decl.Pairs("box-sizing", "border-box", "border-width", "0", "border-style", "solid")},
		Entry{Selector: "html", Block: decl.Pairs("line-height", "1.5", "-webkit-text-size-adjust", "100%")},
		Entry{Selector: "body", Block: decl.Pairs("margin", "0", "line-height", "inherit")},
	)}
}

func container(api *API) []Rule {
	tables := []Table{{Class("container", "width", "100%")}}
	for _, bp := range api.Theme("screens") {
		tables = append(tables, Table{Class("container", "max-width", bp.Value)})
	}
	return []Rule{StaticRuleTable{Tables: tables}}
}

func boxSizing(*API) []Rule {
	return []Rule{Values("box", "box-sizing", "border", "border-box", "content", "content-box")}
}

func display(*API) []Rule {
	return []Rule{Static(
		Class("block", "display", "block"),
		Class("inline-block", "display", "inline-block"),
		Class("inline", "display", "inline"),
		Class("flex", "display", "flex"),
		Class("inline-flex", "display", "inline-flex"),
		Class("table", "display", "table"),
		Class("inline-table", "display", "inline-table"),
		Class("table-caption", "display", "table-caption"),
		Class("table-cell", "display", "table-cell"),
		Class("table-column", "display", "table-column"),
		Class("table-column-group", "display", "table-column-group"),
		Class("table-footer-group", "display", "table-footer-group"),
		Class("table-header-group", "display", "table-header-group"),
		Class("table-row-group", "display", "table-row-group"),
		Class("table-row", "display", "table-row"),
		Class("flow-root", "display", "flow-root"),
		Class("grid", "display", "grid"),
		Class("inline-grid", "display", "inline-grid"),
		Class("contents", "display", "contents"),
		Class("list-item", "display", "list-item"),
		Class("hidden", "display", "none"),
	)}
}

func float(*API) []Rule {
	return []Rule{Values("float", "float", "right", "right", "left", "left", "none", "none")}
}

func clearing(*API) []Rule {
	return []Rule{Values("clear", "clear", "left", "left", "right", "right", "both", "both", "none", "none")}
}

func objectFit(*API) []Rule {
	return []Rule{Values("object", "object-fit",
		"contain", "contain", "cover", "cover", "fill", "fill", "none", "none", "scale-down", "scale-down")}
}

func overflow(*API) []Rule {
	var t Table
	for _, axis := range []struct{ prefix, property string }{
		{"overflow", "overflow"},
		{"overflow-x", "overflow-x"},
		{"overflow-y", "overflow-y"},
	} {
		for _, v := range []string{"auto", "hidden", "visible", "scroll"} {
			t = append(t, Class(axis.prefix+"-"+v, axis.property, v))
		}
	}
	return []Rule{StaticRuleTable{Tables: []Table{t}}}
}

func position(*API) []Rule {
	return []Rule{Static(
		Class("static", "position", "static"),
		Class("fixed", "position", "fixed"),
		Class("absolute", "position", "absolute"),
		Class("relative", "position", "relative"),
		Class("sticky", "position", "sticky"),
	)}
}

var insetPrefixes = []struct {
	name       string
	properties []string
}{
	{"inset", []string{"top", "right", "bottom", "left"}},
	{"inset-y", []string{"top", "bottom"}},
	{"inset-x", []string{"right", "left"}},
	{"top", []string{"top"}},
	{"right", []string{"right"}},
	{"bottom", []string{"bottom"}},
	{"left", []string{"left"}},
}

func inset(api *API) []Rule {
	s := api.Theme("inset")
	rules := make([]Rule, 0, len(insetPrefixes))
	for _, p := range insetPrefixes {
		rules = append(rules, templated(p.name, s, p.properties...))
	}
	return rules
}

func visibility(*API) []Rule {
	return []Rule{Static(
		Class("visible", "visibility", "visible"),
		Class("invisible", "visibility", "hidden"),
	)}
}

func zIndex(api *API) []Rule {
	return []Rule{templated("z", api.Theme("zIndex"), "z-index")}
}

func flexDirection(*API) []Rule {
	return []Rule{Values("flex", "flex-direction",
		"row", "row", "row-reverse", "row-reverse", "col", "column", "col-reverse", "column-reverse")}
}

func flexWrap(*API) []Rule {
	return []Rule{Static(
		Class("flex-wrap", "flex-wrap", "wrap"),
		Class("flex-wrap-reverse", "flex-wrap", "wrap-reverse"),
		Class("flex-nowrap", "flex-wrap", "nowrap"),
	)}
}

func flex(api *API) []Rule {
	return []Rule{templated("flex", api.Theme("flex"), "flex")}
}

func flexGrow(api *API) []Rule {
	return []Rule{templated("flex-grow", api.Theme("flexGrow"), "flex-grow")}
}

func flexShrink(api *API) []Rule {
	return []Rule{templated("flex-shrink", api.Theme("flexShrink"), "flex-shrink")}
}

func order(api *API) []Rule {
	return []Rule{templated("order", api.Theme("order"), "order")}
}

func gridTemplateColumns(api *API) []Rule {
	return []Rule{templated("grid-cols", api.Theme("gridTemplateColumns"), "grid-template-columns")}
}

func gridColumn(api *API) []Rule {
	return []Rule{templated("col", api.Theme("gridColumn"), "grid-column")}
}

func gridTemplateRows(api *API) []Rule {
	return []Rule{templated("grid-rows", api.Theme("gridTemplateRows"), "grid-template-rows")}
}

func gridRow(api *API) []Rule {
	return []Rule{templated("row", api.Theme("gridRow"), "grid-row")}
}

func gridAutoFlow(*API) []Rule {
	return []Rule{Values("grid-flow", "grid-auto-flow",
		"row", "row", "col", "column", "row-dense", "row dense", "col-dense", "column dense")}
}

func gap(api *API) []Rule {
	s := api.Theme("gap")
	return []Rule{
		templated("gap", s, "gap"),
		templated("gap-x", s, "column-gap"),
		templated("gap-y", s, "row-gap"),
	}
}

func justifyContent(*API) []Rule {
	return []Rule{Values("justify", "justify-content",
		"start", "flex-start", "end", "flex-end", "center", "center",
		"between", "space-between", "around", "space-around", "evenly", "space-evenly")}
}

func justifyItems(*API) []Rule {
	return []Rule{Values("justify-items", "justify-items",
		"start", "start", "end", "end", "center", "center", "stretch", "stretch")}
}

func alignContent(*API) []Rule {
	return []Rule{Values("content", "align-content",
		"center", "center", "start", "flex-start", "end", "flex-end",
		"between", "space-between", "around", "space-around", "evenly", "space-evenly")}
}

func alignItems(*API) []Rule {
	return []Rule{Values("items", "align-items",
		"start", "flex-start", "end", "flex-end", "center", "center", "baseline", "baseline", "stretch", "stretch")}
}

func alignSelf(*API) []Rule {
	return []Rule{Values("self", "align-self",
		"auto", "auto", "start", "flex-start", "end", "flex-end", "center", "center", "stretch", "stretch", "baseline", "baseline")}
}
