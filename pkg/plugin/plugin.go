package plugin

import (
	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/errors"
	"github.com/matzehuels/figwind/pkg/theme"
)

// Rule is a utility registration. It is either a [TemplatedRule] or a
// [StaticRuleTable].
type Rule interface {
	rule()
}

// TemplatedRule registers one utility per key of Scale: the classname is
// derived from Prefix and the key, the declarations from Template.
type TemplatedRule struct {
	Prefix   string
	Scale    theme.Scale
	Template func(e theme.Entry) decl.Block
	// Combinator is appended to each selector, as in
	// ".space-y-4 > :not([hidden]) ~ :not([hidden])".
	Combinator string
}

// Entry is a selector with its declarations.
type Entry struct {
	Selector string
	Block    decl.Block
}

// Table is an ordered selector table.
type Table []Entry

// StaticRuleTable registers fixed selectors. Tables merge left to right; a
// selector repeated in a later table replaces the earlier declarations in
// place.
type StaticRuleTable struct {
	Tables []Table
}

func (TemplatedRule) rule()   {}
func (StaticRuleTable) rule() {}

// Merged returns the tables merged into one.
func (r StaticRuleTable) Merged() Table {
	var out Table
	pos := make(map[string]int)
	for _, t := range r.Tables {
		for _, e := range t {
			if i, ok := pos[e.Selector]; ok {
				out[i] = e
				continue
			}
			pos[e.Selector] = len(out)
			out = append(out, e)
		}
	}
	return out
}

// Static builds a single-table rule.
func Static(entries ...Entry) StaticRuleTable {
	return StaticRuleTable{Tables: []Table{entries}}
}

// Class returns an entry for the class selector "." + name.
func Class(name string, kv ...string) Entry {
	return Entry{Selector: "." + name, Block: decl.Pairs(kv...)}
}

// Values builds a static rule mapping each "prefix-suffix" class to a single
// property with the given value. Suffix and value alternate in sv.
func Values(prefix, property string, sv ...string) StaticRuleTable {
	var t Table
	for i := 0; i+1 < len(sv); i += 2 {
		name := prefix
		if sv[i] != "" {
			name += "-" + sv[i]
		}
		t = append(t, Class(name, property, sv[i+1]))
	}
	return StaticRuleTable{Tables: []Table{t}}
}

// API is the capability surface handed to a generator.
type API struct {
	theme *theme.Theme
}

// NewAPI returns the capability surface for th.
func NewAPI(th *theme.Theme) *API {
	return &API{theme: th}
}

// Theme returns a copy of the named scale.
func (a *API) Theme(name string) theme.Scale {
	return a.theme.Scale(name)
}

// Utilities returns the custom static utilities of the theme.
func (a *API) Utilities() []theme.Utility {
	return a.theme.Utilities
}

// Negative returns the negated entries of s.
func (a *API) Negative(s theme.Scale) theme.Scale {
	return theme.Negative(s)
}

// Generator produces a plugin's rules for a theme.
type Generator func(api *API) []Rule

type registration struct {
	name string
	gen  Generator
}

// catalog lists every plugin in its default enumeration order.
var catalog = []registration{
	{"preflight", preflight},
	{"container", container},
	{"boxSizing", boxSizing},
	{"display", display},
	{"float", float},
	{"clear", clearing},
	{"objectFit", objectFit},
	{"overflow", overflow},
	{"position", position},
	{"inset", inset},
	{"visibility", visibility},
	{"zIndex", zIndex},
	{"flexDirection", flexDirection},
	{"flexWrap", flexWrap},
	{"flex", flex},
	{"flexGrow", flexGrow},
	{"flexShrink", flexShrink},
	{"order", order},
	{"gridTemplateColumns", gridTemplateColumns},
	{"gridColumn", gridColumn},
	{"gridTemplateRows", gridTemplateRows},
	{"gridRow", gridRow},
	{"gridAutoFlow", gridAutoFlow},
	{"gap", gap},
	{"justifyContent", justifyContent},
	{"justifyItems", justifyItems},
	{"alignContent", alignContent},
	{"alignItems", alignItems},
	{"alignSelf", alignSelf},
	{"padding", padding},
	{"margin", margin},
	{"space", space},
	{"width", width},
	{"minWidth", minWidth},
	{"maxWidth", maxWidth},
	{"height", height},
	{"minHeight", minHeight},
	{"maxHeight", maxHeight},
	{"fontFamily", fontFamily},
	{"fontSize", fontSize},
	{"fontSmoothing", fontSmoothing},
	{"fontStyle", fontStyle},
	{"fontWeight", fontWeight},
	{"letterSpacing", letterSpacing},
	{"lineHeight", lineHeight},
	{"listStyleType", listStyleType},
	{"textAlign", textAlign},
	{"textColor", textColor},
	{"textOpacity", textOpacity},
	{"textDecoration", textDecoration},
	{"textTransform", textTransform},
	{"textOverflow", textOverflow},
	{"verticalAlign", verticalAlign},
	{"whitespace", whitespace},
	{"wordBreak", wordBreak},
	{"backgroundAttachment", backgroundAttachment},
	{"backgroundColor", backgroundColor},
	{"backgroundOpacity", backgroundOpacity},
	{"backgroundImage", backgroundImage},
	{"backgroundPosition", backgroundPosition},
	{"backgroundRepeat", backgroundRepeat},
	{"backgroundSize", backgroundSize},
	{"borderRadius", borderRadius},
	{"borderWidth", borderWidth},
	{"borderColor", borderColor},
	{"borderOpacity", borderOpacity},
	{"borderStyle", borderStyle},
	{"borderCollapse", borderCollapse},
	{"tableLayout", tableLayout},
	{"boxShadow", boxShadow},
	{"opacity", opacity},
	{"transitionProperty", transitionProperty},
	{"transitionDuration", transitionDuration},
	{"transitionTimingFunction", transitionTimingFunction},
	{"transitionDelay", transitionDelay},
	{"animation", animation},
	{"appearance", appearance},
	{"cursor", cursor},
	{"outline", outline},
	{"pointerEvents", pointerEvents},
	{"resize", resize},
	{"userSelect", userSelect},
	{"utilities", utilities},
}

var byName = func() map[string]Generator {
	m := make(map[string]Generator, len(catalog))
	for _, r := range catalog {
		m[r.name] = r.gen
	}
	return m
}()

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, error) {
	if gen, ok := byName[name]; ok {
		return gen, nil
	}
	return nil, errors.New(errors.ErrCodePluginNotFound, "plugin %q doesn't exist", name)
}

// Names returns every plugin name in default enumeration order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, r := range catalog {
		names[i] = r.name
	}
	return names
}

// Defaults returns the default plugin specs: every plugin in catalog order,
// with the overrides needed for the built-in scales to resolve collisions
// toward the shorter classname.
func Defaults() []theme.PluginSpec {
	specs := theme.Plugins(Names()...)
	for i := range specs {
		specs[i].Overrides = defaultOverrides[specs[i].Name]
	}
	return specs
}

var defaultOverrides = map[string][]theme.Override{
	"inset": insetOverrides(),
}

// insetOverrides places every "2/4" inset before its "1/2" twin so the
// reduced fraction is enumerated last.
func insetOverrides() []theme.Override {
	var out []theme.Override
	for _, sign := range []string{"", "-"} {
		for _, prefix := range insetPrefixes {
			out = append(out, theme.Override{
				Rule:        sign + prefix.name + "-2/4",
				PlaceBefore: sign + prefix.name + "-1/2",
			})
		}
	}
	return out
}

// Specs returns the enumeration specs of th: its own plugin list, or
// [Defaults] when the theme does not name one.
func Specs(th *theme.Theme) []theme.PluginSpec {
	if len(th.Plugins) > 0 {
		return th.Plugins
	}
	return Defaults()
}
