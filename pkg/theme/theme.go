// Package theme resolves project configuration into the fully merged theme
// that the plugin catalog enumerates.
//
// A [Theme] holds named scales (spacing, colors, opacity, ...), the ordered
// breakpoint list, the plugin list used for index enumeration with optional
// per-plugin override rules, and custom static utilities.
//
// Scale order is significant: it is the order in which utilities are
// enumerated, so it decides which classname wins when two classes produce the
// same declarations. Built-in scales are authored in order; keys read from a
// configuration file are placed in natural sort order.
//
// # Configuration
//
// Theme sources are TOML, YAML or JSON documents:
//
//	disable = ["cursor"]
//
//	[theme.extend.colors.neutrals]
//	l40 = "#798694"
//
//	[theme.extend.zIndex]
//	sidebar = 41
//
// Keys under "theme" replace a scale; keys under "theme.extend" merge into it.
package theme

import (
	"slices"

	"github.com/matzehuels/figwind/pkg/decl"
)

// DefaultKey is the scale key whose classname omits the key suffix
// ("rounded" rather than "rounded-DEFAULT").
const DefaultKey = "DEFAULT"

// Entry is one key of a scale.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	// Extra holds trailing tuple members, such as the line-height of a
	// font size given as [size, line-height].
	Extra []string `json:"extra,omitempty"`
}

// Scale is an ordered mapping from short key to CSS value.
type Scale []Entry

// Get returns the value for key.
func (s Scale) Get(key string) (string, bool) {
	if i := s.index(key); i >= 0 {
		return s[i].Value, true
	}
	return "", false
}

// Keys returns the keys in scale order.
func (s Scale) Keys() []string {
	keys := make([]string, len(s))
	for i, e := range s {
		keys[i] = e.Key
	}
	return keys
}

// With returns a copy of s with key set to value. An existing key keeps its
// position; a new key is appended.
func (s Scale) With(key, value string, extra ...string) Scale {
	out := s.Clone()
	e := Entry{Key: key, Value: value, Extra: extra}
	if i := out.index(key); i >= 0 {
		out[i] = e
		return out
	}
	return append(out, e)
}

// Merge returns a copy of s with every entry of other set in order.
func (s Scale) Merge(other Scale) Scale {
	out := s.Clone()
	for _, e := range other {
		if i := out.index(e.Key); i >= 0 {
			out[i] = e
		} else {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a deep copy of s.
func (s Scale) Clone() Scale {
	if s == nil {
		return nil
	}
	out := make(Scale, len(s))
	for i, e := range s {
		out[i] = Entry{Key: e.Key, Value: e.Value, Extra: slices.Clone(e.Extra)}
	}
	return out
}

func (s Scale) index(key string) int {
	for i, e := range s {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Override moves the utility Rule so that it immediately precedes PlaceBefore
// within its plugin's enumeration. Both are classnames without the leading
// ".", such as "inset-2/4".
type Override struct {
	Rule        string `json:"rule" yaml:"rule" toml:"rule"`
	PlaceBefore string `json:"place_before" yaml:"place_before" toml:"place_before"`
}

// PluginSpec names a plugin and its optional overrides. In configuration it
// is either a bare name or a table with "name" and "overrides".
type PluginSpec struct {
	Name      string     `json:"name"`
	Overrides []Override `json:"overrides,omitempty"`
}

// Plugins builds plugin specs without overrides.
func Plugins(names ...string) []PluginSpec {
	specs := make([]PluginSpec, len(names))
	for i, n := range names {
		specs[i] = PluginSpec{Name: n}
	}
	return specs
}

// Utility is a custom static utility from the "utilities" section.
// Property names are kept as written; camelCase names are kebab-cased during
// index construction.
type Utility struct {
	Selector     string     `json:"selector"`
	Declarations decl.Block `json:"declarations"`
}

// Theme is a fully resolved theme.
type Theme struct {
	Scales map[string]Scale `json:"scales"`
	// Screens lists breakpoints in ascending width.
	Screens Scale `json:"screens"`
	// Plugins is the enumeration order. Empty means the catalog default.
	Plugins   []PluginSpec `json:"plugins,omitempty"`
	Disabled  []string     `json:"disabled,omitempty"`
	Utilities []Utility    `json:"utilities,omitempty"`
}

// Scale returns a copy of the named scale, or nil.
func (t *Theme) Scale(name string) Scale {
	return t.Scales[name].Clone()
}

// Breakpoints returns the breakpoint names in ascending width.
func (t *Theme) Breakpoints() []string {
	return t.Screens.Keys()
}

// Enabled reports whether the plugin is not disabled.
func (t *Theme) Enabled(name string) bool {
	return !slices.Contains(t.Disabled, name)
}

// Clone returns a deep copy of t.
func (t *Theme) Clone() *Theme {
	out := &Theme{
		Scales:    make(map[string]Scale, len(t.Scales)),
		Screens:   t.Screens.Clone(),
		Disabled:  slices.Clone(t.Disabled),
		Utilities: make([]Utility, len(t.Utilities)),
	}
	for name, s := range t.Scales {
		out.Scales[name] = s.Clone()
	}
	for _, p := range t.Plugins {
		out.Plugins = append(out.Plugins, PluginSpec{Name: p.Name, Overrides: slices.Clone(p.Overrides)})
	}
	for i, u := range t.Utilities {
		out.Utilities[i] = Utility{Selector: u.Selector, Declarations: u.Declarations.Clone()}
	}
	return out
}
