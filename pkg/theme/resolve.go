package theme

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/errors"
)

const extendKey = "extend"

// joinedScales flatten list values into a comma-separated value.
var joinedScales = map[string]bool{
	"fontFamily":         true,
	"transitionProperty": true,
}

// Resolve merges cfg into the default theme.
//
// Scales named under "theme" replace the default scale; scales under
// "theme.extend" merge into it, with existing keys keeping their position and
// new keys appended. Derived scales (margin, inset, textColor, ...) are
// recomputed from the merged base scales unless replaced. Every problem found
// is reported at once as an INVALID_CONFIG error.
func Resolve(cfg Config) (*Theme, error) {
	t := &Theme{Scales: baseScales()}
	var errs error

	derived := make(map[string]bool, len(derivedScales))
	for _, d := range derivedScales {
		derived[d.name] = true
	}

	replaced := make(map[string]bool)
	var extend map[string]any
	for _, name := range sortedKeys(cfg.Theme) {
		raw := cfg.Theme[name]
		if name == extendKey {
			m, ok := table(raw)
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("theme.extend: expected a table, got %T", raw))
				continue
			}
			extend = m
			continue
		}
		s, err := toScale(name, raw)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		t.Scales[name] = s
		replaced[name] = true
	}

	extendPass := func(wantDerived bool) {
		for _, name := range sortedKeys(extend) {
			if derived[name] != wantDerived {
				continue
			}
			s, err := toScale(name, extend[name])
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("extend: %w", err))
				continue
			}
			t.Scales[name] = t.Scales[name].Merge(s)
		}
	}

	extendPass(false)
	for _, d := range derivedScales {
		if !replaced[d.name] {
			t.Scales[d.name] = d.build(t)
		}
	}
	extendPass(true)

	t.Screens = sortScreens(t.Scales["screens"])
	t.Scales["screens"] = t.Screens.Clone()

	for _, p := range cfg.Plugins {
		if err := errors.ValidatePluginName(p.Name); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		t.Plugins = append(t.Plugins, p)
	}
	for _, name := range cfg.Disable {
		if err := errors.ValidatePluginName(name); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		t.Disabled = append(t.Disabled, name)
	}

	utilities, err := toUtilities(cfg.Utilities)
	errs = multierr.Append(errs, err)
	t.Utilities = utilities

	if errs != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, errs, "resolve theme")
	}
	return t, nil
}

// toScale flattens a configuration value into a scale. Nested tables join
// their keys with "-" and a nested DEFAULT key maps to its parent.
func toScale(name string, raw any) (Scale, error) {
	m, ok := table(raw)
	if !ok {
		return nil, fmt.Errorf("theme.%s: expected a table, got %T", name, raw)
	}
	var (
		s    Scale
		errs error
	)
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for _, k := range sortedKeys(m) {
			key := joinKey(prefix, k)
			if strings.ContainsAny(key, " \t\n:;") {
				errs = multierr.Append(errs, fmt.Errorf("theme.%s: invalid key %q", name, key))
				continue
			}
			raw := m[k]
			if sub, ok := table(raw); ok {
				raw = sub
			}
			switch v := raw.(type) {
			case map[string]any:
				if name == "screens" {
					if min, ok := v["min"]; ok {
						s = append(s, Entry{Key: key, Value: stringify(min)})
						continue
					}
				}
				walk(key, v)
			case []any:
				e, err := listEntry(name, key, v)
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				s = append(s, e)
			case string, int64, int, float64:
				value := stringify(v)
				if value == "" {
					errs = multierr.Append(errs, fmt.Errorf("theme.%s.%s: empty value", name, key))
					continue
				}
				s = append(s, Entry{Key: key, Value: value})
			default:
				errs = multierr.Append(errs, fmt.Errorf("theme.%s.%s: unsupported value %T", name, key, v))
			}
		}
	}
	walk("", m)
	return s, errs
}

func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == DefaultKey:
		return prefix
	}
	return prefix + "-" + key
}

// listEntry handles list values: joined font stacks, or [value, extra...]
// tuples such as a font size with its line height.
func listEntry(scaleName, key string, list []any) (Entry, error) {
	if len(list) == 0 {
		return Entry{}, fmt.Errorf("theme.%s.%s: empty list", scaleName, key)
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		if sub, ok := table(item); ok {
			item = sub
		}
		switch item := item.(type) {
		case map[string]any:
			for _, k := range sortedKeys(item) {
				parts = append(parts, stringify(item[k]))
			}
		default:
			parts = append(parts, stringify(item))
		}
	}
	if joinedScales[scaleName] {
		return Entry{Key: key, Value: strings.Join(parts, ", ")}, nil
	}
	return Entry{Key: key, Value: parts[0], Extra: parts[1:]}, nil
}

// table accepts both map shapes: YAML decodes a mapping with non-string
// keys (such as spacing steps) into map[any]any.
func table(v any) (map[string]any, bool) {
	switch v := v.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[stringify(k)] = val
		}
		return out, true
	}
	return nil, false
}

func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func toUtilities(raw map[string]map[string]any) ([]Utility, error) {
	var (
		out  []Utility
		errs error
	)
	for _, sel := range sortedKeys(raw) {
		props := raw[sel]
		selector := sel
		if !strings.HasPrefix(selector, ".") {
			selector = "." + selector
		}
		if len(props) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("utilities.%s: no declarations", sel))
			continue
		}
		var b decl.Block
		for _, name := range sortedKeys(props) {
			b = b.Set(name, stringify(props[name]))
		}
		out = append(out, Utility{Selector: selector, Declarations: b})
	}
	return out, errs
}

// sortScreens orders breakpoints by ascending width. Values that do not
// start with a number keep their relative order after the numeric ones.
func sortScreens(s Scale) Scale {
	out := s.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		wi, oki := leadingNumber(out[i].Value)
		wj, okj := leadingNumber(out[j].Value)
		if oki != okj {
			return oki
		}
		return oki && wi < wj
	})
	return out
}

func leadingNumber(v string) (float64, bool) {
	i := 0
	for i < len(v) && (v[i] >= '0' && v[i] <= '9' || v[i] == '.') {
		i++
	}
	f, err := strconv.ParseFloat(v[:i], 64)
	return f, err == nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}
