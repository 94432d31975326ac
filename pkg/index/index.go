// Package index expands the plugin catalog into the lookup tables used by
// translation, sorting and responsive diffing.
//
// [Enumerate] walks every enabled plugin of a theme and reports each
// generated utility as a classname with its declarations. [Build] collects
// the walk into a [Forward] index (classname to canonical key) and a
// [Reverse] index (canonical key to classname).
//
// Enumeration order matters: when two utilities produce the same
// declarations, the one enumerated last owns the key in the reverse index.
// Plugin overrides move a utility within its plugin to steer these
// collisions:
//
//	[[plugins]]
//	name = "inset"
//	overrides = [{ rule = "inset-2/4", place_before = "inset-1/2" }]
package index

import (
	"slices"
	"strings"
	"unicode"

	"github.com/stoewer/go-strcase"

	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/errors"
	"github.com/matzehuels/figwind/pkg/plugin"
	"github.com/matzehuels/figwind/pkg/theme"
)

// Forward maps a classname to its canonical declarations.
type Forward map[string]decl.Key

// Reverse maps canonical declarations to a classname.
type Reverse map[decl.Key]string

// Options are the fixed enumeration filters.
type Options struct {
	// Ignore lists plugins that never contribute utilities.
	Ignore []string
	// SkipPrefixes lists templated rule prefixes whose utilities cannot be
	// inverted from declarations.
	SkipPrefixes []string
	// Denylist lists classnames left out of the reverse index so that an
	// equivalent classname owns their key.
	Denylist []string
}

// DefaultOptions returns the built-in filters.
func DefaultOptions() Options {
	return Options{
		Ignore:       []string{"preflight", "container"},
		SkipPrefixes: []string{"animate"},
		Denylist: []string{
			"-m-0", "-mx-0", "-my-0", "-mt-0", "-mb-0", "-ml-0", "-mr-0",
			"-inset-0", "-inset-x-0", "-inset-y-0", "-top-0", "-right-0", "-bottom-0", "-left-0",
			"-space-x-0", "-space-y-0",
		},
	}
}

// Utility is one enumerated class.
type Utility struct {
	Plugin       string
	Class        string
	Declarations decl.Block
}

// Enumerate calls fn for every utility of the given plugins, in order.
// Plugins disabled in th and plugins in opts.Ignore are skipped. An unknown
// plugin or an override naming a missing utility aborts the walk before fn
// sees any utility of that plugin.
func Enumerate(th *theme.Theme, specs []theme.PluginSpec, opts Options, fn func(Utility)) error {
	api := plugin.NewAPI(th)
	for _, spec := range specs {
		if slices.Contains(opts.Ignore, spec.Name) || !th.Enabled(spec.Name) {
			continue
		}
		gen, err := plugin.Lookup(spec.Name)
		if err != nil {
			return err
		}
		table := expand(gen(api), opts)
		if err := applyOverrides(table, spec); err != nil {
			return err
		}
		for _, e := range table {
			fn(Utility{
				Plugin:       spec.Name,
				Class:        className(e.Selector),
				Declarations: kebab(e.Block),
			})
		}
	}
	return nil
}

// expand flattens a plugin's rules into one ordered table.
func expand(rules []plugin.Rule, opts Options) plugin.Table {
	var table plugin.Table
	for _, r := range rules {
		switch r := r.(type) {
		case plugin.TemplatedRule:
			if slices.Contains(opts.SkipPrefixes, r.Prefix) {
				continue
			}
			for _, e := range r.Scale {
				table = append(table, plugin.Entry{
					Selector: "." + ClassName(r.Prefix, e.Key) + r.Combinator,
					Block:    r.Template(e),
				})
			}
		case plugin.StaticRuleTable:
			table = append(table, r.Merged()...)
		}
	}
	return table
}

// ClassName synthesizes the escaped classname of a templated utility:
// ("m", "4") is "m-4", ("m", "-4") is "-m-4", ("rounded", "DEFAULT") is
// "rounded" and ("w", "1/2") is `w-1\/2`.
func ClassName(prefix, key string) string {
	var b strings.Builder
	neg := strings.HasPrefix(key, "-")
	if neg {
		b.WriteByte('-')
		key = key[1:]
	}
	b.WriteString(prefix)
	if key != theme.DefaultKey {
		b.WriteByte('-')
		b.WriteString(key)
	}
	return strings.ReplaceAll(b.String(), "/", `\/`)
}

// truncate cuts a selector at its first space, dropping combinators.
func truncate(selector string) string {
	if i := strings.IndexByte(selector, ' '); i >= 0 {
		return selector[:i]
	}
	return selector
}

// className is the classname as written in markup: no leading dot, no
// combinator, "/" unescaped.
func className(selector string) string {
	return strings.ReplaceAll(strings.TrimPrefix(truncate(selector), "."), `\/`, "/")
}

// applyOverrides moves each override's rule to immediately precede its
// destination.
func applyOverrides(table plugin.Table, spec theme.PluginSpec) error {
	for _, o := range spec.Overrides {
		src, dst := -1, -1
		for i, e := range table {
			switch className(e.Selector) {
			case o.Rule:
				src = i
			case o.PlaceBefore:
				dst = i
			}
		}
		if src < 0 || dst < 0 {
			return errors.New(errors.ErrCodeInvalidOverride,
				"plugin %s: override %q before %q names a missing utility", spec.Name, o.Rule, o.PlaceBefore)
		}
		moveBefore(table, src, dst)
	}
	return nil
}

func moveBefore(table plugin.Table, src, dst int) {
	e := table[src]
	if src < dst {
		copy(table[src:dst-1], table[src+1:dst])
		table[dst-1] = e
		return
	}
	copy(table[dst+1:src+1], table[dst:src])
	table[dst] = e
}

// kebab converts camelCase property names to kebab-case. Opacity and other
// "--tw-" variables are kept; a converted name never replaces an existing
// kebab-case entry. Vendor prefixes ("WebkitLineClamp", "msFlex") gain
// their leading dash.
func kebab(b decl.Block) decl.Block {
	out := b.Clone()
	for _, d := range b {
		if strings.HasPrefix(d.Name, "--tw-") || strings.ToLower(d.Name) == d.Name {
			continue
		}
		k := strcase.KebabCase(d.Name)
		if vendorPrefixed(d.Name) {
			k = "-" + k
		}
		if k == d.Name || out.Index(k) >= 0 {
			continue
		}
		out[out.Index(d.Name)].Name = k
	}
	return out
}

// vendorPrefixed reports whether a camelCase name carries a vendor prefix:
// a leading capital ("Webkit", "Moz", "O") or "ms" before a capital.
func vendorPrefixed(name string) bool {
	if name == "" {
		return false
	}
	if unicode.IsUpper(rune(name[0])) {
		return true
	}
	return len(name) > 2 && strings.HasPrefix(name, "ms") && unicode.IsUpper(rune(name[2]))
}
