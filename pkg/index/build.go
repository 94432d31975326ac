package index

import (
	"slices"

	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/plugin"
	"github.com/matzehuels/figwind/pkg/theme"
)

// Index holds both lookup directions built from one theme.
type Index struct {
	Forward Forward `json:"forward"`
	Reverse Reverse `json:"reverse"`
	// Plugins maps each plugin to its classnames in enumeration order.
	Plugins map[string][]string `json:"plugins"`
	// Order lists the plugins in enumeration order.
	Order []string `json:"order"`
}

// Build enumerates th's plugins (or the catalog defaults) and returns the
// resulting index. Nothing is returned when enumeration fails.
func Build(th *theme.Theme, opts Options) (*Index, error) {
	idx := &Index{
		Forward: make(Forward),
		Reverse: make(Reverse),
		Plugins: make(map[string][]string),
	}
	err := Enumerate(th, plugin.Specs(th), opts, func(u Utility) {
		key := decl.Canonicalize(u.Declarations)
		idx.Forward[u.Class] = key
		if !slices.Contains(opts.Denylist, u.Class) {
			idx.Reverse[key] = u.Class
		}
		if _, ok := idx.Plugins[u.Plugin]; !ok {
			idx.Order = append(idx.Order, u.Plugin)
		}
		idx.Plugins[u.Plugin] = append(idx.Plugins[u.Plugin], u.Class)
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// BuildForward returns the forward index of th with the default options.
func BuildForward(th *theme.Theme) (Forward, error) {
	idx, err := Build(th, DefaultOptions())
	if err != nil {
		return nil, err
	}
	return idx.Forward, nil
}

// BuildReverse returns the reverse index of th with the default options.
func BuildReverse(th *theme.Theme) (Reverse, error) {
	idx, err := Build(th, DefaultOptions())
	if err != nil {
		return nil, err
	}
	return idx.Reverse, nil
}

// Classes returns the classnames of a plugin in enumeration order.
func (idx *Index) Classes(plugin string) []string {
	return slices.Clone(idx.Plugins[plugin])
}
