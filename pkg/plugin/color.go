package plugin

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/theme"
)

// Opacity variables paired with the color utilities.
const (
	TextOpacityVar   = "--tw-text-opacity"
	BgOpacityVar     = "--tw-bg-opacity"
	BorderOpacityVar = "--tw-border-opacity"
)

// withAlphaVariable returns the declarations of a color utility. Parsable
// hex colors are expanded to rgba with the opacity variable as alpha and
// the variable itself set to 1; other values are used as given.
func withAlphaVariable(property, variable, value string) decl.Block {
	if !strings.HasPrefix(value, "#") {
		return decl.Pairs(property, value)
	}
	c, err := colorful.Hex(expandHex(value))
	if err != nil {
		return decl.Pairs(property, value)
	}
	r, g, b := c.RGB255()
	return decl.Pairs(
		variable, "1",
		property, fmt.Sprintf("rgba(%d, %d, %d, var(%s))", r, g, b, variable),
	)
}

// expandHex turns "#abc" into "#aabbcc". Other lengths are returned as is.
func expandHex(hex string) string {
	if len(hex) != 4 {
		return hex
	}
	return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
}

func colorRule(prefix, property, variable string, s theme.Scale) TemplatedRule {
	return TemplatedRule{
		Prefix: prefix,
		Scale:  withoutDefault(s),
		Template: func(e theme.Entry) decl.Block {
			return withAlphaVariable(property, variable, e.Value)
		},
	}
}

func opacityRule(prefix, variable string, s theme.Scale) TemplatedRule {
	return TemplatedRule{
		Prefix:   prefix,
		Scale:    s,
		Template: func(e theme.Entry) decl.Block { return decl.Pairs(variable, e.Value) },
	}
}

func withoutDefault(s theme.Scale) theme.Scale {
	out := make(theme.Scale, 0, len(s))
	for _, e := range s {
		if e.Key != theme.DefaultKey {
			out = append(out, e)
		}
	}
	return out
}
