package translate

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/figwind/pkg/plugin"
)

var (
	colorRe  = regexp.MustCompile(`^rgba?\((\d+), ?(\d+), ?(\d+)(?:, ?([\d.]+))?\)$`)
	borderRe = regexp.MustCompile(`^(\d+px) ([a-z]+) (rgba?\(.*\))$`)
)

// rgba is a parsed color value.
type rgba struct {
	rgb   string // "r, g, b"
	alpha string
}

func parseColor(v string) (rgba, bool) {
	m := colorRe.FindStringSubmatch(v)
	if m == nil {
		return rgba{}, false
	}
	c := rgba{rgb: m[1] + ", " + m[2] + ", " + m[3], alpha: m[4]}
	if c.alpha == "" {
		c.alpha = "1"
	}
	return c, true
}

// decompose handles the properties that map to several cooperating
// classes. It reports whether p was consumed.
func (t *translation) decompose(p property) bool {
	switch p.name {
	case "color":
		return t.color(p, "color", plugin.TextOpacityVar, p.value)
	case "background-color":
		return t.color(p, "background-color", plugin.BgOpacityVar, p.value)
	case "border":
		m := borderRe.FindStringSubmatch(p.value)
		if m == nil {
			return false
		}
		if _, ok := parseColor(m[3]); !ok {
			return false
		}
		if class, ok := t.lookup("border-width", m[1]); ok {
			t.emit(class, p.pos)
		}
		if class, ok := t.lookup("border-style", m[2]); ok && !t.isDefault("border-style", class) {
			t.emit(class, p.pos)
		}
		return t.color(p, "border-color", plugin.BorderOpacityVar, m[3])
	}
	return false
}

// color emits the color class of value and its opacity, fused or as two
// classes depending on the options. It reports false when value is not an
// rgb(a) color.
func (t *translation) color(p property, cssProp, variable, value string) bool {
	c, ok := parseColor(value)
	if !ok {
		return false
	}
	colorClass, found := t.lookup(
		variable, "1",
		cssProp, fmt.Sprintf("rgba(%s, var(%s))", c.rgb, variable),
	)
	omitAlpha := t.opts.OmitDefaults && sameNumber(c.alpha, t.cfg.DefaultAlpha[variable])
	alphaClass, alphaFound := "", false
	if !omitAlpha {
		alphaClass, alphaFound = t.alpha(variable, c.alpha)
	}

	if !t.opts.OpacityShorthand {
		if found {
			t.emit(colorClass, p.pos)
		}
		if alphaFound {
			t.emit(alphaClass, p.pos)
		}
		return true
	}
	if !found {
		return true
	}
	if alphaFound {
		colorClass += "/" + alphaClass[strings.LastIndex(alphaClass, "-")+1:]
	}
	t.emit(colorClass, p.pos)
	return true
}

// alpha looks up the opacity class for value, snapping to the nearest
// indexed value when allowed.
func (t *translation) alpha(variable, value string) (string, bool) {
	if class, ok := t.lookup(variable, value); ok {
		return class, true
	}
	if !t.opts.SnapToNearest || !slices.Contains(t.cfg.SnapProperties, variable) {
		return "", false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", false
	}
	// Candidates in hundredths, nearest first: base, base-1, base+1, ...
	base := math.Round(v * 100)
	for d := 0; d <= t.cfg.SnapTolerance; d++ {
		for _, c := range []float64{base - float64(d), base + float64(d)} {
			candidate := strconv.FormatFloat(c/100, 'f', -1, 64)
			if class, ok := t.lookup(variable, candidate); ok {
				return class, true
			}
		}
	}
	return "", false
}

func sameNumber(a, b string) bool {
	x, errA := strconv.ParseFloat(a, 64)
	y, errB := strconv.ParseFloat(b, 64)
	if errA != nil || errB != nil {
		return a == b
	}
	return x == y
}
