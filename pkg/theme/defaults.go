package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// Default returns the built-in theme. Every call returns a fresh copy.
func Default() *Theme {
	t := &Theme{Scales: baseScales()}
	t.Screens = t.Scales["screens"].Clone()
	for _, d := range derivedScales {
		t.Scales[d.name] = d.build(t)
	}
	return t
}

// scale builds a scale from alternating key/value arguments.
func scale(kv ...string) Scale {
	s := make(Scale, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		s = append(s, Entry{Key: kv[i], Value: kv[i+1]})
	}
	return s
}

// shades are the palette steps of every built-in color.
var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

var palettes = []struct {
	name string
	hex  []string
}{
	{"slate", []string{"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"}},
	{"gray", []string{"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"}},
	{"red", []string{"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"}},
	{"orange", []string{"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407"}},
	{"yellow", []string{"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"}},
	{"green", []string{"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"}},
	{"teal", []string{"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a", "#042f2e"}},
	{"blue", []string{"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"}},
	{"indigo", []string{"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"}},
	{"purple", []string{"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764"}},
	{"pink", []string{"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843", "#500724"}},
}

func colors() Scale {
	s := scale(
		"transparent", "transparent",
		"current", "currentColor",
		"black", "#000000",
		"white", "#ffffff",
	)
	for _, p := range palettes {
		for i, shade := range shades {
			s = append(s, Entry{Key: p.name + "-" + shade, Value: p.hex[i]})
		}
	}
	return s
}

// spacing is the default spacing scale: key -> pixels.
var spacingPx = []struct {
	key string
	px  float64
}{
	{"0", 0}, {"px", 1}, {"0.5", 2}, {"1", 4}, {"1.5", 6}, {"2", 8}, {"2.5", 10},
	{"3", 12}, {"3.5", 14}, {"4", 16}, {"5", 20}, {"6", 24}, {"7", 28}, {"8", 32},
	{"9", 36}, {"10", 40}, {"11", 44}, {"12", 48}, {"14", 56}, {"16", 64},
	{"20", 80}, {"24", 96}, {"28", 112}, {"32", 128}, {"36", 144}, {"40", 160},
	{"44", 176}, {"48", 192}, {"52", 208}, {"56", 224}, {"60", 240}, {"64", 256},
	{"72", 288}, {"80", 320}, {"96", 384},
}

func spacing() Scale {
	s := make(Scale, 0, len(spacingPx))
	for _, sp := range spacingPx {
		var v string
		switch sp.key {
		case "0":
			v = "0px"
		case "px":
			v = "1px"
		default:
			v = strconv.FormatFloat(sp.px/16, 'f', -1, 64) + "rem"
		}
		s = append(s, Entry{Key: sp.key, Value: v})
	}
	return s
}

// fractions returns n/d percentages for the given denominators. Unreduced
// fractions ("2/4") precede reduced ones ("1/2") so that the reduced form is
// enumerated last among equal values.
func fractions(denominators ...int) Scale {
	var unreduced, reduced Scale
	for _, d := range denominators {
		for n := 1; n < d; n++ {
			pct := strconv.FormatFloat(float64(n)*100/float64(d), 'f', 6, 64)
			pct = strings.TrimRight(strings.TrimRight(pct, "0"), ".")
			e := Entry{Key: fmt.Sprintf("%d/%d", n, d), Value: pct + "%"}
			if gcd(n, d) == 1 {
				reduced = append(reduced, e)
			} else {
				unreduced = append(unreduced, e)
			}
		}
	}
	return append(unreduced, reduced...)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// numbered returns keys from..to mapped through format.
func numbered(from, to int, format string) Scale {
	var s Scale
	for i := from; i <= to; i++ {
		s = append(s, Entry{Key: strconv.Itoa(i), Value: strings.ReplaceAll(format, "{n}", strconv.Itoa(i))})
	}
	return s
}

func baseScales() map[string]Scale {
	return map[string]Scale{
		"screens": scale(
			"sm", "640px",
			"md", "768px",
			"lg", "1024px",
			"xl", "1280px",
			"2xl", "1536px",
		),
		"colors":  colors(),
		"spacing": spacing(),
		"opacity": scale(
			"0", "0", "5", "0.05", "10", "0.1", "20", "0.2", "25", "0.25",
			"30", "0.3", "40", "0.4", "50", "0.5", "60", "0.6", "70", "0.7",
			"75", "0.75", "80", "0.8", "90", "0.9", "95", "0.95", "100", "1",
		),
		"zIndex": scale("auto", "auto", "0", "0", "10", "10", "20", "20", "30", "30", "40", "40", "50", "50"),
		"order": append(numbered(1, 12, "{n}"), scale(
			"first", "-9999",
			"last", "9999",
			"none", "0",
		)...),
		"fontFamily": scale(
			"sans", `ui-sans-serif, system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`,
			"serif", `ui-serif, Georgia, Cambria, "Times New Roman", Times, serif`,
			"mono", `ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace`,
		),
		"fontSize": scale(
			"xs", "0.75rem", "sm", "0.875rem", "base", "1rem", "lg", "1.125rem",
			"xl", "1.25rem", "2xl", "1.5rem", "3xl", "1.875rem", "4xl", "2.25rem",
			"5xl", "3rem", "6xl", "3.75rem", "7xl", "4.5rem", "8xl", "6rem", "9xl", "8rem",
		),
		"fontWeight": scale(
			"thin", "100", "extralight", "200", "light", "300", "normal", "400",
			"medium", "500", "semibold", "600", "bold", "700", "extrabold", "800", "black", "900",
		),
		"lineHeight": scale(
			"3", "0.75rem", "4", "1rem", "5", "1.25rem", "6", "1.5rem", "7", "1.75rem",
			"8", "2rem", "9", "2.25rem", "10", "2.5rem",
			"none", "1", "tight", "1.25", "snug", "1.375", "normal", "1.5", "relaxed", "1.625", "loose", "2",
		),
		"letterSpacing": scale(
			"tighter", "-0.05em", "tight", "-0.025em", "normal", "0em",
			"wide", "0.025em", "wider", "0.05em", "widest", "0.1em",
		),
		"borderRadius": scale(
			"none", "0px", "sm", "0.125rem", DefaultKey, "0.25rem", "md", "0.375rem",
			"lg", "0.5rem", "xl", "0.75rem", "2xl", "1rem", "3xl", "1.5rem", "full", "9999px",
		),
		"borderWidth": scale(DefaultKey, "1px", "0", "0px", "2", "2px", "4", "4px", "8", "8px"),
		"boxShadow": scale(
			"sm", "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
			DefaultKey, "0 1px 3px 0 rgba(0, 0, 0, 0.1), 0 1px 2px 0 rgba(0, 0, 0, 0.06)",
			"md", "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
			"lg", "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)",
			"xl", "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04)",
			"2xl", "0 25px 50px -12px rgba(0, 0, 0, 0.25)",
			"inner", "inset 0 2px 4px 0 rgba(0, 0, 0, 0.06)",
			"none", "none",
		),
		"backgroundImage": scale(
			"none", "none",
			"gradient-to-t", "linear-gradient(to top, var(--tw-gradient-stops))",
			"gradient-to-r", "linear-gradient(to right, var(--tw-gradient-stops))",
			"gradient-to-b", "linear-gradient(to bottom, var(--tw-gradient-stops))",
			"gradient-to-l", "linear-gradient(to left, var(--tw-gradient-stops))",
		),
		"gridTemplateColumns": append(scale("none", "none"), numbered(1, 12, "repeat({n}, minmax(0, 1fr))")...),
		"gridTemplateRows":    append(scale("none", "none"), numbered(1, 6, "repeat({n}, minmax(0, 1fr))")...),
		"gridColumn":          gridSpans(12),
		"gridRow":             gridSpans(6),
		"flex": scale(
			"1", "1 1 0%",
			"auto", "1 1 auto",
			"initial", "0 1 auto",
			"none", "none",
		),
		"flexGrow":   scale("0", "0", DefaultKey, "1"),
		"flexShrink": scale("0", "0", DefaultKey, "1"),
		"minWidth":   scale("0", "0px", "full", "100%", "min", "min-content", "max", "max-content"),
		"minHeight":  scale("0", "0px", "full", "100%", "screen", "100vh"),
		"maxWidth": scale(
			"none", "none", "0", "0rem", "xs", "20rem", "sm", "24rem", "md", "28rem",
			"lg", "32rem", "xl", "36rem", "2xl", "42rem", "3xl", "48rem", "4xl", "56rem",
			"5xl", "64rem", "6xl", "72rem", "7xl", "80rem", "full", "100%",
			"min", "min-content", "max", "max-content", "prose", "65ch",
		),
		"transitionProperty": scale(
			"none", "none",
			"all", "all",
			DefaultKey, "background-color, border-color, color, fill, stroke, opacity, box-shadow, transform",
			"colors", "background-color, border-color, color, fill, stroke",
			"opacity", "opacity",
			"shadow", "box-shadow",
			"transform", "transform",
		),
		"transitionDuration": scale(
			"75", "75ms", "100", "100ms", "150", "150ms", "200", "200ms",
			"300", "300ms", "500", "500ms", "700", "700ms", "1000", "1000ms",
		),
		"transitionDelay": scale(
			"75", "75ms", "100", "100ms", "150", "150ms", "200", "200ms",
			"300", "300ms", "500", "500ms", "700", "700ms", "1000", "1000ms",
		),
		"transitionTimingFunction": scale(
			DefaultKey, "cubic-bezier(0.4, 0, 0.2, 1)",
			"linear", "linear",
			"in", "cubic-bezier(0.4, 0, 1, 1)",
			"out", "cubic-bezier(0, 0, 0.2, 1)",
			"in-out", "cubic-bezier(0.4, 0, 0.2, 1)",
		),
		"animation": scale(
			"none", "none",
			"spin", "spin 1s linear infinite",
			"ping", "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
			"pulse", "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite",
			"bounce", "bounce 1s infinite",
		),
		"cursor": scale(
			"auto", "auto", "default", "default", "pointer", "pointer", "wait", "wait",
			"text", "text", "move", "move", "help", "help", "not-allowed", "not-allowed",
		),
	}
}

func gridSpans(n int) Scale {
	s := scale("auto", "auto")
	for i := 1; i <= n; i++ {
		s = append(s, Entry{Key: fmt.Sprintf("span-%d", i), Value: fmt.Sprintf("span %d / span %d", i, i)})
	}
	return append(s, Entry{Key: "span-full", Value: "1 / -1"})
}

// derivedScales are computed from base scales after configuration has been
// applied, unless the configuration replaces them outright.
var derivedScales = []struct {
	name  string
	build func(t *Theme) Scale
}{
	{"textColor", func(t *Theme) Scale { return t.Scale("colors") }},
	{"backgroundColor", func(t *Theme) Scale { return t.Scale("colors") }},
	{"borderColor", func(t *Theme) Scale {
		return t.Scale("colors").Merge(scale(DefaultKey, t.Scales["colors"].valueOr("gray-200", "currentColor")))
	}},
	{"textOpacity", func(t *Theme) Scale { return t.Scale("opacity") }},
	{"backgroundOpacity", func(t *Theme) Scale { return t.Scale("opacity") }},
	{"borderOpacity", func(t *Theme) Scale { return t.Scale("opacity") }},
	{"padding", func(t *Theme) Scale { return t.Scale("spacing") }},
	{"gap", func(t *Theme) Scale { return t.Scale("spacing") }},
	{"margin", func(t *Theme) Scale {
		sp := t.Scale("spacing")
		return scale("auto", "auto").Merge(sp).Merge(Negative(sp))
	}},
	{"space", func(t *Theme) Scale {
		sp := t.Scale("spacing")
		return sp.Merge(Negative(sp))
	}},
	{"inset", func(t *Theme) Scale {
		s := t.Scale("spacing").
			Merge(scale("1/2", "50%", "1/3", "33.333333%", "2/3", "66.666667%", "1/4", "25%", "2/4", "50%", "3/4", "75%", "full", "100%"))
		return scale("auto", "auto").Merge(s).Merge(Negative(s))
	}},
	{"width", func(t *Theme) Scale {
		return scale("auto", "auto").
			Merge(t.Scale("spacing")).
			Merge(fractions(2, 3, 4, 5, 6, 12)).
			Merge(scale("full", "100%", "screen", "100vw", "min", "min-content", "max", "max-content"))
	}},
	{"height", func(t *Theme) Scale {
		return scale("auto", "auto").
			Merge(t.Scale("spacing")).
			Merge(fractions(2, 3, 4, 5, 6)).
			Merge(scale("full", "100%", "screen", "100vh"))
	}},
	{"maxHeight", func(t *Theme) Scale {
		return t.Scale("spacing").Merge(scale("full", "100%", "screen", "100vh"))
	}},
}

func (s Scale) valueOr(key, fallback string) string {
	if v, ok := s.Get(key); ok {
		return v
	}
	return fallback
}

// Negative returns the negated entries of s: key "4" becomes "-4" with value
// "-1rem". Zero values keep their value ("-0" maps to "0px"); entries whose
// value is not a number with an optional unit are dropped, as are DEFAULT and
// already negative keys.
func Negative(s Scale) Scale {
	var out Scale
	for _, e := range s {
		if e.Key == DefaultKey || strings.HasPrefix(e.Key, "-") || !negatable(e.Value) {
			continue
		}
		v := e.Value
		if !isZero(v) {
			v = "-" + v
		}
		out = append(out, Entry{Key: "-" + e.Key, Value: v})
	}
	return out
}

// negatable reports whether v is an unsigned number with an optional unit.
func negatable(v string) bool {
	i := 0
	for i < len(v) && (v[i] >= '0' && v[i] <= '9' || v[i] == '.') {
		i++
	}
	if i == 0 {
		return false
	}
	for _, r := range v[i:] {
		if !(r >= 'a' && r <= 'z' || r == '%') {
			return false
		}
	}
	return true
}

func isZero(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimRight(v, "abcdefghijklmnopqrstuvwxyz%"), 64)
	return err == nil && f == 0
}
