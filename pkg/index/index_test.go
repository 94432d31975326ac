package index

import (
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/errors"
	"github.com/matzehuels/figwind/pkg/plugin"
	"github.com/matzehuels/figwind/pkg/theme"
)

func fixtureTheme(t *testing.T) *theme.Theme {
	t.Helper()
	th, err := theme.Load(filepath.Join("..", "theme", "testdata", "figwind.toml"))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return th
}

func TestClassName(t *testing.T) {
	tests := []struct {
		prefix, key, want string
	}{
		{"m", "4", "m-4"},
		{"m", "-4", "-m-4"},
		{"rounded", theme.DefaultKey, "rounded"},
		{"w", "1/2", `w-1\/2`},
		{"inset", "-1/2", `-inset-1\/2`},
		{"m", "px", "m-px"},
	}
	for _, tt := range tests {
		if got := ClassName(tt.prefix, tt.key); got != tt.want {
			t.Errorf("ClassName(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
		}
	}
}

func TestBuildDefault(t *testing.T) {
	idx, err := Build(theme.Default(), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	forward := map[string]decl.Key{
		"m-4":        "margin:1rem",
		"-mt-2":      "margin-top:-0.5rem",
		"hidden":     "display:none",
		"flex-col":   "flex-direction:column",
		"rounded":    "border-radius:0.25rem",
		"w-1/2":      "width:50%",
		"text-sm":    "font-size:0.875rem",
		"not-italic": "font-style:normal",
		"border":     "border-width:1px",
	}
	for class, want := range forward {
		if got := idx.Forward[class]; got != want {
			t.Errorf("Forward[%q] = %q, want %q", class, got, want)
		}
	}

	reverse := []struct {
		key  decl.Key
		want string
	}{
		{"margin:0px", "m-0"},
		{"margin-top:0px", "mt-0"},
		{"bottom:0px;left:0px;right:0px;top:0px", "inset-0"},
		{"bottom:50%;left:50%;right:50%;top:50%", "inset-1/2"},
		{"bottom:-50%;left:-50%;right:-50%;top:-50%", "-inset-1/2"},
		{"width:50%", "w-1/2"},
		{"width:33.333333%", "w-1/3"},
		{"display:none", "hidden"},
	}
	for _, tt := range reverse {
		if got := idx.Reverse[tt.key]; got != tt.want {
			t.Errorf("Reverse[%q] = %q, want %q", tt.key, got, tt.want)
		}
	}

	for _, class := range []string{"container", "animate-spin"} {
		if _, ok := idx.Forward[class]; ok {
			t.Errorf("%s should not be enumerated", class)
		}
	}
	if _, ok := idx.Forward["-m-0"]; !ok {
		t.Error("denied classes stay in the forward index")
	}
	if !strings.HasPrefix(string(idx.Forward["space-y-4"]), "--tw-space-y-reverse:0;") {
		t.Errorf("space-y-4 = %q", idx.Forward["space-y-4"])
	}
	if got := idx.Order[0]; got != "boxSizing" {
		t.Errorf("first plugin = %q", got)
	}
	if got := idx.Classes("boxSizing"); !reflect.DeepEqual(got, []string{"box-border", "box-content"}) {
		t.Errorf("Classes(boxSizing) = %v", got)
	}
}

func TestBuildFixture(t *testing.T) {
	th := fixtureTheme(t)
	fwd, err := BuildForward(th)
	if err != nil {
		t.Fatal(err)
	}
	rev, err := BuildReverse(th)
	if err != nil {
		t.Fatal(err)
	}

	want := decl.Key("--tw-text-opacity:1;color:rgba(121, 134, 148, var(--tw-text-opacity))")
	if got := fwd["text-neutrals-l40"]; got != want {
		t.Errorf("text-neutrals-l40 = %q", got)
	}
	if got := rev[want]; got != "text-neutrals-l40" {
		t.Errorf("Reverse = %q", got)
	}
	if got := rev["--tw-border-opacity:0.65"]; got != "border-opacity-65" {
		t.Errorf("border opacity 0.65 = %q", got)
	}
	if got := rev["z-index:41"]; got != "z-sidebar" {
		t.Errorf("z-index 41 = %q", got)
	}
	if got := fwd["text-xxs"]; got != "font-size:0.625rem;line-height:0.75rem" {
		t.Errorf("text-xxs = %q", got)
	}
	if got := fwd["text-balance"]; got != "text-wrap:balance" {
		t.Errorf("custom utility = %q", got)
	}
	if got := fwd["truncate-2"]; got != "-webkit-box-orient:vertical;-webkit-line-clamp:2;display:-webkit-box;overflow:hidden" {
		t.Errorf("custom utility = %q", got)
	}
	if _, ok := fwd["cursor-pointer"]; ok {
		t.Error("disabled plugin enumerated")
	}
}

func TestRoundTrip(t *testing.T) {
	th := fixtureTheme(t)
	opts := DefaultOptions()
	idx, err := Build(th, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	n := 0
	err = Enumerate(th, plugin.Specs(th), opts, func(u Utility) {
		n++
		key := decl.Canonicalize(u.Declarations)
		if key == "" {
			t.Errorf("%s: empty key", u.Class)
			return
		}
		class, ok := idx.Reverse[key]
		if !ok {
			if !slices.Contains(opts.Denylist, u.Class) {
				t.Errorf("%s: key %q missing from Reverse", u.Class, key)
			}
			return
		}
		if got := idx.Forward[class]; got != key {
			t.Errorf("Forward[Reverse[%q]] = %q (via %s)", key, got, class)
		}
	})
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if n == 0 {
		t.Fatal("nothing enumerated")
	}
}

func TestLastWriteWins(t *testing.T) {
	th := theme.Default()
	th.Scales["padding"] = theme.Scale{{Key: "a", Value: "1rem"}, {Key: "b", Value: "1rem"}}
	th.Plugins = theme.Plugins("padding")

	rev, err := BuildReverse(th)
	if err != nil {
		t.Fatal(err)
	}
	if got := rev["padding:1rem"]; got != "p-b" {
		t.Errorf("Reverse[padding:1rem] = %q, want p-b", got)
	}
}

func TestOverrides(t *testing.T) {
	th := theme.Default()
	th.Plugins = []theme.PluginSpec{{Name: "inset"}}
	rev, err := BuildReverse(th)
	if err != nil {
		t.Fatal(err)
	}
	if got := rev["bottom:50%;left:50%;right:50%;top:50%"]; got != "inset-2/4" {
		t.Fatalf("without override got %q", got)
	}

	th.Plugins[0].Overrides = []theme.Override{{Rule: "inset-2/4", PlaceBefore: "inset-1/2"}}
	idx, err := Build(th, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got := idx.Reverse["bottom:50%;left:50%;right:50%;top:50%"]; got != "inset-1/2" {
		t.Errorf("with override got %q", got)
	}
	classes := idx.Classes("inset")
	i := indexOf(classes, "inset-2/4")
	if i < 0 || classes[i+1] != "inset-1/2" {
		t.Errorf("inset-2/4 not placed before inset-1/2: %v", classes)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		specs []theme.PluginSpec
		code  errors.Code
	}{
		{"unknown plugin", theme.Plugins("display", "rotate3d"), errors.ErrCodePluginNotFound},
		{
			"missing override source",
			[]theme.PluginSpec{{Name: "inset", Overrides: []theme.Override{{Rule: "inset-9/9", PlaceBefore: "inset-1/2"}}}},
			errors.ErrCodeInvalidOverride,
		},
		{
			"missing override destination",
			[]theme.PluginSpec{{Name: "inset", Overrides: []theme.Override{{Rule: "inset-2/4", PlaceBefore: "inset-7/8"}}}},
			errors.ErrCodeInvalidOverride,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := theme.Default()
			th.Plugins = tt.specs
			idx, err := Build(th, DefaultOptions())
			if !errors.Is(err, tt.code) {
				t.Fatalf("Build() error = %v, want %s", err, tt.code)
			}
			if idx != nil {
				t.Error("Build() returned a partial index")
			}
		})
	}
}

func TestMoveBefore(t *testing.T) {
	entries := func(names ...string) plugin.Table {
		var t plugin.Table
		for _, n := range names {
			t = append(t, plugin.Class(n))
		}
		return t
	}
	tests := []struct {
		name     string
		src, dst int
		want     plugin.Table
	}{
		{"forward", 0, 2, entries("b", "a", "c", "d")},
		{"backward", 3, 1, entries("a", "d", "b", "c")},
		{"adjacent", 1, 2, entries("a", "b", "c", "d")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := entries("a", "b", "c", "d")
			moveBefore(table, tt.src, tt.dst)
			if !reflect.DeepEqual(table, tt.want) {
				t.Errorf("moveBefore(%d, %d) = %v, want %v", tt.src, tt.dst, table, tt.want)
			}
		})
	}
}

func TestKebab(t *testing.T) {
	tests := []struct {
		name string
		in   decl.Block
		want decl.Block
	}{
		{"camel", decl.Pairs("fontSize", "1rem"), decl.Pairs("font-size", "1rem")},
		{"vendor", decl.Pairs("-webkit-font-smoothing", "auto"), decl.Pairs("-webkit-font-smoothing", "auto")},
		{"camel vendor", decl.Pairs("WebkitLineClamp", "2"), decl.Pairs("-webkit-line-clamp", "2")},
		{"camel ms vendor", decl.Pairs("msFlexAlign", "center"), decl.Pairs("-ms-flex-align", "center")},
		{"variable", decl.Pairs("--tw-bg-opacity", "1"), decl.Pairs("--tw-bg-opacity", "1")},
		{"existing kebab kept", decl.Pairs("fontSize", "1rem", "font-size", "2rem"), decl.Pairs("fontSize", "1rem", "font-size", "2rem")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kebab(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("kebab() = %v, want %v", got, tt.want)
			}
		})
	}
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
