package theme

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/figwind/pkg/errors"
)

func loadFixture(t *testing.T) *Theme {
	t.Helper()
	th, err := Load(filepath.Join("testdata", "figwind.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return th
}

func TestDefault(t *testing.T) {
	th := Default()

	if got := th.Breakpoints(); !reflect.DeepEqual(got, []string{"sm", "md", "lg", "xl", "2xl"}) {
		t.Errorf("Breakpoints() = %v", got)
	}
	if v, _ := th.Scales["spacing"].Get("4"); v != "1rem" {
		t.Errorf("spacing.4 = %q", v)
	}
	if v, _ := th.Scales["margin"].Get("-4"); v != "-1rem" {
		t.Errorf("margin.-4 = %q", v)
	}
	if v, _ := th.Scales["margin"].Get("-0"); v != "0px" {
		t.Errorf("margin.-0 = %q", v)
	}
	if _, ok := th.Scales["margin"].Get("-auto"); ok {
		t.Error("margin should not negate auto")
	}
	if v, _ := th.Scales["inset"].Get("-1/2"); v != "-50%" {
		t.Errorf("inset.-1/2 = %q", v)
	}
	if v, _ := th.Scales["width"].Get("1/3"); v != "33.333333%" {
		t.Errorf("width.1/3 = %q", v)
	}
	if v, _ := th.Scales["borderColor"].Get(DefaultKey); v != "#e5e7eb" {
		t.Errorf("borderColor.DEFAULT = %q", v)
	}

	// Each call returns an independent copy.
	th.Scales["spacing"][0].Value = "changed"
	if v, _ := Default().Scales["spacing"].Get("0"); v != "0px" {
		t.Errorf("Default() shares state: spacing.0 = %q", v)
	}
}

func TestNegative(t *testing.T) {
	in := scale("0", "0px", "px", "1px", "4", "1rem", DefaultKey, "1px", "auto", "auto", "-2", "-0.5rem", "1/2", "50%")
	want := scale("-0", "0px", "-px", "-1px", "-4", "-1rem", "-1/2", "-50%")
	if got := Negative(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Negative() = %v, want %v", got, want)
	}
}

func TestScaleMerge(t *testing.T) {
	s := scale("a", "1", "b", "2")
	got := s.Merge(scale("c", "3", "a", "9"))
	want := scale("a", "9", "b", "2", "c", "3")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
	if v, _ := s.Get("a"); v != "1" {
		t.Error("Merge modified the receiver")
	}
	if got := s.With("b", "5").Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("With existing key moved it: %v", got)
	}
}

func TestLoadFixture(t *testing.T) {
	th := loadFixture(t)

	tests := []struct {
		scale string
		key   string
		want  string
	}{
		{"colors", "neutrals-l40", "#798694"},
		{"textColor", "neutrals-d80", "#262A33"},
		{"backgroundColor", "brands-discord", "#7289DA"},
		{"borderColor", "functional-b10", "#7DC1F4"},
		{"zIndex", "sidebar", "41"},
		{"zIndex", "modal-backdrop", "50"},
		{"spacing", "18", "4.5rem"},
		{"margin", "-18", "-4.5rem"},
		{"padding", "18", "4.5rem"},
		{"fontSize", "xxs", "0.625rem"},
		{"transitionDuration", "1500", "1500ms"},
		{"opacity", "65", "0.65"},
		{"backgroundOpacity", "65", "0.65"},
		{"fontFamily", "display", "Inter, sans-serif"},
		{"fontSize", "sm", "0.875rem"},
	}
	for _, tt := range tests {
		t.Run(tt.scale+"."+tt.key, func(t *testing.T) {
			got, ok := th.Scales[tt.scale].Get(tt.key)
			if !ok || got != tt.want {
				t.Errorf("%s.%s = %q, %v; want %q", tt.scale, tt.key, got, ok, tt.want)
			}
		})
	}

	for _, e := range th.Scales["fontSize"] {
		if e.Key == "xxs" && !reflect.DeepEqual(e.Extra, []string{"0.75rem"}) {
			t.Errorf("fontSize.xxs extra = %v", e.Extra)
		}
	}

	// Extended keys follow the defaults, in natural order.
	keys := th.Scales["zIndex"].Keys()
	if got := keys[len(keys)-3:]; !reflect.DeepEqual(got, []string{"guest-navbar", "modal-backdrop", "sidebar"}) {
		t.Errorf("zIndex tail = %v", got)
	}

	if th.Enabled("cursor") {
		t.Error("cursor should be disabled")
	}
	if !th.Enabled("margin") {
		t.Error("margin should be enabled")
	}

	if len(th.Utilities) != 2 {
		t.Fatalf("utilities = %v", th.Utilities)
	}
	if th.Utilities[0].Selector != ".text-balance" {
		t.Errorf("utility selector = %q", th.Utilities[0].Selector)
	}
	if v, _ := th.Utilities[1].Declarations.Get("WebkitLineClamp"); v != "2" {
		t.Errorf("WebkitLineClamp = %q", v)
	}
}

func TestResolveReplace(t *testing.T) {
	th, err := Resolve(Config{Theme: map[string]any{
		"spacing": map[string]any{"1": "0.25rem", "2": "0.5rem"},
		"screens": map[string]any{"desktop": "1280px", "tablet": map[string]any{"min": "640px"}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if got := th.Scales["spacing"].Keys(); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("spacing keys = %v", got)
	}
	if _, ok := th.Scales["padding"].Get("4"); ok {
		t.Error("padding should follow the replaced spacing scale")
	}
	if got := th.Breakpoints(); !reflect.DeepEqual(got, []string{"tablet", "desktop"}) {
		t.Errorf("Breakpoints() = %v", got)
	}
}

func TestResolveDerivedExtend(t *testing.T) {
	th, err := Resolve(Config{Theme: map[string]any{
		"extend": map[string]any{
			"margin":  map[string]any{"gutter": "1.25rem"},
			"spacing": map[string]any{"13": "3.25rem"},
		},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := th.Scales["margin"].Get("gutter"); v != "1.25rem" {
		t.Errorf("margin.gutter = %q", v)
	}
	if v, _ := th.Scales["margin"].Get("13"); v != "3.25rem" {
		t.Errorf("margin.13 = %q", v)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "scale not a table",
			cfg:  Config{Theme: map[string]any{"spacing": "4px"}},
			want: []string{"theme.spacing"},
		},
		{
			name: "bad plugin names",
			cfg: Config{
				Plugins: Plugins("margin", "Bad Name"),
				Disable: []string{"9x"},
			},
			want: []string{"Bad Name", "9x"},
		},
		{
			name: "every problem reported",
			cfg: Config{
				Theme:     map[string]any{"extend": map[string]any{"colors": map[string]any{"x": true}}},
				Utilities: map[string]map[string]any{"empty": {}},
			},
			want: []string{"colors.x", "utilities.empty"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.cfg)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("Resolve() error = %v, want INVALID_CONFIG", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q does not mention %q", err, w)
				}
			}
		})
	}
}

func TestDecodeFormats(t *testing.T) {
	sources := []struct {
		name   string
		format Format
		src    string
	}{
		{"toml inline", FormatTOML, `
plugins = ["display", { name = "inset", overrides = [{ rule = "inset-2/4", place_before = "inset-1/2" }] }]
[theme.extend.zIndex]
sidebar = 41
`},
		{"toml tables", FormatTOML, `
[[plugins]]
name = "display"

[[plugins]]
name = "inset"

[[plugins.overrides]]
rule = "inset-2/4"
place_before = "inset-1/2"

[theme.extend.zIndex]
sidebar = "41"
`},
		{"yaml", FormatYAML, `
plugins:
  - display
  - name: inset
    overrides:
      - rule: inset-2/4
        place_before: inset-1/2
theme:
  extend:
    zIndex:
      sidebar: 41
`},
		{"json", FormatJSON, `{
  "plugins": ["display", {"name": "inset", "overrides": [{"rule": "inset-2/4", "place_before": "inset-1/2"}]}],
  "theme": {"extend": {"zIndex": {"sidebar": 41}}}
}`},
	}
	want := []PluginSpec{
		{Name: "display"},
		{Name: "inset", Overrides: []Override{{Rule: "inset-2/4", PlaceBefore: "inset-1/2"}}},
	}

	for _, s := range sources {
		t.Run(s.name, func(t *testing.T) {
			th, err := ResolveSource([]byte(s.src), s.format)
			if err != nil {
				t.Fatalf("ResolveSource: %v", err)
			}
			if !reflect.DeepEqual(th.Plugins, want) {
				t.Errorf("Plugins = %+v, want %+v", th.Plugins, want)
			}
			if v, _ := th.Scales["zIndex"].Get("sidebar"); v != "41" {
				t.Errorf("zIndex.sidebar = %q", v)
			}
		})
	}
}

func TestDecodeTOMLFreeFormSections(t *testing.T) {
	src := `
disable = ["cursor"]

[theme.screens]
tablet = "768px"
desktop = "1280px"

[theme.extend.colors.brand]
primary = "#4F46E5"

[utilities.text-balance]
textWrap = "balance"
`
	th, err := ResolveSource([]byte(src), FormatTOML)
	if err != nil {
		t.Fatalf("ResolveSource: %v", err)
	}
	if got := th.Breakpoints(); !reflect.DeepEqual(got, []string{"tablet", "desktop"}) {
		t.Errorf("Breakpoints() = %v", got)
	}
	if th.Enabled("cursor") {
		t.Error("cursor still enabled")
	}
	if len(th.Utilities) != 1 {
		t.Errorf("Utilities = %+v", th.Utilities)
	}

	if _, err := Decode([]byte("colour = 1\n[theme.extend.zIndex]\nsidebar = 41\n"), FormatTOML); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("top-level typo next to free-form sections: %v", err)
	}
}

func TestDecodeUnknownKeys(t *testing.T) {
	tests := []struct {
		format Format
		src    string
	}{
		{FormatTOML, "colour = 1\n"},
		{FormatYAML, "colour: 1\n"},
		{FormatJSON, `{"colour": 1}`},
		{FormatTOML, `plugins = [{ name = "inset", when = "always" }]`},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if _, err := Decode([]byte(tt.src), tt.format); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Decode() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "figwind.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := Load("figwind.ini"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("bad extension: %v", err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	if _, ok := Find(dir); ok {
		t.Fatal("Find() in empty dir")
	}
	for _, name := range []string{"figwind.json", "figwind.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, ok := Find(dir)
	if !ok || filepath.Base(got) != "figwind.yaml" {
		t.Errorf("Find() = %q, %v", got, ok)
	}
}
