package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/figwind/pkg/errors"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(configEnv, "")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTranslateCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "argument",
			args: []string{"translate", "--no-cache", "display: flex; margin-top: 8px"},
			want: "flex mt-2\n",
		},
		{
			name: "unquoted words are joined",
			args: []string{"translate", "--no-cache", "display:", "flex;"},
			want: "flex\n",
		},
		{
			name:  "stdin",
			stdin: "top: 0px; right: 0px;\nbottom: 0px; left: 0px;\n",
			args:  []string{"translate", "--no-cache"},
			want:  "inset-0\n",
		},
		{
			name: "sorted",
			args: []string{"translate", "--no-cache", "--sort", "margin-top: 1rem; position: relative"},
			want: "relative mt-4\n",
		},
		{
			name: "keep defaults",
			args: []string{"translate", "--no-cache", "--keep-defaults", "font-style: normal"},
			want: "not-italic\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestTranslateNoMatch(t *testing.T) {
	out, stderr, err := execute(t, "", "translate", "--no-cache", "clip-path: circle(50%)")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
	if !strings.Contains(stderr, "no utility classes matched") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestTranslateJSON(t *testing.T) {
	out, _, err := execute(t, "", "translate", "--no-cache", "--json", "display: grid")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var got struct {
		Classes string `json:"classes"`
		Matched bool   `json:"matched"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Classes != "grid" || !got.Matched {
		t.Errorf("result = %+v", got)
	}
}

func TestTranslateEmptyInput(t *testing.T) {
	_, _, err := execute(t, "  \n", "translate", "--no-cache")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestSortCommand(t *testing.T) {
	out, _, err := execute(t, "", "sort", "--no-cache", "sm:flex-row flex flex-col")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "flex flex-col sm:flex-row\n" {
		t.Errorf("output = %q", out)
	}
}

func TestResponsiveCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "classes",
			args: []string{"responsive", "--no-cache", "-b", "md", "text-sm h-16", "text-xl h-10"},
			want: "text-sm md:text-xl h-16 md:h-10\n",
		},
		{
			name: "declarations",
			args: []string{"responsive", "--no-cache", "-b", "lg", "--declarations", "display: none", "display: block"},
			want: "hidden lg:block\n",
		},
		{
			name:    "input count mismatch",
			args:    []string{"responsive", "--no-cache", "-b", "md,lg", "p-2", "p-4"},
			wantErr: true,
		},
		{
			name:    "unknown breakpoint",
			args:    []string{"responsive", "--no-cache", "-b", "tablet", "p-2", "p-4"},
			wantErr: true,
		},
		{
			name:    "missing breakpoints flag",
			args:    []string{"responsive", "--no-cache", "p-2", "p-4"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestClassesCommand(t *testing.T) {
	out, _, err := execute(t, "", "classes", "--no-cache", "--plain", "textAlign")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "text-left\ntext-center\ntext-right\ntext-justify\n" {
		t.Errorf("output = %q", out)
	}

	out, _, err = execute(t, "", "classes", "--no-cache", "--plain")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	plugins := strings.Fields(out)
	if len(plugins) == 0 || plugins[0] != "boxSizing" {
		t.Errorf("plugins start with %v", plugins[:min(3, len(plugins))])
	}

	out, _, err = execute(t, "", "classes", "--no-cache", "--plain", "--natural", "zIndex")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "z-0\nz-10\nz-20\n") {
		t.Errorf("natural order = %q", out)
	}

	_, _, err = execute(t, "", "classes", "--no-cache", "nope")
	if !errors.Is(err, errors.ErrCodePluginNotFound) {
		t.Errorf("unknown plugin error = %v", err)
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figwind.toml")
	if err := os.WriteFile(path, []byte("[theme.extend.zIndex]\nsidebar = 41\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "translate", "--no-cache", "--config", path, "z-index: 41")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "z-sidebar\n" {
		t.Errorf("output = %q", out)
	}

	_, _, err = execute(t, "", "translate", "--no-cache", "--config", filepath.Join(t.TempDir(), "missing.toml"), "z-index: 41")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing config error = %v", err)
	}
}

func TestThemeCommand(t *testing.T) {
	out, _, err := execute(t, "", "theme", "--json", "screens")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var screens []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal([]byte(out), &screens); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(screens) != 5 || screens[0].Key != "sm" {
		t.Errorf("screens = %+v", screens)
	}

	if _, _, err := execute(t, "", "theme", "nope"); err == nil {
		t.Error("expected error for unknown scale")
	}
}

func TestIndexExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reverse.json")
	if _, _, err := execute(t, "", "index", "export", "--no-cache", "--reverse", "-o", path); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rev map[string]string
	if err := json.Unmarshal(data, &rev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rev["display:flex"] != "flex" {
		t.Errorf("reverse[display:flex] = %q", rev["display:flex"])
	}
}

func TestCacheBackends(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	if _, _, err := execute(t, "", "translate", "display: flex"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out, _, err := execute(t, "", "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out, "Cleared") {
		t.Errorf("clear output = %q", out)
	}
	out, _, err = execute(t, "", "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("second clear output = %q", out)
	}

	out, _, err = execute(t, "", "cache", "clear", "--cache", "none")
	if err != nil || !strings.Contains(out, "disabled") {
		t.Errorf("clear with no backend = %q, %v", out, err)
	}

	_, _, err = execute(t, "", "translate", "--cache", "bogus", "display: flex")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown backend error = %v", err)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, _, err := execute(t, "", "completion", shell)
		if err != nil {
			t.Fatalf("completion %s: %v", shell, err)
		}
		if !strings.Contains(out, appName) {
			t.Errorf("completion %s does not mention %s", shell, appName)
		}
	}
	if _, _, err := execute(t, "", "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
