package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/figwind/pkg/errors"
)

// Format is a theme source format.
type Format string

// Supported source formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ConfigFileNames are the file names searched by [Find], in order.
var ConfigFileNames = []string{"figwind.toml", "figwind.yaml", "figwind.yml", "figwind.json"}

// Config is the raw, unresolved theme source.
type Config struct {
	// Theme maps scale names to values. The "extend" key holds scales that
	// merge into the defaults instead of replacing them.
	Theme map[string]any `toml:"theme" yaml:"theme" json:"theme"`

	// Plugins overrides the enumeration order of the plugin catalog.
	Plugins []PluginSpec `toml:"plugins" yaml:"plugins" json:"plugins"`

	// Disable lists plugins to leave out of every index.
	Disable []string `toml:"disable" yaml:"disable" json:"disable"`

	// Utilities maps custom selectors to their declarations.
	Utilities map[string]map[string]any `toml:"utilities" yaml:"utilities" json:"utilities"`
}

// FormatFromPath infers the source format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported config format: %s", path)
}

// Decode parses a theme source without resolving it.
func Decode(src []byte, format Format) (Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(src)).Decode(&cfg)
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if unknown := unknownTOMLKeys(md.Undecoded()); len(unknown) > 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %v", unknown)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode json")
		}
	default:
		return Config{}, errors.New(errors.ErrCodeUnsupported, "unsupported config format: %q", format)
	}
	return cfg, nil
}

// unknownTOMLKeys drops keys below the free-form sections. BurntSushi/toml
// reports everything decoded into a map[string]any or through
// UnmarshalTOML as undecoded.
func unknownTOMLKeys(keys []toml.Key) []string {
	var out []string
	for _, k := range keys {
		if len(k) == 0 {
			continue
		}
		switch k[0] {
		case "theme", "utilities", "plugins":
			continue
		}
		out = append(out, k.String())
	}
	return out
}

// ResolveSource decodes and resolves a theme source.
func ResolveSource(src []byte, format Format) (*Theme, error) {
	cfg, err := Decode(src, format)
	if err != nil {
		return nil, err
	}
	return Resolve(cfg)
}

// Load reads and resolves the theme file at path.
func Load(path string) (*Theme, error) {
	if err := errors.ValidateConfigPath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "config not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return ResolveSource(src, format)
}

// Find returns the first of [ConfigFileNames] present in dir.
func Find(dir string) (string, bool) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// UnmarshalTOML decodes a bare plugin name or a {name, overrides} table.
func (p *PluginSpec) UnmarshalTOML(v any) error {
	return p.fromValue(v)
}

// UnmarshalYAML decodes a bare plugin name or a {name, overrides} mapping.
func (p *PluginSpec) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	return p.fromValue(v)
}

// UnmarshalJSON decodes a bare plugin name or a {name, overrides} object.
func (p *PluginSpec) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return p.fromValue(v)
}

func (p *PluginSpec) fromValue(v any) error {
	switch v := v.(type) {
	case string:
		*p = PluginSpec{Name: v}
		return nil
	case map[string]any:
		name, _ := v["name"].(string)
		if name == "" {
			return fmt.Errorf("plugin entry without a name: %v", v)
		}
		spec := PluginSpec{Name: name}
		for key := range v {
			if key != "name" && key != "overrides" {
				return fmt.Errorf("plugin %s: unknown key %q", name, key)
			}
		}
		items, err := tables(v["overrides"])
		if err != nil {
			return fmt.Errorf("plugin %s: overrides: %w", name, err)
		}
		for _, item := range items {
			rule, _ := item["rule"].(string)
			before, _ := item["place_before"].(string)
			if rule == "" || before == "" {
				return fmt.Errorf("plugin %s: override needs rule and place_before: %v", name, item)
			}
			spec.Overrides = append(spec.Overrides, Override{Rule: rule, PlaceBefore: before})
		}
		*p = spec
		return nil
	}
	return fmt.Errorf("plugin entry must be a name or a table, got %T", v)
}

// tables normalizes the list shapes the three decoders produce.
func tables(v any) ([]map[string]any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []map[string]any:
		return v, nil
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("expected a table, got %T", item)
			}
			out = append(out, m)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected a list, got %T", v)
}
