package errors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input limits shared by the CLI and the HTTP API.
const (
	// MaxDeclarationsLength bounds a single declaration block.
	MaxDeclarationsLength = 64 * 1024

	// MaxTokens bounds a class list passed to sort or responsive diff.
	MaxTokens = 512

	// MaxDeclarations bounds the number of properties in one block. The
	// translator searches subsets of the remaining properties, so this keeps
	// a hostile request from exploding.
	MaxDeclarations = 24
)

// ValidateDeclarations validates raw declaration text before translation.
// Malformed segments are tolerated by the parser; this only rejects input
// that is empty, oversized, binary or has too many segments.
func ValidateDeclarations(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidInput, "declarations cannot be empty")
	}

	if len(text) > MaxDeclarationsLength {
		return New(ErrCodeInvalidInput, "declarations too long (max %d bytes)", MaxDeclarationsLength)
	}

	if !utf8.ValidString(text) || strings.ContainsRune(text, '\x00') {
		return New(ErrCodeInvalidInput, "declarations contain invalid characters")
	}

	if n := strings.Count(text, ";") + 1; n > MaxDeclarations+1 {
		return New(ErrCodeInvalidInput, "too many declarations (max %d)", MaxDeclarations)
	}

	return nil
}

// ValidateTokens validates a whitespace-separated class list.
func ValidateTokens(tokens string) error {
	fields := strings.Fields(tokens)
	if len(fields) > MaxTokens {
		return New(ErrCodeInvalidInput, "too many classes (max %d)", MaxTokens)
	}

	for _, f := range fields {
		for _, r := range f {
			if unicode.IsControl(r) {
				return New(ErrCodeInvalidInput, "class %q contains control characters", f)
			}
		}
	}

	return nil
}

// breakpointRegex matches breakpoint names such as "md" or "2xl".
var breakpointRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidateBreakpoint validates a breakpoint name.
func ValidateBreakpoint(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "breakpoint cannot be empty")
	}

	if !breakpointRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid breakpoint name: %q", name)
	}

	return nil
}

// pluginNameRegex matches camelCase plugin names such as "backgroundColor".
var pluginNameRegex = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)

// ValidatePluginName validates a plugin name from a theme or a request.
func ValidatePluginName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "plugin name cannot be empty")
	}

	if !pluginNameRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "invalid plugin name: %q", name)
	}

	return nil
}

// ValidateConfigPath validates a theme file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Extension must be .toml, .yaml, .yml or .json
func ValidateConfigPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "config path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	switch {
	case strings.HasSuffix(path, ".toml"),
		strings.HasSuffix(path, ".yaml"),
		strings.HasSuffix(path, ".yml"),
		strings.HasSuffix(path, ".json"):
		return nil
	}
	return New(ErrCodeUnsupported, "unsupported config format: %s", path)
}
