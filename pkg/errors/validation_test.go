package errors

import (
	"strings"
	"testing"
)

func TestValidateDeclarations(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single", "margin-top: 8px", false},
		{"trailing semicolon", "color: #fff;", false},
		{"malformed segments tolerated", "foo; margin-top: 8px", false},

		{"empty", "", true},
		{"blank", "  \n\t", true},
		{"too long", strings.Repeat("a", MaxDeclarationsLength+1), true},
		{"null byte", "color: red\x00", true},
		{"invalid utf8", "color: \xff", true},
		{"too many", strings.Repeat("a: b;", MaxDeclarations+2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeclarations(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDeclarations(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateTokens(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"classes", "mt-4 relative md:flex w-[18rem] bg-gray-100/50", false},
		{"control char", "mt-4 re\x07lative", true},
		{"too many", strings.Repeat("p-1 ", MaxTokens+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTokens(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTokens() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBreakpoint(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"md", false},
		{"2xl", false},
		{"tablet-wide", false},
		{"", true},
		{"MD", true},
		{"md:", true},
		{"-md", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateBreakpoint(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBreakpoint(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePluginName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"margin", false},
		{"backgroundColor", false},
		{"", true},
		{"Margin", true},
		{"margin-top", true},
		{"../margin", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidatePluginName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePluginName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"toml", "figwind.toml", ""},
		{"yaml", "config/figwind.yaml", ""},
		{"yml", "/etc/figwind.yml", ""},
		{"json", "theme.json", ""},
		{"empty", "", ErrCodeInvalidPath},
		{"control", "theme\n.toml", ErrCodeInvalidPath},
		{"js config", "tailwind.config.js", ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfigPath(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateConfigPath(%q) code = %q, want %q", tt.input, got, tt.wantCode)
			}
		})
	}
}
