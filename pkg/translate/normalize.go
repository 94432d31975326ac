package translate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	pxRe      = regexp.MustCompile(`(?:^|[^\d.])(\d+)px`)
	percentRe = regexp.MustCompile(`(?:^|[^\d.])(\d+)%`)
	hexRe     = regexp.MustCompile(`#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
)

// normalize renames and converts a declaration into the form the index
// uses.
func (e *Engine) normalize(p property) property {
	switch {
	case p.name == "background" && isImage(p.value):
		p.name = "background-image"
	case p.name == "background":
		p.name = "background-color"
	}

	if p.name != "border" && p.value != "0px" {
		p.value = replaceFirst(pxRe, p.value, func(digits string) string {
			px, _ := strconv.Atoi(digits)
			return strconv.FormatFloat(float64(px)/e.cfg.BaseFontSize, 'f', -1, 64) + "rem"
		})
	}
	if p.name == "line-height" {
		p.value = replaceFirst(percentRe, p.value, func(digits string) string {
			pct, _ := strconv.Atoi(digits)
			return strconv.FormatFloat(float64(pct)/100, 'f', -1, 64)
		})
	}
	if p.name != "background-image" {
		p.value = hexToRGBA(p.value)
	}
	return p
}

func isImage(v string) bool {
	return strings.Contains(v, "gradient(") || strings.Contains(v, "url(")
}

// replaceFirst replaces the first number+unit matched by re. The first
// submatch holds the digits; the unit is replaced along with them.
func replaceFirst(re *regexp.Regexp, s string, conv func(digits string) string) string {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	start, end := m[2], m[1]
	return s[:start] + conv(s[m[2]:m[3]]) + s[end:]
}

// hexToRGBA converts the first hex color to "rgba(r, g, b, 1)".
func hexToRGBA(s string) string {
	m := hexRe.FindStringIndex(s)
	if m == nil {
		return s
	}
	hex := s[m[0]:m[1]]
	if len(hex) == 4 {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return s
	}
	r, g, b := c.RGB255()
	return s[:m[0]] + fmt.Sprintf("rgba(%d, %d, %d, 1)", r, g, b) + s[m[1]:]
}
