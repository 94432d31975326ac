package decl

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Key is the canonical, order-independent form of a declaration block.
type Key string

// Property returns the property name of the first pair in the key.
func (k Key) Property() string {
	s := string(k)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i]
	}
	return s
}

// Properties returns the property names of every pair in the key.
func (k Key) Properties() []string {
	if k == "" {
		return nil
	}
	pairs := strings.Split(string(k), ";")
	names := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if i := strings.IndexByte(p, ':'); i >= 0 {
			names = append(names, p[:i])
		}
	}
	return names
}

// Canonicalize returns the canonical key of b. The empty block yields "".
func Canonicalize(b Block) Key {
	pairs := make([]string, 0, len(b))
	for _, d := range b {
		pair := strings.ToLower(d.Name + ":" + normalizeNumber(d.Value))
		i := sort.SearchStrings(pairs, pair)
		pairs = append(pairs, "")
		copy(pairs[i+1:], pairs[i:])
		pairs[i] = pair
	}
	return Key(strings.Join(pairs, ";"))
}

// normalizeNumber rewrites a finite non-integer number in its shortest
// round-trip decimal form. Anything else is returned unchanged.
func normalizeNumber(v string) string {
	s := strings.TrimSpace(v)
	if s == "" || !numeric(s) {
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f == math.Trunc(f) {
		return v
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// numeric reports whether s looks like a plain decimal number. It keeps
// ParseFloat from accepting forms like "Inf" or hex floats.
func numeric(s string) bool {
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
		case (r == '-' || r == '+') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E'):
		case r == 'e' || r == 'E':
		default:
			return false
		}
	}
	return true
}
