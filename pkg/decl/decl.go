// Package decl models flat CSS declaration blocks and their canonical keys.
//
// A [Block] is an ordered list of property/value pairs with unique property
// names. [Canonicalize] turns a block into an order-independent [Key] that the
// index and translator use for lookups, and [Parse] reads the flat
// "name: value; ..." text that design-tool inspectors report.
//
// # Canonical Keys
//
// Two blocks that contain the same pairs in any order produce the same key.
// Non-integer numbers are reformatted to their shortest form, so ".80",
// "0.80" and "0.8" all normalize to "0.8":
//
//	k1 := decl.Canonicalize(decl.Pairs("opacity", ".80"))
//	k2 := decl.Canonicalize(decl.Pairs("opacity", "0.8"))
//	// k1 == k2 == "opacity:0.8"
package decl

import "strings"

// Declaration is a single "name: value" pair.
type Declaration struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// String returns the declaration as "name: value".
func (d Declaration) String() string {
	return d.Name + ": " + d.Value
}

// Block is an ordered set of declarations. Names are unique when the block is
// built with [Block.Set] or [Pairs].
type Block []Declaration

// Pairs builds a block from alternating name/value arguments. A trailing
// name without a value is ignored.
func Pairs(kv ...string) Block {
	b := make(Block, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		b = b.Set(kv[i], kv[i+1])
	}
	return b
}

// Set returns the block with name set to value. An existing entry keeps its
// position; a new entry is appended.
func (b Block) Set(name, value string) Block {
	if i := b.Index(name); i >= 0 {
		b[i].Value = value
		return b
	}
	return append(b, Declaration{Name: name, Value: value})
}

// Get returns the value for name.
func (b Block) Get(name string) (string, bool) {
	if i := b.Index(name); i >= 0 {
		return b[i].Value, true
	}
	return "", false
}

// Index returns the position of name in the block, or -1.
func (b Block) Index(name string) int {
	for i, d := range b {
		if d.Name == name {
			return i
		}
	}
	return -1
}

// Delete returns the block without name.
func (b Block) Delete(name string) Block {
	if i := b.Index(name); i >= 0 {
		return append(b[:i:i], b[i+1:]...)
	}
	return b
}

// Clone returns a copy that shares no storage with b.
func (b Block) Clone() Block {
	if b == nil {
		return nil
	}
	out := make(Block, len(b))
	copy(out, b)
	return out
}

// Names returns the property names in block order.
func (b Block) Names() []string {
	names := make([]string, len(b))
	for i, d := range b {
		names[i] = d.Name
	}
	return names
}

// String renders the block as "a: 1; b: 2".
func (b Block) String() string {
	parts := make([]string, len(b))
	for i, d := range b {
		parts[i] = d.String()
	}
	return strings.Join(parts, "; ")
}
