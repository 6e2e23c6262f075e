// Package nbtadapter specifies the thin capability the core rendering
// pipeline expects of an NBT tree (spec.md §3, "NBT adapter") and backs it
// with github.com/sandertv/gophertunnel/minecraft/nbt, the teacher's own NBT
// dependency (used for Pile's settings/entity encoding in settings.go,
// encode.go, converter.go). The core never imports the nbt package
// directly and never mutates a Node, so any library satisfying this
// interface is a drop-in replacement (spec.md §9, "NBT coupling").
package nbtadapter

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// Node is the capability spec.md §3 requires: IsEnd, Contains, indexing by
// key or integer, and typed accessors for int8, int32, string, list-of-Node,
// and list-of-int64.
type Node struct {
	v any
}

// Decode parses a complete NBT document (Java Edition, big-endian) into a
// root Node, the entry point the world decoder calls once per decompressed
// chunk payload (spec.md §4.1).
func Decode(data []byte) (Node, error) {
	var m map[string]any
	dec := nbt.NewDecoderWithEncoding(bytes.NewReader(data), nbt.BigEndian)
	if err := dec.Decode(&m); err != nil {
		return Node{}, errors.Wrap(err, "decode NBT")
	}
	return Node{v: m}, nil
}

// Wrap adapts an already-decoded Go value into a Node, the same shape
// Decode produces internally (nested map[string]any / []any / typed
// scalars). Callers that synthesize NBT-shaped data in tests use this
// instead of running it through an encoder and back.
func Wrap(v any) Node {
	return Node{v: v}
}

// IsEnd reports whether this node is absent (the NBT TAG_End case, or a
// Go nil from a missing map key / out-of-range index).
func (n Node) IsEnd() bool {
	return n.v == nil
}

func (n Node) asMap() (map[string]any, bool) {
	m, ok := n.v.(map[string]any)
	return m, ok
}

// Contains reports whether this node is a compound containing key.
func (n Node) Contains(key string) bool {
	m, ok := n.asMap()
	if !ok {
		return false
	}
	_, present := m[key]
	return present
}

// Index returns the child node stored under key in this compound. A missing
// key or non-compound node yields an IsEnd() node.
func (n Node) Index(key string) Node {
	m, ok := n.asMap()
	if !ok {
		return Node{}
	}
	return Node{v: m[key]}
}

// listSlice normalizes the handful of slice shapes the backing library
// produces for TAG_List depending on element type.
func (n Node) listSlice() ([]any, bool) {
	switch v := n.v.(type) {
	case []any:
		return v, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}

// Len returns the number of elements if this node is a list, or 0.
func (n Node) Len() int {
	s, ok := n.listSlice()
	if !ok {
		return 0
	}
	return len(s)
}

// IndexInt returns the i-th element of a list node. Out-of-range indices
// yield an IsEnd() node.
func (n Node) IndexInt(i int) Node {
	s, ok := n.listSlice()
	if !ok || i < 0 || i >= len(s) {
		return Node{}
	}
	return Node{v: s[i]}
}

// Int8 reads an NBT TAG_Byte value stored under key. Java NBT's signed byte
// arrives from the backing decoder as either int8 or uint8 depending on
// call site; both are accepted and returned as int8.
func (n Node) Int8(key string) (int8, bool) {
	v := n.Index(key).v
	switch t := v.(type) {
	case int8:
		return t, true
	case uint8:
		return int8(t), true
	default:
		return 0, false
	}
}

// Int32 reads an NBT TAG_Int value stored under key.
func (n Node) Int32(key string) (int32, bool) {
	v := n.Index(key).v
	t, ok := v.(int32)
	return t, ok
}

// String reads an NBT TAG_String value stored under key.
func (n Node) String(key string) (string, bool) {
	v := n.Index(key).v
	t, ok := v.(string)
	return t, ok
}

// ListOfNode reads an NBT TAG_List of TAG_Compound stored under key,
// returning each element as its own Node (used for Level.Sections and a
// section's Palette).
func (n Node) ListOfNode(key string) ([]Node, bool) {
	child := n.Index(key)
	s, ok := child.listSlice()
	if !ok {
		return nil, false
	}
	out := make([]Node, len(s))
	for i, e := range s {
		out[i] = Node{v: e}
	}
	return out, true
}

// LongArray reads an NBT TAG_Long_Array value stored under key (used for a
// section's BlockStates).
func (n Node) LongArray(key string) ([]int64, bool) {
	v := n.Index(key).v
	t, ok := v.([]int64)
	return t, ok
}
