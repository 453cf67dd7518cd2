// Package jtree is the external collaborator named in spec §4.6: an
// object-tree model for J (the JSON-family output format) independent
// of the Y→J conversion core. The core emits J as text; jtree.Parse
// re-parses that text into this tree for callers that want structured
// access (yamlj.YAMLToJSONTree), and the reverse J→Y emitter (internal/emity)
// walks a jtree.Value to produce Y source.
//
// Named and shaped after creachadair's jtree package (a standalone JSON
// scanner/parser library) — this is a tree-building counterpart rather
// than an event-stream handler, since the reverse emitter and the
// typed-accessor surface spec §4.6 calls for both need random access
// (child-by-name, path lookup, mutation) that a pure streaming handler
// doesn't give.
package jtree

import "sort"

// Kind identifies the J value shape a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// member is one key/value pair of an Object, kept in insertion order.
type member struct {
	key string
	val *Value
}

// Value is a single node of a J document: a scalar, an ordered object,
// or an array. The zero Value is a JSON null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []*Value
	obj  []member
}

// NewNull returns a null value.
func NewNull() *Value { return &Value{kind: Null} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{kind: Bool, b: b} }

// NewNumber returns a numeric value.
func NewNumber(n float64) *Value { return &Value{kind: Number, n: n} }

// NewString returns a string value. s is the unescaped, logical string
// content, not J source text.
func NewString(s string) *Value { return &Value{kind: String, s: s} }

// NewArray returns an empty array value.
func NewArray() *Value { return &Value{kind: Array} }

// NewObject returns an empty object value.
func NewObject() *Value { return &Value{kind: Object} }

// Kind reports v's shape.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether v is a null value.
func (v *Value) IsNull() bool { return v.kind == Null }

// Bool returns v's boolean content and whether v is in fact a bool.
func (v *Value) Bool() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// Double returns v's numeric content and whether v is in fact a number.
func (v *Value) Double() (float64, bool) {
	if v.kind != Number {
		return 0, false
	}
	return v.n, true
}

// String returns v's unescaped string content and whether v is in fact
// a string.
func (v *Value) String() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.s, true
}

// Len returns the number of elements in an array or members in an
// object; 0 for any other kind.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj)
	default:
		return 0
	}
}

// ChildAt returns the array element at index i.
func (v *Value) ChildAt(i int) (*Value, bool) {
	if v.kind != Array || i < 0 || i >= len(v.arr) {
		return nil, false
	}
	return v.arr[i], true
}

// ChildByName returns the object member named name.
func (v *Value) ChildByName(name string) (*Value, bool) {
	if v.kind != Object {
		return nil, false
	}
	for _, m := range v.obj {
		if m.key == name {
			return m.val, true
		}
	}
	return nil, false
}

// Keys returns an object's member names in insertion order. Returns nil
// for any other kind.
func (v *Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	out := make([]string, len(v.obj))
	for i, m := range v.obj {
		out[i] = m.key
	}
	return out
}

// SortedKeys returns an object's member names sorted lexically, used by
// callers that want deterministic output independent of insertion order.
func (v *Value) SortedKeys() []string {
	keys := v.Keys()
	sort.Strings(keys)
	return keys
}

// AppendChild appends child to an array value. It is a no-op on any
// other kind.
func (v *Value) AppendChild(child *Value) {
	if v.kind != Array {
		return
	}
	v.arr = append(v.arr, child)
}

// RemoveAt removes the array element at index i, if present.
func (v *Value) RemoveAt(i int) {
	if v.kind != Array || i < 0 || i >= len(v.arr) {
		return
	}
	v.arr = append(v.arr[:i], v.arr[i+1:]...)
}

// SetMember sets (or replaces, preserving position) an object member.
// It is a no-op on any other kind.
func (v *Value) SetMember(name string, child *Value) {
	if v.kind != Object {
		return
	}
	for i, m := range v.obj {
		if m.key == name {
			v.obj[i].val = child
			return
		}
	}
	v.obj = append(v.obj, member{key: name, val: child})
}

// RemoveMember deletes an object member by name, if present.
func (v *Value) RemoveMember(name string) {
	if v.kind != Object {
		return
	}
	for i, m := range v.obj {
		if m.key == name {
			v.obj = append(v.obj[:i], v.obj[i+1:]...)
			return
		}
	}
}

// Iterate calls fn for each array element (key "") or object member, in
// order, stopping early if fn returns false.
func (v *Value) Iterate(fn func(key string, index int, child *Value) bool) {
	switch v.kind {
	case Array:
		for i, c := range v.arr {
			if !fn("", i, c) {
				return
			}
		}
	case Object:
		for i, m := range v.obj {
			if !fn(m.key, i, m.val) {
				return
			}
		}
	}
}
