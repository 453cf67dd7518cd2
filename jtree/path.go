package jtree

import (
	"strconv"
	"strings"
)

// Path looks up a value by a '/'-separated path of object member names
// and array indices, in the style of a JSON Pointer without the '~'
// escaping convention. A leading '/' and empty segments (consecutive
// slashes) are ignored. Returns the root itself for an empty path.
func Path(root *Value, path string) (*Value, bool) {
	path = strings.Trim(path, "/")
	if path == "" {
		return root, true
	}
	cur := root
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		switch cur.kind {
		case Object:
			child, ok := cur.ChildByName(seg)
			if !ok {
				return nil, false
			}
			cur = child
		case Array:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return nil, false
			}
			child, ok := cur.ChildAt(idx)
			if !ok {
				return nil, false
			}
			cur = child
		default:
			return nil, false
		}
	}
	return cur, true
}
