package jtree

import (
	"strconv"
	"strings"
)

// Serialize renders v as J text. indentWidth <= 0 produces compact
// output on one line (a single space still follows each object key's
// ':'); indentWidth > 0 produces
// pretty output at that many spaces per nesting level, matching the
// core emitter's own indent convention (internal/emit).
func Serialize(v *Value, indentWidth int) string {
	var sb strings.Builder
	writeValue(&sb, v, 0, indentWidth)
	return sb.String()
}

func writeValue(sb *strings.Builder, v *Value, depth, indentWidth int) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Number:
		sb.WriteString(formatNumber(v.n))
	case String:
		sb.WriteString(strconv.Quote(v.s))
	case Array:
		writeArray(sb, v, depth, indentWidth)
	case Object:
		writeObject(sb, v, depth, indentWidth)
	}
}

func writeArray(sb *strings.Builder, v *Value, depth, indentWidth int) {
	if len(v.arr) == 0 {
		sb.WriteString("[]")
		return
	}
	sb.WriteByte('[')
	for i, c := range v.arr {
		newline(sb, indentWidth)
		indent(sb, depth+1, indentWidth)
		writeValue(sb, c, depth+1, indentWidth)
		if i != len(v.arr)-1 {
			sb.WriteByte(',')
		}
	}
	newline(sb, indentWidth)
	indent(sb, depth, indentWidth)
	sb.WriteByte(']')
}

func writeObject(sb *strings.Builder, v *Value, depth, indentWidth int) {
	if len(v.obj) == 0 {
		sb.WriteString("{}")
		return
	}
	sb.WriteByte('{')
	for i, m := range v.obj {
		newline(sb, indentWidth)
		indent(sb, depth+1, indentWidth)
		sb.WriteString(strconv.Quote(m.key))
		sb.WriteString(": ")
		writeValue(sb, m.val, depth+1, indentWidth)
		if i != len(v.obj)-1 {
			sb.WriteByte(',')
		}
	}
	newline(sb, indentWidth)
	indent(sb, depth, indentWidth)
	sb.WriteByte('}')
}

func newline(sb *strings.Builder, indentWidth int) {
	if indentWidth > 0 {
		sb.WriteByte('\n')
	}
}

func indent(sb *strings.Builder, depth, indentWidth int) {
	if indentWidth > 0 {
		sb.WriteString(strings.Repeat(" ", depth*indentWidth))
	}
}

// formatNumber renders n using U.S. formatting with whole values printed
// without a decimal point. Unlike internal/classify, which writes a
// whole-valued float as 150.0, this prints 150.
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
