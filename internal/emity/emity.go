// Package emity implements the reverse J→Y emitter of spec §4.6: it
// walks a jtree.Value and writes Y source — objects as key-prefixed
// blocks, sequences as dash-prefixed items, scalars by direct
// formatting, with embedded newlines in strings switching to a literal
// block scalar and the matching chomp modifier.
//
// Grounded on willabides/yaml's encode.go, specifically its scalar
// style selection (when a string must be quoted vs emitted plain) and
// its block-scalar chomp-indicator selection, generalized from walking
// a yaml.Node tree to walking a jtree.Value.
package emity

import (
	"strconv"
	"strings"

	"github.com/anchorq/yamlj/jtree"
)

// Options controls formatting (spec §6: indent 2-8, yesNoBool).
type Options struct {
	IndentWidth int
	BoolAlias   bool
}

// Emit renders v as Y source text.
func Emit(v *jtree.Value, opt Options) string {
	if opt.IndentWidth < 2 {
		opt.IndentWidth = 2
	}
	var sb strings.Builder
	writeRoot(&sb, v, opt)
	return sb.String()
}

func writeRoot(sb *strings.Builder, v *jtree.Value, opt Options) {
	switch v.Kind() {
	case jtree.Object:
		if v.Len() == 0 {
			sb.WriteString("{}\n")
			return
		}
		writeMapping(sb, v, 0, opt)
	case jtree.Array:
		if v.Len() == 0 {
			sb.WriteString("[]\n")
			return
		}
		writeSequence(sb, v, 0, opt)
	default:
		sb.WriteString(formatScalar(v, opt))
		sb.WriteString("\n")
	}
}

func indent(sb *strings.Builder, depth, width int) {
	sb.WriteString(strings.Repeat(" ", depth*width))
}

// writeMapping writes every member of v, an object, at the given depth.
func writeMapping(sb *strings.Builder, v *jtree.Value, depth int, opt Options) {
	for _, key := range v.Keys() {
		child, _ := v.ChildByName(key)
		indent(sb, depth, opt.IndentWidth)
		sb.WriteString(formatKey(key))
		sb.WriteString(":")
		writeEntryValue(sb, child, depth, opt)
	}
}

// writeSequence writes every item of v, an array, at the given depth.
func writeSequence(sb *strings.Builder, v *jtree.Value, depth int, opt Options) {
	n := v.Len()
	for i := 0; i < n; i++ {
		child, _ := v.ChildAt(i)
		indent(sb, depth, opt.IndentWidth)
		sb.WriteString("-")
		writeEntryValue(sb, child, depth, opt)
	}
}

// writeEntryValue writes the value half of a "key:" or "-" line: inline
// for scalars and empty containers, on following indented lines for
// non-empty containers.
func writeEntryValue(sb *strings.Builder, v *jtree.Value, depth int, opt Options) {
	switch v.Kind() {
	case jtree.Object:
		if v.Len() == 0 {
			sb.WriteString(" {}\n")
			return
		}
		sb.WriteString("\n")
		writeMapping(sb, v, depth+1, opt)
	case jtree.Array:
		if v.Len() == 0 {
			sb.WriteString(" []\n")
			return
		}
		sb.WriteString("\n")
		writeSequence(sb, v, depth+1, opt)
	case jtree.String:
		s, _ := v.String()
		if strings.Contains(s, "\n") {
			sb.WriteString(" ")
			writeBlockScalar(sb, s, depth+1, opt.IndentWidth)
			return
		}
		sb.WriteString(" ")
		sb.WriteString(formatScalar(v, opt))
		sb.WriteString("\n")
	default:
		sb.WriteString(" ")
		sb.WriteString(formatScalar(v, opt))
		sb.WriteString("\n")
	}
}

// writeBlockScalar writes s as a literal block scalar with the chomp
// modifier that reproduces s's trailing-newline count exactly: none
// (clip) for one trailing newline, '-' (strip) for none, '+' (keep) for
// two or more.
func writeBlockScalar(sb *strings.Builder, s string, depth, width int) {
	trimmed := strings.TrimRight(s, "\n")
	trailing := len(s) - len(trimmed)
	switch trailing {
	case 1:
		sb.WriteString("|\n")
	case 0:
		sb.WriteString("|-\n")
	default:
		sb.WriteString("|+\n")
	}
	lines := strings.Split(trimmed, "\n")
	for _, l := range lines {
		indent(sb, depth, width)
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	for i := 1; i < trailing; i++ {
		sb.WriteString("\n")
	}
}

func formatKey(key string) string {
	if needsQuoting(key) {
		return strconv.Quote(key)
	}
	return key
}

func formatScalar(v *jtree.Value, opt Options) string {
	switch v.Kind() {
	case jtree.Null:
		return "null"
	case jtree.Bool:
		b, _ := v.Bool()
		if opt.BoolAlias {
			if b {
				return "yes"
			}
			return "no"
		}
		if b {
			return "true"
		}
		return "false"
	case jtree.Number:
		n, _ := v.Double()
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'g', -1, 64)
	case jtree.String:
		s, _ := v.String()
		if s == "" {
			return "''"
		}
		if needsQuoting(s) {
			return strconv.Quote(s)
		}
		return s
	default:
		return "null"
	}
}

// needsQuoting reports whether s must be quoted to round-trip as a
// plain Y scalar: it would otherwise be misread as a different type,
// as a collection marker, or it carries a key/comment delimiter.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	lower := strings.ToLower(s)
	switch lower {
	case "null", "true", "false", "yes", "no", "~":
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if strings.ContainsAny(s, "\n\t") {
		return true
	}
	if strings.HasPrefix(s, "- ") || s == "-" || strings.HasPrefix(s, "[") ||
		strings.HasPrefix(s, "&") || strings.HasPrefix(s, "*") || strings.HasPrefix(s, "!") ||
		strings.HasPrefix(s, "#") || strings.HasPrefix(s, "\"") || strings.HasPrefix(s, "'") {
		return true
	}
	if strings.Contains(s, ": ") || strings.HasSuffix(s, ":") || strings.Contains(s, " #") {
		return true
	}
	return false
}
