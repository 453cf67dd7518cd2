// Package emit implements the J emitter of spec §4.5: a single
// left-to-right walk over the resolved element list that tracks a
// per-line indent and decides where commas and container openers land
// relative to the previous output line.
//
// Grounded on willabides/yaml's encode.go emitter (a similar
// single-pass, stack-free walk that decides line breaks from the
// previous emitted event rather than backtracking) adapted from YAML's
// block/flow event model to this project's flat, already-structural
// element list, which needs no event stack at all.
package emit

import (
	"strconv"
	"strings"

	"github.com/anchorq/yamlj/internal/builder"
	"github.com/anchorq/yamlj/internal/classify"
)

// Options controls formatting (spec §4.5's "configurable indent
// count, 0-8").
type Options struct {
	IndentWidth int
	BoolAlias   bool
}

// Emit walks list and writes its J text.
func Emit(list builder.List, opt Options) (string, error) {
	w := &walker{list: list, opt: opt}
	if err := w.run(); err != nil {
		return "", err
	}
	return w.sb.String(), nil
}

// isHead reports whether e is the key-only placeholder the builder
// emits ahead of a nested container value (builder.readEntryValue):
// it carries a key and an empty, untagged, unquoted scalar value — the
// container open that follows it continues the same output line rather
// than starting a new one. A literal or tagged empty value (an explicit
// "" string, a bare !!map/!!seq) is a real leaf and must not be
// mistaken for this placeholder.
func isHead(e builder.Element) bool {
	return e.Key != "" && e.Value == "" && !e.IsContainer() && !e.Literal && e.Tag == ""
}

type walker struct {
	list builder.List
	opt  Options
	sb   strings.Builder

	// pendingKeyLine is true immediately after writing "key": with no
	// trailing newline yet — the next element (always a container open)
	// must append directly rather than starting its own line.
	pendingKeyLine bool
	wroteAny       bool
}

func (w *walker) run() error {
	for i := 0; i < len(w.list); i++ {
		e := w.list[i]
		switch {
		case e.IsOpen():
			w.writeOpen(e)
		case e.IsClose():
			w.writeClose(e, i)
		case isHead(e):
			w.writeHead(e)
		default:
			if err := w.writeLeaf(i); err != nil {
				return err
			}
		}
	}
	if w.opt.IndentWidth > 0 && w.wroteAny {
		w.sb.WriteByte('\n')
	}
	return nil
}

func (w *walker) indentStr(depth int) string {
	if w.opt.IndentWidth <= 0 {
		return ""
	}
	return strings.Repeat(" ", depth*w.opt.IndentWidth)
}

func (w *walker) startLine(depth int) {
	if w.wroteAny {
		if w.opt.IndentWidth > 0 {
			w.sb.WriteByte('\n')
		}
	}
	w.sb.WriteString(w.indentStr(depth))
	w.wroteAny = true
}

// writeHead writes the "key": prefix for a nested container value and
// leaves the line open for the container opener that must follow.
func (w *walker) writeHead(e builder.Element) {
	w.startLine(e.Indent)
	w.sb.WriteString(strconv.Quote(e.Key))
	w.sb.WriteString(": ")
	w.pendingKeyLine = true
}

// writeOpen places an opener directly after a pending "key": prefix, or
// on its own new line when it is itself an array/sequence item.
func (w *walker) writeOpen(e builder.Element) {
	if w.pendingKeyLine {
		w.pendingKeyLine = false
	} else {
		w.startLine(e.Indent)
	}
	w.sb.WriteString(e.Value)
}

func (w *walker) writeClose(e builder.Element, i int) {
	w.startLine(e.Indent)
	w.sb.WriteString(e.Value)
	if w.needsComma(i) {
		w.sb.WriteByte(',')
	}
}

func (w *walker) writeLeaf(i int) error {
	e := w.list[i]
	res, err := classify.Classify(w.list, i, classify.Options{BoolAlias: w.opt.BoolAlias, IndentWidth: w.opt.IndentWidth})
	if err != nil {
		return err
	}

	w.startLine(e.Indent)
	if e.Key != "" {
		w.sb.WriteString(strconv.Quote(e.Key))
		w.sb.WriteString(": ")
	}

	if res.BinaryBytes != nil {
		w.writeByteArray(res.BinaryBytes, e.Indent)
	} else {
		w.sb.WriteString(res.Text)
	}
	if w.needsComma(i) {
		w.sb.WriteByte(',')
	}
	return nil
}

func (w *walker) writeByteArray(data []byte, indent int) {
	w.sb.WriteString("[")
	for i, b := range data {
		if w.opt.IndentWidth > 0 {
			w.sb.WriteByte('\n')
		}
		w.sb.WriteString(w.indentStr(indent + 1))
		w.sb.WriteString(strconv.Itoa(int(b)))
		if i != len(data)-1 {
			w.sb.WriteByte(',')
		}
	}
	if w.opt.IndentWidth > 0 {
		w.sb.WriteByte('\n')
	}
	w.sb.WriteString(w.indentStr(indent))
	w.sb.WriteString("]")
}

// needsComma reports whether the element at i should be followed by a
// comma: true unless the next element is a closing marker or there is
// no next element.
func (w *walker) needsComma(i int) bool {
	if i+1 >= len(w.list) {
		return false
	}
	return !w.list[i+1].IsClose()
}
