// Package scanline splits a Y-format source into an indexable sequence of
// lines, each carrying its leading-space indent and its 1-based source line
// number. It is the leaf of the conversion pipeline: the token scanner
// addresses source text only through this type, never through raw byte
// offsets, so every downstream component can report errors by line number.
package scanline

import "strings"

// Line is one line of Y source with its indentation already measured.
type Line struct {
	// Number is the 1-based source line number.
	Number int
	// Indent is the count of leading space characters. Tabs are not
	// counted as indentation and are left in Text for the scanner to
	// reject where they are significant.
	Indent int
	// Text is the line with its leading spaces removed, trailing
	// newline stripped. An empty Text means a blank line.
	Text string
}

// IsBlank reports whether the line carries no content.
func (l Line) IsBlank() bool {
	return l.Text == ""
}

// IsComment reports whether the line is a comment line in the sense of
// spec §4.1 step 1: it begins with '#' once indentation is stripped.
func (l Line) IsComment() bool {
	return strings.HasPrefix(l.Text, "#")
}

// Set is the materialized line sequence a scan cursor walks. Building it
// up front (rather than streaming) is what lets the scanner freely peek
// ahead to decide where a plain or block scalar ends (spec §4.1 steps 8-9
// both require lookahead past the current line).
type Set struct {
	lines []Line
}

// New splits src on line breaks and measures each line's indent.
func New(src string) *Set {
	// Normalize CRLF without allocating twice for the common LF-only case.
	if strings.Contains(src, "\r\n") {
		src = strings.ReplaceAll(src, "\r\n", "\n")
	}
	raw := strings.Split(src, "\n")
	lines := make([]Line, 0, len(raw))
	for i, text := range raw {
		indent := 0
		for indent < len(text) && text[indent] == ' ' {
			indent++
		}
		lines = append(lines, Line{
			Number: i + 1,
			Indent: indent,
			Text:   text[indent:],
		})
	}
	// A trailing blank line produced by a final '\n' in src carries no
	// information; dropping it keeps EOF detection simple.
	if n := len(lines); n > 0 && lines[n-1].Text == "" && len(raw) > 1 {
		lines = lines[:n-1]
	}
	return &Set{lines: lines}
}

// Len returns the number of lines in the set.
func (s *Set) Len() int { return len(s.lines) }

// At returns the line at row (0-based). The zero Line and false are
// returned past EOF.
func (s *Set) At(row int) (Line, bool) {
	if row < 0 || row >= len(s.lines) {
		return Line{}, false
	}
	return s.lines[row], true
}

// NextSignificant returns the row of the next line at or after from that
// is neither blank nor (when skipComments is true) a comment line, or
// s.Len() if none remains.
func (s *Set) NextSignificant(from int, skipComments bool) int {
	row := from
	for row < len(s.lines) {
		l := s.lines[row]
		if l.IsBlank() || (skipComments && l.IsComment()) {
			row++
			continue
		}
		return row
	}
	return row
}

// RawText reconstructs the indented text of a line, used when a multi-line
// scalar needs the line verbatim (block scalars keep interior indentation).
func RawText(l Line) string {
	return strings.Repeat(" ", l.Indent) + l.Text
}
