// Package classify implements the scalar taxonomy of spec §4.4: each
// resolved, non-container element is turned into its final J text by
// walking explicit-tag, null, bool, integer, float, date/time, and
// string rules in priority order.
//
// Grounded on willabides/yaml's resolve.go (the upstream project's own
// "guess the implicit type of a plain scalar" pass) for the taxonomy
// order, adapted to emit J text directly rather than a typed Go value,
// and extended with the !!binary/!!map/!!seq tag overrides and the
// yes/no bool-alias option the teacher's resolver does not have.
package classify

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/anchorq/yamlj/internal/builder"
	"github.com/anchorq/yamlj/internal/errs"
)

// Options controls the classifier's configurable behavior (spec §6).
type Options struct {
	// BoolAlias enables yes/no as bool literals alongside true/false.
	BoolAlias bool
	// IndentWidth is the emitter's indent unit in spaces. Classify does
	// not read it: a !!binary element's byte array is laid out by the
	// emitter from Result.BinaryBytes.
	IndentWidth int
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Result is the per-element classification outcome the emitter consumes.
type Result struct {
	// Text is the J-ready text for a plain leaf ("null", "true", "42",
	// "\"a string\"", ...).
	Text string
	// BinaryBytes holds the decoded bytes of a !!binary element; non-nil
	// only for that case, in which the emitter renders an inline byte
	// array instead of using Text.
	BinaryBytes []byte
}

// Classify computes the J text for the non-container element of list at
// index i. Only list[i] is read: a !!map/!!seq tag is not checked against
// the elements that follow it.
func Classify(list builder.List, i int, opt Options) (Result, error) {
	e := list[i]

	if e.Tag == "!!str" {
		return Result{Text: quoted(e.Value)}, nil
	}
	if e.Tag == "!!binary" {
		clean := strings.ReplaceAll(e.Value, `\n`, "")
		clean = strings.TrimSpace(clean)
		data, err := base64.StdEncoding.DecodeString(clean)
		if err != nil {
			return Result{}, errs.Wrap(errs.InvalidValueForTag, e.Line, err, "invalid base64 in !!binary scalar")
		}
		return Result{BinaryBytes: data}, nil
	}
	if e.Literal {
		// A quoted or block scalar's style already fixes its type as
		// string; an explicit builtin tag asking for anything else (spec
		// §8: `n: !!int "12"`) conflicts with that style rather than
		// describing it, so it is always an error here, never a silent
		// reinterpretation. !!str and !!binary are handled above; a
		// custom (single-!) tag isn't a builtin type claim and passes
		// through unchanged.
		if strings.HasPrefix(e.Tag, "!!") && e.Tag != "!!str" {
			return Result{}, errs.Newf(errs.InvalidValueForTag, e.Line, "value %q does not match tag %s", e.Value, e.Tag)
		}
		return Result{Text: quoted(e.Value)}, nil
	}

	if e.Value == "" {
		switch e.Tag {
		case "!!map":
			return Result{Text: "{}"}, nil
		case "!!seq":
			return Result{Text: "[]"}, nil
		default:
			return Result{Text: `""`}, nil
		}
	}

	if strings.EqualFold(e.Value, "null") {
		switch e.Tag {
		case "!!map":
			return Result{Text: "{}"}, nil
		case "!!seq":
			return Result{Text: "[]"}, nil
		case "", "!!null":
			return Result{Text: "null"}, nil
		default:
			return Result{}, errs.Newf(errs.InvalidValueForTag, e.Line, "value %q does not match tag %s", e.Value, e.Tag)
		}
	}

	if boolText, ok := classifyBool(e.Value, opt.BoolAlias); ok {
		if e.Tag != "" && e.Tag != "!!bool" {
			return Result{}, errs.Newf(errs.InvalidValueForTag, e.Line, "value %q does not match tag %s", e.Value, e.Tag)
		}
		return Result{Text: boolText}, nil
	}

	if n, ok := parseInt(e.Value); ok {
		if e.Tag != "" && e.Tag != "!!int" && e.Tag != "!!float" {
			return Result{}, errs.Newf(errs.InvalidValueForTag, e.Line, "value %q does not match tag %s", e.Value, e.Tag)
		}
		if e.Tag == "!!float" {
			return Result{Text: formatFloat(float64(n))}, nil
		}
		return Result{Text: strconv.FormatInt(n, 10)}, nil
	}

	if f, ok := parseFloat(e.Value); ok {
		if e.Tag != "" && e.Tag != "!!float" {
			return Result{}, errs.Newf(errs.InvalidValueForTag, e.Line, "value %q does not match tag %s", e.Value, e.Tag)
		}
		return Result{Text: formatFloat(f)}, nil
	}

	if t, ok := parseDateTime(e.Value); ok {
		if e.Tag != "" && e.Tag != "!!timestamp" {
			return Result{}, errs.Newf(errs.InvalidValueForTag, e.Line, "value %q does not match tag %s", e.Value, e.Tag)
		}
		return Result{Text: quoted(t.UTC().Format(time.RFC3339Nano))}, nil
	}

	if strings.HasPrefix(e.Tag, "!") && !strings.HasPrefix(e.Tag, "!!") {
		return Result{Text: quoted(e.Value)}, nil
	}
	if e.Tag != "" && e.Tag != "!!str" {
		return Result{}, errs.Newf(errs.InvalidValueForTag, e.Line, "value %q does not match tag %s", e.Value, e.Tag)
	}
	return Result{Text: quoted(e.Value)}, nil
}

func classifyBool(v string, alias bool) (string, bool) {
	switch strings.ToLower(v) {
	case "true":
		return "true", true
	case "false":
		return "false", true
	}
	if alias {
		switch strings.ToLower(v) {
		case "yes":
			return "true", true
		case "no":
			return "false", true
		}
	}
	return "", false
}

func parseInt(v string) (int64, bool) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseFloat accepts '.' as the decimal separator and ',' as a thousands
// separator, per spec §4.4.
func parseFloat(v string) (float64, bool) {
	cleaned := strings.ReplaceAll(v, ",", "")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseDateTime(v string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatFloat uses U.S. formatting with no thousands separator, per spec
// §4.4's "numeric emission" note. A whole-valued float keeps one decimal
// place (150.0) so it still reads as a float.
func formatFloat(f float64) string {
	if f == float64(int64(f)) && f < 1e15 && f > -1e15 {
		return fmt.Sprintf("%.1f", f)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func quoted(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	sb.WriteString(s)
	sb.WriteByte('"')
	return sb.String()
}
