package builder

import (
	"strings"

	"github.com/anchorq/yamlj/internal/errs"
	"github.com/anchorq/yamlj/internal/scanner"
)

// Builder drives a Scanner through the three mutually recursive
// procedures of spec §4.2 (Mapping, Sequence, InlineArray), emitting a
// flat Element list.
//
// Grounded on willabides/yaml's internal/parserc/parserc.go (a
// recursive-descent parser layered over a token scanner) and
// huml-lang-go-huml's parser.go (recursion driven by comparing a child's
// source column against the column that opened its container) — the
// latter is the closer model since, like HUML, Y here has no flow-map
// form and no block/flow event stream to track.
type Builder struct {
	sc       *scanner.Scanner
	allowDup bool
}

// New creates a Builder over sc. allowDup disables the DuplicatedKey
// check spec's §6 allowDuplicateKeys option controls.
func New(sc *scanner.Scanner, allowDup bool) *Builder {
	return &Builder{sc: sc, allowDup: allowDup}
}

// Build parses the whole input and returns its element list. The root
// may be a mapping, a sequence, an inline array, or — beyond strict Y
// 1.2, but harmless to support — a single bare scalar.
func (b *Builder) Build() (List, error) {
	if b.sc.AtEOF() {
		return List{{Key: "", Value: NullMarker, Indent: 0}}, nil
	}
	col, _ := b.sc.PeekIndent()
	if col != 0 {
		return nil, errs.Newf(errs.InvalidIndent, 1, "document root must not be indented")
	}
	text := b.sc.PeekText()
	if !strings.HasPrefix(text, "[") && !looksLikeSeqItem(text) &&
		!strings.Contains(text, ": ") && !strings.HasSuffix(strings.TrimRight(text, " "), ":") {
		tok, err := b.sc.NextValue(false)
		if err != nil {
			return nil, err
		}
		return List{{
			Value: tok.Text, Indent: 0, Literal: tok.Literal,
			Alias: aliasDesignator(tok), Anchor: tok.AnchorName, Line: tok.Line, Tag: tok.Tag,
		}}, nil
	}
	return b.buildValueAt(0, col)
}

// buildValueAt builds whatever structure starts at source column col,
// assigning its elements logical indent depth.
func (b *Builder) buildValueAt(depth, col int) (List, error) {
	text := b.sc.PeekText()
	switch {
	case strings.HasPrefix(text, "["):
		return b.buildInlineArray(depth)
	case text == "-" || strings.HasPrefix(text, "- "):
		return b.buildSequence(depth, col)
	default:
		return b.buildMapping(depth, col)
	}
}

// buildMapping implements spec §4.2 BuildMapping.
func (b *Builder) buildMapping(depth, col int) (List, error) {
	list := List{{Key: "", Value: OpenObject, Indent: depth}}
	seen := make(map[string]bool)

	for {
		ind, ok := b.sc.PeekIndent()
		if !ok || ind != col {
			break
		}
		keyTok, err := b.sc.NextKey()
		if err != nil {
			return nil, err
		}
		if !b.allowDup && seen[keyTok.Text] {
			return nil, errs.Newf(errs.DuplicatedKey, keyTok.Line, "duplicate key %q", keyTok.Text)
		}
		seen[keyTok.Text] = true

		elems, err := b.readEntryValue(keyTok.Text, keyTok.Line, depth+1, col)
		if err != nil {
			return nil, err
		}
		list = append(list, elems...)
	}

	list = append(list, Element{Key: "", Value: CloseObject, Indent: depth})
	return list, nil
}

// readEntryValue reads the value following a mapping key (or, via
// splicedTuple, the value following a "- key: value" tuple head),
// returning the elements that represent it: either a single scalar
// element carrying key, or a key element with an empty scalar slot
// followed by a nested container's elements.
func (b *Builder) readEntryValue(key string, keyLine, childDepth, parentCol int) (List, error) {
	if b.sc.AtEOF() {
		return List{{Key: key, Value: "null", Indent: childDepth, Line: keyLine}}, nil
	}
	sameRow := b.sc.PeekRow()+1 == keyLine
	nextCol, _ := b.sc.PeekIndent()
	nextText := b.sc.PeekText()

	if sameRow && strings.HasPrefix(nextText, "[") {
		nested, err := b.buildInlineArray(childDepth)
		if err != nil {
			return nil, err
		}
		head := Element{Key: key, Value: "", Indent: childDepth, Line: keyLine}
		return append(List{head}, nested...), nil
	}
	if sameRow && nextText != "" {
		elems, err := b.readScalarEntry(key, childDepth)
		if err != nil {
			return nil, err
		}
		// An anchor alone on the key's line ("a: &x") names the nested
		// container on the following, deeper lines.
		if h := elems[0]; h.Anchor != "" && h.Value == "" && !h.Literal && h.Alias == "" && h.Tag == "" {
			if col, ok := b.sc.PeekIndent(); ok && col > parentCol {
				nested, err := b.buildValueAt(childDepth, col)
				if err != nil {
					return nil, err
				}
				return append(elems, nested...), nil
			}
		}
		return elems, nil
	}
	if !sameRow && nextCol > parentCol {
		nested, err := b.buildValueAt(childDepth, nextCol)
		if err != nil {
			return nil, err
		}
		head := Element{Key: key, Value: "", Indent: childDepth, Line: keyLine}
		return append(List{head}, nested...), nil
	}
	if !sameRow && nextCol == parentCol && looksLikeSeqItem(nextText) {
		nested, err := b.buildSequence(childDepth, nextCol)
		if err != nil {
			return nil, err
		}
		head := Element{Key: key, Value: "", Indent: childDepth, Line: keyLine}
		return append(List{head}, nested...), nil
	}
	if !sameRow && strings.HasPrefix(nextText, "[") && nextCol >= parentCol {
		nested, err := b.buildInlineArray(childDepth)
		if err != nil {
			return nil, err
		}
		head := Element{Key: key, Value: "", Indent: childDepth, Line: keyLine}
		return append(List{head}, nested...), nil
	}
	// Dedent, sibling key at the same column, or EOF: the value is null.
	return List{{Key: key, Value: "null", Indent: childDepth, Line: keyLine}}, nil
}

func (b *Builder) readScalarEntry(key string, depth int) (List, error) {
	tok, err := b.sc.NextValue(false)
	if err != nil {
		return nil, err
	}
	return List{{
		Key: key, Value: tok.Text, Indent: depth, Literal: tok.Literal,
		Alias: aliasDesignator(tok), Anchor: tok.AnchorName, Line: tok.Line, Tag: tok.Tag,
	}}, nil
}

// buildSequence implements spec §4.2 BuildSequence.
func (b *Builder) buildSequence(depth, col int) (List, error) {
	list := List{{Key: "", Value: OpenArray, Indent: depth}}

	for {
		ind, ok := b.sc.PeekIndent()
		if !ok || ind != col {
			break
		}
		text := b.sc.PeekText()
		if text != "-" && !strings.HasPrefix(text, "- ") {
			break
		}

		if tupleIdx := tupleKeyIndex(text); tupleIdx >= 0 {
			nested, err := b.buildTupleItem(depth+1, col)
			if err != nil {
				return nil, err
			}
			list = append(list, nested...)
			continue
		}
		if strings.HasPrefix(strings.TrimPrefix(strings.TrimPrefix(text, "- "), "-"), "[") {
			if _, ok := b.sc.ConsumeItemDash(); !ok {
				return nil, errs.Newf(errs.CollectionItem, b.sc.PeekRow()+1, "expected a collection item")
			}
			nested, err := b.buildInlineArray(depth + 1)
			if err != nil {
				return nil, err
			}
			list = append(list, nested...)
			continue
		}

		tok, err := b.sc.NextValue(false)
		if err != nil {
			return nil, err
		}
		list = append(list, Element{
			Value: tok.Text, Indent: depth + 1, Literal: tok.Literal,
			Alias: aliasDesignator(tok), Anchor: tok.AnchorName, Line: tok.Line, Tag: tok.Tag,
		})
	}

	list = append(list, Element{Key: "", Value: CloseArray, Indent: depth})
	return list, nil
}

// buildTupleItem handles spec §4.2's "tuple-in-item" case: a sequence
// item whose head itself reads "key: value", meaning the item is a
// one-(or-more)-entry mapping spliced at the item's own column.
func (b *Builder) buildTupleItem(depth, seqCol int) (List, error) {
	off, ok := b.sc.ConsumeItemDash()
	if !ok {
		return nil, errs.Newf(errs.CollectionItem, b.sc.PeekRow()+1, "expected a collection item")
	}
	mapCol := seqCol + off
	return b.buildMappingFromDash(depth, mapCol)
}

// buildMappingFromDash builds a mapping whose first key shares a
// physical line with the sequence dash that introduced it; subsequent
// keys of the same tuple (if any) must align at mapCol on their own
// lines.
func (b *Builder) buildMappingFromDash(depth, mapCol int) (List, error) {
	list := List{{Key: "", Value: OpenObject, Indent: depth}}
	seen := make(map[string]bool)
	first := true
	for {
		if !first {
			ind, ok := b.sc.PeekIndent()
			if !ok || ind != mapCol {
				break
			}
		}
		first = false
		keyTok, err := b.sc.NextKey()
		if err != nil {
			return nil, err
		}
		if !b.allowDup && seen[keyTok.Text] {
			return nil, errs.Newf(errs.DuplicatedKey, keyTok.Line, "duplicate key %q", keyTok.Text)
		}
		seen[keyTok.Text] = true
		elems, err := b.readEntryValue(keyTok.Text, keyTok.Line, depth+1, mapCol)
		if err != nil {
			return nil, err
		}
		list = append(list, elems...)

		ind, ok := b.sc.PeekIndent()
		if !ok || ind != mapCol {
			break
		}
		if looksLikeSeqItem(b.sc.PeekText()) {
			break
		}
	}
	list = append(list, Element{Key: "", Value: CloseObject, Indent: depth})
	return list, nil
}

// buildInlineArray implements spec §4.2 BuildInlineArray.
func (b *Builder) buildInlineArray(depth int) (List, error) {
	open, err := b.sc.NextValue(true)
	if err != nil {
		return nil, err
	}
	if open.Text != "[" {
		return nil, errs.Newf(errs.InvalidArray, open.Line, "expected '['")
	}
	list := List{{Key: "", Value: OpenArray, Indent: depth}}

	expectValue := true
	startLine := open.Line
	for {
		tok, err := b.sc.NextValue(true)
		if err != nil {
			if scanner.IsEOF(err) {
				return nil, errs.Newf(errs.UnclosedArray, startLine, "unclosed inline array")
			}
			return nil, err
		}
		switch tok.Text {
		case "]":
			if expectValue && len(list) > 1 {
				list = append(list, Element{Value: "null", Indent: depth + 1, Line: tok.Line})
			}
			list = append(list, Element{Key: "", Value: CloseArray, Indent: depth})
			return list, nil
		case ",":
			if expectValue {
				list = append(list, Element{Value: "null", Indent: depth + 1, Line: tok.Line})
			}
			expectValue = true
		case "[":
			nested, err := b.buildInlineArrayFrom(depth + 1)
			if err != nil {
				return nil, err
			}
			list = append(list, nested...)
			expectValue = false
		default:
			if tok.AliasName == "<<" || tok.Text == "<<" {
				return nil, errs.Newf(errs.MergeInArray, tok.Line, "merge keys are forbidden inside inline arrays")
			}
			list = append(list, Element{
				Value: tok.Text, Indent: depth + 1, Literal: tok.Literal,
				Alias: aliasDesignator(tok), Anchor: tok.AnchorName, Line: tok.Line, Tag: tok.Tag,
			})
			expectValue = false
		}
	}
}

// buildInlineArrayFrom continues an inline array whose opening '[' has
// already been scanned.
func (b *Builder) buildInlineArrayFrom(depth int) (List, error) {
	list := List{{Key: "", Value: OpenArray, Indent: depth}}
	expectValue := true
	for {
		tok, err := b.sc.NextValue(true)
		if err != nil {
			return nil, err
		}
		switch tok.Text {
		case "]":
			if expectValue && len(list) > 1 {
				list = append(list, Element{Value: "null", Indent: depth + 1, Line: tok.Line})
			}
			list = append(list, Element{Key: "", Value: CloseArray, Indent: depth})
			return list, nil
		case ",":
			if expectValue {
				list = append(list, Element{Value: "null", Indent: depth + 1, Line: tok.Line})
			}
			expectValue = true
		case "[":
			nested, err := b.buildInlineArrayFrom(depth + 1)
			if err != nil {
				return nil, err
			}
			list = append(list, nested...)
			expectValue = false
		default:
			list = append(list, Element{
				Value: tok.Text, Indent: depth + 1, Literal: tok.Literal,
				Alias: aliasDesignator(tok), Anchor: tok.AnchorName, Line: tok.Line, Tag: tok.Tag,
			})
			expectValue = false
		}
	}
}

// aliasDesignator returns the element's alias reference text. Anchor
// definitions are carried separately on Element.Anchor, set directly
// from tok.AnchorName at each call site.
func aliasDesignator(tok scanner.Token) string {
	if tok.AliasName != "" {
		return "*" + tok.AliasName
	}
	return ""
}

func looksLikeSeqItem(text string) bool {
	return text == "-" || strings.HasPrefix(text, "- ")
}

// tupleKeyIndex reports whether a sequence-item lead line embeds a
// "key: value" mapping entry after its dash, by looking for ": " (or a
// trailing ':') in the text following the dash.
func tupleKeyIndex(text string) int {
	body := text
	if strings.HasPrefix(body, "- ") {
		body = body[2:]
	} else if body == "-" {
		return -1
	} else {
		return -1
	}
	if body == "" {
		return -1
	}
	if body[0] == '[' || body[0] == '"' || body[0] == '\'' {
		return -1
	}
	if idx := strings.Index(body, ": "); idx >= 0 {
		return idx
	}
	if strings.HasSuffix(strings.TrimRight(body, " "), ":") {
		return len(body)
	}
	return -1
}

