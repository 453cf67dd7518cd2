// Package yamlj converts between Y, an indentation-sensitive markup
// format in the YAML family, and J, a brace/bracket-delimited format in
// the JSON family.
//
// The core pipeline is a single-pass scanner (internal/scanner) feeding
// a recursive-descent structure builder (internal/builder) that
// produces a flat element list; an anchor/alias/merge resolver
// (internal/resolve) runs two fixed-point passes over that list; a
// scalar classifier (internal/classify) and emitter (internal/emit)
// then walk it once to produce J text. The reverse direction parses J
// text into an independent tree model (jtree) and an emitter
// (internal/emity) walks that tree to produce Y text.
package yamlj

import (
	"github.com/anchorq/yamlj/internal/builder"
	"github.com/anchorq/yamlj/internal/classify"
	"github.com/anchorq/yamlj/internal/emit"
	"github.com/anchorq/yamlj/internal/emity"
	"github.com/anchorq/yamlj/internal/errs"
	"github.com/anchorq/yamlj/internal/resolve"
	"github.com/anchorq/yamlj/internal/scanline"
	"github.com/anchorq/yamlj/internal/scanner"
	"github.com/anchorq/yamlj/jtree"
)

// YAMLToJSON converts Y source text to J text.
func YAMLToJSON(source string, opts ...Option) (string, error) {
	c := resolveOptions(opts)
	list, err := parseAndResolve(source, c)
	if err != nil {
		return "", err
	}
	return emit.Emit(list, emit.Options{IndentWidth: c.indent, BoolAlias: c.boolAlias})
}

// YAMLToJSONTree converts Y source text to a jtree.Value, by emitting J
// text and re-parsing it — the YamlToJsonValue convenience spec §4.6
// calls for.
func YAMLToJSONTree(source string, opts ...Option) (*jtree.Value, error) {
	text, err := YAMLToJSON(source, opts...)
	if err != nil {
		return nil, err
	}
	return jtree.Parse(text)
}

// JSONToYAML converts J text to Y source text.
func JSONToYAML(source string, opts ...Option) (string, error) {
	tree, err := jtree.Parse(source)
	if err != nil {
		return "", err
	}
	return TreeToYAML(tree, opts...)
}

// TreeToYAML converts an already-parsed J tree to Y source text. The
// root must be an object or array.
func TreeToYAML(tree *jtree.Value, opts ...Option) (string, error) {
	if tree.Kind() != jtree.Object && tree.Kind() != jtree.Array {
		return "", errs.ErrRootNotContainer
	}
	c := resolveOptions(opts)
	return emity.Emit(tree, emity.Options{IndentWidth: c.indent, BoolAlias: c.boolAlias}), nil
}

// Minify reduces J text to one line by concatenating each source line's
// trimmed contents separated by single spaces. It is purely textual —
// it does not reparse or validate the input.
func Minify(source string) string {
	return minifyText(source)
}

func parseAndResolve(source string, c config) (builder.List, error) {
	lines := scanline.New(source)
	sc := scanner.New(lines)
	b := builder.New(sc, c.allowDuplicateKeys)
	list, err := b.Build()
	if err != nil {
		return nil, err
	}
	return resolve.Resolve(list)
}

// classifyAll returns each leaf's computed text without going through
// the full emitter.
func classifyAll(list builder.List, c config) ([]classify.Result, error) {
	results := make([]classify.Result, 0, len(list))
	for i, e := range list {
		if e.IsContainer() {
			continue
		}
		if e.Key != "" && e.Value == "" && !e.Literal && e.Tag == "" {
			continue
		}
		res, err := classify.Classify(list, i, classify.Options{BoolAlias: c.boolAlias, IndentWidth: c.indent})
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
