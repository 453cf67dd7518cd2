package emity_test

import (
	"testing"

	"github.com/anchorq/yamlj/internal/emity"
	"github.com/anchorq/yamlj/jtree"
	"github.com/stretchr/testify/require"
)

func TestEmit_ScalarRoot(t *testing.T) {
	out := emity.Emit(jtree.NewNumber(5), emity.Options{})
	require.Equal(t, "5\n", out)
}

func TestEmit_EmptyObjectRoot(t *testing.T) {
	out := emity.Emit(jtree.NewObject(), emity.Options{})
	require.Equal(t, "{}\n", out)
}

func TestEmit_EmptyArrayRoot(t *testing.T) {
	out := emity.Emit(jtree.NewArray(), emity.Options{})
	require.Equal(t, "[]\n", out)
}

func TestEmit_FlatMapping(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewNumber(1))
	v.SetMember("b", jtree.NewString("two"))
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a: 1\nb: two\n", out)
}

func TestEmit_NestedMapping(t *testing.T) {
	inner := jtree.NewObject()
	inner.SetMember("b", jtree.NewNumber(1))
	v := jtree.NewObject()
	v.SetMember("a", inner)
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a:\n  b: 1\n", out)
}

func TestEmit_SequenceRoot(t *testing.T) {
	v := jtree.NewArray()
	v.AppendChild(jtree.NewNumber(1))
	v.AppendChild(jtree.NewNumber(2))
	v.AppendChild(jtree.NewNumber(3))
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "- 1\n- 2\n- 3\n", out)
}

func TestEmit_NestedSequenceUnderKey(t *testing.T) {
	items := jtree.NewArray()
	items.AppendChild(jtree.NewNumber(1))
	items.AppendChild(jtree.NewNumber(2))
	v := jtree.NewObject()
	v.SetMember("items", items)
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "items:\n  - 1\n  - 2\n", out)
}

func TestEmit_ReservedWordStringIsQuoted(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewString("yes"))
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a: \"yes\"\n", out)
}

func TestEmit_EmptyStringIsQuotedEmpty(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewString(""))
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a: ''\n", out)
}

func TestEmit_MultilineStringUsesLiteralBlockClip(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewString("line1\nline2\n"))
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a: |\n  line1\n  line2\n", out)
}

func TestEmit_MultilineStringNoTrailingNewlineUsesStrip(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewString("line1\nline2"))
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a: |-\n  line1\n  line2\n", out)
}

func TestEmit_MultilineStringExtraTrailingNewlinesUsesKeep(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewString("line1\nline2\n\n"))
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a: |+\n  line1\n  line2\n\n", out)
}

func TestEmit_BoolAliasYesNo(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewBool(true))
	v.SetMember("b", jtree.NewBool(false))
	out := emity.Emit(v, emity.Options{BoolAlias: true})
	require.Equal(t, "a: yes\nb: no\n", out)
}

func TestEmit_BoolWithoutAlias(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewBool(true))
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a: true\n", out)
}

func TestEmit_NumericStringIsQuoted(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewString("123"))
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a: \"123\"\n", out)
}

func TestEmit_PlainStringNotQuoted(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewString("hello"))
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a: hello\n", out)
}

func TestEmit_CustomIndentWidth(t *testing.T) {
	inner := jtree.NewObject()
	inner.SetMember("b", jtree.NewNumber(1))
	v := jtree.NewObject()
	v.SetMember("a", inner)
	out := emity.Emit(v, emity.Options{IndentWidth: 4})
	require.Equal(t, "a:\n    b: 1\n", out)
}

func TestEmit_IndentWidthBelowTwoClampsToTwo(t *testing.T) {
	inner := jtree.NewObject()
	inner.SetMember("b", jtree.NewNumber(1))
	v := jtree.NewObject()
	v.SetMember("a", inner)
	out := emity.Emit(v, emity.Options{IndentWidth: 1})
	require.Equal(t, "a:\n  b: 1\n", out)
}

func TestEmit_EmptyNestedContainersInline(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewObject())
	v.SetMember("b", jtree.NewArray())
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a: {}\nb: []\n", out)
}

func TestEmit_NullValue(t *testing.T) {
	v := jtree.NewObject()
	v.SetMember("a", jtree.NewNull())
	out := emity.Emit(v, emity.Options{})
	require.Equal(t, "a: null\n", out)
}
