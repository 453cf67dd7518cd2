package resolve_test

import (
	"testing"

	"github.com/anchorq/yamlj/internal/builder"
	"github.com/anchorq/yamlj/internal/errs"
	"github.com/anchorq/yamlj/internal/resolve"
	"github.com/anchorq/yamlj/internal/scanline"
	"github.com/anchorq/yamlj/internal/scanner"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func resolveSrc(t *testing.T, src string) builder.List {
	t.Helper()
	sc := scanner.New(scanline.New(src))
	b := builder.New(sc, false)
	list, err := b.Build()
	require.NoError(t, err)
	resolved, err := resolve.Resolve(list)
	require.NoError(t, err)
	return resolved
}

func findKey(list builder.List, key string) (builder.Element, bool) {
	for _, e := range list {
		if e.Key == key {
			return e, true
		}
	}
	return builder.Element{}, false
}

// findMember locates the Element named memberKey one level inside the
// mapping headed by the key headKey, scoping the search so tests can
// tell a base definition's member from an overriding mapping's member
// of the same name.
func findMember(list builder.List, headKey, memberKey string) (builder.Element, bool) {
	headIdx := -1
	for i, e := range list {
		if e.Key == headKey && e.Value == "" && !e.IsContainer() {
			headIdx = i
			break
		}
	}
	if headIdx < 0 || headIdx+1 >= len(list) || !list[headIdx+1].IsOpen() {
		return builder.Element{}, false
	}
	openIdx := headIdx + 1
	closeIdx := list.MatchClose(openIdx)
	if closeIdx < 0 {
		return builder.Element{}, false
	}
	memberIndent := list[openIdx].Indent + 1
	for i := openIdx + 1; i < closeIdx; i++ {
		if list[i].Key == memberKey && list[i].Indent == memberIndent {
			return list[i], true
		}
	}
	return builder.Element{}, false
}

// requireMember is findMember plus a spew dump of the whole resolved
// list on failure — a merge/alias bug is almost always visible only in
// the surrounding elements (wrong indent, a leftover '<<', a duplicate
// key), which a bare "member not found" failure message doesn't show.
func requireMember(t *testing.T, list builder.List, headKey, memberKey string) builder.Element {
	t.Helper()
	e, ok := findMember(list, headKey, memberKey)
	require.True(t, ok, "member %q.%q not found; resolved list:\n%s", headKey, memberKey, spew.Sdump(list))
	return e
}

func TestResolve_ScalarAlias(t *testing.T) {
	list := resolveSrc(t, "a: &x 1\nb: *x\n")
	b, ok := findKey(list, "b")
	require.True(t, ok)
	require.Equal(t, "1", b.Value)
	require.Equal(t, "", b.Alias)
}

func TestResolve_SubtreeAlias(t *testing.T) {
	list := resolveSrc(t, "a: &x\n  p: 1\n  q: 2\nb: *x\n")
	bIdx := -1
	for i, e := range list {
		if e.Key == "b" {
			bIdx = i
			break
		}
	}
	require.True(t, bIdx >= 0)
	require.Equal(t, builder.OpenObject, list[bIdx+1].Value)
	require.Equal(t, "p", list[bIdx+2].Key)
	require.Equal(t, "1", list[bIdx+2].Value)
	require.Equal(t, "q", list[bIdx+3].Key)
	require.Equal(t, "2", list[bIdx+3].Value)
	require.Equal(t, builder.CloseObject, list[bIdx+4].Value)
}

func TestResolve_AnchorNotFoundErrors(t *testing.T) {
	sc := scanner.New(scanline.New("a: *missing\n"))
	b := builder.New(sc, false)
	list, err := b.Build()
	require.NoError(t, err)
	_, err = resolve.Resolve(list)
	require.Error(t, err)
	var pe *errs.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, errs.AnchorNotFound, pe.Code)
}

func TestResolve_MergeOverridesWin(t *testing.T) {
	list := resolveSrc(t, "base: &b\n  x: 1\n  y: 2\nchild:\n  <<: *b\n  y: 3\n")
	y := requireMember(t, list, "child", "y")
	require.Equal(t, "3", y.Value)
	x := requireMember(t, list, "child", "x")
	require.Equal(t, "1", x.Value)

	baseY := requireMember(t, list, "base", "y")
	require.Equal(t, "2", baseY.Value, "base's own definition must be untouched")
}

func TestResolve_MergeOrphanOverrideKept(t *testing.T) {
	list := resolveSrc(t, "base: &b\n  x: 1\nchild:\n  <<: *b\n  z: 9\n")
	z := requireMember(t, list, "child", "z")
	require.Equal(t, "9", z.Value)
	x := requireMember(t, list, "child", "x")
	require.Equal(t, "1", x.Value)
}

func TestResolve_MergeSingleValueErrors(t *testing.T) {
	sc := scanner.New(scanline.New("base: &b 1\nchild:\n  <<: *b\n"))
	b := builder.New(sc, false)
	list, err := b.Build()
	require.NoError(t, err)
	_, err = resolve.Resolve(list)
	require.Error(t, err)
	var pe *errs.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, errs.MergeSingleValue, pe.Code)
}

func TestResolve_MergePrecedingSiblingOverrideWins(t *testing.T) {
	list := resolveSrc(t, "base: &b\n  y: 2\nchild:\n  y: 99\n  <<: *b\n  z: 3\n")
	y := requireMember(t, list, "child", "y")
	require.Equal(t, "99", y.Value)

	z := requireMember(t, list, "child", "z")
	require.Equal(t, "3", z.Value)

	count := 0
	for _, e := range list {
		if e.Key == "y" {
			count++
		}
	}
	require.Equal(t, 2, count, "child's merged y plus base's own untouched y, never a duplicate within child")
}

func TestResolve_ArrayOverrideReplacesWholesale(t *testing.T) {
	list := resolveSrc(t, "base: &b\n  items:\n    - 1\n    - 2\nchild:\n  <<: *b\n  items: [9]\n")
	itemsIdx := -1
	for i, e := range list {
		if e.Key == "items" {
			itemsIdx = i
		}
	}
	require.True(t, itemsIdx >= 0)
	require.Equal(t, builder.OpenArray, list[itemsIdx+1].Value)
	require.Equal(t, "9", list[itemsIdx+2].Value)
	require.Equal(t, builder.CloseArray, list[itemsIdx+3].Value)
}
