// Package resolve implements the two fixed-point passes of spec §4.3:
// alias expansion against anchor-defined subtrees, then merge-key
// (`<<`) expansion. Both passes operate in place on a builder.List,
// splicing and removing ranges — the payoff of keeping the pivot
// representation flat rather than a tree, since a subtree copy is a
// contiguous slice copy and a merge override removal is a contiguous
// slice delete.
//
// Grounded on willabides/yaml's node.go alias/merge handling (which
// walks a real tree and therefore needs no range arithmetic) generalized
// to this project's flat-list representation the way huml-lang-go-huml's
// parser keeps everything indent-indexed rather than pointer-linked.
package resolve

import (
	"strings"

	"github.com/anchorq/yamlj/internal/builder"
	"github.com/anchorq/yamlj/internal/errs"
)

// Resolve runs both fixed-point passes over list and returns the
// resolved list. list is consumed; callers should not reuse it.
func Resolve(list builder.List) (builder.List, error) {
	list, err := resolveAliases(list)
	if err != nil {
		return nil, err
	}
	return resolveMerges(list)
}

// anchorRange locates an anchor's definition. idx is the index of the
// Element carrying the anchor name, which is either the scalar value
// itself (valueStart == idx) or a "head" key whose nested container
// follows at idx+1 (valueStart == idx+1, valueEnd the index past the
// container's matching closer). The anchor's own key is never part of
// [valueStart, valueEnd): that range is exactly the copyable "value".
type anchorRange struct {
	idx        int
	valueStart int
	valueEnd   int
}

// isContainer reports whether the anchor's value is a nested container
// rather than a bare scalar.
func (r anchorRange) isContainer() bool { return r.valueStart == r.idx+1 }

func findAnchor(list builder.List, name string) (anchorRange, bool) {
	for i, e := range list {
		if e.Anchor != name {
			continue
		}
		if e.Value == "" && !e.IsContainer() && i+1 < len(list) && list[i+1].IsOpen() {
			// A key ("head") whose value is a nested container: the
			// container's own open marker sits at the head's own Indent
			// (the builder's indent model), so the subtree cannot be
			// found by an indent-greater-than scan from the head itself —
			// delegate straight to the opener's matching closer.
			close := list.MatchClose(i + 1)
			end := i + 1
			if close >= 0 {
				end = close + 1
			}
			return anchorRange{idx: i, valueStart: i + 1, valueEnd: end}, true
		}
		return anchorRange{idx: i, valueStart: i, valueEnd: i + 1}, true
	}
	return anchorRange{}, false
}

// subtreeReferencesAlias reports whether any element in the anchor's
// value range is itself an unresolved alias to name — spec's
// AliasRecursive check.
func subtreeReferencesAlias(list builder.List, r anchorRange, name string) bool {
	for i := r.valueStart; i < r.valueEnd; i++ {
		if strings.HasPrefix(list[i].Alias, "*") && list[i].Alias[1:] == name && list[i].Key != "<<" {
			return true
		}
	}
	return false
}

// resolveAliases implements spec §4.3 pass 1.
func resolveAliases(list builder.List) (builder.List, error) {
	for {
		idx := -1
		for i, e := range list {
			if strings.HasPrefix(e.Alias, "*") && e.Key != "<<" {
				idx = i
				break
			}
		}
		if idx < 0 {
			return list, nil
		}
		name := list[idx].Alias[1:]
		line := list[idx].Line

		r, ok := findAnchor(list, name)
		if !ok {
			return nil, errs.Newf(errs.AnchorNotFound, line, "anchor %q not found", name)
		}

		if !r.isContainer() {
			// Scalar anchor: overwrite value/literal/tag in place.
			anchor := list[r.idx]
			list[idx].Value = anchor.Value
			list[idx].Literal = anchor.Literal
			list[idx].Tag = anchor.Tag
			list[idx].Alias = ""
			continue
		}

		if subtreeReferencesAlias(list, r, name) {
			return nil, errs.Newf(errs.AliasRecursive, line, "alias %q is recursive", name)
		}

		aliasElem := list[idx]
		aliasElem.Alias = ""
		aliasElem.Value = ""

		copied := rebase(list[r.valueStart:r.valueEnd], aliasElem.Indent-list[r.valueStart].Indent)

		out := make(builder.List, 0, len(list)+len(copied))
		out = append(out, list[:idx]...)
		out = append(out, aliasElem)
		out = append(out, copied...)
		out = append(out, list[idx+1:]...)
		list = out
	}
}

// rebase returns a copy of list with every element's Indent shifted by
// delta, used both to relocate a copied alias subtree under its new
// parent and to relocate a merged anchor's members under the mapping
// that names them via '<<'.
func rebase(list builder.List, delta int) builder.List {
	if len(list) == 0 {
		return nil
	}
	out := make(builder.List, len(list))
	copy(out, list)
	if delta != 0 {
		for i := range out {
			out[i].Indent += delta
		}
	}
	return out
}

// topLevelEntries splits list into one contiguous range per entry at
// list's own top Indent (list[0].Indent): a bare element, or a keyed
// head/array item plus its whole nested subtree. This is the unit merge
// overriding replaces wholesale — an override entry that is a container
// (an array, say) replaces the anchor's same-keyed entry in full rather
// than merging field by field, which is what spec's "arrays replace
// wholesale, never merge" rule amounts to once entries are the unit of
// comparison.
func topLevelEntries(list builder.List) []builder.List {
	if len(list) == 0 {
		return nil
	}
	top := list[0].Indent
	var entries []builder.List
	i := 0
	for i < len(list) {
		start := i
		switch {
		case list[i].IsOpen():
			// A bare container item (an array holding a nested array or
			// mapping directly, with no key of its own).
			i = advancePastClose(list, i)
		case list[i].Key != "" && list[i].Value == "" && !list[i].IsContainer() &&
			i+1 < len(list) && list[i+1].IsOpen() && list[i+1].Indent == top:
			// A "head" key whose nested container's opener shares the
			// head's own Indent (the builder's indent model) rather
			// than being one level deeper, so the entry runs to that
			// container's closer instead of stopping at the head.
			i = advancePastClose(list, i+1)
		default:
			i++
		}
		entries = append(entries, list[start:i])
	}
	return entries
}

// advancePastClose returns the index just past the marker closing the
// opener at openIdx, or openIdx+1 if no matching closer is found (never
// expected for a well-formed list).
func advancePastClose(list builder.List, openIdx int) int {
	if close := list.MatchClose(openIdx); close >= 0 {
		return close + 1
	}
	return openIdx + 1
}

func entryKey(e builder.List) string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Key
}

// mergeChildren merges anchorEntries with overrideEntries by key,
// keeping the anchor's own entry order and substituting a matching
// override's full entry range in place (never a field-by-field merge).
// It returns the merged entries plus whichever override entries never
// matched an anchor key (orphans, in their original relative order).
func mergeChildren(anchorEntries, overrideEntries []builder.List) (builder.List, builder.List) {
	used := make([]bool, len(overrideEntries))
	var merged builder.List
	for _, ae := range anchorEntries {
		key := entryKey(ae)
		replaced := false
		if key != "" {
			for j, oe := range overrideEntries {
				if used[j] || entryKey(oe) != key {
					continue
				}
				merged = append(merged, oe...)
				used[j] = true
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, ae...)
		}
	}

	var orphans builder.List
	for j, oe := range overrideEntries {
		if !used[j] {
			orphans = append(orphans, oe...)
		}
	}
	return merged, orphans
}

// resolveMerges implements spec §4.3 pass 2.
func resolveMerges(list builder.List) (builder.List, error) {
	for {
		idx := -1
		for i, e := range list {
			if e.Key == "<<" {
				idx = i
				break
			}
		}
		if idx < 0 {
			return list, nil
		}
		line := list[idx].Line
		if !strings.HasPrefix(list[idx].Alias, "*") {
			return nil, errs.Newf(errs.MergeInvalid, line, "merge key has no alias reference")
		}
		name := list[idx].Alias[1:]

		r, ok := findAnchor(list, name)
		if !ok {
			return nil, errs.Newf(errs.AnchorNotFound, line, "anchor %q not found", name)
		}
		if !r.isContainer() || list[r.valueStart].Value != builder.OpenObject {
			return nil, errs.Newf(errs.MergeSingleValue, line, "merge target %q is not a mapping", name)
		}

		mergeIndent := list[idx].Indent
		parentIdx := -1
		for i := idx - 1; i >= 0; i-- {
			if list[i].Indent < mergeIndent {
				parentIdx = i
				break
			}
		}
		if parentIdx < 0 {
			return nil, errs.Newf(errs.MergeInvalid, line, "merge key has no enclosing mapping")
		}

		// The anchor's members are its OpenObject's interior, rebased
		// from their own indent (one deeper than the mapping's opener)
		// to this mapping's own member indent (mergeIndent).
		memberIndent := list[r.valueStart].Indent + 1
		members := rebase(list[r.valueStart+1:r.valueEnd-1], mergeIndent-memberIndent)

		// Collect every top-level entry of the enclosing mapping, both
		// before and after the merge key in source order, as potential
		// overrides — a sibling that precedes '<<' must win over the
		// anchor's same-keyed member the same way a trailing one does,
		// or the two end up as duplicate keys in the merged result.
		closeIdx := list.MatchClose(parentIdx)
		if closeIdx < 0 {
			closeIdx = len(list)
		}
		var overrideEntries []builder.List
		for _, e := range topLevelEntries(list[parentIdx+1 : closeIdx]) {
			if entryKey(e) == "<<" {
				continue
			}
			overrideEntries = append(overrideEntries, e)
		}

		merged, orphans := mergeChildren(topLevelEntries(members), overrideEntries)
		merged = append(merged, orphans...)

		out := make(builder.List, 0, len(list)-(closeIdx-parentIdx-1)+len(merged))
		out = append(out, list[:parentIdx+1]...)
		out = append(out, merged...)
		out = append(out, list[closeIdx:]...)
		list = out
	}
}
