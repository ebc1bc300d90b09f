package escargot

import "sort"

// captureOwnKeys returns target's own enumerable keys ordered per
// spec.md §4.8's policy: integer-index keys in ascending numeric order,
// then non-index string keys in insertion order, then symbol keys in
// insertion order. Used by the Destructuring snapshot, which walks both
// string and symbol keys.
func captureOwnKeys(target EnumTarget) []PropertyKey {
	props := target.OwnProperties()

	type indexed struct {
		idx uint32
		key PropertyKey
	}
	var indices []indexed
	var named []PropertyKey
	for _, p := range props {
		if !p.Enumerable {
			continue
		}
		if idx, ok := ParseIndex(p.Key); ok {
			indices = append(indices, indexed{idx: idx, key: p.Key})
			continue
		}
		named = append(named, p.Key)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i].idx < indices[j].idx })

	out := make([]PropertyKey, 0, len(indices)+len(named)+len(target.OwnSymbols()))
	for _, e := range indices {
		out = append(out, e.key)
	}
	out = append(out, named...)
	for _, s := range target.OwnSymbols() {
		out = append(out, SymbolKey(s))
	}
	return out
}

// captureOwnStringKeys returns target's own string keys, enumerable or
// not, in the same index-then-insertion order as captureOwnKeys. It is
// the key domain the Chain snapshot's per-level walk uses (spec.md
// §4.8: chain enumeration never visits symbols); non-enumerable keys
// are kept because the walk's shadow rule needs them.
func captureOwnStringKeys(target EnumTarget) []PropertyKey {
	props := target.OwnProperties()

	type indexed struct {
		idx uint32
		key PropertyKey
	}
	var indices []indexed
	var named []PropertyKey
	for _, p := range props {
		if idx, ok := ParseIndex(p.Key); ok {
			indices = append(indices, indexed{idx: idx, key: p.Key})
			continue
		}
		named = append(named, p.Key)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i].idx < indices[j].idx })

	out := make([]PropertyKey, 0, len(indices)+len(named))
	for _, e := range indices {
		out = append(out, e.key)
	}
	out = append(out, named...)
	return out
}

// ownPropertyEnumerable reports whether target has an own property
// under key and, if so, whether it is enumerable — the Chain
// snapshot's shadow rule needs this because captureOwnStringKeys
// returns non-enumerable own properties alongside enumerable ones.
func ownPropertyEnumerable(target EnumTarget, key PropertyKey) (enumerable, hasOwn bool) {
	for _, p := range target.OwnProperties() {
		if p.Key.Equal(key) {
			return p.Enumerable, true
		}
	}
	return false, false
}
