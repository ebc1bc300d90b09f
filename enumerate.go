package escargot

// keySet is a small set of PropertyKeys keyed by their identity, used
// by both snapshot variants to track which keys have already been
// visited and, during repair, which keys remain in the old unvisited
// tail.
type keySet map[interface{}]bool

func newKeySet(keys []PropertyKey) keySet {
	s := make(keySet, len(keys))
	for _, k := range keys {
		s[k.id()] = true
	}
	return s
}

func (s keySet) has(k PropertyKey) bool { return s[k.id()] }
func (s keySet) add(k PropertyKey)      { s[k.id()] = true }

// snapshotBase holds the Modification Detector state shared by the
// Destructuring and Chain snapshot variants (spec.md §4.9): the
// structure identity captured at open/last-repair time, and the array
// length captured alongside it when the target happens to be array-
// like. modified reports whether anything the detector watches has
// since changed; arrayLike is nil when target is not an ArrayObject.
type snapshotBase struct {
	target    EnumTarget
	structure *structureID
	arrayLike ArrayLike
	arrayLen  uint32
}

func newSnapshotBase(target EnumTarget) snapshotBase {
	b := snapshotBase{target: target, structure: target.Structure()}
	if al, ok := target.(ArrayLike); ok {
		b.arrayLike = al
		b.arrayLen = al.ArrayLength()
	}
	return b
}

// modified implements the array-specific half of the Modification
// Detector: a structure-identity change (an own-property shape change
// anywhere in the object) or, for an array target, a length change.
func (b *snapshotBase) modified() bool {
	if b.target.Structure() != b.structure {
		return true
	}
	if b.arrayLike != nil && b.arrayLike.ArrayLength() != b.arrayLen {
		return true
	}
	return false
}

func (b *snapshotBase) recapture() {
	b.structure = b.target.Structure()
	if b.arrayLike != nil {
		b.arrayLen = b.arrayLike.ArrayLength()
	}
}

// repairTail recomputes diffKeys = newKeys ∩ oldUnvisitedTail: of the
// keys the target currently has, keep only those that were already
// present in the unvisited remainder of the old ordered key list
// before the mutation. This is why a key deleted before it was
// visited simply disappears (it is absent from newKeys), a key added
// during enumeration is excluded (it was never in the old tail), and a
// key that survives unvisited is kept and will still be visited
// exactly once.
func repairTail(oldTail []PropertyKey, newKeys []PropertyKey) []PropertyKey {
	oldSet := newKeySet(oldTail)
	diff := make([]PropertyKey, 0, len(newKeys))
	for _, k := range newKeys {
		if oldSet.has(k) {
			diff = append(diff, k)
		}
	}
	return diff
}
