package escargot

// DestructuringSnapshot walks an object's own enumerable string and
// symbol keys in spec.md §4.8's order, tolerating mutation of the
// target between steps by re-running the Modification Detector and
// repairing its remaining key list when something has changed
// (spec.md §4.7/§4.9). It is the engine behind array- and
// object-rest-destructuring's "collect everything not yet bound".
type DestructuringSnapshot struct {
	snapshotBase
	orderedKeys []PropertyKey
	cursor      int
	visited     keySet
}

// OpenDestructuring captures target's current own keys and returns a
// snapshot positioned before the first one.
func OpenDestructuring(target EnumTarget) *DestructuringSnapshot {
	keys := captureOwnKeys(target)
	return &DestructuringSnapshot{
		snapshotBase: newSnapshotBase(target),
		orderedKeys:  keys,
		visited:      make(keySet, len(keys)),
	}
}

// Next returns the next (key, value) pair, skipping any key that has
// been deleted since it was captured. ok is false once every captured
// key (as repaired across any intervening mutation) has been visited.
func (s *DestructuringSnapshot) Next() (PropertyKey, Value, bool) {
	for {
		if s.modified() {
			s.repair()
		}
		if s.cursor >= len(s.orderedKeys) {
			return PropertyKey{}, nil, false
		}
		key := s.orderedKeys[s.cursor]
		s.cursor++
		s.visited.add(key)

		v, ok := s.target.Get(key)
		if !ok {
			continue
		}
		return key, v, true
	}
}

// Rest drains every remaining key into a fresh GenericObject, the
// direct implementation of a `...rest` binding target.
func (s *DestructuringSnapshot) Rest() *GenericObject {
	obj := NewGenericObject()
	for {
		key, v, ok := s.Next()
		if !ok {
			return obj
		}
		obj.Put(key, v)
	}
}

func (s *DestructuringSnapshot) repair() {
	newKeys := captureOwnKeys(s.target)
	oldTail := s.orderedKeys[s.cursor:]
	diff := repairTail(oldTail, newKeys)
	s.orderedKeys = append(append([]PropertyKey{}, s.orderedKeys[:s.cursor]...), diff...)
	s.recapture()
}
