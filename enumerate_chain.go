package escargot

// ChainSnapshot walks an object's own and inherited enumerable string
// keys (spec.md §4.8's Chain variant, used for for-in), applying the
// shadow rule: a key already emitted from a shallower level is never
// emitted again, and an own non-enumerable property of the starting
// object — but only the starting object, not any ancestor — claims its
// name and blocks every ancestor's enumerable property under that name
// from ever being emitted. The walk never visits symbols and is bounded
// to maxDepth levels.
type ChainSnapshot struct {
	target   EnumTarget
	maxDepth int

	orderedKeys []PropertyKey
	cursor      int
	visited     keySet

	chainStructures []*structureID
	arrayLike       ArrayLike
	arrayLen        uint32
}

// OpenChain captures target's current chain key order and returns a
// snapshot positioned before the first key, or a PrototypeChainTooDeep
// error if the chain exceeds maxDepth levels.
func OpenChain(target EnumTarget, maxDepth int) (*ChainSnapshot, error) {
	keys, structures, err := captureChainKeysAndStructures(target, maxDepth)
	if err != nil {
		return nil, err
	}
	s := &ChainSnapshot{
		target:          target,
		maxDepth:        maxDepth,
		orderedKeys:     keys,
		visited:         make(keySet, len(keys)),
		chainStructures: structures,
	}
	if al, ok := target.(ArrayLike); ok {
		s.arrayLike = al
		s.arrayLen = al.ArrayLength()
	}
	return s, nil
}

// Next returns the next (key, value) pair. ok is false once the
// (possibly repaired) key list is exhausted; err is non-nil only if a
// repair walk discovers the chain now exceeds its depth bound.
func (s *ChainSnapshot) Next() (PropertyKey, Value, bool, error) {
	for {
		if s.modified() {
			if err := s.repair(); err != nil {
				return PropertyKey{}, nil, false, err
			}
		}
		if s.cursor >= len(s.orderedKeys) {
			return PropertyKey{}, nil, false, nil
		}
		key := s.orderedKeys[s.cursor]
		s.cursor++
		s.visited.add(key)

		v, ok := s.target.Get(key)
		if !ok {
			continue
		}
		return key, v, true, nil
	}
}

// modified implements the chain-specific half of the Modification
// Detector: besides the target's own array length, it walks the chain
// comparing every level's structure identity against what was captured
// at open/last-repair time. Any change — a value-shape change at any
// level, or a prototype spliced in, removed, or reordered — trips it.
func (s *ChainSnapshot) modified() bool {
	if s.arrayLike != nil && s.arrayLike.ArrayLength() != s.arrayLen {
		return true
	}
	var cur EnumTarget = s.target
	for i := 0; ; i++ {
		if cur == nil {
			return i != len(s.chainStructures)
		}
		if i >= len(s.chainStructures) {
			return true
		}
		if cur.Structure() != s.chainStructures[i] {
			return true
		}
		proto, ok := cur.Prototype()
		if !ok {
			cur = nil
			continue
		}
		cur = proto
	}
}

func (s *ChainSnapshot) repair() error {
	newKeys, structures, err := captureChainKeysAndStructures(s.target, s.maxDepth)
	if err != nil {
		return err
	}
	oldTail := s.orderedKeys[s.cursor:]
	diff := repairTail(oldTail, newKeys)
	s.orderedKeys = append(append([]PropertyKey{}, s.orderedKeys[:s.cursor]...), diff...)
	s.chainStructures = structures
	if s.arrayLike != nil {
		s.arrayLen = s.arrayLike.ArrayLength()
	}
	return nil
}

// captureChainKeysAndStructures performs the shadowed chain walk and
// also records each level's structure identity, the raw material both
// OpenChain and repair need.
func captureChainKeysAndStructures(target EnumTarget, maxDepth int) ([]PropertyKey, []*structureID, error) {
	var result []PropertyKey
	var structures []*structureID
	emitted := make(keySet)

	var cur EnumTarget = target
	for depth := 0; cur != nil; depth++ {
		if depth > maxDepth {
			return nil, nil, newError(PrototypeChainTooDeep, "prototype chain exceeds %d levels during enumeration", maxDepth)
		}
		structures = append(structures, cur.Structure())

		isTarget := depth == 0
		for _, key := range captureOwnStringKeys(cur) {
			enumerable, hasOwn := ownPropertyEnumerable(cur, key)
			if !hasOwn {
				continue
			}
			if emitted.has(key) {
				continue
			}
			if isTarget {
				// The starting object's own property claims its name
				// regardless of enumerability; only the enumerable
				// case is actually emitted.
				emitted.add(key)
				if enumerable {
					result = append(result, key)
				}
				continue
			}
			// An ancestor's non-enumerable property has no shadowing
			// effect at all: it is neither emitted nor added to the
			// emitted set, so a deeper ancestor's property under the
			// same name can still surface.
			if enumerable {
				emitted.add(key)
				result = append(result, key)
			}
		}

		proto, ok := cur.Prototype()
		if !ok {
			break
		}
		cur = proto
	}
	return result, structures, nil
}
