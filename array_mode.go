package escargot

// convertToSlow performs the one-way Fast-to-Slow transition (spec.md
// §4.2): detach the dense buffer, reinstall every present slot into a
// fresh propertyStore under its canonical index key, and drop holes
// entirely rather than carrying them forward as absent-but-reserved
// slots. There is no path back from Slow to Fast.
func (a *ArrayObject) convertToSlow() {
	if a.mode == ModeSlow {
		return
	}
	store := newPropertyStore()
	if a.fast != nil {
		for i := uint32(0); i < a.fast.length(); i++ {
			if v := a.fast.get(i); isPresent(v) {
				store.put(indexKey(i), v, true, true, true)
			}
		}
	}
	// carry over any non-indexed properties a Fast-mode array had
	// already accumulated via Put's slow-store fallback, with their
	// attributes, along with any symbol-keyed ones.
	if a.slow != nil {
		for _, n := range a.slow.propNames {
			store.values[n] = a.slow.values[n]
			store.propNames = append(store.propNames, n)
		}
		store.symValues = a.slow.symValues
		store.symNames = a.slow.symNames
	}
	a.slow = store
	a.fast = nil
	a.mode = ModeSlow
	a.touchStructure()
}

// PreventExtensions converts the array to Slow mode and then marks it
// permanently non-extensible: no index at or beyond the current
// length, and no new named property, may be added afterward (spec.md
// §4.3/§4.5). The conversion happens unconditionally and first, the
// same order the original's preventExtensions follows.
func (a *ArrayObject) PreventExtensions() {
	a.convertToSlow()
	a.extensible = false
}

// MarkAsPrototype records that this array has been installed as some
// other object's prototype. Spec.md §4.3/§4.5 list this as an
// unconditional Fast→Slow trigger on its own, independent of whether
// the array happens to hold any indexed data yet: the moment an array
// can be reached as a prototype, an ordinary indexed lookup through it
// must behave like any other Slow-mode property lookup. If it
// currently has any own indexed property, every array subsequently
// created under agent must also start Slow, since a later indexed
// lookup could now be shadowed partway up a prototype chain (spec.md
// §9). The flag, once raised, never clears.
func (a *ArrayObject) MarkAsPrototype(agent *Agent) {
	a.convertToSlow()
	if agent == nil {
		return
	}
	if a.hasAnyIndexedProperty() {
		agent.markPrototypeIndexed()
	}
	a.agent = agent
}

func (a *ArrayObject) hasAnyIndexedProperty() bool {
	if a.mode == ModeFast {
		for i := uint32(0); i < a.fast.length(); i++ {
			if isPresent(a.fast.get(i)) {
				return true
			}
		}
		return false
	}
	for i := uint32(0); i < a.length; i++ {
		if a.slow.has(indexKey(i)) {
			return true
		}
	}
	return false
}
