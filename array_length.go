package escargot

import "sort"

// SetLength implements spec.md §4.4's length assignment: growing never
// touches storage in Slow mode; in Fast mode it extends the buffer with
// holes, or first converts to Slow mode when shouldConvertForIndex
// reports the jump too wide; shrinking in Slow mode must delete every present index from
// the old length down to the new one, stopping and rolling back the
// length to one past the first non-configurable index it cannot
// delete.
func (a *ArrayObject) SetLength(newLength uint32) error {
	if newLength == a.length {
		return nil
	}
	if newLength > a.length {
		return a.growLength(newLength)
	}
	return a.shrinkLength(newLength)
}

// SetLengthFromNumber validates a user-facing length value (which may
// arrive as a float64 from a numeric coercion) before delegating to
// SetLength, raising InvalidArrayLength the way spec.md §4.4 requires
// for a non-integer or out-of-range request.
func SetLengthFromNumber(a *ArrayObject, v float64) error {
	if v < 0 || v != float64(uint32(v)) {
		return newError(InvalidArrayLength, "invalid array length %v", v)
	}
	return a.SetLength(uint32(v))
}

// DefineLength applies a defineOwnProperty request targeting the
// "length" key itself (spec.md §4.1/§3). length is always
// non-configurable and non-enumerable, and is never an accessor, so a
// descriptor asking for any of those is rejected outright. Its
// writability may only ever transition from true to false — never
// back — and clearing it is itself an unconditional Fast→Slow trigger
// (spec.md §4.2/§4.3), mirroring PreventExtensions and MarkAsPrototype.
// A supplied value is applied through SetLength after the attribute
// checks pass, and is rejected if length is already non-writable and
// the requested value differs from the current one.
func (a *ArrayObject) DefineLength(desc PropertyDescriptor) error {
	if desc.Accessor {
		return newError(PropertyNotConfigurable, "length cannot be redefined as an accessor property")
	}
	if desc.Configurable == FlagTrue {
		return newError(PropertyNotConfigurable, "length cannot be made configurable")
	}
	if desc.Enumerable == FlagTrue {
		return newError(PropertyNotConfigurable, "length cannot be made enumerable")
	}
	if desc.Writable == FlagTrue && !a.lengthWritable {
		return newError(PropertyNotConfigurable, "length cannot become writable again once non-writable")
	}

	if desc.HasValue {
		n, ok := toLengthNumber(desc.Value)
		if !ok {
			return newError(InvalidArrayLength, "invalid array length %v", desc.Value)
		}
		if !a.lengthWritable && n != a.length {
			return newError(PropertyNotConfigurable, "cannot change a non-writable length")
		}
		if err := a.SetLength(n); err != nil {
			return err
		}
	}

	if desc.Writable == FlagFalse && a.lengthWritable {
		a.lengthWritable = false
		a.convertToSlow()
		a.touchStructure()
	}
	return nil
}

// toLengthNumber coerces a Value into the uint32 SetLength expects,
// accepting the handful of concrete numeric representations a
// surrounding runtime might hand in for a length value.
func toLengthNumber(v Value) (uint32, bool) {
	switch n := v.(type) {
	case uint32:
		return n, true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint32(n), true
	case float64:
		if n < 0 || n != float64(uint32(n)) {
			return 0, false
		}
		return uint32(n), true
	default:
		return 0, false
	}
}

func (a *ArrayObject) growLength(newLength uint32) error {
	if !a.extensible {
		return newError(NotExtensible, "cannot grow non-extensible array to length %d", newLength)
	}
	if a.mode == ModeFast {
		if a.shouldConvertForIndex(newLength - 1) {
			a.convertToSlow()
		} else {
			a.fast.resizeUp(newLength)
			a.length = newLength
			a.touchStructure()
			return nil
		}
	}
	a.length = newLength
	a.touchStructure()
	return nil
}

// shrinkLength performs the Slow-mode downward walk, skipping absent
// indices without touching storage and attempting to delete each
// present index from oldLength-1 down to newLength. In Fast mode every
// slot is configurable by construction, so the walk can never fail and
// is done as a single buffer truncation instead.
func (a *ArrayObject) shrinkLength(newLength uint32) error {
	if a.mode == ModeFast {
		a.fast.resizeDown(newLength)
		a.length = newLength
		a.touchStructure()
		return nil
	}

	present := a.presentIndicesInRange(newLength, a.length)
	sort.Slice(present, func(i, j int) bool { return present[i] > present[j] })

	for _, idx := range present {
		if !a.slow.delete(indexKey(idx)) {
			// Partial rollback: the length stops one past the index
			// that refused deletion. Indices above it have already been
			// deleted; the failed index itself and everything below it
			// (which the walk never reached) stay intact.
			a.length = idx + 1
			a.touchStructure()
			return newError(PropertyNotConfigurable, "cannot delete non-configurable index %d while shrinking length", idx)
		}
	}
	a.length = newLength
	a.touchStructure()
	return nil
}

// presentIndicesInRange collects every own index key in [lo, hi) that
// is actually present, the "next lower present index" source the
// downward walk consumes; absent indices in the gap are never visited.
func (a *ArrayObject) presentIndicesInRange(lo, hi uint32) []uint32 {
	out := make([]uint32, 0)
	for _, n := range a.slow.propNames {
		idx, ok := parseCanonicalIndex(n)
		if !ok || idx < lo || idx >= hi {
			continue
		}
		out = append(out, idx)
	}
	return out
}
