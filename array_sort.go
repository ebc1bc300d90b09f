package escargot

// stackScratchLimit bounds how many elements the merge sort keeps in a
// fixed-size array instead of a heap-allocated scratch slice, mirroring
// the ~1KiB stack-vs-heap cutover spec.md §4.5 describes (a Value slot
// is a two-word interface, 16 bytes on a 64-bit target, so 64 slots
// make a 1KiB scratch buffer).
const stackScratchLimit = 64

// Comparator orders two elements, returning a negative, zero, or
// positive result the way a user-supplied compare function would. It
// may run arbitrary code, including code that mutates the array being
// sorted; Sort sorts a copy of the elements and checks the array's
// mode, length and structure once, after the sort finishes and before
// writing back, to stay correct in that case (spec.md §4.5/§9).
type Comparator func(x, y Value) (int, error)

// Sort reorders the array's [0, length) elements in place using a
// stable merge sort, calling cmp only on pairs of present elements:
// holes and Undefined values are never compared, and sort after
// Undefined values and after all present elements, in that order,
// matching the default relative ordering a comparator-free sort
// assumes.
func (a *ArrayObject) Sort(cmp Comparator) error {
	_, err := a.sortRange(cmp, a.length)
	return err
}

// ToSorted returns a new array, built by FromElements, holding the stably sorted
// copy of a's elements, leaving a untouched (spec.md §4.5's
// non-mutating variant).
func ToSorted(a *ArrayObject, cmp Comparator) (*ArrayObject, error) {
	elems := make([]Value, a.length)
	for i := uint32(0); i < a.length; i++ {
		if v, ok := a.GetIndex(i); ok {
			elems[i] = v
		} else {
			elems[i] = Empty
		}
	}
	sorted, err := mergeSort(elems, cmp)
	if err != nil {
		return nil, err
	}
	return FromElements(a.agent, sorted), nil
}

// sortRange extracts the array's current elements, sorts them, and
// writes the result back through whichever storage mode the array is
// in by the time the comparator is done running arbitrary code.
func (a *ArrayObject) sortRange(cmp Comparator, length uint32) ([]Value, error) {
	checkpoint := Capture(a)

	elems := make([]Value, length)
	for i := uint32(0); i < length; i++ {
		if v, ok := a.GetIndex(i); ok {
			elems[i] = v
		} else {
			elems[i] = Empty
		}
	}

	sorted, err := mergeSort(elems, cmp)
	if err != nil {
		return nil, err
	}

	a.writeBackSorted(sorted, checkpoint)
	return sorted, nil
}

// writeBackSorted installs the sorted elements, choosing a direct
// buffer copy when the array is still Fast and structurally unchanged,
// or a per-element reinstall through the public setter when the
// comparator has converted it to Slow mode or otherwise changed its
// shape. If the comparator mutated the length, it is restored to what
// it was before sorting began, per spec.md §4.5.
func (a *ArrayObject) writeBackSorted(sorted []Value, checkpoint Checkpoint) {
	targetLength := checkpoint.length

	if a.mode == ModeFast && checkpoint.Unchanged(a) {
		for i, v := range sorted {
			if uint32(i) >= a.fast.length() {
				break
			}
			a.fast.set(uint32(i), v)
		}
		a.length = targetLength
		return
	}

	for i, v := range sorted {
		idx := uint32(i)
		if idx >= targetLength {
			break
		}
		if isHole(v) {
			_ = a.DeleteIndex(idx)
			continue
		}
		_ = a.SetIndex(idx, v)
	}
	_ = a.SetLength(targetLength)
}

// mergeSort is a bottom-up stable merge sort over a scratch buffer,
// using a fixed-size array instead of a heap allocation when the input
// is small enough to matter (stackScratchLimit). Holes sort after every
// present value, and Undefined sorts after every other present value,
// without ever invoking cmp to decide either placement.
func mergeSort(elems []Value, cmp Comparator) ([]Value, error) {
	n := len(elems)
	if n < 2 {
		return elems, nil
	}

	var stackScratch [stackScratchLimit]Value
	var scratch []Value
	if n <= stackScratchLimit {
		scratch = stackScratch[:n]
	} else {
		scratch = make([]Value, n)
	}

	src := append([]Value(nil), elems...)
	dst := scratch

	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			if err := merge(src, dst, lo, mid, hi, cmp); err != nil {
				return nil, err
			}
		}
		src, dst = dst, src
	}
	// Copy out so the result never aliases stackScratch, which keeps
	// stackScratch on the stack.
	return append([]Value(nil), src...), nil
}

func merge(src, dst []Value, lo, mid, hi int, cmp Comparator) error {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		less, err := sortLess(src[j], src[i], cmp)
		if err != nil {
			return err
		}
		if less {
			dst[k] = src[j]
			j++
		} else {
			dst[k] = src[i]
			i++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
	return nil
}

// sortLess reports whether y must sort strictly before x, applying the
// hole/Undefined placement rule before ever calling cmp.
func sortLess(y, x Value, cmp Comparator) (bool, error) {
	xHole, yHole := isHole(x), isHole(y)
	if xHole && yHole {
		return false, nil
	}
	if yHole {
		return false, nil
	}
	if xHole {
		return true, nil
	}
	_, xUndef := x.(undefinedType)
	_, yUndef := y.(undefinedType)
	if xUndef && yUndef {
		return false, nil
	}
	if yUndef {
		return false, nil
	}
	if xUndef {
		return true, nil
	}
	r, err := cmp(y, x)
	if err != nil {
		return false, err
	}
	return r < 0, nil
}
