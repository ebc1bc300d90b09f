package escargot

// Length implements LengthSource for an ArrayObject.
func (a *ArrayObject) Length() uint32 { return a.length }

// IterationKind selects what an ArrayIterator yields on each step
// (spec.md §4.6).
type IterationKind int

const (
	KeyIteration IterationKind = iota
	ValueIteration
	KeyValueIteration
)

// IteratorResult is one step's output: either Done, or a Value holding
// the index, the element, or a [index, element] pair depending on the
// iterator's kind.
type IteratorResult struct {
	Value Value
	Done  bool
}

// ArrayIterator walks an indexable, length-bearing target index by
// index, re-reading the target's length on every call to Next rather
// than caching it once at creation, so that a length change mid-walk
// (growth, shrink, or a detach) takes effect immediately (spec.md
// §4.6). typedTarget is non-nil only when iterating a typed array,
// the one case that can fail with DetachedOrResizedTypedArray.
type ArrayIterator struct {
	target      Indexable
	length      LengthSource
	typedTarget TypedArrayLike
	kind        IterationKind
	index       uint32
	done        bool
}

// NewArrayIterator returns an iterator over target, which must
// implement both Indexable and LengthSource (every ArrayObject does).
func NewArrayIterator(target interface {
	Indexable
	LengthSource
}, kind IterationKind) *ArrayIterator {
	return &ArrayIterator{target: target, length: target, kind: kind}
}

// NewTypedArrayIterator returns an iterator over a typed-array
// collaborator, adding the detached/out-of-bounds check spec.md §4.6
// requires before every step.
func NewTypedArrayIterator(target TypedArrayLike, kind IterationKind) *ArrayIterator {
	return &ArrayIterator{target: target, length: target, typedTarget: target, kind: kind}
}

// Next advances the iterator one step.
func (it *ArrayIterator) Next() (IteratorResult, error) {
	if it.done {
		return IteratorResult{Done: true}, nil
	}
	if it.typedTarget != nil && (it.typedTarget.Detached() || it.typedTarget.OutOfBounds()) {
		it.done = true
		return IteratorResult{Done: true}, newError(DetachedOrResizedTypedArray, "typed array detached or resized during iteration")
	}
	length := it.length.Length()
	if it.index >= length {
		it.done = true
		return IteratorResult{Done: true}, nil
	}
	idx := it.index
	it.index++

	switch it.kind {
	case KeyIteration:
		return IteratorResult{Value: indexKeyValue(idx)}, nil
	case ValueIteration:
		v, ok := it.target.GetIndex(idx)
		if !ok {
			v = Undefined
		}
		return IteratorResult{Value: v}, nil
	default:
		v, ok := it.target.GetIndex(idx)
		if !ok {
			v = Undefined
		}
		return IteratorResult{Value: []Value{indexKeyValue(idx), v}}, nil
	}
}

// indexKeyValue represents an iteration index as the Value a
// surrounding runtime would hand back for a for-in/for-of key, a plain
// uint32 boxed through the Value interface.
func indexKeyValue(idx uint32) Value { return idx }
