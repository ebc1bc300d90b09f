package escargot

// Checkpoint captures the observable state an operation relies on before
// calling into user-supplied code (a sort comparator, an accessor, a
// coercion). Every call site that invokes such a suspension point
// (spec.md §5) should capture one before the call and compare it after,
// rather than trusting cached length/mode/structure values across the
// call. This centralizes the "revalidate on return" discipline spec.md
// §9 calls out as the core's central correctness obligation, instead of
// inlining the three-field comparison at each site.
type Checkpoint struct {
	length    uint32
	mode      Mode
	structure *structureID
}

// Capture snapshots the array's current length, mode and structure.
func Capture(a *ArrayObject) Checkpoint {
	return Checkpoint{length: a.length, mode: a.mode, structure: a.structure}
}

// Unchanged reports whether the array's observable state still matches
// what was captured, i.e. no suspension point the caller ran in between
// has altered mode, length, or own-property shape.
func (c Checkpoint) Unchanged(a *ArrayObject) bool {
	return c.length == a.length && c.mode == a.mode && c.structure == a.structure
}
