package escargot

// Default tunables, named after spec.md §3/§4.2/§4.8. GapThreshold is
// spec.md's ESCARGOT_ARRAY_NON_FASTMODE_START_MIN_GAP; SparseStartMinSize
// is the "n > 65" threshold below which a length jump is never enough to
// force a mode conversion on its own.
const (
	DefaultGapThreshold           = 65536
	DefaultSparseStartMinSize     = 65
	DefaultMaxPrototypeChainDepth = 131072
	fastModeMaxLength             = 1<<31 - 1 // crossing 2^31 is itself a mode trigger
)

// Agent models the single execution agent that owns a set of arrays and
// iterators (spec.md §5). It replaces what the original implementation
// keeps as a process-wide global: the "some prototype has an indexed
// property" flag. Routing that flag through an explicit Agent, rather
// than a package-level variable, keeps independent agents isolated
// (spec.md §9 "Prototype-indexed global flag").
type Agent struct {
	somePrototypeHasIndexedProperty bool

	GapThreshold           uint32
	SparseStartMinSize     uint32
	MaxPrototypeChainDepth int
}

// NewAgent returns an Agent configured with the spec's default tunables.
func NewAgent() *Agent {
	return &Agent{
		GapThreshold:           DefaultGapThreshold,
		SparseStartMinSize:     DefaultSparseStartMinSize,
		MaxPrototypeChainDepth: DefaultMaxPrototypeChainDepth,
	}
}

// SomePrototypeHasIndexedProperty reports whether any array held an own
// indexed property at the moment MarkAsPrototype was called on it with
// this agent, in which case arrays subsequently created under this
// agent start Slow. An indexed property added to a prototype after it
// was marked does not raise the flag.
func (a *Agent) SomePrototypeHasIndexedProperty() bool {
	return a.somePrototypeHasIndexedProperty
}

// markPrototypeIndexed raises the flag. Irreversible for the lifetime of
// the agent: once any prototype in this agent's world can shadow
// indexed lookups, newly created arrays must stay cautious forever.
func (a *Agent) markPrototypeIndexed() {
	a.somePrototypeHasIndexedProperty = true
}
