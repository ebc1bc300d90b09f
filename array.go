package escargot

// Mode distinguishes an array's two storage strategies (spec.md §2/§3).
type Mode int

const (
	// ModeFast backs the array with a dense fastBuffer of Value slots.
	ModeFast Mode = iota
	// ModeSlow backs the array with a generic propertyStore, the same
	// storage any other object's indexed properties would use.
	ModeSlow
)

func (m Mode) String() string {
	if m == ModeFast {
		return "fast"
	}
	return "slow"
}

// ArrayObject is the indexed-property storage core of spec.md §2-§4: a
// single object that starts in Fast mode and may convert to Slow mode,
// never back, the moment its access pattern stops looking array-shaped.
type ArrayObject struct {
	length         uint32
	lengthWritable bool
	mode           Mode

	fast *fastBuffer
	slow *propertyStore

	prototype  EnumTarget
	extensible bool
	structure  *structureID

	agent *Agent
}

// NewArray returns an empty, extensible Fast-mode array of the given
// length (spec.md §4.1's creation path), owned by agent. If agent's
// prototype-indexed flag is already raised, the array starts in Slow
// mode instead.
func NewArray(agent *Agent, length uint32) *ArrayObject {
	a := &ArrayObject{
		length:         length,
		lengthWritable: true,
		mode:           ModeFast,
		extensible:     true,
		structure:      newStructureID(),
		agent:          agent,
	}
	if agent != nil && agent.SomePrototypeHasIndexedProperty() {
		a.mode = ModeSlow
		a.slow = newPropertyStore()
		return a
	}
	a.fast = newFastBuffer(length)
	return a
}

// FromElements returns a Fast-mode array whose slots are exactly elems,
// the fast path spec.md §4.1 calls out for array literals and spread
// construction: no per-element defineOwnProperty round trip, a direct
// bulk install into the buffer. If agent's prototype-indexed flag is
// already raised, the array starts in Slow mode instead, with each
// present element installed in its property store.
func FromElements(agent *Agent, elems []Value) *ArrayObject {
	a := &ArrayObject{
		length:         uint32(len(elems)),
		lengthWritable: true,
		mode:           ModeFast,
		extensible:     true,
		structure:      newStructureID(),
		agent:          agent,
	}
	if agent != nil && agent.SomePrototypeHasIndexedProperty() {
		a.mode = ModeSlow
		a.slow = newPropertyStore()
		for i, v := range elems {
			if isPresent(v) {
				a.slow.put(indexKey(uint32(i)), v, true, true, true)
			}
		}
		return a
	}
	a.fast = fastBufferFromElements(elems)
	return a
}

// ArrayLength implements ArrayLike.
func (a *ArrayObject) ArrayLength() uint32 { return a.length }

// IsFastMode implements ArrayLike.
func (a *ArrayObject) IsFastMode() bool { return a.mode == ModeFast }

// IsEmptyAtIndex implements ArrayLike.
func (a *ArrayObject) IsEmptyAtIndex(idx uint32) bool {
	if idx >= a.length {
		return true
	}
	if a.mode == ModeFast {
		return isHole(a.fast.get(idx))
	}
	_, ok := a.slow.get(indexKey(idx))
	return !ok
}

// Structure implements EnumTarget.
func (a *ArrayObject) Structure() *structureID { return a.structure }

func (a *ArrayObject) touchStructure() { a.structure = newStructureID() }

// Prototype implements EnumTarget.
func (a *ArrayObject) Prototype() (EnumTarget, bool) {
	if a.prototype == nil {
		return nil, false
	}
	return a.prototype, true
}

// SetPrototype installs p as the array's prototype.
func (a *ArrayObject) SetPrototype(p EnumTarget) { a.prototype = p }

// IsExtensible reports whether new indices beyond the current length,
// or new non-indexed properties, may still be added.
func (a *ArrayObject) IsExtensible() bool { return a.extensible }

// GetIndex reads the element at idx, consulting the prototype chain on
// a miss the way an ordinary indexed property lookup would.
func (a *ArrayObject) GetIndex(idx uint32) (Value, bool) {
	if idx < a.length {
		if a.mode == ModeFast {
			if v := a.fast.get(idx); isPresent(v) {
				return v, true
			}
		} else if v, ok := a.slow.get(indexKey(idx)); ok {
			return v, true
		}
	}
	if proto, ok := a.Prototype(); ok {
		return proto.Get(StringKey(indexKey(idx)))
	}
	return Undefined, false
}

// HasIndex reports whether idx names an own element.
func (a *ArrayObject) HasIndex(idx uint32) bool {
	if idx >= a.length {
		return false
	}
	if a.mode == ModeFast {
		return isPresent(a.fast.get(idx))
	}
	return a.slow.has(indexKey(idx))
}

// SetIndex installs v at idx with the default data-property profile,
// following spec.md §4.2/§4.3: extending past the current length grows
// it, and a sufficiently wide gap or an out-of-range index forces a
// conversion to Slow mode before the write lands.
func (a *ArrayObject) SetIndex(idx uint32, v Value) error {
	if idx >= a.length {
		if !a.extensible {
			return newError(NotExtensible, "cannot add index %d to non-extensible array", idx)
		}
	}
	if a.mode == ModeFast && a.shouldConvertForIndex(idx) {
		a.convertToSlow()
	}
	if a.mode == ModeSlow {
		a.slow.put(indexKey(idx), v, true, true, true)
		if idx >= a.length {
			a.length = idx + 1
		}
		a.touchStructure()
		return nil
	}
	if idx >= a.length {
		a.fast.resizeUp(idx + 1)
		a.length = idx + 1
		a.touchStructure()
	}
	a.fast.set(idx, v)
	return nil
}

// shouldConvertForIndex reports whether writing idx while still in
// Fast mode would open a gap wide enough, or push the array past the
// 2^31 boundary, to trigger spec.md §4.2's Fast-to-Slow conversion.
func (a *ArrayObject) shouldConvertForIndex(idx uint32) bool {
	if idx > fastModeMaxLength {
		return true
	}
	if idx < a.length {
		return false
	}
	gap := idx - a.length
	threshold := DefaultGapThreshold
	minSize := uint32(DefaultSparseStartMinSize)
	if a.agent != nil {
		threshold = int(a.agent.GapThreshold)
		minSize = a.agent.SparseStartMinSize
	}
	return idx+1 > minSize && gap >= uint32(threshold)
}

// DeleteIndex removes the element at idx, returning an error if it is
// present and non-configurable (only reachable in Slow mode, since
// every Fast-mode slot is configurable by construction).
func (a *ArrayObject) DeleteIndex(idx uint32) error {
	if idx >= a.length {
		return nil
	}
	if a.mode == ModeFast {
		a.fast.set(idx, Empty)
		return nil
	}
	if !a.slow.delete(indexKey(idx)) {
		return newError(PropertyNotConfigurable, "cannot delete index %d", idx)
	}
	a.touchStructure()
	return nil
}

// DefineOwn applies desc at idx, converting to Slow mode first unless
// desc is exactly the default data-property profile a Fast-mode slot
// already carries implicitly.
func (a *ArrayObject) DefineOwn(idx uint32, desc PropertyDescriptor) error {
	if a.mode == ModeFast && desc.IsDefaultDataDescriptor() && idx <= fastModeMaxLength {
		return a.SetIndex(idx, desc.Value)
	}
	if a.mode == ModeFast {
		a.convertToSlow()
	}
	if err := a.slow.defineOwnProperty(indexKey(idx), desc); err != nil {
		return err
	}
	if idx >= a.length {
		if !a.extensible {
			return newError(NotExtensible, "cannot add index %d to non-extensible array", idx)
		}
		a.length = idx + 1
	}
	a.touchStructure()
	return nil
}

// DefineOwnProperty dispatches a defineOwnProperty call by key: an
// index goes through DefineOwn, "length" goes through the dedicated
// DefineLength rules spec.md §4.1 carves out for it, and everything
// else falls back to an ordinary named-property definition on the
// array's slow-store side.
func (a *ArrayObject) DefineOwnProperty(key PropertyKey, desc PropertyDescriptor) error {
	if idx, ok := ParseIndex(key); ok {
		return a.DefineOwn(idx, desc)
	}
	if !key.IsSymbol() && key.Str == lengthPropertyName {
		return a.DefineLength(desc)
	}
	if a.slow == nil {
		a.slow = newPropertyStore()
	}
	if key.IsSymbol() {
		a.slow.putSym(key.Sym, desc.Value)
		return nil
	}
	if err := a.slow.defineOwnProperty(key.Str, desc); err != nil {
		return err
	}
	a.touchStructure()
	return nil
}

// Put implements generic property writes on the array itself: an index
// key goes through SetIndex, and any other key is assigned, or added
// with the default profile, on the array's slow-store side.
func (a *ArrayObject) Put(key PropertyKey, v Value) {
	if idx, ok := ParseIndex(key); ok {
		_ = a.SetIndex(idx, v)
		return
	}
	if a.slow == nil {
		a.slow = newPropertyStore()
	}
	if key.IsSymbol() {
		a.slow.putSym(key.Sym, v)
		return
	}
	if a.slow.set(key.Str, v) {
		return
	}
	a.slow.put(key.Str, v, true, true, true)
}

// Get implements EnumTarget, resolving both indexed and named keys.
func (a *ArrayObject) Get(key PropertyKey) (Value, bool) {
	if idx, ok := ParseIndex(key); ok {
		return a.GetIndex(idx)
	}
	if !key.IsSymbol() && key.Str == lengthPropertyName {
		return a.length, true
	}
	if key.IsSymbol() {
		if a.slow != nil {
			if v, ok := a.slow.getSym(key.Sym); ok {
				return v, true
			}
		}
	} else if a.slow != nil {
		if v, ok := a.slow.get(key.Str); ok {
			return v, true
		}
	}
	if proto, ok := a.Prototype(); ok {
		return proto.Get(key)
	}
	return nil, false
}

// OwnProperties implements EnumTarget: every present index in ascending
// order followed by any non-indexed own properties in insertion order,
// the raw material enumerate_ordering.go's ordering policy expects.
func (a *ArrayObject) OwnProperties() []OwnProperty {
	out := make([]OwnProperty, 0, a.length)
	if a.mode == ModeFast {
		for i := uint32(0); i < a.length; i++ {
			if v := a.fast.get(i); isPresent(v) {
				out = append(out, OwnProperty{Key: StringKey(indexKey(i)), Enumerable: true})
				_ = v
			}
		}
	} else {
		for i := uint32(0); i < a.length; i++ {
			if a.slow.isEnumerable(indexKey(i)) {
				out = append(out, OwnProperty{Key: StringKey(indexKey(i)), Enumerable: true})
			} else if a.slow.has(indexKey(i)) {
				out = append(out, OwnProperty{Key: StringKey(indexKey(i)), Enumerable: false})
			}
		}
	}
	if a.slow != nil {
		for _, n := range a.slow.propNames {
			if _, isIdx := parseCanonicalIndex(n); isIdx {
				continue
			}
			out = append(out, OwnProperty{Key: StringKey(n), Enumerable: a.slow.isEnumerable(n)})
		}
	}
	return out
}

// OwnSymbols implements EnumTarget.
func (a *ArrayObject) OwnSymbols() []*Symbol {
	if a.slow == nil {
		return nil
	}
	return append([]*Symbol(nil), a.slow.symNames...)
}

// lengthPropertyName is the one non-indexed property every array
// carries implicitly: a non-configurable, non-enumerable data
// property whose writability can be cleared exactly once (spec.md §3).
const lengthPropertyName = "length"

// indexKey formats idx the way a canonical array-index property name
// is written.
func indexKey(idx uint32) string {
	return uitoa(idx)
}

// ParseIndex reports whether key is a canonical array-index string key
// (spec.md §4.8's ordering policy depends on distinguishing these from
// ordinary string keys) and, if so, its numeric value. "0" is canonical;
// any other digit string with a leading zero, a sign, or a value at or
// above 2^32-1 is not.
func ParseIndex(key PropertyKey) (uint32, bool) {
	if key.IsSymbol() {
		return 0, false
	}
	return parseCanonicalIndex(key.Str)
}

func parseCanonicalIndex(s string) (uint32, bool) {
	if s == "" {
		return 0, false
	}
	if s == "0" {
		return 0, true
	}
	if s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
		if v >= 1<<32-1 {
			return 0, false
		}
	}
	return uint32(v), true
}

func uitoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
