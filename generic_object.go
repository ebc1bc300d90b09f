package escargot

// OwnProperty is one entry from an object's own-property list, as
// needed by the ordering and shadowing rules in spec.md §4.8.
type OwnProperty struct {
	Key        PropertyKey
	Enumerable bool
}

// EnumTarget is anything the Enumeration Snapshot engine (spec.md §4.7-
// §4.9) can walk: an ArrayObject or a GenericObject. It is the minimal
// surface the core needs from "the surrounding object model" — the rest
// of that model (accessors, full prototype semantics, coercion) is out
// of scope per spec.md §1 and is not modeled here.
type EnumTarget interface {
	// OwnProperties returns this object's own string-keyed properties
	// in whatever order the object stores them; enumerate_ordering.go
	// imposes spec.md's ordering policy on top.
	OwnProperties() []OwnProperty
	// OwnSymbols returns this object's own symbol keys in insertion
	// order.
	OwnSymbols() []*Symbol
	// Get resolves a property for reading, consulting the prototype
	// chain when the object has no own property under key.
	Get(key PropertyKey) (Value, bool)
	// Prototype returns the object's prototype, if any.
	Prototype() (EnumTarget, bool)
	// Structure returns the object's current structure identity.
	Structure() *structureID
}

// ArrayLike is implemented by array objects, giving the Modification
// Detector (spec.md §4.9) the array-specific checks it needs beyond the
// generic EnumTarget surface.
type ArrayLike interface {
	ArrayLength() uint32
	IsFastMode() bool
	IsEmptyAtIndex(idx uint32) bool
}

// LengthSource is anything with a uint32 length, the length domain the
// Array Iterator (spec.md §4.6) re-reads on every step.
type LengthSource interface {
	Length() uint32
}

// Indexable is anything an Array Iterator can read numeric elements
// from via the indexed-get path.
type Indexable interface {
	GetIndex(idx uint32) (Value, bool)
}

// TypedArrayLike is the typed-array collaborator the Array Iterator
// consults (spec.md §4.6): out of scope for the core itself (typed-array
// byte buffers are an external collaborator per spec.md §1), but the
// iterator must ask it whether its backing buffer is still valid before
// trusting a cached length.
type TypedArrayLike interface {
	LengthSource
	Indexable
	Detached() bool
	OutOfBounds() bool
}

// GenericObject is the out-of-scope "surrounding object model"
// collaborator: a plain object backed by a propertyStore, used as the
// prototype or sibling object the enumeration engine and the array's
// Slow-mode fallback talk to. It is deliberately small — spec.md scopes
// the full object model (descriptors beyond data/accessor, hidden-class
// transitions, etc.) out of this core.
type GenericObject struct {
	store      *propertyStore
	prototype  EnumTarget
	extensible bool
	structure  *structureID
}

// NewGenericObject returns an empty, extensible object with no
// prototype.
func NewGenericObject() *GenericObject {
	return &GenericObject{store: newPropertyStore(), extensible: true, structure: newStructureID()}
}

func (o *GenericObject) touchStructure() { o.structure = newStructureID() }

// Structure implements EnumTarget.
func (o *GenericObject) Structure() *structureID { return o.structure }

// SetPrototype sets (or clears, passing nil) the object's prototype.
func (o *GenericObject) SetPrototype(p EnumTarget) { o.prototype = p }

// Prototype implements EnumTarget.
func (o *GenericObject) Prototype() (EnumTarget, bool) {
	if o.prototype == nil {
		return nil, false
	}
	return o.prototype, true
}

// IsExtensible reports whether new own properties may be added.
func (o *GenericObject) IsExtensible() bool { return o.extensible }

// PreventExtensions marks the object permanently non-extensible.
func (o *GenericObject) PreventExtensions() { o.extensible = false }

// Put installs or overwrites an own data property with the default
// {w,e,c}=true profile, the generic-object analog of Array's fast-path
// set. Used by the destructuring snapshot's rest() to materialize
// collected pairs (spec.md §4.7).
func (o *GenericObject) Put(key PropertyKey, v Value) {
	if key.IsSymbol() {
		o.store.putSym(key.Sym, v)
		return
	}
	if o.store.set(key.Str, v) {
		return
	}
	existed := o.store.has(key.Str)
	o.store.put(key.Str, v, true, true, true)
	if !existed {
		o.touchStructure()
	}
}

// Get implements EnumTarget.
func (o *GenericObject) Get(key PropertyKey) (Value, bool) {
	if key.IsSymbol() {
		if v, ok := o.store.getSym(key.Sym); ok {
			return v, true
		}
	} else if v, ok := o.store.get(key.Str); ok {
		return v, true
	}
	if proto, ok := o.Prototype(); ok {
		return proto.Get(key)
	}
	return nil, false
}

// HasOwn reports whether key names an own property.
func (o *GenericObject) HasOwn(key PropertyKey) bool {
	if key.IsSymbol() {
		_, ok := o.store.getSym(key.Sym)
		return ok
	}
	return o.store.has(key.Str)
}

// OwnProperties implements EnumTarget.
func (o *GenericObject) OwnProperties() []OwnProperty {
	out := make([]OwnProperty, 0, len(o.store.propNames))
	for _, n := range o.store.propNames {
		out = append(out, OwnProperty{Key: StringKey(n), Enumerable: o.store.isEnumerable(n)})
	}
	return out
}

// OwnSymbols implements EnumTarget.
func (o *GenericObject) OwnSymbols() []*Symbol {
	return append([]*Symbol(nil), o.store.symNames...)
}

// DefineOwnProperty installs desc under key, enforcing the redefinition
// rules a non-configurable existing property imposes.
func (o *GenericObject) DefineOwnProperty(key PropertyKey, desc PropertyDescriptor) error {
	if key.IsSymbol() {
		o.store.putSym(key.Sym, desc.Value)
		return nil
	}
	existed := o.store.has(key.Str)
	if err := o.store.defineOwnProperty(key.Str, desc); err != nil {
		return err
	}
	if !existed {
		o.touchStructure()
	}
	return nil
}

// Delete removes an own property, failing with PropertyNotConfigurable
// if it is marked non-configurable.
func (o *GenericObject) Delete(key PropertyKey) error {
	if key.IsSymbol() {
		o.store.deleteSym(key.Sym)
		return nil
	}
	if !o.store.has(key.Str) {
		return nil
	}
	if !o.store.delete(key.Str) {
		return newError(PropertyNotConfigurable, "cannot delete property %q", key.Str)
	}
	o.touchStructure()
	return nil
}
