package escargot

// property is the attribute-bearing wrapper used whenever a stored
// property does not carry the default {writable, enumerable,
// configurable} = {true, true, true} profile, or is an accessor. A
// property with the default profile is stored as a bare Value instead,
// the same discriminated-union trick goja's baseObject uses via
// valueProp/valueProperty (object.go).
type property struct {
	value Value

	writable, enumerable, configurable bool
	accessor                           bool
	getter, setter                     Value
}

func (p *property) isWritable() bool {
	return p.writable || (p.accessor && p.setter != nil)
}

// propertyStore is the generic property bag that stands in for the
// surrounding object model's property storage (spec.md §1, "out of
// scope... specified only where the core touches it"). It is the Slow
// mode's indexed-property home and every object's non-indexed property
// home, mirroring goja's baseObject.values/propNames split between a
// map (for O(1) lookup) and an ordered slice (for insertion-order
// enumeration).
type propertyStore struct {
	values    map[string]Value
	propNames []string

	symValues map[*Symbol]Value
	symNames  []*Symbol
}

func newPropertyStore() *propertyStore {
	return &propertyStore{values: make(map[string]Value)}
}

func (s *propertyStore) get(name string) (Value, bool) {
	v, ok := s.values[name]
	if !ok {
		return nil, false
	}
	if p, ok := v.(*property); ok {
		return p.value, true
	}
	return v, true
}

func (s *propertyStore) has(name string) bool {
	_, ok := s.values[name]
	return ok
}

func (s *propertyStore) isEnumerable(name string) bool {
	v, ok := s.values[name]
	if !ok {
		return false
	}
	if p, ok := v.(*property); ok {
		return p.enumerable
	}
	return true
}

// put installs name unconditionally with the given attribute profile,
// overwriting whatever was there (used for internal bookkeeping
// properties, not for script-visible defineProperty semantics).
func (s *propertyStore) put(name string, v Value, writable, enumerable, configurable bool) {
	_, exists := s.values[name]
	if writable && enumerable && configurable {
		s.values[name] = v
	} else {
		s.values[name] = &property{value: v, writable: writable, enumerable: enumerable, configurable: configurable}
	}
	if !exists {
		s.propNames = append(s.propNames, name)
	}
}

// set assigns to an existing own property, honoring writability. It
// never creates a new property; callers fall back to put/defineOwnProperty
// for that.
func (s *propertyStore) set(name string, v Value) bool {
	existing, ok := s.values[name]
	if !ok {
		return false
	}
	if p, ok := existing.(*property); ok {
		if !p.isWritable() {
			return false
		}
		p.value = v
		return true
	}
	s.values[name] = v
	return true
}

func (s *propertyStore) delete(name string) bool {
	existing, ok := s.values[name]
	if !ok {
		return true
	}
	if p, ok := existing.(*property); ok && !p.configurable {
		return false
	}
	delete(s.values, name)
	for i, n := range s.propNames {
		if n == name {
			copy(s.propNames[i:], s.propNames[i+1:])
			s.propNames = s.propNames[:len(s.propNames)-1]
			break
		}
	}
	return true
}

// defineOwnProperty applies desc to name, following the same redefinition
// rules goja's baseObject._defineOwnProperty enforces for a non-configurable
// existing property: configurability and enumerability may not flip,
// writable may not flip true while non-configurable, and a fixed value
// may not change.
func (s *propertyStore) defineOwnProperty(name string, desc PropertyDescriptor) error {
	existingVal, hasExisting := s.values[name]
	var existing *property
	switch {
	case !hasExisting:
		existing = &property{}
	default:
		if p, ok := existingVal.(*property); ok {
			existing = p
		} else {
			existing = &property{value: existingVal, writable: true, enumerable: true, configurable: true}
		}
	}

	if hasExisting && !existing.configurable {
		if desc.Configurable == FlagTrue {
			return newError(PropertyNotConfigurable, "cannot redefine property %q", name)
		}
		if desc.Enumerable != FlagUnset && desc.Enumerable.Bool() != existing.enumerable {
			return newError(PropertyNotConfigurable, "cannot redefine property %q", name)
		}
		if !existing.accessor && !desc.Accessor {
			if !existing.writable {
				if desc.Writable == FlagTrue {
					return newError(PropertyNotConfigurable, "cannot redefine property %q", name)
				}
				if desc.HasValue && desc.Value != existing.value {
					return newError(PropertyNotConfigurable, "cannot redefine property %q", name)
				}
			}
		}
	}

	if desc.Writable != FlagUnset {
		existing.writable = desc.Writable.Bool()
	}
	if desc.Enumerable != FlagUnset {
		existing.enumerable = desc.Enumerable.Bool()
	}
	if desc.Configurable != FlagUnset {
		existing.configurable = desc.Configurable.Bool()
	}
	if desc.Accessor {
		existing.accessor = true
		existing.getter = desc.Getter
		existing.setter = desc.Setter
		existing.value = nil
	} else if desc.HasValue {
		existing.value = desc.Value
		existing.accessor = false
	}

	s.values[name] = existing
	if !hasExisting {
		s.propNames = append(s.propNames, name)
	}
	return nil
}

func (s *propertyStore) ownNames(all bool) []string {
	if all {
		return append([]string(nil), s.propNames...)
	}
	out := make([]string, 0, len(s.propNames))
	for _, n := range s.propNames {
		if s.isEnumerable(n) {
			out = append(out, n)
		}
	}
	return out
}

func (s *propertyStore) getSym(sym *Symbol) (Value, bool) {
	v, ok := s.symValues[sym]
	return v, ok
}

func (s *propertyStore) putSym(sym *Symbol, v Value) {
	if s.symValues == nil {
		s.symValues = make(map[*Symbol]Value)
	}
	if _, exists := s.symValues[sym]; !exists {
		s.symNames = append(s.symNames, sym)
	}
	s.symValues[sym] = v
}

func (s *propertyStore) deleteSym(sym *Symbol) {
	if _, ok := s.symValues[sym]; !ok {
		return
	}
	delete(s.symValues, sym)
	for i, n := range s.symNames {
		if n == sym {
			copy(s.symNames[i:], s.symNames[i+1:])
			s.symNames = s.symNames[:len(s.symNames)-1]
			break
		}
	}
}

// PropertyDescriptor describes a requested defineOwnProperty, matching
// the fields spec.md §4.1/§4.2 reason about (writable/enumerable/
// configurable flags, a plain value, or an accessor pair).
type PropertyDescriptor struct {
	Value    Value
	HasValue bool

	Writable, Enumerable, Configurable FlagState

	Accessor       bool
	Getter, Setter Value
}

// FlagState distinguishes "the descriptor is silent about this
// attribute" from an explicit true/false, the same three-state flag
// goja's PropertyDescriptor uses (object.go's Flag type).
type FlagState int

const (
	FlagUnset FlagState = iota
	FlagTrue
	FlagFalse
)

// Bool reports the flag's truth value; FlagUnset reads as false.
func (f FlagState) Bool() bool { return f == FlagTrue }

// DefaultDataDescriptor builds the {writable:true, enumerable:true,
// configurable:true} data descriptor every Fast-mode slot implicitly
// carries.
func DefaultDataDescriptor(v Value) PropertyDescriptor {
	return PropertyDescriptor{
		Value:        v,
		HasValue:     true,
		Writable:     FlagTrue,
		Enumerable:   FlagTrue,
		Configurable: FlagTrue,
	}
}

// IsDefaultDataDescriptor reports whether desc is exactly the
// {w,e,c}=true data-descriptor profile fast-mode slots require.
func (desc PropertyDescriptor) IsDefaultDataDescriptor() bool {
	return !desc.Accessor &&
		desc.HasValue &&
		desc.Writable == FlagTrue &&
		desc.Enumerable == FlagTrue &&
		desc.Configurable == FlagTrue
}
