package escargot

import "fmt"

// Symbol is an opaque, identity-comparable property key, standing in
// for the engine's symbol value representation (out of scope here; see
// spec.md §1). Two symbols are the same key iff they are the same
// pointer.
type Symbol struct {
	desc string
}

// NewSymbol allocates a fresh symbol carrying an optional description.
func NewSymbol(desc string) *Symbol {
	return &Symbol{desc: desc}
}

func (s *Symbol) String() string {
	return fmt.Sprintf("Symbol(%s)", s.desc)
}

// PropertyKey is a property name: either a string or a symbol, mirroring
// the key domain spec.md §4.8 orders over.
type PropertyKey struct {
	Sym *Symbol
	Str string
}

// StringKey makes a string-valued PropertyKey.
func StringKey(s string) PropertyKey { return PropertyKey{Str: s} }

// SymbolKey makes a symbol-valued PropertyKey.
func SymbolKey(s *Symbol) PropertyKey { return PropertyKey{Sym: s} }

// IsSymbol reports whether the key is a symbol rather than a string.
func (k PropertyKey) IsSymbol() bool { return k.Sym != nil }

func (k PropertyKey) String() string {
	if k.Sym != nil {
		return k.Sym.String()
	}
	return k.Str
}

// Equal reports whether two keys name the same property.
func (k PropertyKey) Equal(other PropertyKey) bool {
	if k.Sym != nil || other.Sym != nil {
		return k.Sym == other.Sym
	}
	return k.Str == other.Str
}

// id returns a value suitable for use as a map key when deduplicating
// PropertyKeys, distinguishing the symbol and string domains.
func (k PropertyKey) id() interface{} {
	if k.Sym != nil {
		return k.Sym
	}
	return "s:" + k.Str
}
