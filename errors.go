package escargot

import "fmt"

// ErrorKind classifies the errors the core raises, per spec.md §7.
type ErrorKind int

const (
	// InvalidArrayLength: a requested length is outside [0, 2^32-1] or
	// differs from its uint32 coercion.
	InvalidArrayLength ErrorKind = iota
	// NotExtensible: an attempt to extend a non-extensible array past
	// its current length.
	NotExtensible
	// PropertyNotConfigurable: setLength (or a delete it implies)
	// encountered a non-configurable element.
	PropertyNotConfigurable
	// DetachedOrResizedTypedArray: an array iterator observed a
	// detached or out-of-bounds typed array.
	DetachedOrResizedTypedArray
	// PrototypeChainTooDeep: chain enumeration exceeded its depth bound.
	PrototypeChainTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArrayLength:
		return "InvalidArrayLength"
	case NotExtensible:
		return "NotExtensible"
	case PropertyNotConfigurable:
		return "PropertyNotConfigurable"
	case DetachedOrResizedTypedArray:
		return "DetachedOrResizedTypedArray"
	case PrototypeChainTooDeep:
		return "PrototypeChainTooDeep"
	default:
		return "UnknownErrorKind"
	}
}

// Error is the error type every failing core operation returns. It
// carries the structured Kind from spec.md §7 so callers can switch on
// it instead of parsing the message, the way a surrounding runtime would
// need to in order to raise the appropriate RangeError/TypeError.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf("%s: %s", kind, fmt.Sprintf(format, args...))}
}

// IsKind reports whether err is an *Error of the given Kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
