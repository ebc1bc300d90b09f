package escargot

// A Value Slot (spec.md §3) needs no wrapper type beyond Value itself:
// Empty distinguishes a hole from a stored Undefined, and every other
// Value is a present element. isHole/isPresent exist only to keep call
// sites readable.

func isHole(v Value) bool    { return IsEmpty(v) }
func isPresent(v Value) bool { return !IsEmpty(v) }
