package escargot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keyStrings(keys []PropertyKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}

func TestDestructuringOrdersIndicesThenNamedThenSymbols(t *testing.T) {
	o := NewGenericObject()
	o.Put(StringKey("b"), 1)
	o.Put(StringKey("2"), "two")
	o.Put(StringKey("a"), 2)
	o.Put(StringKey("0"), "zero")
	sym := NewSymbol("s")
	o.Put(SymbolKey(sym), "sym")

	snap := OpenDestructuring(o)
	var keys []PropertyKey
	for {
		k, _, ok := snap.Next()
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"0", "2", "b", "a", "Symbol(s)"}, keyStrings(keys))
}

func TestDestructuringSkipsDeletedKey(t *testing.T) {
	o := NewGenericObject()
	o.Put(StringKey("a"), 1)
	o.Put(StringKey("b"), 2)
	o.Put(StringKey("c"), 3)

	snap := OpenDestructuring(o)
	k, v, ok := snap.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", k.Str)
	assert.Equal(t, 1, v)

	if err := o.Delete(StringKey("b")); err != nil {
		t.Fatal(err)
	}

	k, v, ok = snap.Next()
	assert.True(t, ok)
	assert.Equal(t, "c", k.Str)
	assert.Equal(t, 3, v)

	_, _, ok = snap.Next()
	assert.False(t, ok)
}

func TestDestructuringRepairExcludesFreshlyAddedKey(t *testing.T) {
	o := NewGenericObject()
	o.Put(StringKey("a"), 1)
	o.Put(StringKey("b"), 2)

	snap := OpenDestructuring(o)
	k, _, ok := snap.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", k.Str)

	o.Put(StringKey("c"), 3) // added mid-enumeration: must not be visited

	var rest []string
	for {
		k, _, ok := snap.Next()
		if !ok {
			break
		}
		rest = append(rest, k.Str)
	}
	assert.Equal(t, []string{"b"}, rest)
}

func TestDestructuringRestCollectsRemainder(t *testing.T) {
	o := NewGenericObject()
	o.Put(StringKey("a"), 1)
	o.Put(StringKey("b"), 2)
	o.Put(StringKey("c"), 3)

	snap := OpenDestructuring(o)
	_, _, _ = snap.Next() // consume "a"

	rest := snap.Rest()
	v, ok := rest.Get(StringKey("b"))
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = rest.Get(StringKey("a"))
	assert.False(t, ok)
}

func TestDestructuringOverArray(t *testing.T) {
	a := FromElements(nil, []Value{"x", "y"})
	snap := OpenDestructuring(a)
	k, v, ok := snap.Next()
	assert.True(t, ok)
	assert.Equal(t, "0", k.Str)
	assert.Equal(t, "x", v)
}
