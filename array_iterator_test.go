package escargot

import "testing"

func TestArrayIteratorValues(t *testing.T) {
	a := FromElements(nil, []Value{"a", "b", "c"})
	it := NewArrayIterator(a, ValueIteration)
	var got []Value
	for {
		r, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		if r.Done {
			break
		}
		got = append(got, r.Value)
	}
	want := []Value{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestArrayIteratorObservesGrowthMidWalk(t *testing.T) {
	a := FromElements(nil, []Value{"a"})
	it := NewArrayIterator(a, ValueIteration)

	r, err := it.Next()
	if err != nil || r.Done {
		t.Fatalf("first Next = %v, %v", r, err)
	}

	if err := a.SetIndex(1, "b"); err != nil {
		t.Fatal(err)
	}

	r, err = it.Next()
	if err != nil {
		t.Fatal(err)
	}
	if r.Done || r.Value != "b" {
		t.Fatalf("iterator should observe the newly appended element, got %v, done=%v", r.Value, r.Done)
	}

	r, err = it.Next()
	if err != nil || !r.Done {
		t.Fatalf("iterator should be done after consuming the grown length, got %v, %v", r, err)
	}
}

type fakeTypedArray struct {
	slots    []Value
	detached bool
}

func (f *fakeTypedArray) Length() uint32 { return uint32(len(f.slots)) }
func (f *fakeTypedArray) GetIndex(idx uint32) (Value, bool) {
	if idx >= uint32(len(f.slots)) {
		return Undefined, false
	}
	return f.slots[idx], true
}
func (f *fakeTypedArray) Detached() bool    { return f.detached }
func (f *fakeTypedArray) OutOfBounds() bool { return false }

func TestTypedArrayIteratorDetectsDetach(t *testing.T) {
	ta := &fakeTypedArray{slots: []Value{1, 2, 3}}
	it := NewTypedArrayIterator(ta, ValueIteration)

	if _, err := it.Next(); err != nil {
		t.Fatal(err)
	}
	ta.detached = true
	if _, err := it.Next(); !IsKind(err, DetachedOrResizedTypedArray) {
		t.Fatalf("err = %v, want DetachedOrResizedTypedArray", err)
	}
}
