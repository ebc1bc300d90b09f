package escargot

import (
	"fmt"
	"testing"
)

func numCompare(x, y Value) (int, error) {
	xi, yi := x.(int), y.(int)
	return xi - yi, nil
}

func TestSortOrdersPresentElements(t *testing.T) {
	a := FromElements(nil, []Value{5, 3, 1, 4, 2})
	if err := a.Sort(numCompare); err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3, 4, 5}
	for i, w := range want {
		v, ok := a.GetIndex(uint32(i))
		if !ok || v != w {
			t.Fatalf("index %d = %v, %v; want %d", i, v, ok, w)
		}
	}
}

func TestSortIsStable(t *testing.T) {
	type pair struct {
		key, seq int
	}
	elems := []Value{pair{1, 0}, pair{0, 1}, pair{1, 2}, pair{0, 3}}
	a := FromElements(nil, elems)
	cmp := func(x, y Value) (int, error) {
		return x.(pair).key - y.(pair).key, nil
	}
	if err := a.Sort(cmp); err != nil {
		t.Fatal(err)
	}
	want := []pair{{0, 1}, {0, 3}, {1, 0}, {1, 2}}
	for i, w := range want {
		v, _ := a.GetIndex(uint32(i))
		if v != w {
			t.Fatalf("index %d = %v, want %v", i, v, w)
		}
	}
}

func TestSortPutsHolesAndUndefinedLast(t *testing.T) {
	a := FromElements(nil, []Value{3, Empty, 1, Undefined, 2})
	if err := a.Sort(numCompareOrUndefined); err != nil {
		t.Fatal(err)
	}
	for i, want := range []int{1, 2, 3} {
		v, _ := a.GetIndex(uint32(i))
		if v != want {
			t.Fatalf("index %d = %v, want %d", i, v, want)
		}
	}
	if v, _ := a.GetIndex(3); v != Undefined {
		t.Fatalf("index 3 = %v, want Undefined", v)
	}
	if a.HasIndex(4) {
		t.Fatal("the hole should remain a hole at the tail")
	}
}

func numCompareOrUndefined(x, y Value) (int, error) {
	xi, ok1 := x.(int)
	yi, ok2 := y.(int)
	if !ok1 || !ok2 {
		return 0, fmt.Errorf("unexpected comparator call on %v, %v", x, y)
	}
	return xi - yi, nil
}

func TestSortComparatorErrorPropagates(t *testing.T) {
	a := FromElements(nil, []Value{2, 1})
	boom := fmt.Errorf("boom")
	err := a.Sort(func(x, y Value) (int, error) { return 0, boom })
	if err != boom {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestSortComparatorMutatingModeStillWritesBack(t *testing.T) {
	a := FromElements(nil, []Value{3, 1, 2})
	calls := 0
	cmp := func(x, y Value) (int, error) {
		calls++
		if calls == 1 {
			a.convertToSlow()
		}
		return numCompare(x, y)
	}
	if err := a.Sort(cmp); err != nil {
		t.Fatal(err)
	}
	if a.ArrayLength() != 3 {
		t.Fatalf("length = %d, want 3", a.ArrayLength())
	}
	want := []int{1, 2, 3}
	for i, w := range want {
		v, ok := a.GetIndex(uint32(i))
		if !ok || v != w {
			t.Fatalf("index %d = %v, %v; want %d", i, v, ok, w)
		}
	}
}

func TestToSortedLeavesOriginalUntouched(t *testing.T) {
	a := FromElements(nil, []Value{3, 1, 2})
	sorted, err := ToSorted(a, numCompare)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := a.GetIndex(0); v != 3 {
		t.Fatal("ToSorted must not mutate its source")
	}
	if v, _ := sorted.GetIndex(0); v != 1 {
		t.Fatalf("sorted[0] = %v, want 1", v)
	}
}
