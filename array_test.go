package escargot

import "testing"

func TestNewArrayStartsFastAndEmpty(t *testing.T) {
	a := NewArray(nil, 0)
	if !a.IsFastMode() {
		t.Fatal("new array should start in fast mode")
	}
	if a.ArrayLength() != 0 {
		t.Fatalf("length = %d, want 0", a.ArrayLength())
	}
}

func TestSetIndexGrowsLength(t *testing.T) {
	a := NewArray(nil, 0)
	if err := a.SetIndex(2, "x"); err != nil {
		t.Fatal(err)
	}
	if a.ArrayLength() != 3 {
		t.Fatalf("length = %d, want 3", a.ArrayLength())
	}
	if v, ok := a.GetIndex(2); !ok || v != "x" {
		t.Fatalf("GetIndex(2) = %v, %v", v, ok)
	}
	if a.HasIndex(0) || a.HasIndex(1) {
		t.Fatal("indices 0 and 1 should be holes, not own properties")
	}
}

func TestDeleteIndexCreatesHole(t *testing.T) {
	a := FromElements(nil, []Value{1, 2, 3})
	if err := a.DeleteIndex(1); err != nil {
		t.Fatal(err)
	}
	if a.HasIndex(1) {
		t.Fatal("index 1 should no longer be present")
	}
	if a.ArrayLength() != 3 {
		t.Fatalf("delete must not change length, got %d", a.ArrayLength())
	}
	if v, ok := a.GetIndex(1); ok || v != Undefined {
		t.Fatalf("GetIndex on a hole with no prototype = %v, %v", v, ok)
	}
}

func TestLargeGapForcesSlowMode(t *testing.T) {
	agent := NewAgent()
	a := NewArray(agent, 0)
	if err := a.SetIndex(200000, "x"); err != nil {
		t.Fatal(err)
	}
	if a.IsFastMode() {
		t.Fatal("a write opening a gap past the threshold should convert to slow mode")
	}
	if v, ok := a.GetIndex(200000); !ok || v != "x" {
		t.Fatalf("GetIndex(200000) = %v, %v", v, ok)
	}
}

func TestSmallGapStaysFast(t *testing.T) {
	a := NewArray(nil, 0)
	if err := a.SetIndex(10, "x"); err != nil {
		t.Fatal(err)
	}
	if !a.IsFastMode() {
		t.Fatal("a small gap should not force a mode conversion")
	}
}

func TestConvertToSlowIsOneWay(t *testing.T) {
	a := FromElements(nil, []Value{1, 2, 3})
	a.convertToSlow()
	if a.IsFastMode() {
		t.Fatal("convertToSlow must leave the array in slow mode")
	}
	if err := a.SetIndex(0, 99); err != nil {
		t.Fatal(err)
	}
	if a.IsFastMode() {
		t.Fatal("an array must never return to fast mode")
	}
}

func TestDefineOwnDefaultProfileStaysFast(t *testing.T) {
	a := NewArray(nil, 1)
	if err := a.DefineOwn(0, DefaultDataDescriptor("v")); err != nil {
		t.Fatal(err)
	}
	if !a.IsFastMode() {
		t.Fatal("a default-profile descriptor should not force slow mode")
	}
}

func TestDefineOwnNonDefaultProfileForcesSlow(t *testing.T) {
	a := NewArray(nil, 1)
	desc := PropertyDescriptor{Value: "v", HasValue: true, Writable: FlagFalse, Enumerable: FlagTrue, Configurable: FlagTrue}
	if err := a.DefineOwn(0, desc); err != nil {
		t.Fatal(err)
	}
	if a.IsFastMode() {
		t.Fatal("a non-default descriptor must force slow mode")
	}
}

func TestSetIndexOnNonExtensibleBeyondLengthFails(t *testing.T) {
	a := NewArray(nil, 2)
	a.PreventExtensions()
	if a.IsFastMode() {
		t.Fatal("PreventExtensions must convert the array to slow mode")
	}
	if err := a.SetIndex(5, "x"); !IsKind(err, NotExtensible) {
		t.Fatalf("err = %v, want NotExtensible", err)
	}
	if err := a.SetIndex(0, "x"); err != nil {
		t.Fatalf("writing within bounds of a non-extensible array should succeed: %v", err)
	}
}

func TestParseIndexRejectsLeadingZero(t *testing.T) {
	if _, ok := ParseIndex(StringKey("01")); ok {
		t.Fatal("\"01\" must not parse as a canonical index")
	}
	if idx, ok := ParseIndex(StringKey("0")); !ok || idx != 0 {
		t.Fatalf("\"0\" should parse as index 0, got %v, %v", idx, ok)
	}
	if idx, ok := ParseIndex(StringKey("42")); !ok || idx != 42 {
		t.Fatalf("\"42\" should parse as index 42, got %v, %v", idx, ok)
	}
}

func TestMarkAsPrototypeWithIndexedPropertyAffectsFutureArrays(t *testing.T) {
	agent := NewAgent()
	proto := FromElements(agent, []Value{1})
	proto.MarkAsPrototype(agent)
	if proto.IsFastMode() {
		t.Fatal("MarkAsPrototype must convert the array itself to slow mode")
	}
	if !agent.SomePrototypeHasIndexedProperty() {
		t.Fatal("marking a prototype with an indexed property should raise the agent flag")
	}
	fresh := NewArray(agent, 0)
	if fresh.IsFastMode() {
		t.Fatal("an array created after the flag is raised should start in slow mode")
	}
}

func TestMarkAsPrototypeWithoutIndexedPropertyStillConvertsButLeavesFlagClear(t *testing.T) {
	agent := NewAgent()
	proto := NewArray(agent, 0)
	proto.MarkAsPrototype(agent)
	if proto.IsFastMode() {
		t.Fatal("MarkAsPrototype must convert the array to slow mode even when it holds no indexed data")
	}
	if agent.SomePrototypeHasIndexedProperty() {
		t.Fatal("an empty prototype must not raise the agent-wide flag")
	}
	fresh := NewArray(agent, 0)
	if !fresh.IsFastMode() {
		t.Fatal("a fresh array should still start fast when no prototype has ever held indexed data")
	}
}
