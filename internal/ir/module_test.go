package ir

import (
	"testing"

	"vela/internal/source"
	"vela/internal/typeref"
)

func TestNewModuleReservesSlotZero(t *testing.T) {
	m := NewModule()
	if len(m.RecordTypes) != 1 {
		t.Errorf("RecordTypes should start with its reserved slot, got len %d", len(m.RecordTypes))
	}
	if len(m.Functions) != 1 {
		t.Errorf("Functions should start with its reserved slot, got len %d", len(m.Functions))
	}
	if len(m.Globals) != 1 {
		t.Errorf("Globals should start with its reserved slot, got len %d", len(m.Globals))
	}
}

func TestAddFunctionAssignsStableIncreasingIDs(t *testing.T) {
	m := NewModule()
	in := typeref.NewInterner()

	id1 := AddFunction(m, source.Span{}, "f1", in.Builtins().Int)
	id2 := AddFunction(m, source.Span{}, "f2", in.Builtins().Int)

	if id1 == NoFuncID || id2 == NoFuncID {
		t.Fatal("real functions must never receive the reserved id")
	}
	if id2 != id1+1 {
		t.Errorf("function ids should be allocated in increasing call order, got %d then %d", id1, id2)
	}
	if m.Func(id1).Name != "f1" || m.Func(id2).Name != "f2" {
		t.Error("Func should resolve each id back to the function it was assigned to")
	}
}

func TestFuncPanicsOnInvalidID(t *testing.T) {
	m := NewModule()
	defer func() {
		if recover() == nil {
			t.Error("Func should panic on an out-of-range id")
		}
	}()
	m.Func(NoFuncID)
}

func TestAddLocalAndArgVar(t *testing.T) {
	m := NewModule()
	in := typeref.NewInterner()
	fID := AddFunction(m, source.Span{}, "f", in.Builtins().Int)
	f := m.Func(fID)

	p1 := AddLocal(f, "a", in.Builtins().Int)
	p2 := AddLocal(f, "b", in.Builtins().Int)
	AddLocal(f, "", in.Builtins().Int) // an unnamed temporary

	if ArgVar(f, 2, 1) != p1 || ArgVar(f, 2, 2) != p2 {
		t.Error("ArgVar should resolve the i-th parameter added so far, in order")
	}
}

func TestArgVarPanicsOutOfRange(t *testing.T) {
	m := NewModule()
	in := typeref.NewInterner()
	fID := AddFunction(m, source.Span{}, "f", in.Builtins().Int)
	f := m.Func(fID)
	AddLocal(f, "a", in.Builtins().Int)

	defer func() {
		if recover() == nil {
			t.Error("ArgVar should panic when i is outside [1, arity]")
		}
	}()
	ArgVar(f, 1, 2)
}

func TestExportedFunctionsDedupeAndPreserveOrder(t *testing.T) {
	m := NewModule()
	in := typeref.NewInterner()
	id1 := AddFunction(m, source.Span{}, "f1", in.Builtins().Int)
	id2 := AddFunction(m, source.Span{}, "f2", in.Builtins().Int)

	AddExportedFunction(m, id2)
	AddExportedFunction(m, id1)
	AddExportedFunction(m, id2) // duplicate, should not reappear

	got := m.ExportedFunctions()
	want := []FuncID{id2, id1}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("ExportedFunctions() = %v, want %v", got, want)
	}
}

func TestAddGlobalAndExportedGlobals(t *testing.T) {
	m := NewModule()
	in := typeref.NewInterner()
	g1 := AddGlobal(m, "count", in.Builtins().Int)
	if g1 == NoGlobalID {
		t.Fatal("a real global must never receive the reserved id")
	}
	AddExportedGlobal(m, g1)
	AddExportedGlobal(m, g1)
	if got := m.ExportedGlobals(); len(got) != 1 || got[0] != g1 {
		t.Errorf("ExportedGlobals() = %v, want [%d]", got, g1)
	}
}
