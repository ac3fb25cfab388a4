package ir

import (
	"reflect"
	"testing"

	"vela/internal/source"
	"vela/internal/typeref"
)

var noLoc = source.Span{}

func valsEqual(t *testing.T, got, want []Value) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d: %v vs %v", len(got), len(want), got, want)
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			t.Errorf("value %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGetSrcsGetDstsPerVariant(t *testing.T) {
	a, b, v := Integer(1), Integer(2), LocalVarRef(9)
	dst := LocalID(1)

	cases := []struct {
		name     string
		cmd      *Cmd
		wantSrcs []Value
		wantDsts []LocalID
	}{
		{"Move", Move(noLoc, dst, a), []Value{a}, []LocalID{dst}},
		{"Unop", Unop(noLoc, dst, OpIntNeg, a), []Value{a}, []LocalID{dst}},
		{"Binop", Binop(noLoc, dst, OpIntAdd, a, b), []Value{a, b}, []LocalID{dst}},
		{"Concat", Concat(noLoc, dst, []Value{a, b}), []Value{a, b}, []LocalID{dst}},
		{"ToFloat", ToFloat(noLoc, dst, a), []Value{a}, []LocalID{dst}},
		{"ToDyn", ToDyn(noLoc, typeref.NoTypeID, dst, a), []Value{a}, []LocalID{dst}},
		{"FromDyn", FromDyn(noLoc, typeref.NoTypeID, dst, a), []Value{a}, []LocalID{dst}},
		{"IsTruthy", IsTruthy(noLoc, dst, a), []Value{a}, []LocalID{dst}},
		{"IsNil", IsNil(noLoc, dst, a), []Value{a}, []LocalID{dst}},
		{"NewArr", NewArr(noLoc, dst, a), []Value{a}, []LocalID{dst}},
		{"GetArr", GetArr(noLoc, typeref.NoTypeID, dst, v, a), []Value{v, a}, []LocalID{dst}},
		{"SetArr", SetArr(noLoc, typeref.NoTypeID, v, a, b), []Value{v, a, b}, nil},
		{"NewTable", NewTable(noLoc, dst, a), []Value{a}, []LocalID{dst}},
		{"GetTable", GetTable(noLoc, typeref.NoTypeID, dst, v, a), []Value{v, a}, []LocalID{dst}},
		{"SetTable", SetTable(noLoc, typeref.NoTypeID, v, a, b), []Value{v, a, b}, nil},
		{"NewRecord", NewRecord(noLoc, typeref.NoTypeID, dst), nil, []LocalID{dst}},
		{"GetField", GetField(noLoc, typeref.NoTypeID, dst, v, "f"), []Value{v}, []LocalID{dst}},
		{"SetField", SetField(noLoc, typeref.NoTypeID, v, "f", a), []Value{v, a}, nil},
		{"NewClosure", NewClosure(noLoc, dst, FuncID(1)), nil, []LocalID{dst}},
		{"InitUpvalues", InitUpvalues(noLoc, v, []Value{a, b}, FuncID(1)), []Value{v, a, b}, nil},
		{"CallStatic", CallStatic(noLoc, typeref.NoTypeID, []LocalID{dst}, v, []Value{a, b}), []Value{v, a, b}, []LocalID{dst}},
		{"CallDyn", CallDyn(noLoc, []LocalID{dst}, v, []Value{a}), []Value{v, a}, []LocalID{dst}},
		{"RuntimeError", RuntimeError(noLoc, "boom"), nil, nil},
		{"BuiltinMathAbs", BuiltinMathAbs(noLoc, []LocalID{dst}, []Value{a}), []Value{a}, []LocalID{dst}},
		{"BuiltinIoWrite", BuiltinIoWrite(noLoc, nil, []Value{a}), []Value{a}, nil},
		{"Nop", NopCmd(), nil, nil},
		{"Break", BreakCmd(), nil, nil},
		{"CheckGC", CheckGC(), nil, nil},
		{"Return", Return(noLoc, []Value{a, b}), []Value{a, b}, nil},
		{"If", If(noLoc, v, NopCmd(), NopCmd()), []Value{v}, nil},
		{"For", For(noLoc, dst, a, b, v, NopCmd()), []Value{a, b, v}, []LocalID{dst}},
		{"Seq", Seq([]*Cmd{NopCmd()}), nil, nil},
		{"Loop", Loop(NopCmd()), nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			valsEqual(t, GetSrcs(tc.cmd), tc.wantSrcs)
			if got := GetDsts(tc.cmd); !reflect.DeepEqual(got, tc.wantDsts) {
				t.Errorf("GetDsts = %v, want %v", got, tc.wantDsts)
			}
		})
	}
}

func TestCmdTagStringIsStable(t *testing.T) {
	if CmdMove.String() != "ir.Cmd.Move" {
		t.Errorf("CmdMove.String() = %q", CmdMove.String())
	}
	if got := CmdTag(255).String(); got == "" {
		t.Error("an out-of-range tag should still render something, not panic")
	}
}
