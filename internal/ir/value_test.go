package ir

import "testing"

func TestValueConstructorsRoundtripKind(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want ValueKind
	}{
		{"nil", Nil(), ValueNil},
		{"bool", Bool(true), ValueBool},
		{"integer", Integer(7), ValueInteger},
		{"float", Float(1.5), ValueFloat},
		{"string", String("x"), ValueString},
		{"local", LocalVarRef(LocalID(3)), ValueLocalVar},
		{"upvalue", UpvalueRef(UpvalueID(2)), ValueUpvalue},
	}
	for _, tc := range cases {
		if tc.v.Kind != tc.want {
			t.Errorf("%s: got kind %s, want %s", tc.name, tc.v.Kind, tc.want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	if !Integer(5).Equal(Integer(5)) {
		t.Error("Integer(5) should equal Integer(5)")
	}
	if Integer(5).Equal(Integer(6)) {
		t.Error("Integer(5) should not equal Integer(6)")
	}
	if Integer(5).Equal(Float(5)) {
		t.Error("values of different kinds should never be equal")
	}
	if !String("a").Equal(String("a")) {
		t.Error("String(a) should equal String(a)")
	}
	if !LocalVarRef(1).Equal(LocalVarRef(1)) {
		t.Error("LocalVarRef(1) should equal LocalVarRef(1)")
	}
	if LocalVarRef(1).Equal(LocalVarRef(2)) {
		t.Error("LocalVarRef(1) should not equal LocalVarRef(2)")
	}
}

func TestIsBoolLit(t *testing.T) {
	if !Bool(true).IsBoolLit(true) {
		t.Error("Bool(true).IsBoolLit(true) should be true")
	}
	if Bool(true).IsBoolLit(false) {
		t.Error("Bool(true).IsBoolLit(false) should be false")
	}
	if Integer(1).IsBoolLit(true) {
		t.Error("Integer(1) is never a bool literal")
	}
	if LocalVarRef(1).IsBoolLit(true) {
		t.Error("a variable reference is never a bool literal")
	}
}

func TestValueString(t *testing.T) {
	cases := map[string]Value{
		"nil":  Nil(),
		"true": Bool(true),
		"5":    Integer(5),
		`"s"`:  String("s"),
		"v3":   LocalVarRef(3),
		"u2":   UpvalueRef(2),
	}
	for want, v := range cases {
		if got := v.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
