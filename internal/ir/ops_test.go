package ir

import "testing"

func TestParseOpRoundtrip(t *testing.T) {
	for op, name := range opNames {
		got, ok := ParseOp(name)
		if !ok {
			t.Fatalf("ParseOp(%q) failed to parse a name op.String() produced", name)
		}
		if got != op {
			t.Errorf("ParseOp(%q) = %v, want %v", name, got, op)
		}
	}
}

func TestParseOpRejectsUnknown(t *testing.T) {
	if _, ok := ParseOp("NotAnOp"); ok {
		t.Error("ParseOp should reject names outside the closed vocabulary")
	}
}

func TestParseBuiltinRoundtrip(t *testing.T) {
	for b, name := range builtinNames {
		got, ok := ParseBuiltin(name)
		if !ok {
			t.Fatalf("ParseBuiltin(%q) failed to parse a name Builtin.String() produced", name)
		}
		if got != b {
			t.Errorf("ParseBuiltin(%q) = %v, want %v", name, got, b)
		}
	}
}

func TestParseBuiltinRejectsUnknown(t *testing.T) {
	if _, ok := ParseBuiltin("NotABuiltin"); ok {
		t.Error("ParseBuiltin should reject names outside the closed enumeration")
	}
}

func TestInvalidOpStringDoesNotPanic(t *testing.T) {
	if got := OpInvalid.String(); got != "Op(0)" {
		t.Errorf("OpInvalid.String() = %q, want %q", got, "Op(0)")
	}
}
