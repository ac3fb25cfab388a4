package ir

import "fmt"

// ValueKind discriminates the variants of Value.
type ValueKind uint8

const (
	ValueNil ValueKind = iota
	ValueBool
	ValueInteger
	ValueFloat
	ValueString
	ValueLocalVar
	ValueUpvalue
)

func (k ValueKind) String() string {
	switch k {
	case ValueNil:
		return "Nil"
	case ValueBool:
		return "Bool"
	case ValueInteger:
		return "Integer"
	case ValueFloat:
		return "Float"
	case ValueString:
		return "String"
	case ValueLocalVar:
		return "LocalVar"
	case ValueUpvalue:
		return "Upvalue"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// Value is a pure operand: it never performs side effects. It is a
// closed sum type over the seven variants named by ValueKind. Str
// holds the String variant's payload (a Value method named String
// would collide with a same-named field, so the field is Str).
type Value struct {
	Kind ValueKind

	Bool     bool
	Integer  int64
	Float    float64
	Str      string
	LocalVar LocalID
	Upvalue  UpvalueID
}

// Nil constructs the Nil value.
func Nil() Value { return Value{Kind: ValueNil} }

// Bool constructs a Bool value.
func Bool(v bool) Value { return Value{Kind: ValueBool, Bool: v} }

// Integer constructs an Integer value.
func Integer(v int64) Value { return Value{Kind: ValueInteger, Integer: v} }

// Float constructs a Float value.
func Float(v float64) Value { return Value{Kind: ValueFloat, Float: v} }

// String constructs a String value.
func String(v string) Value { return Value{Kind: ValueString, Str: v} }

// LocalVarRef constructs a reference to a function-local variable.
func LocalVarRef(id LocalID) Value { return Value{Kind: ValueLocalVar, LocalVar: id} }

// UpvalueRef constructs a reference to a captured upvalue.
func UpvalueRef(id UpvalueID) Value { return Value{Kind: ValueUpvalue, Upvalue: id} }

// IsBoolLit reports whether v is a Bool literal equal to want, the
// pattern clean's constant-folding rules test for If conditions.
func (v Value) IsBoolLit(want bool) bool {
	return v.Kind == ValueBool && v.Bool == want
}

// Equal reports structural equality between two values.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValueNil:
		return true
	case ValueBool:
		return v.Bool == other.Bool
	case ValueInteger:
		return v.Integer == other.Integer
	case ValueFloat:
		return v.Float == other.Float
	case ValueString:
		return v.Str == other.Str
	case ValueLocalVar:
		return v.LocalVar == other.LocalVar
	case ValueUpvalue:
		return v.Upvalue == other.Upvalue
	default:
		return false
	}
}

// String renders v for diagnostics and the IR pretty-printer.
func (v Value) String() string {
	switch v.Kind {
	case ValueNil:
		return "nil"
	case ValueBool:
		return fmt.Sprintf("%t", v.Bool)
	case ValueInteger:
		return fmt.Sprintf("%d", v.Integer)
	case ValueFloat:
		return fmt.Sprintf("%g", v.Float)
	case ValueString:
		return fmt.Sprintf("%q", v.Str)
	case ValueLocalVar:
		return fmt.Sprintf("v%d", v.LocalVar)
	case ValueUpvalue:
		return fmt.Sprintf("u%d", v.Upvalue)
	default:
		return "<invalid>"
	}
}
