// Package typeref implements the "type handle" collaborator the IR core
// treats as external: an opaque value identifying a source-language
// type, with equality and tag dispatch as its only operations.
package typeref

import "fmt"

// TypeID uniquely identifies a type inside an Interner.
type TypeID uint32

// NoTypeID marks the absence of a type (e.g. a void return slot).
const NoTypeID TypeID = 0

// RecordID is the index of a record type within Module.record_types.
type RecordID int32

// NoRecordID marks the absence of a record type.
const NoRecordID RecordID = -1

// Kind enumerates every shape a type handle can take.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNil
	KindBool
	KindInt
	KindFloat
	KindString
	// KindDyn is the host language's universal dynamic representation,
	// the target of ToDyn and the source of FromDyn.
	KindDyn
	KindArray
	KindTable
	KindRecord
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindDyn:
		return "dyn"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	case KindRecord:
		return "record"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Type is a compact descriptor for any type handle the IR can carry.
type Type struct {
	Kind Kind

	Elem TypeID // KindArray: element type. KindTable: value type.
	Key  TypeID // KindTable: key type.

	Record RecordID // KindRecord: index into Module.record_types.

	Params  []TypeID // KindFunction: argument types, declaration order.
	Results []TypeID // KindFunction: return types, declaration order.
}

// IsScalar reports whether t is one of the unboxed primitive kinds that
// ToDyn/FromDyn narrow and widen between.
func (t Type) IsScalar() bool {
	switch t.Kind {
	case KindBool, KindInt, KindFloat, KindString:
		return true
	default:
		return false
	}
}

// MakeArray describes an array of elem.
func MakeArray(elem TypeID) Type { return Type{Kind: KindArray, Elem: elem} }

// MakeTable describes a table mapping key to elem.
func MakeTable(key, elem TypeID) Type { return Type{Kind: KindTable, Key: key, Elem: elem} }

// MakeRecord describes a named record type by its record-type id.
func MakeRecord(id RecordID) Type { return Type{Kind: KindRecord, Record: id} }

// MakeFunction describes a function type by its argument and return types.
func MakeFunction(params, results []TypeID) Type {
	return Type{Kind: KindFunction, Params: params, Results: results}
}
