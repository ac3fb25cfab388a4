package typeref

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the scalar primitives every module needs.
type Builtins struct {
	Nil    TypeID
	Bool   TypeID
	Int    TypeID
	Float  TypeID
	String TypeID
	Dyn    TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors, so
// two requests for the same shape (same element type, same record id,
// same function signature) resolve to the same handle.
type Interner struct {
	types    []Type
	index    map[string]TypeID
	builtins Builtins
}

// NewInterner constructs an interner seeded with scalar builtins.
func NewInterner() *Interner {
	in := &Interner{
		types: []Type{{Kind: KindInvalid}},
		index: make(map[string]TypeID, 32),
	}
	in.builtins.Nil = in.Intern(Type{Kind: KindNil})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	in.builtins.Float = in.Intern(Type{Kind: KindFloat})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Dyn = in.Intern(Type{Kind: KindDyn})
	return in
}

// Builtins returns TypeIDs for the scalar primitives.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("typeref: type table overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[key] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid; callers use it where the id was
// already validated by a prior well-typed construction step.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("typeref: invalid TypeID %d", id))
	}
	return t
}

// typeKey builds a structural key so equal shapes dedupe regardless of
// the order in which they were requested.
func typeKey(t Type) string {
	switch t.Kind {
	case KindArray:
		return fmt.Sprintf("arr:%d", t.Elem)
	case KindTable:
		return fmt.Sprintf("tab:%d:%d", t.Key, t.Elem)
	case KindRecord:
		return fmt.Sprintf("rec:%d", t.Record)
	case KindFunction:
		return fmt.Sprintf("fn:%v:%v", t.Params, t.Results)
	default:
		return fmt.Sprintf("scalar:%d", t.Kind)
	}
}
