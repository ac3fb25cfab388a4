package typeref

import "testing"

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Int == NoTypeID || b.Bool == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	got, _ := in.Lookup(b.Int)
	if got.Kind != KindInt {
		t.Fatalf("expected int kind, got %v", got.Kind)
	}
}

func TestInternerDeduplicatesDescriptors(t *testing.T) {
	in := NewInterner()
	elem := in.Builtins().String
	arr1 := in.Intern(MakeArray(elem))
	arr2 := in.Intern(MakeArray(elem))
	if arr1 != arr2 {
		t.Fatalf("array types should be deduplicated")
	}
}

func TestRecordIdentityDependsOnRecordID(t *testing.T) {
	in := NewInterner()
	r1 := in.Intern(MakeRecord(0))
	r2 := in.Intern(MakeRecord(1))
	if r1 == r2 {
		t.Fatalf("distinct record ids must produce distinct handles")
	}
	r1Again := in.Intern(MakeRecord(0))
	if r1 != r1Again {
		t.Fatalf("same record id should dedupe to the same handle")
	}
}

func TestFunctionTypeDedup(t *testing.T) {
	in := NewInterner()
	intT := in.Builtins().Int
	f1 := in.Intern(MakeFunction([]TypeID{intT}, []TypeID{intT}))
	f2 := in.Intern(MakeFunction([]TypeID{intT}, []TypeID{intT}))
	if f1 != f2 {
		t.Fatalf("identical function signatures should dedupe")
	}
}
