// Package ir implements the intermediate representation core: a closed
// sum-type algebra of values and commands in three-address form, per-
// function variable tables with stable numeric identities, generic tree
// transforms, and a basic-block lowering pass.
package ir

// FuncID is the 1-based id of a Function within a Module, stable for
// the life of the module. Slot 0 of the backing slice is reserved and
// never holds a real function, so NoFuncID doubles as "index 0".
type FuncID int32

// LocalID is the 1-based id of a VarDecl within Function.Vars.
type LocalID int32

// UpvalueID is the 1-based id of a VarDecl within Function.CapturedVars.
type UpvalueID int32

// RecordTypeID is the 1-based id of a type handle within
// Module.RecordTypes.
type RecordTypeID int32

// GlobalID is the 1-based id of a VarDecl within Module.Globals.
type GlobalID int32

// BlockID is the 0-based index of a BasicBlock within Function.Blocks.
// Unlike the ids above, 0 is a real block (the reserved, always-empty
// entry block, with a matching reserved, always-empty exit block as
// the last index), so absence is spelled with -1.
type BlockID int32

// None* sentinels mark the absence of an id: a discarded return slot in
// a dsts list, an unset upvalue/local mapping, or an absent block edge.
const (
	NoFuncID       FuncID       = 0
	NoLocalID      LocalID      = 0
	NoUpvalueID    UpvalueID    = 0
	NoRecordTypeID RecordTypeID = 0
	NoGlobalID     GlobalID     = 0
	NoBlockID      BlockID      = -1
)
