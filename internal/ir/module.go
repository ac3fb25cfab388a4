package ir

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"vela/internal/source"
	"vela/internal/typeref"
)

// VarDecl pairs a variable's declared type with its source name. Name
// is empty for compiler-synthesized temporaries with no user-facing
// identifier (the "literal false/absent" name of the core spec).
type VarDecl struct {
	Name string
	Type typeref.TypeID
}

// HasName reports whether decl carries a user-facing identifier.
func (decl VarDecl) HasName() bool {
	return decl.Name != ""
}

// Function owns its local name space: parameters and locals (Vars),
// captured upvalues (CapturedVars), and the body the frontend built for
// it, either as a command tree (Body) or, after GenerateBasicBlocks
// has run, as a flat block list (Blocks).
type Function struct {
	Loc  source.Span
	Name string
	Typ  typeref.TypeID

	Vars         []VarDecl
	CapturedVars []VarDecl

	// FIDOfUpvalue maps an upvalue id to the function id whose closure
	// provides it.
	FIDOfUpvalue map[UpvalueID]FuncID
	// FIDOfLocal maps a local id to the function id for locals that
	// escape as upvalues of a nested closure.
	FIDOfLocal map[LocalID]FuncID

	Body   *Cmd
	Blocks []BasicBlock
}

// JmpFalse is a basic block's conditional edge: "if Cond is falsy,
// transfer to Target; otherwise fall through to the block's Next."
type JmpFalse struct {
	Target BlockID
	Cond   Value
}

// BasicBlock is a maximal straight-line run of commands ending in at
// most one conditional jump (JmpFalse) and at most one fall-through
// edge (Next).
type BasicBlock struct {
	Cmds     []*Cmd
	Next     BlockID // NoBlockID if this block is terminal.
	JmpFalse *JmpFalse
}

// Module is a compilation unit: it owns every function, global, and
// record type the frontend produced. Every id referenced anywhere in a
// Value or Cmd resolves within this module.
type Module struct {
	RecordTypes []typeref.TypeID
	Functions   []*Function
	Globals     []VarDecl

	exportedFunctions []FuncID
	exportedFuncSet   map[FuncID]bool
	exportedGlobals   []GlobalID
	exportedGlobalSet map[GlobalID]bool

	ExportsLoc    source.Span
	HasExportsLoc bool
}

// NewModule returns an empty module with its Globals list already
// allocated. The reference implementation's Module constructor never
// allocates this list even though add_global indexes into it; this is
// the one place the core spec instructs an implementer to deviate.
func NewModule() *Module {
	return &Module{
		RecordTypes:       make([]typeref.TypeID, 1, 8), // slot 0 reserved
		Functions:         make([]*Function, 1, 8),      // slot 0 reserved
		Globals:           make([]VarDecl, 1, 8),        // slot 0 reserved
		exportedFuncSet:   make(map[FuncID]bool),
		exportedGlobalSet: make(map[GlobalID]bool),
	}
}

// moduleWire is Module's on-the-wire shape for msgpack encoding.
// exportedFuncSet/exportedGlobalSet are lookup indexes derived from
// exportedFunctions/exportedGlobals and are rebuilt on decode rather
// than encoded, since msgpack only walks exported fields and both sets
// are unexported for the same reason the ids they index are immutable
// after AddExportedFunction/AddExportedGlobal: nothing outside this
// package should be able to remove an entry from them.
type moduleWire struct {
	RecordTypes       []typeref.TypeID
	Functions         []*Function
	Globals           []VarDecl
	ExportedFunctions []FuncID
	ExportedGlobals   []GlobalID
	ExportsLoc        source.Span
	HasExportsLoc     bool
}

// EncodeMsgpack implements msgpack.CustomEncoder so SaveModuleCache can
// round-trip the exported-function/global sets, which Go's reflection
// can't reach because they're unexported.
func (m *Module) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(moduleWire{
		RecordTypes:       m.RecordTypes,
		Functions:         m.Functions,
		Globals:           m.Globals,
		ExportedFunctions: m.exportedFunctions,
		ExportedGlobals:   m.exportedGlobals,
		ExportsLoc:        m.ExportsLoc,
		HasExportsLoc:     m.HasExportsLoc,
	})
}

// DecodeMsgpack implements msgpack.CustomDecoder, the counterpart to
// EncodeMsgpack.
func (m *Module) DecodeMsgpack(dec *msgpack.Decoder) error {
	var w moduleWire
	if err := dec.Decode(&w); err != nil {
		return err
	}
	*m = Module{
		RecordTypes:       w.RecordTypes,
		Functions:         w.Functions,
		Globals:           w.Globals,
		exportedFuncSet:   make(map[FuncID]bool, len(w.ExportedFunctions)),
		exportedGlobalSet: make(map[GlobalID]bool, len(w.ExportedGlobals)),
		ExportsLoc:        w.ExportsLoc,
		HasExportsLoc:     w.HasExportsLoc,
	}
	for _, fID := range w.ExportedFunctions {
		AddExportedFunction(m, fID)
	}
	for _, gID := range w.ExportedGlobals {
		AddExportedGlobal(m, gID)
	}
	return nil
}

// AddRecordType registers typ as a record type and returns its stable id.
func AddRecordType(m *Module, typ typeref.TypeID) RecordTypeID {
	m.RecordTypes = append(m.RecordTypes, typ)
	return RecordTypeID(len(m.RecordTypes) - 1)
}

// AddFunction declares a new, bodyless function and returns its id.
func AddFunction(m *Module, loc source.Span, name string, typ typeref.TypeID) FuncID {
	f := &Function{
		Loc:          loc,
		Name:         name,
		Typ:          typ,
		Vars:         []VarDecl{{}}, // slot 0 reserved
		CapturedVars: []VarDecl{{}}, // slot 0 reserved
		FIDOfUpvalue: make(map[UpvalueID]FuncID),
		FIDOfLocal:   make(map[LocalID]FuncID),
	}
	m.Functions = append(m.Functions, f)
	return FuncID(len(m.Functions) - 1)
}

// Func resolves a FuncID to its Function, panicking on an out-of-range
// id: this is a category-1 programmer error per the core's error
// handling design, not a condition well-typed input can trigger.
func (m *Module) Func(id FuncID) *Function {
	if id == NoFuncID || int(id) >= len(m.Functions) {
		panic(fmt.Sprintf("ir: invalid function id %d", id))
	}
	return m.Functions[id]
}

// AddGlobal declares a new module-level variable and returns its id.
func AddGlobal(m *Module, name string, typ typeref.TypeID) GlobalID {
	m.Globals = append(m.Globals, VarDecl{Name: name, Type: typ})
	return GlobalID(len(m.Globals) - 1)
}

// AddExportedFunction appends f_id to the module's export set, a no-op
// if it is already present.
func AddExportedFunction(m *Module, fID FuncID) {
	if m.exportedFuncSet[fID] {
		return
	}
	m.exportedFuncSet[fID] = true
	m.exportedFunctions = append(m.exportedFunctions, fID)
}

// ExportedFunctions returns the insertion-ordered set of exported
// function ids.
func (m *Module) ExportedFunctions() []FuncID {
	return m.exportedFunctions
}

// AddExportedGlobal appends id to the module's exported-globals set, a
// no-op if it is already present.
func AddExportedGlobal(m *Module, id GlobalID) {
	if m.exportedGlobalSet[id] {
		return
	}
	m.exportedGlobalSet[id] = true
	m.exportedGlobals = append(m.exportedGlobals, id)
}

// ExportedGlobals returns the insertion-ordered set of exported global ids.
func (m *Module) ExportedGlobals() []GlobalID {
	return m.exportedGlobals
}

// AddLocal declares a new local (or parameter, when called for the
// first Arity locals of a function) and returns its id.
func AddLocal(f *Function, name string, typ typeref.TypeID) LocalID {
	f.Vars = append(f.Vars, VarDecl{Name: name, Type: typ})
	return LocalID(len(f.Vars) - 1)
}

// AddUpvalue declares a new captured variable and returns its id.
func AddUpvalue(f *Function, name string, typ typeref.TypeID) UpvalueID {
	f.CapturedVars = append(f.CapturedVars, VarDecl{Name: name, Type: typ})
	return UpvalueID(len(f.CapturedVars) - 1)
}

// Local resolves a LocalID to its declaration, panicking on an
// out-of-range id (a category-1 programmer error).
func (f *Function) Local(id LocalID) VarDecl {
	if id == NoLocalID || int(id) >= len(f.Vars) {
		panic(fmt.Sprintf("ir: invalid local id %d", id))
	}
	return f.Vars[id]
}

// ArgVar returns the local id of the i-th parameter (1-based). arity is
// the number of declared parameters, ordinarily len(Typ's param list)
// as resolved by the caller against its type interner; arg_var does not
// itself dereference Typ so the core stays independent of how types are
// interned.
func ArgVar(f *Function, arity, i int) LocalID {
	if i < 1 || i > arity {
		panic(fmt.Sprintf("ir: argument index %d out of range [1, %d]", i, arity))
	}
	return LocalID(i)
}
