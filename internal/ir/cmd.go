package ir

import (
	"fmt"

	"vela/internal/source"
	"vela/internal/typeref"
)

// CmdTag discriminates the variants of Cmd. Every constructed Cmd
// carries a stable tag so generic passes (GetSrcs, GetDsts, the
// pretty-printer, backends) can dispatch on it without inspecting
// which struct field happens to be populated.
type CmdTag uint8

const (
	CmdInvalid CmdTag = iota

	// Variables.
	CmdMove

	// Primitive arithmetic.
	CmdUnop
	CmdBinop
	CmdConcat
	CmdToFloat

	// Dynamic boxing.
	CmdToDyn
	CmdFromDyn
	CmdIsTruthy
	CmdIsNil

	// Arrays.
	CmdNewArr
	CmdGetArr
	CmdSetArr

	// Tables.
	CmdNewTable
	CmdGetTable
	CmdSetTable

	// Records.
	CmdNewRecord
	CmdGetField
	CmdSetField

	// Functions.
	CmdNewClosure
	CmdInitUpvalues
	CmdCallStatic
	CmdCallDyn

	// Diagnostics.
	CmdRuntimeError

	// Builtins.
	CmdBuiltinIoWrite
	CmdBuiltinMathAbs
	CmdBuiltinMathCeil
	CmdBuiltinMathFloor
	CmdBuiltinMathFmod
	CmdBuiltinMathExp
	CmdBuiltinMathLn
	CmdBuiltinMathLog
	CmdBuiltinMathModf
	CmdBuiltinMathPow
	CmdBuiltinMathSqrt
	CmdBuiltinStringChar
	CmdBuiltinStringSub
	CmdBuiltinType
	CmdBuiltinTostring

	// Structured control flow.
	CmdNop
	CmdSeq
	CmdReturn
	CmdBreak
	CmdLoop
	CmdIf
	CmdFor

	// GC hook.
	CmdCheckGC
)

var cmdTagNames = map[CmdTag]string{
	CmdMove:              "ir.Cmd.Move",
	CmdUnop:              "ir.Cmd.Unop",
	CmdBinop:             "ir.Cmd.Binop",
	CmdConcat:            "ir.Cmd.Concat",
	CmdToFloat:           "ir.Cmd.ToFloat",
	CmdToDyn:             "ir.Cmd.ToDyn",
	CmdFromDyn:           "ir.Cmd.FromDyn",
	CmdIsTruthy:          "ir.Cmd.IsTruthy",
	CmdIsNil:             "ir.Cmd.IsNil",
	CmdNewArr:            "ir.Cmd.NewArr",
	CmdGetArr:            "ir.Cmd.GetArr",
	CmdSetArr:            "ir.Cmd.SetArr",
	CmdNewTable:          "ir.Cmd.NewTable",
	CmdGetTable:          "ir.Cmd.GetTable",
	CmdSetTable:          "ir.Cmd.SetTable",
	CmdNewRecord:         "ir.Cmd.NewRecord",
	CmdGetField:          "ir.Cmd.GetField",
	CmdSetField:          "ir.Cmd.SetField",
	CmdNewClosure:        "ir.Cmd.NewClosure",
	CmdInitUpvalues:      "ir.Cmd.InitUpvalues",
	CmdCallStatic:        "ir.Cmd.CallStatic",
	CmdCallDyn:           "ir.Cmd.CallDyn",
	CmdRuntimeError:      "ir.Cmd.RuntimeError",
	CmdBuiltinIoWrite:    "ir.Cmd.BuiltinIoWrite",
	CmdBuiltinMathAbs:    "ir.Cmd.BuiltinMathAbs",
	CmdBuiltinMathCeil:   "ir.Cmd.BuiltinMathCeil",
	CmdBuiltinMathFloor:  "ir.Cmd.BuiltinMathFloor",
	CmdBuiltinMathFmod:   "ir.Cmd.BuiltinMathFmod",
	CmdBuiltinMathExp:    "ir.Cmd.BuiltinMathExp",
	CmdBuiltinMathLn:     "ir.Cmd.BuiltinMathLn",
	CmdBuiltinMathLog:    "ir.Cmd.BuiltinMathLog",
	CmdBuiltinMathModf:   "ir.Cmd.BuiltinMathModf",
	CmdBuiltinMathPow:    "ir.Cmd.BuiltinMathPow",
	CmdBuiltinMathSqrt:   "ir.Cmd.BuiltinMathSqrt",
	CmdBuiltinStringChar: "ir.Cmd.BuiltinStringChar",
	CmdBuiltinStringSub:  "ir.Cmd.BuiltinStringSub",
	CmdBuiltinType:       "ir.Cmd.BuiltinType",
	CmdBuiltinTostring:   "ir.Cmd.BuiltinTostring",
	CmdNop:               "ir.Cmd.Nop",
	CmdSeq:               "ir.Cmd.Seq",
	CmdReturn:            "ir.Cmd.Return",
	CmdBreak:             "ir.Cmd.Break",
	CmdLoop:              "ir.Cmd.Loop",
	CmdIf:                "ir.Cmd.If",
	CmdFor:               "ir.Cmd.For",
	CmdCheckGC:           "ir.Cmd.CheckGC",
}

// Tag returns the stable tag string for c, e.g. "ir.Cmd.Move".
func (tag CmdTag) String() string {
	if name, ok := cmdTagNames[tag]; ok {
		return name
	}
	return fmt.Sprintf("ir.Cmd.Invalid(%d)", uint8(tag))
}

// isBuiltinTag reports whether tag is one of the fifteen builtin
// invocation variants, all sharing the BuiltinCall payload shape.
func (tag CmdTag) isBuiltinTag() bool {
	return tag >= CmdBuiltinIoWrite && tag <= CmdBuiltinTostring
}

// MoveCmd copies Src into Dst.
type MoveCmd struct {
	Dst LocalID
	Src Value
}

// UnopCmd applies a unary operator.
type UnopCmd struct {
	Dst LocalID
	Op  Op
	Src Value
}

// BinopCmd applies a binary operator.
type BinopCmd struct {
	Dst  LocalID
	Op   Op
	Src1 Value
	Src2 Value
}

// ConcatCmd joins Srcs (already string-typed) into Dst.
type ConcatCmd struct {
	Dst  LocalID
	Srcs []Value
}

// ToFloatCmd widens an integer Src into a float Dst.
type ToFloatCmd struct {
	Dst LocalID
	Src Value
}

// ToDynCmd boxes a typed Src as the dynamic representation.
type ToDynCmd struct {
	SrcTyp typeref.TypeID
	Dst    LocalID
	Src    Value
}

// FromDynCmd narrows a dynamic Src to a typed Dst.
type FromDynCmd struct {
	DstTyp typeref.TypeID
	Dst    LocalID
	Src    Value
}

// IsTruthyCmd tests whether Src is truthy under host-language rules.
type IsTruthyCmd struct {
	Dst LocalID
	Src Value
}

// IsNilCmd tests whether Src is nil.
type IsNilCmd struct {
	Dst LocalID
	Src Value
}

// NewArrCmd allocates an array of SrcSize elements.
type NewArrCmd struct {
	Dst     LocalID
	SrcSize Value
}

// GetArrCmd reads SrcArr[SrcI] into Dst.
type GetArrCmd struct {
	DstTyp typeref.TypeID
	Dst    LocalID
	SrcArr Value
	SrcI   Value
}

// SetArrCmd writes SrcV into SrcArr[SrcI].
type SetArrCmd struct {
	SrcTyp typeref.TypeID
	SrcArr Value
	SrcI   Value
	SrcV   Value
}

// NewTableCmd allocates a table sized SrcSize.
type NewTableCmd struct {
	Dst     LocalID
	SrcSize Value
}

// GetTableCmd reads SrcTab[SrcK] into Dst.
type GetTableCmd struct {
	DstTyp typeref.TypeID
	Dst    LocalID
	SrcTab Value
	SrcK   Value
}

// SetTableCmd writes SrcV into SrcTab[SrcK].
type SetTableCmd struct {
	SrcTyp typeref.TypeID
	SrcTab Value
	SrcK   Value
	SrcV   Value
}

// NewRecordCmd allocates a zero-valued instance of RecTyp into Dst.
type NewRecordCmd struct {
	RecTyp typeref.TypeID
	Dst    LocalID
}

// GetFieldCmd reads SrcRec.FieldName into Dst.
type GetFieldCmd struct {
	RecTyp    typeref.TypeID
	Dst       LocalID
	SrcRec    Value
	FieldName string
}

// SetFieldCmd writes SrcV into SrcRec.FieldName.
type SetFieldCmd struct {
	RecTyp    typeref.TypeID
	SrcRec    Value
	FieldName string
	SrcV      Value
}

// NewClosureCmd names a freshly-created closure over FID before its
// upvalue vector is populated by a following InitUpvalues, enabling
// self- and mutually-recursive closures without a back-patch step.
type NewClosureCmd struct {
	Dst LocalID
	FID FuncID
}

// InitUpvaluesCmd populates the closure named by SrcF (ordinarily a
// prior NewClosure's Dst) with Srcs, per FID's captured-variable order.
type InitUpvaluesCmd struct {
	SrcF Value
	Srcs []Value
	FID  FuncID
}

// CallStaticCmd calls a statically known function.
type CallStaticCmd struct {
	FTyp typeref.TypeID
	Dsts []LocalID
	SrcF Value
	Srcs []Value
}

// CallDynCmd calls a callee known only as a runtime value.
type CallDynCmd struct {
	Dsts []LocalID
	SrcF Value
	Srcs []Value
}

// RuntimeErrorCmd terminates execution with Msg when the target
// language executes it. It is emitted by the frontend/lowering, never
// raised during IR construction.
type RuntimeErrorCmd struct {
	Msg string
}

// BuiltinCallCmd is the shared payload of every Builtin* command: each
// of the fifteen variants differs only in which host-library operation
// its Tag names.
type BuiltinCallCmd struct {
	Dsts []LocalID
	Srcs []Value
}

// SeqCmd runs Cmds in order.
type SeqCmd struct {
	Cmds []*Cmd
}

// ReturnCmd returns Srcs from the enclosing function.
type ReturnCmd struct {
	Srcs []Value
}

// LoopCmd repeats Body until a Break inside it fires.
type LoopCmd struct {
	Body *Cmd
}

// IfCmd runs Then when Cond is truthy, Else otherwise.
type IfCmd struct {
	Cond Value
	Then *Cmd
	Else *Cmd
}

// ForCmd is the structured numeric loop the lowering pass expands into
// an explicit zero-step check, min/max prelude, test, body, and step.
type ForCmd struct {
	Dst      LocalID
	SrcStart Value
	SrcLimit Value
	SrcStep  Value
	Body     *Cmd
}

// Cmd is an effectful or control-flow node; a function's body is a
// tree of these. It is a closed sum type: exactly one of the payload
// fields below is meaningful, selected by Tag. Leaf variants with no
// operands (Nop, Break, CheckGC) use no payload field at all.
type Cmd struct {
	Tag CmdTag
	Loc source.Span

	Move         MoveCmd
	Unop         UnopCmd
	Binop        BinopCmd
	Concat       ConcatCmd
	ToFloat      ToFloatCmd
	ToDyn        ToDynCmd
	FromDyn      FromDynCmd
	IsTruthy     IsTruthyCmd
	IsNil        IsNilCmd
	NewArr       NewArrCmd
	GetArr       GetArrCmd
	SetArr       SetArrCmd
	NewTable     NewTableCmd
	GetTable     GetTableCmd
	SetTable     SetTableCmd
	NewRecord    NewRecordCmd
	GetField     GetFieldCmd
	SetField     SetFieldCmd
	NewClosure   NewClosureCmd
	InitUpvalues InitUpvaluesCmd
	CallStatic   CallStaticCmd
	CallDyn      CallDynCmd
	RuntimeError RuntimeErrorCmd
	BuiltinCall  BuiltinCallCmd
	Seq          SeqCmd
	Return       ReturnCmd
	Loop         LoopCmd
	If           IfCmd
	For          ForCmd
}

// Move constructs a Move command.
func Move(loc source.Span, dst LocalID, src Value) *Cmd {
	return &Cmd{Tag: CmdMove, Loc: loc, Move: MoveCmd{Dst: dst, Src: src}}
}

// Unop constructs a Unop command.
func Unop(loc source.Span, dst LocalID, op Op, src Value) *Cmd {
	return &Cmd{Tag: CmdUnop, Loc: loc, Unop: UnopCmd{Dst: dst, Op: op, Src: src}}
}

// Binop constructs a Binop command.
func Binop(loc source.Span, dst LocalID, op Op, src1, src2 Value) *Cmd {
	return &Cmd{Tag: CmdBinop, Loc: loc, Binop: BinopCmd{Dst: dst, Op: op, Src1: src1, Src2: src2}}
}

// Concat constructs a Concat command.
func Concat(loc source.Span, dst LocalID, srcs []Value) *Cmd {
	return &Cmd{Tag: CmdConcat, Loc: loc, Concat: ConcatCmd{Dst: dst, Srcs: srcs}}
}

// ToFloat constructs a ToFloat command.
func ToFloat(loc source.Span, dst LocalID, src Value) *Cmd {
	return &Cmd{Tag: CmdToFloat, Loc: loc, ToFloat: ToFloatCmd{Dst: dst, Src: src}}
}

// ToDyn constructs a ToDyn command.
func ToDyn(loc source.Span, srcTyp typeref.TypeID, dst LocalID, src Value) *Cmd {
	return &Cmd{Tag: CmdToDyn, Loc: loc, ToDyn: ToDynCmd{SrcTyp: srcTyp, Dst: dst, Src: src}}
}

// FromDyn constructs a FromDyn command.
func FromDyn(loc source.Span, dstTyp typeref.TypeID, dst LocalID, src Value) *Cmd {
	return &Cmd{Tag: CmdFromDyn, Loc: loc, FromDyn: FromDynCmd{DstTyp: dstTyp, Dst: dst, Src: src}}
}

// IsTruthy constructs an IsTruthy command.
func IsTruthy(loc source.Span, dst LocalID, src Value) *Cmd {
	return &Cmd{Tag: CmdIsTruthy, Loc: loc, IsTruthy: IsTruthyCmd{Dst: dst, Src: src}}
}

// IsNil constructs an IsNil command.
func IsNil(loc source.Span, dst LocalID, src Value) *Cmd {
	return &Cmd{Tag: CmdIsNil, Loc: loc, IsNil: IsNilCmd{Dst: dst, Src: src}}
}

// NewArr constructs a NewArr command.
func NewArr(loc source.Span, dst LocalID, srcSize Value) *Cmd {
	return &Cmd{Tag: CmdNewArr, Loc: loc, NewArr: NewArrCmd{Dst: dst, SrcSize: srcSize}}
}

// GetArr constructs a GetArr command.
func GetArr(loc source.Span, dstTyp typeref.TypeID, dst LocalID, srcArr, srcI Value) *Cmd {
	return &Cmd{Tag: CmdGetArr, Loc: loc, GetArr: GetArrCmd{DstTyp: dstTyp, Dst: dst, SrcArr: srcArr, SrcI: srcI}}
}

// SetArr constructs a SetArr command.
func SetArr(loc source.Span, srcTyp typeref.TypeID, srcArr, srcI, srcV Value) *Cmd {
	return &Cmd{Tag: CmdSetArr, Loc: loc, SetArr: SetArrCmd{SrcTyp: srcTyp, SrcArr: srcArr, SrcI: srcI, SrcV: srcV}}
}

// NewTable constructs a NewTable command.
func NewTable(loc source.Span, dst LocalID, srcSize Value) *Cmd {
	return &Cmd{Tag: CmdNewTable, Loc: loc, NewTable: NewTableCmd{Dst: dst, SrcSize: srcSize}}
}

// GetTable constructs a GetTable command.
func GetTable(loc source.Span, dstTyp typeref.TypeID, dst LocalID, srcTab, srcK Value) *Cmd {
	return &Cmd{Tag: CmdGetTable, Loc: loc, GetTable: GetTableCmd{DstTyp: dstTyp, Dst: dst, SrcTab: srcTab, SrcK: srcK}}
}

// SetTable constructs a SetTable command.
func SetTable(loc source.Span, srcTyp typeref.TypeID, srcTab, srcK, srcV Value) *Cmd {
	return &Cmd{Tag: CmdSetTable, Loc: loc, SetTable: SetTableCmd{SrcTyp: srcTyp, SrcTab: srcTab, SrcK: srcK, SrcV: srcV}}
}

// NewRecord constructs a NewRecord command.
func NewRecord(loc source.Span, recTyp typeref.TypeID, dst LocalID) *Cmd {
	return &Cmd{Tag: CmdNewRecord, Loc: loc, NewRecord: NewRecordCmd{RecTyp: recTyp, Dst: dst}}
}

// GetField constructs a GetField command.
func GetField(loc source.Span, recTyp typeref.TypeID, dst LocalID, srcRec Value, fieldName string) *Cmd {
	return &Cmd{Tag: CmdGetField, Loc: loc, GetField: GetFieldCmd{RecTyp: recTyp, Dst: dst, SrcRec: srcRec, FieldName: fieldName}}
}

// SetField constructs a SetField command.
func SetField(loc source.Span, recTyp typeref.TypeID, srcRec Value, fieldName string, srcV Value) *Cmd {
	return &Cmd{Tag: CmdSetField, Loc: loc, SetField: SetFieldCmd{RecTyp: recTyp, SrcRec: srcRec, FieldName: fieldName, SrcV: srcV}}
}

// NewClosure constructs a NewClosure command.
func NewClosure(loc source.Span, dst LocalID, fID FuncID) *Cmd {
	return &Cmd{Tag: CmdNewClosure, Loc: loc, NewClosure: NewClosureCmd{Dst: dst, FID: fID}}
}

// InitUpvalues constructs an InitUpvalues command.
func InitUpvalues(loc source.Span, srcF Value, srcs []Value, fID FuncID) *Cmd {
	return &Cmd{Tag: CmdInitUpvalues, Loc: loc, InitUpvalues: InitUpvaluesCmd{SrcF: srcF, Srcs: srcs, FID: fID}}
}

// CallStatic constructs a CallStatic command.
func CallStatic(loc source.Span, fTyp typeref.TypeID, dsts []LocalID, srcF Value, srcs []Value) *Cmd {
	return &Cmd{Tag: CmdCallStatic, Loc: loc, CallStatic: CallStaticCmd{FTyp: fTyp, Dsts: dsts, SrcF: srcF, Srcs: srcs}}
}

// CallDyn constructs a CallDyn command.
func CallDyn(loc source.Span, dsts []LocalID, srcF Value, srcs []Value) *Cmd {
	return &Cmd{Tag: CmdCallDyn, Loc: loc, CallDyn: CallDynCmd{Dsts: dsts, SrcF: srcF, Srcs: srcs}}
}

// RuntimeError constructs a RuntimeError command.
func RuntimeError(loc source.Span, msg string) *Cmd {
	return &Cmd{Tag: CmdRuntimeError, Loc: loc, RuntimeError: RuntimeErrorCmd{Msg: msg}}
}

func builtinCmd(tag CmdTag, loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return &Cmd{Tag: tag, Loc: loc, BuiltinCall: BuiltinCallCmd{Dsts: dsts, Srcs: srcs}}
}

// BuiltinIoWrite constructs a BuiltinIoWrite command.
func BuiltinIoWrite(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinIoWrite, loc, dsts, srcs)
}

// BuiltinMathAbs constructs a BuiltinMathAbs command.
func BuiltinMathAbs(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinMathAbs, loc, dsts, srcs)
}

// BuiltinMathCeil constructs a BuiltinMathCeil command.
func BuiltinMathCeil(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinMathCeil, loc, dsts, srcs)
}

// BuiltinMathFloor constructs a BuiltinMathFloor command.
func BuiltinMathFloor(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinMathFloor, loc, dsts, srcs)
}

// BuiltinMathFmod constructs a BuiltinMathFmod command.
func BuiltinMathFmod(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinMathFmod, loc, dsts, srcs)
}

// BuiltinMathExp constructs a BuiltinMathExp command.
func BuiltinMathExp(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinMathExp, loc, dsts, srcs)
}

// BuiltinMathLn constructs a BuiltinMathLn command.
func BuiltinMathLn(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinMathLn, loc, dsts, srcs)
}

// BuiltinMathLog constructs a BuiltinMathLog command.
func BuiltinMathLog(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinMathLog, loc, dsts, srcs)
}

// BuiltinMathModf constructs a BuiltinMathModf command.
func BuiltinMathModf(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinMathModf, loc, dsts, srcs)
}

// BuiltinMathPow constructs a BuiltinMathPow command.
func BuiltinMathPow(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinMathPow, loc, dsts, srcs)
}

// BuiltinMathSqrt constructs a BuiltinMathSqrt command.
func BuiltinMathSqrt(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinMathSqrt, loc, dsts, srcs)
}

// BuiltinStringChar constructs a BuiltinStringChar command.
func BuiltinStringChar(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinStringChar, loc, dsts, srcs)
}

// BuiltinStringSub constructs a BuiltinStringSub command.
func BuiltinStringSub(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinStringSub, loc, dsts, srcs)
}

// BuiltinType constructs a BuiltinType command.
func BuiltinType(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinType, loc, dsts, srcs)
}

// BuiltinTostring constructs a BuiltinTostring command.
func BuiltinTostring(loc source.Span, dsts []LocalID, srcs []Value) *Cmd {
	return builtinCmd(CmdBuiltinTostring, loc, dsts, srcs)
}

// Nop constructs a no-op command.
func NopCmd() *Cmd { return &Cmd{Tag: CmdNop} }

// Seq constructs a Seq command.
func Seq(cmds []*Cmd) *Cmd { return &Cmd{Tag: CmdSeq, Seq: SeqCmd{Cmds: cmds}} }

// Return constructs a Return command.
func Return(loc source.Span, srcs []Value) *Cmd {
	return &Cmd{Tag: CmdReturn, Loc: loc, Return: ReturnCmd{Srcs: srcs}}
}

// BreakCmd constructs a Break command.
func BreakCmd() *Cmd { return &Cmd{Tag: CmdBreak} }

// Loop constructs a Loop command.
func Loop(body *Cmd) *Cmd { return &Cmd{Tag: CmdLoop, Loop: LoopCmd{Body: body}} }

// If constructs an If command.
func If(loc source.Span, cond Value, then, els *Cmd) *Cmd {
	return &Cmd{Tag: CmdIf, Loc: loc, If: IfCmd{Cond: cond, Then: then, Else: els}}
}

// For constructs a For command, later expanded by lowering.
func For(loc source.Span, dst LocalID, start, limit, step Value, body *Cmd) *Cmd {
	return &Cmd{Tag: CmdFor, Loc: loc, For: ForCmd{Dst: dst, SrcStart: start, SrcLimit: limit, SrcStep: step, Body: body}}
}

// CheckGC constructs a CheckGC command.
func CheckGC() *Cmd { return &Cmd{Tag: CmdCheckGC} }
