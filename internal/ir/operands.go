package ir

// GetSrcs returns the operand Values a command reads, in the fixed
// order its fields are declared. It is a hand-written switch rather
// than a reflection-driven walk: the field set per tag is small and
// closed, and every case here is a one-line check against cmd.go.
func GetSrcs(cmd *Cmd) []Value {
	switch cmd.Tag {
	case CmdMove:
		return []Value{cmd.Move.Src}
	case CmdUnop:
		return []Value{cmd.Unop.Src}
	case CmdBinop:
		return []Value{cmd.Binop.Src1, cmd.Binop.Src2}
	case CmdConcat:
		return cmd.Concat.Srcs
	case CmdToFloat:
		return []Value{cmd.ToFloat.Src}
	case CmdToDyn:
		return []Value{cmd.ToDyn.Src}
	case CmdFromDyn:
		return []Value{cmd.FromDyn.Src}
	case CmdIsTruthy:
		return []Value{cmd.IsTruthy.Src}
	case CmdIsNil:
		return []Value{cmd.IsNil.Src}
	case CmdNewArr:
		return []Value{cmd.NewArr.SrcSize}
	case CmdGetArr:
		return []Value{cmd.GetArr.SrcArr, cmd.GetArr.SrcI}
	case CmdSetArr:
		return []Value{cmd.SetArr.SrcArr, cmd.SetArr.SrcI, cmd.SetArr.SrcV}
	case CmdNewTable:
		return []Value{cmd.NewTable.SrcSize}
	case CmdGetTable:
		return []Value{cmd.GetTable.SrcTab, cmd.GetTable.SrcK}
	case CmdSetTable:
		return []Value{cmd.SetTable.SrcTab, cmd.SetTable.SrcK, cmd.SetTable.SrcV}
	case CmdNewRecord:
		return nil
	case CmdGetField:
		return []Value{cmd.GetField.SrcRec}
	case CmdSetField:
		return []Value{cmd.SetField.SrcRec, cmd.SetField.SrcV}
	case CmdNewClosure:
		return nil
	case CmdInitUpvalues:
		srcs := make([]Value, 0, 1+len(cmd.InitUpvalues.Srcs))
		srcs = append(srcs, cmd.InitUpvalues.SrcF)
		srcs = append(srcs, cmd.InitUpvalues.Srcs...)
		return srcs
	case CmdCallStatic:
		srcs := make([]Value, 0, 1+len(cmd.CallStatic.Srcs))
		srcs = append(srcs, cmd.CallStatic.SrcF)
		srcs = append(srcs, cmd.CallStatic.Srcs...)
		return srcs
	case CmdCallDyn:
		srcs := make([]Value, 0, 1+len(cmd.CallDyn.Srcs))
		srcs = append(srcs, cmd.CallDyn.SrcF)
		srcs = append(srcs, cmd.CallDyn.Srcs...)
		return srcs
	case CmdRuntimeError:
		return nil
	case CmdReturn:
		return cmd.Return.Srcs
	case CmdIf:
		return []Value{cmd.If.Cond}
	case CmdFor:
		return []Value{cmd.For.SrcStart, cmd.For.SrcLimit, cmd.For.SrcStep}
	case CmdNop, CmdBreak, CmdLoop, CmdSeq, CmdCheckGC:
		return nil
	default:
		if cmd.Tag.isBuiltinTag() {
			return cmd.BuiltinCall.Srcs
		}
		return nil
	}
}

// GetDsts returns the local variable ids a command writes, in the
// fixed order its fields are declared, skipping any slot a caller
// marked as a discarded return value (NoLocalID).
func GetDsts(cmd *Cmd) []LocalID {
	return dropDiscarded(getDstsRaw(cmd))
}

func dropDiscarded(dsts []LocalID) []LocalID {
	kept := dsts[:0:0]
	for _, d := range dsts {
		if d != NoLocalID {
			kept = append(kept, d)
		}
	}
	return kept
}

func getDstsRaw(cmd *Cmd) []LocalID {
	switch cmd.Tag {
	case CmdMove:
		return []LocalID{cmd.Move.Dst}
	case CmdUnop:
		return []LocalID{cmd.Unop.Dst}
	case CmdBinop:
		return []LocalID{cmd.Binop.Dst}
	case CmdConcat:
		return []LocalID{cmd.Concat.Dst}
	case CmdToFloat:
		return []LocalID{cmd.ToFloat.Dst}
	case CmdToDyn:
		return []LocalID{cmd.ToDyn.Dst}
	case CmdFromDyn:
		return []LocalID{cmd.FromDyn.Dst}
	case CmdIsTruthy:
		return []LocalID{cmd.IsTruthy.Dst}
	case CmdIsNil:
		return []LocalID{cmd.IsNil.Dst}
	case CmdNewArr:
		return []LocalID{cmd.NewArr.Dst}
	case CmdGetArr:
		return []LocalID{cmd.GetArr.Dst}
	case CmdSetArr:
		return nil
	case CmdNewTable:
		return []LocalID{cmd.NewTable.Dst}
	case CmdGetTable:
		return []LocalID{cmd.GetTable.Dst}
	case CmdSetTable:
		return nil
	case CmdNewRecord:
		return []LocalID{cmd.NewRecord.Dst}
	case CmdGetField:
		return []LocalID{cmd.GetField.Dst}
	case CmdSetField:
		return nil
	case CmdNewClosure:
		return []LocalID{cmd.NewClosure.Dst}
	case CmdInitUpvalues:
		return nil
	case CmdCallStatic:
		return cmd.CallStatic.Dsts
	case CmdCallDyn:
		return cmd.CallDyn.Dsts
	case CmdRuntimeError:
		return nil
	case CmdReturn:
		return nil
	case CmdIf:
		return nil
	case CmdFor:
		return []LocalID{cmd.For.Dst}
	case CmdNop, CmdBreak, CmdLoop, CmdSeq, CmdCheckGC:
		return nil
	default:
		if cmd.Tag.isBuiltinTag() {
			return cmd.BuiltinCall.Dsts
		}
		return nil
	}
}
