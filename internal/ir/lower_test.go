package ir

import (
	"testing"
)

func newTestFunction(body *Cmd) *Function {
	return &Function{
		Name:         "f",
		Vars:         []VarDecl{{}},
		CapturedVars: []VarDecl{{}},
		FIDOfUpvalue: make(map[UpvalueID]FuncID),
		FIDOfLocal:   make(map[LocalID]FuncID),
		Body:         body,
	}
}

func allCmds(f *Function) []*Cmd {
	var out []*Cmd
	for _, bb := range f.Blocks {
		out = append(out, bb.Cmds...)
	}
	return out
}

func hasTag(cmds []*Cmd, tag CmdTag) bool {
	for _, c := range cmds {
		if c.Tag == tag {
			return true
		}
	}
	return false
}

func TestLowerMinimalFunction(t *testing.T) {
	f := newTestFunction(Return(noLoc, nil))
	GenerateBasicBlocks(f)

	if len(f.Blocks) == 0 {
		t.Fatal("a function should always lower to at least one block")
	}
	if !hasTag(allCmds(f), CmdReturn) {
		t.Error("the Return command should survive lowering")
	}
}

func TestLowerMinimalFunctionReservesEntryAndExit(t *testing.T) {
	f := newTestFunction(Return(noLoc, []Value{Integer(42)}))
	GenerateBasicBlocks(f)

	if len(f.Blocks) != 3 {
		t.Fatalf("Return([Integer(42)]) should lower to exactly 3 blocks (entry, body, exit), got %d", len(f.Blocks))
	}
	if f.Blocks[0].Next != 1 {
		t.Errorf("the reserved entry block should fall through to the body block, got Next=%d", f.Blocks[0].Next)
	}
	if len(f.Blocks[0].Cmds) != 0 || f.Blocks[0].JmpFalse != nil {
		t.Error("the reserved entry block should be empty")
	}
	last := len(f.Blocks) - 1
	if len(f.Blocks[last].Cmds) != 0 || f.Blocks[last].JmpFalse != nil {
		t.Error("the reserved exit block should be empty")
	}
	if !hasTag(f.Blocks[1].Cmds, CmdReturn) {
		t.Error("the body block should hold the Return command")
	}
}

func TestLowerIfCascade(t *testing.T) {
	dst := LocalID(1)
	body := Seq([]*Cmd{
		If(noLoc, LocalVarRef(dst),
			Move(noLoc, dst, Integer(1)),
			If(noLoc, LocalVarRef(dst), Move(noLoc, dst, Integer(2)), Move(noLoc, dst, Integer(3))),
		),
		Return(noLoc, nil),
	})
	f := newTestFunction(body)
	GenerateBasicBlocks(f)

	var jmpFalseCount int
	for _, bb := range f.Blocks {
		if bb.JmpFalse != nil {
			jmpFalseCount++
		}
	}
	if jmpFalseCount != 2 {
		t.Errorf("a two-level If cascade should lower to 2 conditional edges, got %d", jmpFalseCount)
	}
}

func TestLowerBreakInLoop(t *testing.T) {
	dst := LocalID(1)
	loopBody := Seq([]*Cmd{
		If(noLoc, LocalVarRef(dst), BreakCmd(), NopCmd()),
		Move(noLoc, dst, Integer(1)),
	})
	f := newTestFunction(Loop(loopBody))
	GenerateBasicBlocks(f)

	// The block holding the If's then-branch should exit the loop (jump
	// to the loop's exit block) rather than fall back into the loop head.
	var breakTargets []BlockID
	for _, bb := range f.Blocks {
		if len(bb.Cmds) == 0 && bb.JmpFalse == nil && bb.Next != NoBlockID {
			breakTargets = append(breakTargets, bb.Next)
		}
	}
	if len(breakTargets) == 0 {
		t.Error("expected at least one block whose only purpose is the Break's unconditional jump")
	}
}

func TestLowerForExpansionIncludesZeroStepGuard(t *testing.T) {
	dst := LocalID(1)
	forCmd := For(noLoc, dst, Integer(0), Integer(10), Integer(1), Move(noLoc, LocalID(2), Integer(0)))
	f := newTestFunction(forCmd)
	GenerateBasicBlocks(f)

	if !hasTag(allCmds(f), CmdRuntimeError) {
		t.Error("a lowered For should always carry a zero-step runtime error path")
	}

	// Break never appears as a Cmd in any block: lowering turns it into
	// an unconditional jump (an empty block whose Next is the loop's
	// exit), not an instruction. Look for that edge instead of the tag.
	var breakTargets []BlockID
	for _, bb := range f.Blocks {
		if len(bb.Cmds) == 0 && bb.JmpFalse == nil && bb.Next != NoBlockID {
			breakTargets = append(breakTargets, bb.Next)
		}
	}
	if len(breakTargets) == 0 {
		t.Error("a lowered For's canonical expansion should terminate its Loop with a Break, lowered to a jump to the loop's exit block")
	}
}

func TestLowerSoundnessEveryBlockReachableFromEntry(t *testing.T) {
	dst := LocalID(1)
	body := Seq([]*Cmd{
		If(noLoc, LocalVarRef(dst), Move(noLoc, dst, Integer(1)), NopCmd()),
		For(noLoc, dst, Integer(0), Integer(3), Integer(1), NopCmd()),
		Return(noLoc, nil),
	})
	f := newTestFunction(body)
	GenerateBasicBlocks(f)

	reached := make(map[BlockID]bool)
	var walk func(id BlockID)
	walk = func(id BlockID) {
		if id == NoBlockID || reached[id] {
			return
		}
		reached[id] = true
		bb := f.Blocks[id]
		if bb.JmpFalse != nil {
			walk(bb.JmpFalse.Target)
		}
		walk(bb.Next)
	}
	walk(0)

	if len(reached) != len(f.Blocks) {
		t.Errorf("lowering produced %d blocks but only %d are reachable from the entry block", len(f.Blocks), len(reached))
	}
}
