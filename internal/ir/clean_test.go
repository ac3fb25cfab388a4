package ir

import "testing"

func TestCleanEmptySeqBecomesNop(t *testing.T) {
	got := Clean(Seq(nil))
	if got.Tag != CmdNop {
		t.Errorf("Clean(Seq{}) = %v, want Nop", got.Tag)
	}
}

func TestCleanNestedSeqFlattensAndDropsNops(t *testing.T) {
	mv := Move(noLoc, 1, Integer(1))
	tree := Seq([]*Cmd{NopCmd(), Seq([]*Cmd{NopCmd(), mv})})

	got := Clean(tree)
	if got != mv {
		t.Errorf("Clean should collapse a Seq that flattens to one command to that command, got tag %v", got.Tag)
	}
}

func TestCleanIfTrueFoldsToThen(t *testing.T) {
	then := Move(noLoc, 1, Integer(1))
	els := Move(noLoc, 2, Integer(2))
	got := Clean(If(noLoc, Bool(true), then, els))
	if got != then {
		t.Error("If(true, then, else) should clean to then")
	}
}

func TestCleanIfFalseFoldsToElse(t *testing.T) {
	then := Move(noLoc, 1, Integer(1))
	els := Move(noLoc, 2, Integer(2))
	got := Clean(If(noLoc, Bool(false), then, els))
	if got != els {
		t.Error("If(false, then, else) should clean to else")
	}
}

func TestCleanIfBothBranchesNopBecomesNop(t *testing.T) {
	got := Clean(If(noLoc, LocalVarRef(1), NopCmd(), NopCmd()))
	if got.Tag != CmdNop {
		t.Errorf("If(cond, nop, nop) should clean to Nop, got %v", got.Tag)
	}
}

func TestCleanLeavesNonConstantIfAlone(t *testing.T) {
	then := Move(noLoc, 1, Integer(1))
	els := Move(noLoc, 2, Integer(2))
	ifCmd := If(noLoc, LocalVarRef(1), then, els)
	got := Clean(ifCmd)
	if got.Tag != CmdIf {
		t.Errorf("a non-constant If should not be folded, got %v", got.Tag)
	}
}

func TestCleanDoesNotElideLoopBody(t *testing.T) {
	loop := Loop(Seq([]*Cmd{NopCmd(), BreakCmd()}))
	got := Clean(loop)
	if got.Tag != CmdLoop {
		t.Error("Clean must never remove a Loop, even when its body reduces to something trivial")
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	mv := Move(noLoc, 1, Integer(1))
	tree := Seq([]*Cmd{NopCmd(), Seq([]*Cmd{mv, NopCmd()}), If(noLoc, Bool(true), Move(noLoc, 2, Integer(2)), NopCmd())})

	once := Clean(tree)
	twice := Clean(once)

	if Flatten(once)[0].Tag != Flatten(twice)[0].Tag {
		t.Error("cleaning an already-clean tree should change nothing")
	}
}
