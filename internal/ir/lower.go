package ir

import (
	"fortio.org/safecast"

	"vela/internal/typeref"
)

// builder accumulates commands into one open BasicBlock at a time. The
// blocks slice it shares with its siblings grows monotonically as
// branches allocate successor blocks; builder.block always names the
// block currently receiving emitted commands.
type builder struct {
	fn     *Function
	blocks *[]BasicBlock
	block  BlockID
}

func (b *builder) fork(block BlockID) *builder {
	return &builder{fn: b.fn, blocks: b.blocks, block: block}
}

func (b *builder) newBlock() BlockID {
	*b.blocks = append(*b.blocks, BasicBlock{Next: NoBlockID})
	return blockID(len(*b.blocks) - 1)
}

func blockID(i int) BlockID {
	id, err := safecast.Conv[int32](i)
	if err != nil {
		panic(err)
	}
	return BlockID(id)
}

func (b *builder) emit(c *Cmd) {
	bb := &(*b.blocks)[b.block]
	bb.Cmds = append(bb.Cmds, c)
}

// empty reports whether id names a block with no commands and no
// outgoing edge yet, the shape of a just-allocated block nothing has
// written into.
func (b *builder) empty(id BlockID) bool {
	bb := &(*b.blocks)[id]
	return len(bb.Cmds) == 0 && bb.JmpFalse == nil && bb.Next == NoBlockID
}

func (b *builder) setNext(target BlockID) {
	(*b.blocks)[b.block].Next = target
}

func (b *builder) setJmpFalse(jf *JmpFalse) {
	(*b.blocks)[b.block].JmpFalse = jf
}

// temp allocates a fresh, unnamed local to hold a value synthesized by
// lowering itself (a loop-test predicate, a zero-step guard) rather
// than by the frontend. Its type is left unset: lowering runs after
// type checking has already accepted the program, so nothing
// downstream of this pass consults the type of a lowering-internal
// temporary.
func temp(f *Function) LocalID {
	return AddLocal(f, "", typeref.NoTypeID)
}

// GenerateBasicBlocks lowers f.Body into f.Blocks: a flat, ordered list
// of maximal straight-line runs ending in at most one conditional edge.
// Block 0 is always a reserved, empty entry block, and the last block
// in the list is always a reserved, empty exit block; both are
// allocated regardless of what f.Body contains. A block whose Next is
// NoBlockID and which has no JmpFalse falls off the end of the
// function with no explicit Return.
//
// Break transfers to the nearest enclosing loop's exit block. For is
// expanded to its canonical form before lowering: a zero-step guard, a
// step-sign test choosing an ascending or descending bounds check, the
// body, and the step update, all wrapped in a Loop, so lowering itself
// never special-cases For beyond this expansion.
func GenerateBasicBlocks(f *Function) {
	blocks := make([]BasicBlock, 0, 8)
	blocks = append(blocks, BasicBlock{Next: NoBlockID}) // entry, block 0
	b := &builder{fn: f, blocks: &blocks, block: 0}
	bodyStart := b.newBlock()
	b.setNext(bodyStart)
	b.block = bodyStart

	lowerCmd(b, f.Body, NoBlockID)

	// The block lowering left open either already is an empty,
	// untouched block (the common case after a Return or Break, which
	// each open a fresh block once they terminate their own), in which
	// case it doubles as the reserved exit with nothing further to do,
	// or it still holds real content (the body fell off the end with
	// no explicit terminator), in which case a genuine exit block is
	// allocated and wired as its successor.
	if !b.empty(b.block) {
		exit := b.newBlock()
		b.setNext(exit)
	}

	f.Blocks = blocks
}

// lowerCmd lowers c into b's currently open block, possibly opening new
// blocks and retargeting b.block to the last one still open when it
// returns. brk is the block a Break nested in c should jump to; it is
// NoBlockID outside any loop, where a Break is a programmer error the
// frontend must have already rejected.
func lowerCmd(b *builder, c *Cmd, brk BlockID) {
	if c == nil {
		return
	}
	switch c.Tag {
	case CmdNop:
		return

	case CmdSeq:
		for _, child := range c.Seq.Cmds {
			lowerCmd(b, child, brk)
		}

	case CmdIf:
		lowerIf(b, c, brk)

	case CmdLoop:
		lowerLoop(b, c.Loop.Body, brk)

	case CmdFor:
		lowerCmd(b, expandFor(b.fn, c), brk)

	case CmdBreak:
		b.setNext(brk)
		b.block = b.newBlock()

	case CmdReturn:
		b.emit(c)
		b.block = b.newBlock()

	default:
		b.emit(c)
	}
}

func lowerIf(b *builder, c *Cmd, brk BlockID) {
	thenID := b.newBlock()
	elseID := b.newBlock()

	b.setJmpFalse(&JmpFalse{Target: elseID, Cond: c.If.Cond})
	b.setNext(thenID)

	thenB := b.fork(thenID)
	lowerCmd(thenB, c.If.Then, brk)

	elseB := b.fork(elseID)
	lowerCmd(elseB, c.If.Else, brk)

	joinID := joinBlock(b, thenB.block, elseB.block)
	if thenB.block != joinID {
		thenB.setNext(joinID)
	}
	if elseB.block != joinID {
		elseB.setNext(joinID)
	}

	b.block = joinID
}

// joinBlock picks where Then and Else reconverge after an If. A merge
// block is only allocated when both branches actually need one; when
// one side's open block is still empty — typically the trailing,
// not-yet-used join block of a nested elseif in Else — that block is
// reused as the join instead, so a cascade of elseif collapses into a
// single shared merge rather than a chain of empty forwarders.
func joinBlock(b *builder, thenOpen, elseOpen BlockID) BlockID {
	if b.empty(elseOpen) {
		return elseOpen
	}
	if b.empty(thenOpen) {
		return thenOpen
	}
	return b.newBlock()
}

func lowerLoop(b *builder, body *Cmd, outerBrk BlockID) {
	_ = outerBrk // a Break inside body targets this loop's own exit, never the enclosing one
	headID := b.newBlock()
	exitID := b.newBlock()

	b.setNext(headID)

	headB := b.fork(headID)
	lowerCmd(headB, body, exitID)
	headB.setNext(headID)

	b.block = exitID
}

// expandFor rewrites a For node into the Loop/If tree lowering treats
// as canonical: a guard against a zero Step, then on each iteration a
// step-sign test selecting an ascending (<=) or descending (>=) bounds
// check, the body, and the step update.
func expandFor(f *Function, c *Cmd) *Cmd {
	fc := c.For
	loc := c.Loc

	zeroCheck := temp(f)
	stepPositive := temp(f)
	loopTest := temp(f)

	guard := Binop(loc, zeroCheck, OpIntEq, fc.SrcStep, Integer(0))
	zeroStepGuard := If(loc, LocalVarRef(zeroCheck),
		RuntimeError(loc, "'for' step is zero"),
		NopCmd(),
	)

	init := Move(loc, fc.Dst, fc.SrcStart)

	stepSign := Binop(loc, stepPositive, OpIntGt, fc.SrcStep, Integer(0))
	ascTest := Binop(loc, loopTest, OpIntLeq, LocalVarRef(fc.Dst), fc.SrcLimit)
	descTest := Binop(loc, loopTest, OpIntGeq, LocalVarRef(fc.Dst), fc.SrcLimit)

	test := Seq([]*Cmd{
		stepSign,
		If(loc, LocalVarRef(stepPositive), ascTest, descTest),
	})

	step := Binop(loc, fc.Dst, OpIntAdd, LocalVarRef(fc.Dst), fc.SrcStep)

	loopBody := Seq([]*Cmd{
		test,
		If(loc, LocalVarRef(loopTest), Seq([]*Cmd{fc.Body, step}), BreakCmd()),
	})

	return Seq([]*Cmd{
		guard,
		zeroStepGuard,
		init,
		Loop(loopBody),
	})
}
