package ir

// Clean simplifies the tree rooted at c by a fixed set of meaning-
// preserving rewrites: Seq flattening and Nop removal, Seq arity
// collapse (0 children becomes Nop, 1 child replaces the Seq), folding
// an If whose condition is a boolean literal to the taken branch, and
// collapsing an If whose branches are both Nop to Nop. Loop and For
// bodies are cleaned but the loop itself is never elided, even when
// its body reduces to Nop: an empty loop can still diverge or yield to
// a scheduler, behavior Clean must not remove.
//
// Clean is idempotent: running it twice produces the same tree as
// running it once, because Map visits bottom-up and every rewrite
// below only inspects children that have already reached their fixed
// point.
func Clean(c *Cmd) *Cmd {
	return Map(c, cleanNode)
}

func cleanNode(c *Cmd) *Cmd {
	switch c.Tag {
	case CmdSeq:
		return cleanSeq(c)
	case CmdIf:
		return cleanIf(c)
	default:
		return nil
	}
}

func cleanSeq(c *Cmd) *Cmd {
	flat := make([]*Cmd, 0, len(c.Seq.Cmds))
	for _, child := range c.Seq.Cmds {
		switch child.Tag {
		case CmdNop:
			continue
		case CmdSeq:
			flat = append(flat, child.Seq.Cmds...)
		default:
			flat = append(flat, child)
		}
	}
	switch len(flat) {
	case 0:
		return NopCmd()
	case 1:
		return flat[0]
	default:
		c.Seq.Cmds = flat
		return c
	}
}

func cleanIf(c *Cmd) *Cmd {
	if c.If.Cond.IsBoolLit(true) {
		return c.If.Then
	}
	if c.If.Cond.IsBoolLit(false) {
		return c.If.Else
	}
	if c.If.Then.Tag == CmdNop && c.If.Else.Tag == CmdNop {
		return NopCmd()
	}
	return c
}
